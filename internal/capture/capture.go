// Package capture splits aggregated log text into individual capture sessions.
package capture

import (
	"strings"
)

// MinDelimiterRun is the number of consecutive hyphens that turns a line into
// a session boundary.
const MinDelimiterRun = 10

// Delimiter is the separator written between captures when logs are joined.
var Delimiter = strings.Repeat("-", 45)

// Session is the text of one capture. StartLine is the 1-based line number of
// its first line in the source text.
type Session struct {
	Text      string
	StartLine int
}

// IsDelimiter reports whether line is a session boundary
func IsDelimiter(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < MinDelimiterRun {
		return false
	}
	return strings.Trim(line, "-") == ""
}

// Split cuts text into sessions on delimiter lines. Delimiter lines are not
// part of any session. Sessions are returned in source order; a leading,
// trailing or doubled delimiter yields an empty session.
func Split(text string) []Session {
	var (
		sessions []Session
		current  []string
		start    = 1
	)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if IsDelimiter(line) {
			sessions = append(sessions, Session{Text: strings.Join(current, "\n"), StartLine: start})
			current = nil
			start = i + 2
			continue
		}
		current = append(current, line)
	}
	sessions = append(sessions, Session{Text: strings.Join(current, "\n"), StartLine: start})

	return sessions
}

// Join concatenates captures the way the log aggregator does: every capture is
// followed by a newline, the delimiter and another newline.
func Join(captures ...string) string {
	var b strings.Builder
	for _, c := range captures {
		b.WriteString(c)
		b.WriteString("\n")
		b.WriteString(Delimiter)
		b.WriteString("\n")
	}
	return b.String()
}
