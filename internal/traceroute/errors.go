package traceroute

import (
	"errors"
	"fmt"
)

// ErrorKind names the way a capture session failed to parse
type ErrorKind string

const (
	KindMissingTimestamp ErrorKind = "missing_timestamp"
)

// ErrMissingTimestamp matches any ParseError of kind KindMissingTimestamp
var ErrMissingTimestamp = errors.New("traceroute header with timestamp not found")

// ParseError reports a relevant session that does not follow the capture format
type ParseError struct {
	Kind   ErrorKind
	Target string
	// Session is the 0-based index of the session in the aggregated text
	Session int
	// Line is the 1-based source line where the session starts
	Line int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: target %q, session %d starting at line %d", e.Kind, e.Target, e.Session, e.Line)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMissingTimestamp && e.Kind == KindMissingTimestamp
}
