// Package traceroute turns aggregated traceroute logs into measurements.
package traceroute

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"netlog-analyzer/internal/capture"
	"netlog-analyzer/internal/models"
)

var (
	headerPattern = regexp.MustCompile(`Traceroute to (.*) at (.+)`)

	// trailing !H, !N, !X or !<code> annotations are allowed after the samples
	hopPattern = regexp.MustCompile(`^\s*\d+\s+(\d+\.\d+\.\d+\.\d+)\s+(\d+\.\d+) ms\s+(\d+\.\d+) ms\s+(\d+\.\d+) ms(?:\s+!\S*)*\s*$`)
)

// Extract parses every session of text that mentions target. Measurements are
// returned in source order. Relevant sessions without a header line are
// reported as joined *ParseError values; the remaining sessions are still
// extracted.
func Extract(text, target string) ([]models.Measurement, error) {
	var (
		measurements []models.Measurement
		errs         []error
	)

	for i, session := range capture.Split(text) {
		if !strings.Contains(session.Text, target) {
			continue
		}

		m, ok := parseSession(session.Text)
		if !ok {
			errs = append(errs, &ParseError{
				Kind:    KindMissingTimestamp,
				Target:  target,
				Session: i,
				Line:    session.StartLine,
			})
			continue
		}
		measurements = append(measurements, m)
	}

	return measurements, errors.Join(errs...)
}

// parseSession reads one capture. It returns false when no header is present.
func parseSession(text string) (models.Measurement, bool) {
	m := models.Measurement{Hops: []models.Hop{}}
	found := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if !found {
			if match := headerPattern.FindStringSubmatch(line); match != nil {
				m.Timestamp = match[2]
				found = true
				continue
			}
		}

		if hop, ok := parseHop(line); ok {
			m.Hops = append(m.Hops, hop)
		}
	}

	return m, found
}

// parseHop matches "<idx> <ipv4> <f> ms <f> ms <f> ms"
func parseHop(line string) (models.Hop, bool) {
	match := hopPattern.FindStringSubmatch(line)
	if match == nil {
		return models.Hop{}, false
	}

	hop := models.Hop{Address: match[1]}
	for i := range hop.RTT {
		rtt, err := strconv.ParseFloat(match[i+2], 64)
		if err != nil {
			return models.Hop{}, false
		}
		hop.RTT[i] = rtt
	}
	return hop, true
}
