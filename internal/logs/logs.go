// Package logs collects the raw capture files of each target.
package logs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"netlog-analyzer/internal/capture"
	"netlog-analyzer/internal/models"
)

// Aggregator reads capture files from the top level of a filesystem
type Aggregator struct {
	fsys fs.FS
	log  *slog.Logger
}

// NewAggregator creates an Aggregator over fsys
func NewAggregator(fsys fs.FS, log *slog.Logger) *Aggregator {
	return &Aggregator{fsys: fsys, log: log}
}

// FileKey is the fragment a file name must contain to belong to target
func FileKey(target string) string {
	return strings.ReplaceAll(target, ".", "_")
}

// IsPingLog reports whether a file holds ping output rather than traceroutes
func IsPingLog(name string) bool {
	return strings.Contains(strings.ToLower(name), "ping")
}

// Aggregate returns every capture for target. Files are read in name order.
func (a *Aggregator) Aggregate(target string) (models.Bundle, error) {
	bundle := models.Bundle{Target: target}

	entries, err := fs.ReadDir(a.fsys, ".")
	if err != nil {
		return bundle, fmt.Errorf("failed to list log directory: %w", err)
	}

	key := FileKey(target)
	var traces []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), key) {
			continue
		}

		data, err := fs.ReadFile(a.fsys, entry.Name())
		if err != nil {
			return bundle, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		bundle.Files = append(bundle.Files, entry.Name())

		if IsPingLog(entry.Name()) {
			for _, s := range capture.Split(string(data)) {
				if strings.TrimSpace(s.Text) != "" {
					bundle.Pings = append(bundle.Pings, s.Text)
				}
			}
			continue
		}
		traces = append(traces, string(data))
	}

	bundle.Traceroute = capture.Join(traces...)

	a.log.Debug("Aggregated logs",
		slog.String("target", target),
		slog.Int("files", len(bundle.Files)),
		slog.Int("ping_captures", len(bundle.Pings)))

	return bundle, nil
}
