// Package logging builds the structured logger shared by all commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel maps a level name to its slog level
func ParseLevel(level Level) (slog.Level, error) {
	switch level {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

// New returns a tint logger writing to w. Unknown levels fall back to info.
func New(level Level, w io.Writer) *slog.Logger {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		slogLevel = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slogLevel,
		AddSource:  slogLevel == slog.LevelDebug,
		TimeFormat: time.DateTime,
		NoColor:    true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if s, ok := a.Value.Any().(string); ok && s == "" {
				return slog.Attr{}
			}
			return a
		},
	}))
}
