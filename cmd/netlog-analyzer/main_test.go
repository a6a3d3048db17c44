package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"netlog-analyzer/internal/config"
	"netlog-analyzer/internal/models"
)

func writeLog(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "traceroute_altnews_in_1.txt", "Traceroute to altnews.in at 2024-01-01 10:00\n1 192.0.2.1 10.0 ms 11.0 ms 9.0 ms\n")
	writeLog(t, dir, "traceroute_altnews_in_2.txt", "Traceroute to altnews.in at 2024-01-01 11:00\n1 192.0.2.7 10.0 ms 11.0 ms 9.0 ms\n")
	writeLog(t, dir, "traceroute_www_2345_com.txt", "Traceroute to www.2345.com at 2024-01-01 10:00\n1 192.0.2.1 1.0 ms 1.0 ms 1.0 ms\n")
	writeLog(t, dir, "ping_www_2345_com.txt", "1 packets transmitted, 1 received, 0% packet loss\nrtt min/avg/max/mdev = 1.0/2.0/3.0/0.5 ms\n")

	cfg := config.Default()
	cfg.LogDir = dir

	summary, err := analyze(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.Equal(t, []string{"www.2345.com"}, summary.Stable)
	require.Equal(t, []string{"altnews.in"}, summary.Changing)

	altnews, ok := summary.Find("altnews.in")
	require.True(t, ok)
	require.Len(t, altnews.Measurements, 2)
	require.Equal(t, models.Changing, *altnews.Stability)

	other, _ := summary.Find("www.2345.com")
	require.Equal(t, 2.0, other.Latency.Median)
}

func TestAnalyze_MissingLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.LogDir = filepath.Join(t.TempDir(), "missing")

	_, err := analyze(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.ErrorContains(t, err, "log directory")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(out.String(), "netlog-analyzer dev"))
}
