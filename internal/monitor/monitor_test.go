package monitor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"netlog-analyzer/internal/capture"
	"netlog-analyzer/internal/models"
)

type fakeSource struct {
	bundles map[string]models.Bundle
	errs    map[string]error
}

func (f *fakeSource) Aggregate(target string) (models.Bundle, error) {
	if err := f.errs[target]; err != nil {
		return models.Bundle{Target: target}, err
	}
	return f.bundles[target], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func trace(target, ts string, hops ...string) string {
	s := "Traceroute to " + target + " at " + ts + "\n"
	for i, h := range hops {
		s += string(rune('1'+i)) + " " + h + " 1.0 ms 2.0 ms 3.0 ms\n"
	}
	return s
}

const pingOK = "4 packets transmitted, 4 received, 0% packet loss\nrtt min/avg/max/mdev = 9.0/10.0/11.0/0.5 ms"
const pingLossy = "10 packets transmitted, 9 received, 10% packet loss\nrtt min/avg/max/mdev = 25.0/30.0/35.0/2.0 ms"

func newSource() *fakeSource {
	return &fakeSource{
		bundles: map[string]models.Bundle{
			"altnews.in": {
				Target: "altnews.in",
				Traceroute: capture.Join(
					trace("altnews.in", "2024-01-01 10:00", "192.0.2.1", "198.51.100.1"),
					trace("altnews.in", "2024-01-01 11:00", "192.0.2.1", "198.51.100.1"),
				),
				Pings: []string{pingOK, pingLossy},
			},
			"www.2345.com": {
				Target: "www.2345.com",
				Traceroute: capture.Join(
					trace("www.2345.com", "2024-01-01 10:00", "192.0.2.1"),
					trace("www.2345.com", "2024-01-01 11:00", "192.0.2.9"),
				),
			},
			"drift.example": {
				Target:     "drift.example",
				Traceroute: capture.Join("drift.example without header"),
				Pings:      []string{pingOK},
			},
		},
		errs: map[string]error{"broken.example": errors.New("permission denied")},
	}
}

func TestRun(t *testing.T) {
	targets := []string{"altnews.in", "www.2345.com", "drift.example", "broken.example", "empty.example"}
	m := New(newSource(), 3, discardLogger())

	summary, err := m.Run(context.Background(), targets)
	require.NoError(t, err)

	require.Equal(t, []string{"altnews.in"}, summary.Stable)
	require.Equal(t, []string{"www.2345.com"}, summary.Changing)
	require.Len(t, summary.Targets, len(targets))
	for i, r := range summary.Targets {
		require.Equal(t, targets[i], r.Target)
	}

	stable, ok := summary.Find("altnews.in")
	require.True(t, ok)
	require.Len(t, stable.Measurements, 2)
	require.Equal(t, models.Stable, *stable.Stability)
	require.Equal(t, []float64{10, 30}, stable.AvgRTTs)
	require.Equal(t, models.Major, stable.Loss)
	require.NotNil(t, stable.Latency)
	require.Equal(t, 20.0, stable.Latency.Median)

	changing, _ := summary.Find("www.2345.com")
	require.Equal(t, models.Changing, *changing.Stability)
	require.Nil(t, changing.Latency)
	require.Equal(t, "insufficient data", changing.LatencyError)
	require.Equal(t, models.LossFree, changing.Loss)

	drift, _ := summary.Find("drift.example")
	require.Nil(t, drift.Stability)
	require.Contains(t, drift.StabilityError, "missing_timestamp")
	require.NotNil(t, drift.Latency, "latency analysis still runs when traceroute parsing fails")

	broken, _ := summary.Find("broken.example")
	require.Equal(t, "permission denied", broken.Err)
	require.Nil(t, broken.Stability)

	empty, _ := summary.Find("empty.example")
	require.Nil(t, empty.Stability)
	require.Empty(t, empty.Measurements)
}

func TestRun_SingleWorkerMatchesParallel(t *testing.T) {
	targets := []string{"altnews.in", "www.2345.com", "drift.example"}

	serial, err := New(newSource(), 1, discardLogger()).Run(context.Background(), targets)
	require.NoError(t, err)
	parallel, err := New(newSource(), 8, discardLogger()).Run(context.Background(), targets)
	require.NoError(t, err)

	require.Equal(t, serial, parallel)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := New(newSource(), 2, discardLogger()).Run(ctx, []string{"altnews.in", "www.2345.com"})
	require.ErrorIs(t, err, context.Canceled)
	require.LessOrEqual(t, len(summary.Targets), 2)
}
