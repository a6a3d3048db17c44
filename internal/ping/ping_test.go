package ping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"netlog-analyzer/internal/models"
)

func intPtr(v int) *int { return &v }

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected models.PingSample
	}{
		{
			name: "Linux summary",
			output: `PING altnews.in (192.0.2.10) 56(84) bytes of data.
64 bytes from 192.0.2.10: icmp_seq=1 ttl=55 time=12.1 ms
64 bytes from 192.0.2.10: icmp_seq=2 ttl=55 time=14.2 ms

--- altnews.in ping statistics ---
2 packets transmitted, 2 received, 0% packet loss, time 1001ms
rtt min/avg/max/mdev = 12.100/13.150/14.200/1.050 ms`,
			expected: models.PingSample{
				LossPercent: intPtr(0),
				RTTStats:    []models.RTTStats{{Min: 12.1, Avg: 13.15, Max: 14.2, Mdev: 1.05}},
			},
		},
		{
			name: "total loss",
			output: `--- altnews.in ping statistics ---
4 packets transmitted, 0 received, 100% packet loss, time 3062ms`,
			expected: models.PingSample{
				LossPercent: intPtr(100),
				RTTStats:    []models.RTTStats{},
			},
		},
		{
			name: "partial loss",
			output: `10 packets transmitted, 9 received, 10% packet loss, time 9012ms
rtt min/avg/max/mdev = 20.0/25.5/40.0/5.1 ms`,
			expected: models.PingSample{
				LossPercent: intPtr(10),
				RTTStats:    []models.RTTStats{{Min: 20, Avg: 25.5, Max: 40, Mdev: 5.1}},
			},
		},
		{
			name: "several summaries keep order and first loss wins",
			output: `1 packets transmitted, 1 received, 0% packet loss
rtt min/avg/max/mdev = 1.0/2.0/3.0/0.5 ms
1 packets transmitted, 0 received, 100% packet loss
rtt min/avg/max/mdev = 4.0/5.0/6.0/0.5 ms`,
			expected: models.PingSample{
				LossPercent: intPtr(0),
				RTTStats: []models.RTTStats{
					{Min: 1, Avg: 2, Max: 3, Mdev: 0.5},
					{Min: 4, Avg: 5, Max: 6, Mdev: 0.5},
				},
			},
		},
		{
			name:   "fractional loss",
			output: "3 packets transmitted, 1 received, 66.6667% packet loss, time 2003ms",
			expected: models.PingSample{
				LossPercent: intPtr(67),
				RTTStats:    []models.RTTStats{},
			},
		},
		{
			name: "sub-percent loss",
			output: `200 packets transmitted, 199 received, 0.5% packet loss, time 199260ms
rtt min/avg/max/mdev = 10.0/11.0/12.0/0.4 ms`,
			expected: models.PingSample{
				LossPercent: intPtr(1),
				RTTStats:    []models.RTTStats{{Min: 10, Avg: 11, Max: 12, Mdev: 0.4}},
			},
		},
		{
			name:   "macOS decimal loss",
			output: "4 packets transmitted, 4 packets received, 0.0% packet loss",
			expected: models.PingSample{
				LossPercent: intPtr(0),
				RTTStats:    []models.RTTStats{},
			},
		},
		{
			name:   "loss at start of text",
			output: "25% packet loss",
			expected: models.PingSample{
				LossPercent: intPtr(25),
				RTTStats:    []models.RTTStats{},
			},
		},
		{
			name:   "no summary at all",
			output: "ping: unknown host example.invalid",
			expected: models.PingSample{
				LossPercent: nil,
				RTTStats:    []models.RTTStats{},
			},
		},
		{
			name:     "empty output",
			output:   "",
			expected: models.PingSample{RTTStats: []models.RTTStats{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Extract(tt.output))
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	output := "3 packets transmitted, 3 received, 0% packet loss\nrtt min/avg/max/mdev = 1.0/2.0/3.0/0.5 ms"
	require.Equal(t, Extract(output), Extract(output))
}

func TestExtractAll(t *testing.T) {
	samples := ExtractAll([]string{
		"1 packets transmitted, 1 received, 0% packet loss\nrtt min/avg/max/mdev = 1.0/2.0/3.0/0.5 ms",
		"  \n",
		"1 packets transmitted, 0 received, 100% packet loss",
	})

	require.Len(t, samples, 2)
	require.Equal(t, 0, *samples[0].LossPercent)
	require.Equal(t, 100, *samples[1].LossPercent)
	require.Empty(t, samples[1].RTTStats)
}

func TestParseLoss_StaysInRange(t *testing.T) {
	for _, output := range []string{
		"3 packets transmitted, 1 received, 66.6667% packet loss",
		"0.5% packet loss",
		"100.0% packet loss",
		"1 packets transmitted, 0 received, +1 errors, 100% packet loss",
	} {
		loss := parseLoss(output)
		require.NotNil(t, loss, output)
		require.GreaterOrEqual(t, *loss, 0, output)
		require.LessOrEqual(t, *loss, 100, output)
	}
}
