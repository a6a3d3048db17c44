package monitor

import (
	"netlog-analyzer/internal/metrics"
	"netlog-analyzer/internal/models"
)

// recordMetrics publishes the outcome of a run
func recordMetrics(summary models.RunSummary) {
	metrics.Targets.WithLabelValues(string(models.Stable)).Set(float64(len(summary.Stable)))
	metrics.Targets.WithLabelValues(string(models.Changing)).Set(float64(len(summary.Changing)))

	for _, r := range summary.Targets {
		if r.Latency != nil {
			metrics.LatencyMedianMs.WithLabelValues(r.Target).Set(r.Latency.Median)
		}
	}
}
