package monitor

import (
	"errors"
	"log/slog"
	"sync"

	"netlog-analyzer/internal/analysis"
	"netlog-analyzer/internal/metrics"
	"netlog-analyzer/internal/models"
	"netlog-analyzer/internal/ping"
	"netlog-analyzer/internal/traceroute"
)

// worker analyzes targets until jobs is closed
func (m *Monitor) worker(targets []string, jobs <-chan int, results chan<- result, wg *sync.WaitGroup) {
	defer wg.Done()

	for i := range jobs {
		results <- result{index: i, report: m.analyzeTarget(targets[i])}
	}
}

// analyzeTarget collects and analyzes the logs of a single target
func (m *Monitor) analyzeTarget(target string) models.TargetReport {
	report := models.TargetReport{Target: target}

	bundle, err := m.source.Aggregate(target)
	if err != nil {
		m.log.Warn("Failed to collect logs", slog.String("target", target), slog.String("error", err.Error()))
		report.Err = err.Error()
		report.StabilityError = err.Error()
		report.LatencyError = err.Error()
		return report
	}

	measurements, err := traceroute.Extract(bundle.Traceroute, target)
	report.Measurements = measurements
	metrics.MeasurementsParsedTotal.WithLabelValues(target).Add(float64(len(measurements)))

	if err != nil {
		m.recordParseErrors(target, err)
		report.StabilityError = err.Error()
	} else if len(measurements) == 0 {
		report.StabilityError = "no traceroute measurements"
	} else {
		verdict := analysis.Stability(measurements)
		report.Stability = &verdict
	}

	report.Pings = ping.ExtractAll(bundle.Pings)
	metrics.PingSamplesTotal.WithLabelValues(target).Add(float64(len(report.Pings)))

	report.AvgRTTs = analysis.AverageRTTs(report.Pings)
	report.LossRates = analysis.LossRates(report.Pings)
	report.Loss = analysis.LatestLoss(report.Pings)

	if len(report.AvgRTTs) == 0 {
		report.LatencyError = "insufficient data"
	} else {
		stats, err := analysis.Latency(report.AvgRTTs)
		if err != nil {
			report.LatencyError = err.Error()
		} else {
			report.Latency = &stats
		}
	}

	m.log.Debug("Analyzed target",
		slog.String("target", target),
		slog.Int("measurements", len(report.Measurements)),
		slog.Int("ping_samples", len(report.Pings)))

	return report
}

func (m *Monitor) recordParseErrors(target string, err error) {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}

	for _, e := range errs {
		kind := "unknown"
		var perr *traceroute.ParseError
		if errors.As(e, &perr) {
			kind = string(perr.Kind)
		}
		metrics.ParseErrorsTotal.WithLabelValues(kind).Inc()
		m.log.Warn("Malformed capture session", slog.String("target", target), slog.String("error", e.Error()))
	}
}
