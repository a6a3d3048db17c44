package monitor

import (
	"context"
	"log/slog"
	"sync"

	"netlog-analyzer/internal/analysis"
	"netlog-analyzer/internal/models"
)

// Monitor runs one analysis pass over a fixed set of targets
type Monitor struct {
	source  models.LogSource
	workers int
	log     *slog.Logger
}

type result struct {
	index  int
	report models.TargetReport
}

// New creates a new Monitor. workers bounds how many targets are analyzed at once.
func New(source models.LogSource, workers int, log *slog.Logger) *Monitor {
	if workers < 1 {
		workers = 1
	}
	return &Monitor{
		source:  source,
		workers: workers,
		log:     log,
	}
}

// Run analyzes every target and returns the reports in target order together
// with the stable and changing sets. Per-target failures are recorded in the
// reports; the returned error is only set when ctx is cancelled.
func (m *Monitor) Run(ctx context.Context, targets []string) (models.RunSummary, error) {
	m.log.Info("Starting analysis", slog.Int("targets", len(targets)), slog.Int("workers", m.workers))

	jobs := make(chan int)
	results := make(chan result, len(targets))
	classifier := &analysis.Classifier{}

	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go m.worker(targets, jobs, results, &wg)
	}

	var cancelled error
dispatch:
	for i := range targets {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	reports := make([]models.TargetReport, len(targets))
	done := make([]bool, len(targets))
	for r := range results {
		reports[r.index] = r.report
		done[r.index] = true
	}

	summary := models.RunSummary{}
	for i, r := range reports {
		if !done[i] {
			continue
		}
		summary.Targets = append(summary.Targets, r)
		if r.Stability != nil {
			classifier.Add(r.Target, *r.Stability)
		}
	}
	summary.Stable = classifier.Stable()
	summary.Changing = classifier.Changing()

	recordMetrics(summary)

	m.log.Info("Analysis complete",
		slog.Int("stable", len(summary.Stable)),
		slog.Int("changing", len(summary.Changing)))

	return summary, cancelled
}
