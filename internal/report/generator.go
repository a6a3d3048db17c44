package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"netlog-analyzer/internal/models"
)

// Generator writes text, JSON and chart reports for a run
type Generator struct {
	log    *slog.Logger
	charts bool
	now    func() time.Time
}

// NewGenerator creates a new report generator. With charts false no PNG files
// are written.
func NewGenerator(log *slog.Logger, charts bool) *Generator {
	return &Generator{log: log, charts: charts, now: time.Now}
}

// Generate creates a timestamped report directory under outputDir and returns its path
func (g *Generator) Generate(outputDir string, summary models.RunSummary) (string, error) {
	timestamp := g.now().Format("2006-01-02_15-04-05")
	reportDir := filepath.Join(outputDir, fmt.Sprintf("netlog_report_%s", timestamp))
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := g.generateTextReport(reportDir, summary); err != nil {
		return reportDir, fmt.Errorf("failed to write text report: %w", err)
	}

	if err := g.generateJSONReport(reportDir, summary); err != nil {
		return reportDir, fmt.Errorf("failed to write json report: %w", err)
	}

	if g.charts {
		keys := fileKeys(summary.Targets)
		for i, target := range summary.Targets {
			g.logChartError("path", target.Target, g.generatePathChart(reportDir, keys[i], target))
			g.logChartError("latency", target.Target, g.generateLatencyChart(reportDir, keys[i], target))
			g.logChartError("loss", target.Target, g.generateLossChart(reportDir, keys[i], target))
		}
	}

	g.log.Info("Report generated", slog.String("dir", reportDir))
	return reportDir, nil
}

func (g *Generator) logChartError(chart, target string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, errNotEnoughPoints):
		g.log.Debug("Skipped chart", slog.String("chart", chart), slog.String("target", target))
	default:
		g.log.Warn("Failed to generate chart", slog.String("chart", chart), slog.String("target", target), slog.String("error", err.Error()))
	}
}

func (g *Generator) generateJSONReport(outputDir string, summary models.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "summary.json"), data, 0o644)
}
