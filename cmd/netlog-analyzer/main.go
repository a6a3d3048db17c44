package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"netlog-analyzer/internal/config"
	"netlog-analyzer/internal/logging"
	"netlog-analyzer/internal/logs"
	"netlog-analyzer/internal/models"
	"netlog-analyzer/internal/monitor"
	"netlog-analyzer/internal/report"
	"netlog-analyzer/internal/web"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "netlog-analyzer",
		Short: "Analyze captured traceroute and ping logs",
		Long: `netlog-analyzer reads captured traceroute and ping logs for a set of
targets, reports whether each routing path stayed stable and summarizes
latency and packet loss.`,
		SilenceUsage: true,
	}

	flags := config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "analyze",
			Short: "Analyze logs and write a report",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := flags.Resolve()
				if err != nil {
					return err
				}
				return runAnalyze(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Analyze logs once and serve the results over HTTP",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := flags.Resolve()
				if err != nil {
					return err
				}
				return runServe(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "netlog-analyzer %s (commit: %s, built: %s)\n", version, commit, date)
			},
		},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root.SetContext(ctx)
	cobra.OnFinalize(cancel)

	return root
}

func analyze(ctx context.Context, cfg config.Config, log *slog.Logger) (models.RunSummary, error) {
	if _, err := os.Stat(cfg.LogDir); err != nil {
		return models.RunSummary{}, fmt.Errorf("log directory: %w", err)
	}

	var source models.LogSource = logs.NewAggregator(os.DirFS(cfg.LogDir), log)
	return monitor.New(source, cfg.Workers, log).Run(ctx, cfg.Targets)
}

func runAnalyze(ctx context.Context, cfg config.Config) error {
	log := logging.New(cfg.LogLevel, os.Stderr)

	summary, err := analyze(ctx, cfg, log)
	if err != nil {
		log.Error("Operation failed: analyze", "error", err)
		return err
	}

	var emitter models.ReportEmitter = report.NewGenerator(log, cfg.Charts)
	if err := emitter.WriteTable(os.Stdout, summary); err != nil {
		return err
	}

	if cfg.OutputDir != "" {
		if _, err := emitter.Generate(cfg.OutputDir, summary); err != nil {
			log.Error("Operation failed: generate_report", "error", err)
			return err
		}
	}
	return nil
}

func runServe(ctx context.Context, cfg config.Config) error {
	log := logging.New(cfg.LogLevel, os.Stderr)

	summary, err := analyze(ctx, cfg, log)
	if err != nil {
		log.Error("Operation failed: analyze", "error", err)
		return err
	}

	log.Info("Web interface available", slog.String("url", fmt.Sprintf("http://localhost:%d", cfg.Port)))
	return web.New(summary, cfg.Port, log).Start(ctx)
}
