package config

import (
	"strings"

	"github.com/spf13/pflag"

	"netlog-analyzer/internal/logging"
)

// Flags binds command-line flags that override a Config
type Flags struct {
	ConfigFile string

	targets   string
	logDir    string
	outputDir string
	port      int
	logLevel  string
	workers   int
	noCharts  bool

	set *pflag.FlagSet
}

// RegisterFlags adds the analyzer flags to fs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	def := Default()
	f := &Flags{set: fs}

	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file")
	fs.StringVar(&f.targets, "targets", strings.Join(def.Targets, ","), "Comma-separated target hosts")
	fs.StringVar(&f.logDir, "logs", def.LogDir, "Directory with captured traceroute and ping logs")
	fs.StringVar(&f.outputDir, "output", def.OutputDir, "Report output directory")
	fs.IntVar(&f.port, "port", def.Port, "Web server port")
	fs.StringVar(&f.logLevel, "log-level", string(def.LogLevel), "Log level (debug, info, warn, error)")
	fs.IntVar(&f.workers, "workers", def.Workers, "Targets analyzed in parallel")
	fs.BoolVar(&f.noCharts, "no-charts", !def.Charts, "Skip PNG chart generation")

	return f
}

// Resolve builds the Config: defaults, then the config file, then any flag
// given explicitly on the command line.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.ConfigFile != "" {
		if err := LoadFile(f.ConfigFile, &cfg); err != nil {
			return cfg, err
		}
	}

	if f.set.Changed("targets") {
		cfg.Targets = splitTargets(f.targets)
	}
	if f.set.Changed("logs") {
		cfg.LogDir = f.logDir
	}
	if f.set.Changed("output") {
		cfg.OutputDir = f.outputDir
	}
	if f.set.Changed("port") {
		cfg.Port = f.port
	}
	if f.set.Changed("log-level") {
		cfg.LogLevel = logging.Level(f.logLevel)
	}
	if f.set.Changed("workers") {
		cfg.Workers = f.workers
	}
	if f.set.Changed("no-charts") {
		cfg.Charts = !f.noCharts
	}

	return cfg, cfg.Validate()
}

func splitTargets(s string) []string {
	var targets []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}
