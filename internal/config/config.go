package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"netlog-analyzer/internal/logging"
	"netlog-analyzer/internal/logs"
)

// Config holds all configuration for the analyzer
type Config struct {
	Targets   []string      `yaml:"targets"`
	LogDir    string        `yaml:"log_dir"`
	OutputDir string        `yaml:"output_dir"`
	Port      int           `yaml:"port"`
	LogLevel  logging.Level `yaml:"log_level"`
	Workers   int           `yaml:"workers"`
	Charts    bool          `yaml:"charts"`
}

// Default returns the configuration used when nothing else is given
func Default() Config {
	return Config{
		Targets:   []string{"altnews.in", "www.2345.com"},
		LogDir:    "logs",
		OutputDir: "reports",
		Port:      8080,
		LogLevel:  logging.LevelInfo,
		Workers:   4,
		Charts:    true,
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current value.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target must be specified")
	}
	seen := make(map[string]bool, len(c.Targets))
	keys := make(map[string]string, len(c.Targets))
	for _, t := range c.Targets {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("target names cannot be empty")
		}
		if seen[t] {
			return fmt.Errorf("duplicate target %q", t)
		}
		seen[t] = true

		key := logs.FileKey(t)
		if other, ok := keys[key]; ok {
			return fmt.Errorf("targets %q and %q match the same log files (%s)", other, t, key)
		}
		keys[key] = t
	}
	if c.LogDir == "" {
		return fmt.Errorf("log directory cannot be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
