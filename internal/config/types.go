package config

import "github.com/sysdash/sysdash/internal/report"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .sysdash.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Input is the path of the metrics snapshot produced by the collector.
	Input string `yaml:"input" mapstructure:"input"`

	// Output is the path the rendered HTML dashboard is written to.
	Output string `yaml:"output" mapstructure:"output"`

	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Terminal TerminalConfig `yaml:"terminal" mapstructure:"terminal"`
}

// ReportConfig controls the rendered document.
type ReportConfig struct {
	// Title is shown in the page header and the browser tab.
	Title string `yaml:"title" mapstructure:"title"`
}

// TerminalConfig controls CLI progress output.
type TerminalConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with the stock collector paths, so the
// tool works with zero configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Input:   "reports/metrics.json",
		Output:  "reports/dashboard.html",
		Report: ReportConfig{
			Title: report.DefaultTitle,
		},
		Terminal: TerminalConfig{
			Color: "auto",
		},
	}
}
