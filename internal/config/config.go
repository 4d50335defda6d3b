package config

import (
	"github.com/mitchele/annotool/pkg/annotation"
)

// Config represents the annotool configuration
type Config struct {
	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Export destinations
	Export ExportConfig `json:"export" mapstructure:"export"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// ExportConfig holds default destinations for the two export operations.
// Both can still be overridden per call via CLI flags.
type ExportConfig struct {
	ReportFile string `json:"report_file" mapstructure:"report_file"`
	CSVFile    string `json:"csv_file" mapstructure:"csv_file"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			Pretty:  true,
		},
		Export: ExportConfig{
			ReportFile: annotation.DefaultReportFile,
			CSVFile:    annotation.DefaultCSVFile,
		},
	}
}
