package config

import (
	"fmt"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the whole configuration
func (v *Validator) Validate(cfg *Config) error {
	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if err := v.ValidateExportPath(cfg.Export.ReportFile, "report_file"); err != nil {
		return err
	}
	if err := v.ValidateExportPath(cfg.Export.CSVFile, "csv_file"); err != nil {
		return err
	}
	return nil
}

// ValidateLogLevel validates a log level name
func (v *Validator) ValidateLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
		return nil
	}
	return fmt.Errorf("invalid log level: %s (must be one of trace, debug, info, warn, error, fatal, panic)", level)
}

// ValidateExportPath validates an export destination
func (v *Validator) ValidateExportPath(path, field string) error {
	if path == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%s cannot contain null bytes", field)
	}
	return nil
}
