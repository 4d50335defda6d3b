package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Equal(t, "annotation_report.json", cfg.Export.ReportFile)
	assert.Equal(t, "annotations.csv", cfg.Export.CSVFile)
}
