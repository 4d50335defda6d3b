package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "annotool.json"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoader_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotool.json")
	content := `{
		"logging": {"level": "debug", "console": false},
		"export": {"report_file": "out/report.json", "csv_file": "out/rows.csv"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Console)
	assert.Equal(t, "out/report.json", cfg.Export.ReportFile)
	assert.Equal(t, "out/rows.csv", cfg.Export.CSVFile)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotool.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"logging": {"level": "warn"}}`), 0600))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "annotation_report.json", cfg.Export.ReportFile)
}

func TestLoader_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotool.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewLoader(path).Load()
	require.Error(t, err)
}

func TestLoader_RejectsInvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotool.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"logging": {"level": "loud"}}`), 0600))

	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
