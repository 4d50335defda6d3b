package annotation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populatedSession(t *testing.T) *Session {
	t.Helper()
	sess := newTestSession(t)
	sess.Annotate("IMG_001", "vehicle", 5, "clear image of a car")
	sess.Annotate("IMG_002", "person", 4, "person in good lighting")
	sess.Annotate("IMG_003", "animal", 5, "dog clearly visible")

	for _, a := range sess.Annotations() {
		_, err := sess.QualityCheck(a.Entry(), StandardCriteria())
		require.NoError(t, err)
	}

	sess.Compare("detailed notes", "minimal notes", "completeness")
	return sess
}

func TestGenerateReport_RoundTrip(t *testing.T) {
	sess := populatedSession(t)
	path := filepath.Join(t.TempDir(), "report.json")

	report, err := sess.GenerateReport(path)
	require.NoError(t, err)
	require.NotNil(t, report)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed Report
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, len(sess.Annotations()), parsed.Summary.TotalAnnotations)
	assert.Equal(t, len(sess.QualityResults()), parsed.Summary.TotalQualityChecks)
	assert.Equal(t, len(sess.Comparisons()), parsed.Summary.TotalComparisons)
	assert.Len(t, parsed.Annotations, 3)
	assert.Len(t, parsed.QualityScores, 3)
	assert.Len(t, parsed.Comparisons, 1)
	assert.Equal(t, "IMG_001", parsed.Annotations[0].ImageID)
}

func TestGenerateReport_AverageQualityScore(t *testing.T) {
	sess := populatedSession(t)

	report := sess.BuildReport()
	assert.Equal(t, "100.00%", report.Summary.AverageQualityScore)
}

func TestGenerateReport_NoQualityChecksOmitsAverage(t *testing.T) {
	sess := newTestSession(t)
	sess.Annotate("IMG_001", "vehicle", 5, "")

	report := sess.BuildReport()
	assert.Empty(t, report.Summary.AverageQualityScore)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "averageQualityScore")
}

func TestGenerateReport_WriteFailureStillReturnsReport(t *testing.T) {
	sess := populatedSession(t)

	// Point at a directory that does not exist so the write fails.
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	report, err := sess.GenerateReport(path)

	require.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 3, report.Summary.TotalAnnotations)

	// In-memory state is untouched by the failure.
	assert.Len(t, sess.Annotations(), 3)
}

func TestGenerateReport_DefaultFilename(t *testing.T) {
	sess := populatedSession(t)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() {
		require.NoError(t, os.Chdir(cwd))
	}()

	_, err = sess.GenerateReport("")
	require.NoError(t, err)

	_, err = os.Stat(DefaultReportFile)
	assert.NoError(t, err)
}

func TestGenerateReport_ValidatesAgainstSchema(t *testing.T) {
	sess := populatedSession(t)
	path := filepath.Join(t.TempDir(), "report.json")

	_, err := sess.GenerateReport(path)
	require.NoError(t, err)

	assert.NoError(t, ValidateReportFile(path))
}

func TestGenerateReport_EmptySessionValidatesAgainstSchema(t *testing.T) {
	sess := newTestSession(t)
	path := filepath.Join(t.TempDir(), "report.json")

	_, err := sess.GenerateReport(path)
	require.NoError(t, err)

	assert.NoError(t, ValidateReportFile(path))
}

func TestValidateReport_RejectsBrokenDocument(t *testing.T) {
	err := ValidateReport([]byte(`{"summary": {"totalAnnotations": "three"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestValidateReportFile_MissingFile(t *testing.T) {
	err := ValidateReportFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
