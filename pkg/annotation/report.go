package annotation

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultReportFile is where GenerateReport writes when no path is given.
const DefaultReportFile = "annotation_report.json"

// Summary holds the top-level counts of a report.
type Summary struct {
	TotalAnnotations   int    `json:"totalAnnotations"`
	TotalQualityChecks int    `json:"totalQualityChecks"`
	TotalComparisons   int    `json:"totalComparisons"`
	GeneratedAt        string `json:"generatedAt"`

	// AverageQualityScore is the mean quality percentage formatted as
	// "NN.NN%". Present only when at least one quality check was run.
	AverageQualityScore string `json:"averageQualityScore,omitempty"`
}

// Report is the full session export: summary plus complete copies of the
// three sequences as of generation time.
type Report struct {
	Summary       Summary            `json:"summary"`
	Annotations   []Annotation       `json:"annotations"`
	QualityScores []QualityResult    `json:"qualityScores"`
	Comparisons   []ComparisonResult `json:"comparisons"`
}

// BuildReport assembles the report object without writing it anywhere.
func (s *Session) BuildReport() *Report {
	report := &Report{
		Summary: Summary{
			TotalAnnotations:   len(s.annotations),
			TotalQualityChecks: len(s.qualityResults),
			TotalComparisons:   len(s.comparisons),
			GeneratedAt:        s.now(),
		},
		Annotations:   s.Annotations(),
		QualityScores: s.QualityResults(),
		Comparisons:   s.Comparisons(),
	}

	if len(s.qualityResults) > 0 {
		sum := 0.0
		for _, q := range s.qualityResults {
			sum += q.Percentage
		}
		avg := sum / float64(len(s.qualityResults))
		report.Summary.AverageQualityScore = fmt.Sprintf("%.2f%%", avg)
	}

	return report
}

// GenerateReport builds the report and writes it as indented JSON to path
// (DefaultReportFile when path is empty). The built report is returned even
// when the write fails, so callers always get the in-memory view; the error
// reports the write outcome.
func (s *Session) GenerateReport(path string) (*Report, error) {
	if path == "" {
		path = DefaultReportFile
	}

	report := s.BuildReport()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return report, fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return report, fmt.Errorf("failed to write report file: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Int("annotations", report.Summary.TotalAnnotations).
		Int("quality_checks", report.Summary.TotalQualityChecks).
		Int("comparisons", report.Summary.TotalComparisons).
		Msg("Report written")

	return report, nil
}
