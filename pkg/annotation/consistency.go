package annotation

// ConsistencyReport summarizes category usage across all annotations.
// It returns nil when the session has fewer than two annotations; that is
// a diagnostic condition, not an error.
func (s *Session) ConsistencyReport() *ConsistencyReport {
	if len(s.annotations) < 2 {
		s.logger.Warn().
			Int("annotations", len(s.annotations)).
			Msg("Need at least 2 annotations for a consistency report")
		return nil
	}

	distribution := make(map[string]int)
	confidenceSum := 0
	for _, a := range s.annotations {
		distribution[a.Category]++
		confidenceSum += a.Confidence
	}

	total := len(s.annotations)
	report := &ConsistencyReport{
		TotalAnnotations:     total,
		UniqueCategories:     len(distribution),
		AvgConfidence:        float64(confidenceSum) / float64(total),
		CategoryDistribution: distribution,
		ConsistencyScore:     float64(len(distribution)) / float64(total) * 100,
	}

	s.logger.Info().
		Int("total", report.TotalAnnotations).
		Int("unique_categories", report.UniqueCategories).
		Float64("avg_confidence", report.AvgConfidence).
		Msg("Consistency report computed")

	return report
}
