package annotation

// Entry is a loosely typed data record submitted for quality checking or
// pairwise comparison. Quality criteria look for the keys "image_id" and
// "confidence" when present; everything else is carried through untouched.
type Entry map[string]interface{}

// Annotation is a single labeled-image record. Immutable once appended.
type Annotation struct {
	ImageID    string `json:"image_id"`
	Category   string `json:"category"`
	Confidence int    `json:"confidence"`
	Timestamp  string `json:"timestamp"`
	Notes      string `json:"notes"`
}

// Entry converts the annotation into the loose form the quality checker
// consumes.
func (a Annotation) Entry() Entry {
	return Entry{
		"image_id":   a.ImageID,
		"category":   a.Category,
		"confidence": a.Confidence,
		"timestamp":  a.Timestamp,
		"notes":      a.Notes,
	}
}

// QualityResult is the outcome of scoring one entry against a list of
// named criteria.
type QualityResult struct {
	DataEntry  Entry    `json:"data_entry"`
	Score      int      `json:"score"`
	MaxScore   int      `json:"max_score"`
	Percentage float64  `json:"percentage"`
	Feedback   []string `json:"feedback"`
	Timestamp  string   `json:"timestamp"`
}

// ComparisonResult records one pairwise judgment between two items.
type ComparisonResult struct {
	ItemA     interface{} `json:"item_a"`
	ItemB     interface{} `json:"item_b"`
	Criterion string      `json:"criterion"`
	Winner    Winner      `json:"winner"`
	Timestamp string      `json:"timestamp"`
}

// ConsistencyReport aggregates category and confidence statistics across
// all annotations in a session.
type ConsistencyReport struct {
	TotalAnnotations     int            `json:"total_annotations"`
	UniqueCategories     int            `json:"unique_categories"`
	AvgConfidence        float64        `json:"avg_confidence"`
	CategoryDistribution map[string]int `json:"category_distribution"`

	// ConsistencyScore is distinct categories / total annotations * 100.
	// It measures category diversity, not annotator agreement; the name
	// is kept for compatibility with the report format.
	ConsistencyScore float64 `json:"consistency_score"`
}
