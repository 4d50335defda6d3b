package annotation

import (
	"errors"
	"fmt"
	"reflect"
)

// Recognized quality criteria. Names outside this set are skipped during
// scoring but still count toward the maximum score.
const (
	CriterionCompleteness = "completeness"
	CriterionFormat       = "format"
	CriterionConsistency  = "consistency"
)

// ErrNoCriteria is returned when a quality check is requested with an empty
// criteria list, which would otherwise divide by zero when computing the
// percentage.
var ErrNoCriteria = errors.New("no quality criteria given")

// StandardCriteria returns the full recognized criteria list in evaluation
// order.
func StandardCriteria() []string {
	return []string{CriterionCompleteness, CriterionFormat, CriterionConsistency}
}

// QualityCheck scores an entry against a list of named criteria and appends
// the result to the session.
//
// Rules:
//   - completeness: every value in the entry is truthy.
//   - format: entry["image_id"] is a string.
//   - consistency: entry["confidence"] is an integer in [1,5].
//
// Unrecognized criterion names are skipped without feedback, but MaxScore
// still counts them. That can understate the percentage for typo'd criteria
// lists; the behavior is part of the report contract and is kept as is.
func (s *Session) QualityCheck(entry Entry, criteria []string) (QualityResult, error) {
	if len(criteria) == 0 {
		return QualityResult{}, fmt.Errorf("quality check over %d criteria: %w", len(criteria), ErrNoCriteria)
	}

	score := 0
	feedback := make([]string, 0, len(criteria))

	for _, criterion := range criteria {
		switch criterion {
		case CriterionCompleteness:
			if allTruthy(entry) {
				score++
				feedback = append(feedback, "✓ Complete")
			} else {
				feedback = append(feedback, "✗ Missing data")
			}
		case CriterionFormat:
			if _, ok := entry["image_id"].(string); ok {
				score++
				feedback = append(feedback, "✓ Correct format")
			} else {
				feedback = append(feedback, "✗ Format issue")
			}
		case CriterionConsistency:
			if confidenceInRange(entry["confidence"]) {
				score++
				feedback = append(feedback, "✓ Consistent")
			} else {
				feedback = append(feedback, "✗ Inconsistent value")
			}
		}
	}

	result := QualityResult{
		DataEntry:  entry,
		Score:      score,
		MaxScore:   len(criteria),
		Percentage: float64(score) / float64(len(criteria)) * 100,
		Feedback:   feedback,
		Timestamp:  s.now(),
	}
	s.qualityResults = append(s.qualityResults, result)

	s.logger.Info().
		Int("score", score).
		Int("max_score", result.MaxScore).
		Float64("percentage", result.Percentage).
		Msg("Quality check scored")

	return result, nil
}

// allTruthy reports whether every value in the entry is non-empty,
// non-zero, and non-nil.
func allTruthy(entry Entry) bool {
	for _, v := range entry {
		if !truthy(v) {
			return false
		}
	}
	return true
}

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// confidenceInRange reports whether v is an integer value in [1,5].
// JSON-decoded entries carry numbers as float64, so integral floats are
// accepted alongside the integer types.
func confidenceInRange(v interface{}) bool {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		n = int64(x)
	case float32:
		if x != float32(int64(x)) {
			return false
		}
		n = int64(x)
	case float64:
		if x != float64(int64(x)) {
			return false
		}
		n = int64(x)
	default:
		return false
	}
	return n >= 1 && n <= 5
}
