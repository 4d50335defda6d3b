// Package annotation records manual data-annotation work in memory.
//
// A Session owns three append-only sequences: image annotations, quality
// assessment results, and pairwise comparison results. Records are never
// mutated or removed after they are appended. Aggregate views
// (ConsistencyReport, BuildReport) are derived on demand, and the whole
// session can be exported as a JSON report or a CSV of annotations.
//
// Invariants:
// - Sequences preserve insertion order and only grow.
// - QualityResult.Percentage == 100 * Score / MaxScore.
// - MaxScore counts every requested criterion, recognized or not.
//
// Usage:
//
//	sess := annotation.NewSession()
//	sess.Annotate("IMG_001", "vehicle", 5, "clear image of a car")
//	result, _ := sess.QualityCheck(sess.Annotations()[0].Entry(), annotation.StandardCriteria())
//	_ = result
//	_, _ = sess.GenerateReport("")
package annotation
