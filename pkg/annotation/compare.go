package annotation

import (
	"math/rand"
	"time"
)

// Winner identifies the outcome of a pairwise comparison.
type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "Tie"
)

// Chooser picks one of the three comparison outcomes. The production
// implementation is random; tests inject a deterministic one.
type Chooser interface {
	Pick() Winner
}

// randomChooser draws uniformly among the three outcomes.
type randomChooser struct {
	rng *rand.Rand
}

// NewRandomChooser returns a Chooser seeded from the wall clock.
func NewRandomChooser() Chooser {
	return &randomChooser{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (c *randomChooser) Pick() Winner {
	switch c.rng.Intn(3) {
	case 0:
		return WinnerA
	case 1:
		return WinnerB
	default:
		return WinnerTie
	}
}

// Compare records a pairwise judgment between two items on the given
// criterion and returns the result. The winner stands in for human
// judgment and comes from the session's Chooser; no property of the items
// influences the outcome.
func (s *Session) Compare(itemA, itemB interface{}, criterion string) ComparisonResult {
	result := ComparisonResult{
		ItemA:     itemA,
		ItemB:     itemB,
		Criterion: criterion,
		Winner:    s.chooser.Pick(),
		Timestamp: s.now(),
	}
	s.comparisons = append(s.comparisons, result)

	s.logger.Info().
		Str("criterion", criterion).
		Str("winner", string(result.Winner)).
		Msg("Comparison recorded")

	return result
}
