package annotation

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Session is an in-memory log of annotation work. It owns three append-only
// sequences and is the receiver for every operation in this package. A
// session lives for the process lifetime; nothing is persisted except via
// the explicit export operations. Single-writer, single-reader.
type Session struct {
	id      string
	clock   func() time.Time
	chooser Chooser
	logger  zerolog.Logger

	annotations    []Annotation
	qualityResults []QualityResult
	comparisons    []ComparisonResult
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the timestamp source. Used by tests to make record
// timestamps deterministic.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithChooser replaces the randomness provider used by Compare.
func WithChooser(chooser Chooser) Option {
	return func(s *Session) {
		s.chooser = chooser
	}
}

// WithLogger sets the base logger for session events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		clock:   time.Now,
		chooser: NewRandomChooser(),
		logger:  log.Logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With().Str("session_id", s.id).Logger()
	s.logger.Debug().Msg("Session created")

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// now returns the current timestamp as an RFC 3339 string, the format used
// by every record in the session.
func (s *Session) now() string {
	return s.clock().Format(time.RFC3339)
}

// Annotate records a labeled-image annotation and returns it. Confidence is
// expected on a 1-5 scale but deliberately not enforced; any value is
// accepted and recorded as given.
func (s *Session) Annotate(imageID, category string, confidence int, notes string) Annotation {
	a := Annotation{
		ImageID:    imageID,
		Category:   category,
		Confidence: confidence,
		Timestamp:  s.now(),
		Notes:      notes,
	}
	s.annotations = append(s.annotations, a)

	s.logger.Info().
		Str("image_id", imageID).
		Str("category", category).
		Int("confidence", confidence).
		Msg("Annotation recorded")

	return a
}

// Annotations returns a copy of the annotation sequence in insertion order.
func (s *Session) Annotations() []Annotation {
	out := make([]Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

// QualityResults returns a copy of the quality result sequence in insertion
// order.
func (s *Session) QualityResults() []QualityResult {
	out := make([]QualityResult, len(s.qualityResults))
	copy(out, s.qualityResults)
	return out
}

// Comparisons returns a copy of the comparison sequence in insertion order.
func (s *Session) Comparisons() []ComparisonResult {
	out := make([]ComparisonResult, len(s.comparisons))
	copy(out, s.comparisons)
	return out
}
