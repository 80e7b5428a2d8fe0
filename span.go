package dfa

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Span is the wall time a Trace took.
type Span struct {
	Start, End time.Time
}

func (s *Span) StartSpan(clock clock.Clock) {
	s.Start = clock.Now()
}
func (s *Span) EndSpan(clock clock.Clock) {
	s.End = clock.Now()
}
func (s Span) Duration() time.Duration { return s.End.Sub(s.Start) }
