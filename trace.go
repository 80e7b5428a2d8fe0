package dfa

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// Move is one transition taken during a simulation.
type Move[S, A comparable] struct {
	Index  int // position of Symbol in the input
	From   S
	Symbol A
	To     S
}

// Trace records how a DFA consumed an input.
type Trace[S, A comparable] struct {
	ID       string
	Start    S
	Moves    []Move[S, A]
	Final    S    // the state the simulation ended in, or got stuck in
	Accepted bool // always false if the simulation got stuck
	Span     Span
}

// Trace simulates the DFA like Run, and records every move.
//
// If a transition is undefined, Trace returns the partial trace up to the stuck state
// together with ErrUndefinedTransition[S, A].
func (d *DFA[S, A]) Trace(input []A) (*Trace[S, A], error) {
	t := &Trace[S, A]{
		ID:    uuid.NewString(),
		Start: d.start,
		Moves: make([]Move[S, A], 0, len(input)),
	}
	clk := d.clock
	if clk == nil {
		clk = clock.New()
	}
	t.Span.StartSpan(clk)
	defer t.Span.EndSpan(clk)
	final, err := d.walk(d.start, input, func(m Move[S, A]) {
		t.Moves = append(t.Moves, m)
	})
	t.Final = final
	if err != nil {
		return t, err
	}
	t.Accepted = d.Accepts(final)
	if d.debug() {
		d.logger.Debug("dfa trace", "id", t.ID, "path", t.String(), "accepted", t.Accepted)
	}
	return t, nil
}

// Path returns the visited states, starting with the start state.
func (t *Trace[S, A]) Path() []S {
	path := make([]S, 0, len(t.Moves)+1)
	path = append(path, t.Start)
	for _, m := range t.Moves {
		path = append(path, m.To)
	}
	return path
}

// String prints the trace as `0 -a-> 0 -b-> 1`.
func (t *Trace[S, A]) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprint(t.Start))
	for _, m := range t.Moves {
		builder.WriteString(fmt.Sprintf(" -%v-> %v", m.Symbol, m.To))
	}
	return builder.String()
}
