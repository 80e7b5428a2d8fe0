package dfa

import (
	"context"
	"log/slog"

	"github.com/Azure/go-dfa/flcore/to"
)

// Step looks up a single move δ(from, symbol), reporting false if it's undefined.
func (d *DFA[S, A]) Step(from S, symbol A) (S, bool) {
	return d.transition.Next(from, symbol)
}

// Run simulates the DFA over the input and reports whether the input is accepted.
//
// Run starts from the start state, so the empty input is accepted iff the start state is accepting.
// If the simulation reaches a state without transition for the next symbol,
// Run returns ErrUndefinedTransition[S, A] instead of a verdict.
//
// The alphabet is descriptive only, a symbol outside of it is just another undefined transition.
func (d *DFA[S, A]) Run(input []A) (bool, error) {
	return d.RunFrom(d.start, input)
}

// RunFrom is Run starting from the given state instead of the start state.
func (d *DFA[S, A]) RunFrom(from S, input []A) (bool, error) {
	final, err := d.Walk(from, input)
	if err != nil {
		return false, err
	}
	accepted := d.Accepts(final)
	if d.debug() {
		d.logger.Debug("dfa run", "input_len", len(input), "final", final, "accepted", accepted)
	}
	return accepted, nil
}

// Walk consumes the input from the given state and returns the state it ends in.
//
// Walking s1 then s2 ends in the same state as walking s1 ++ s2.
func (d *DFA[S, A]) Walk(from S, input []A) (S, error) {
	return d.walk(from, input, nil)
}

// RunAll runs each input independently, the results are in the same order as inputs.
func (d *DFA[S, A]) RunAll(inputs [][]A) []to.Result[bool] {
	rv := make([]to.Result[bool], 0, len(inputs))
	for _, input := range inputs {
		rv = append(rv, to.ResultOf[bool](d.Run(input)))
	}
	return rv
}

// walk is the simulation loop, onMove is called after each successful move if not nil.
func (d *DFA[S, A]) walk(from S, input []A, onMove func(Move[S, A])) (S, error) {
	debug := d.debug()
	q := from
	for i, a := range input {
		next, ok := d.transition.Next(q, a)
		if !ok {
			if debug {
				d.logger.Debug("dfa undefined transition", "state", q, "symbol", a, "index", i)
			}
			return q, ErrUndefinedTransition[S, A]{State: q, Symbol: a, Index: i}
		}
		if debug {
			d.logger.Debug("dfa move", "index", i, "from", q, "symbol", a, "to", next)
		}
		if onMove != nil {
			onMove(Move[S, A]{Index: i, From: q, Symbol: a, To: next})
		}
		q = next
	}
	return q, nil
}

func (d *DFA[S, A]) debug() bool {
	return d.logger != nil && d.logger.Enabled(context.Background(), slog.LevelDebug)
}
