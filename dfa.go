package dfa

import (
	"fmt"

	"github.com/Azure/go-dfa/flcore"
	"github.com/benbjohnson/clock"
)

// DFA is a deterministic finite automaton, the five-tuple
//
//	(states, alphabet, transition, start, accepting)
//
// where S is the type of states and A is the type of input symbols.
//
// A DFA starts from the start state, consumes the input one symbol at a time
// by following the transition function, and accepts the input
// if the state it ends in is an accepting state.
//
//	even := dfa.New(
//		dfa.SetOf(0, 1, 2),
//		dfa.SetOf("a", "b"),
//		dfa.Transitions[int, string]{
//			{0, "a"}: 0, {0, "b"}: 1,
//			{1, "a"}: 2, {1, "b"}: 1,
//			{2, "a"}: 2, {2, "b"}: 2,
//		},
//		0,
//		dfa.SetOf(0, 1),
//	)
//	accepted, err := even.Run(dfa.Chars("aab"))
//
// DFA is immutable after construction, it's safe to Run it from different goroutines.
// Prefer New or NewValidated, a zero DFA has no states and falls back to
// discarding logs and the wall clock.
type DFA[S, A comparable] struct {
	states     Set[S]
	alphabet   Set[A]
	transition Transitions[S, A]
	start      S
	accepting  Set[S]

	logger flcore.Logger
	clock  clock.Clock
}

// New constructs a DFA without checking its invariants, the inputs are copied.
//
// The caller is responsible for
//
//	start ∈ states
//	accepting ⊆ states
//	every state in transition ∈ states
//
// use NewValidated to have them checked.
func New[S, A comparable](
	states Set[S],
	alphabet Set[A],
	transition Transitions[S, A],
	start S,
	accepting Set[S],
	opts ...Option,
) *DFA[S, A] {
	o := newOptions(opts...)
	return &DFA[S, A]{
		states:     states.Clone(),
		alphabet:   alphabet.Clone(),
		transition: transition.Clone(),
		start:      start,
		accepting:  accepting.Clone(),
		logger:     o.logger,
		clock:      o.clock,
	}
}

// NewValidated constructs a DFA like New, but fails fast with ErrInvalidAutomaton
// instead of returning a DFA in an invalid configuration.
func NewValidated[S, A comparable](
	states Set[S],
	alphabet Set[A],
	transition Transitions[S, A],
	start S,
	accepting Set[S],
	opts ...Option,
) (*DFA[S, A], error) {
	d := New(states, alphabet, transition, start, accepting, opts...)
	if err := d.Validate(); err != nil {
		d.logger.Warn("invalid automaton", "error", err)
		return nil, err
	}
	return d, nil
}

func MustNewValidated[S, A comparable](
	states Set[S],
	alphabet Set[A],
	transition Transitions[S, A],
	start S,
	accepting Set[S],
	opts ...Option,
) *DFA[S, A] {
	d, err := NewValidated(states, alphabet, transition, start, accepting, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate checks the invariants of the five-tuple and reports all violations at once.
func (d *DFA[S, A]) Validate() error {
	var reasons []string
	if d.states.Len() == 0 {
		reasons = append(reasons, "states should not be empty")
	}
	if !d.states.Has(d.start) {
		reasons = append(reasons, fmt.Sprintf("start state %v is not in states", d.start))
	}
	if !d.accepting.Subset(d.states) {
		for _, q := range d.accepting.Missing(d.states) {
			reasons = append(reasons, fmt.Sprintf("accepting state %v is not in states", q))
		}
	}
	for _, k := range d.transition.Keys() {
		if !d.states.Has(k.From) {
			reasons = append(reasons, fmt.Sprintf("transition %s starts from unknown state %v", k, k.From))
		}
		if to := d.transition[k]; !d.states.Has(to) {
			reasons = append(reasons, fmt.Sprintf("transition %s leads to unknown state %v", k, to))
		}
	}
	if len(reasons) > 0 {
		return ErrInvalidAutomaton{Reasons: reasons}
	}
	return nil
}

func (d *DFA[S, A]) States() Set[S] { return d.states.Clone() }
func (d *DFA[S, A]) Alphabet() Set[A] { return d.alphabet.Clone() }
func (d *DFA[S, A]) Transitions() Transitions[S, A] { return d.transition.Clone() }
func (d *DFA[S, A]) Start() S { return d.start }
func (d *DFA[S, A]) Accepting() Set[S] { return d.accepting.Clone() }

// Accepts reports whether the state is an accepting state.
func (d *DFA[S, A]) Accepts(state S) bool { return d.accepting.Has(state) }

// String prints the DFA as:
//
//	DFA({0, 1, 2},
//		{a, b},
//		{(0, a): 0, (0, b): 1, ...},
//		0,
//		{0, 1})
func (d *DFA[S, A]) String() string {
	return fmt.Sprintf("DFA(%s,\n\t%s,\n\t%s,\n\t%v,\n\t%s)",
		d.states, d.alphabet, d.transition, d.start, d.accepting)
}
