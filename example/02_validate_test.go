package dfa_test

import (
	"errors"
	"fmt"

	dfa "github.com/Azure/go-dfa"
)

// # Validation
//
// dfa.New trusts its inputs, it never fails.
// dfa.NewValidated checks the invariants and fails fast:
//
//	start ∈ states
//	accepting ⊆ states
//	every state in transition ∈ states
func ExampleNewValidated() {
	_, err := dfa.NewValidated(
		dfa.SetOf(0, 1, 2),
		dfa.SetOf("a", "b"),
		dfa.Transitions[int, string]{{From: 0, Symbol: "a"}: 0},
		5,
		dfa.SetOf(0, 1),
	)
	var errInvalid dfa.ErrInvalidAutomaton
	fmt.Println(errors.As(err, &errInvalid))
	fmt.Println(err)
	// Output:
	// true
	// Invalid Automaton:
	// 	start state 5 is not in states
}

// # Undefined Transition
//
// The transition function doesn't need to be total.
// When the simulation has no move for the next symbol, Run reports where it got stuck,
// instead of quietly rejecting the input.
//
// The alphabet is descriptive, a symbol outside of it is just another undefined transition.
func ExampleErrUndefinedTransition() {
	parity := dfa.New(
		dfa.SetOf("even", "odd"),
		dfa.SetOf("1"),
		dfa.Transitions[string, string]{{From: "even", Symbol: "1"}: "odd"},
		"even",
		dfa.SetOf("even"),
	)
	_, err := parity.Run(dfa.Chars("11"))
	fmt.Println(err)

	var errUndefined dfa.ErrUndefinedTransition[string, string]
	if errors.As(err, &errUndefined) {
		fmt.Println(errUndefined.State, errUndefined.Symbol, errUndefined.Index)
	}
	fmt.Println(errors.Is(err, dfa.ErrNoTransition))
	// Output:
	// undefined transition: δ(odd, 1) at index 1
	// odd 1 1
	// true
}
