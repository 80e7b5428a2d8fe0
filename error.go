package dfa

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoTransition is wrapped by every ErrUndefinedTransition,
// match it with errors.Is when the state and symbol types are not at hand.
var ErrNoTransition = errors.New("undefined transition")

// ErrInvalidAutomaton is returned by NewValidated and Validate,
// it lists every violated invariant of the five-tuple.
type ErrInvalidAutomaton struct {
	Reasons []string
}

// ErrInvalidAutomaton will be printed as:
//
//	Invalid Automaton:
//		reason
//		reason
func (e ErrInvalidAutomaton) Error() string {
	var builder strings.Builder
	builder.WriteString("Invalid Automaton:")
	for _, reason := range e.Reasons {
		builder.WriteString("\n\t")
		builder.WriteString(reason)
	}
	return builder.String()
}

// ErrUndefinedTransition means the simulation reached State with Symbol next,
// while δ(State, Symbol) has no entry.
//
// Index is the position of Symbol in the input sequence.
type ErrUndefinedTransition[S, A comparable] struct {
	State  S
	Symbol A
	Index  int
}

func (e ErrUndefinedTransition[S, A]) Error() string {
	return fmt.Sprintf("%s: δ(%v, %v) at index %d", ErrNoTransition, e.State, e.Symbol, e.Index)
}
func (e ErrUndefinedTransition[S, A]) Unwrap() error { return ErrNoTransition }

// MarshalJSON allows us to marshal ErrUndefinedTransition to json.
//
//	{
//		"error": "undefined transition",
//		"state": 1,
//		"symbol": "c",
//		"index": 3
//	}
func (e ErrUndefinedTransition[S, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Err    string `json:"error"`
		State  S      `json:"state"`
		Symbol A      `json:"symbol"`
		Index  int    `json:"index"`
	}{
		Err:    ErrNoTransition.Error(),
		State:  e.State,
		Symbol: e.Symbol,
		Index:  e.Index,
	})
}
