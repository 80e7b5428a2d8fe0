package dfa_test

import (
	"fmt"

	dfa "github.com/Azure/go-dfa"
	"github.com/Azure/go-dfa/flcore"
	"github.com/benbjohnson/clock"
)

// # Trace
//
// Trace runs like Run, and records every move the DFA takes,
// handy to see why an input is rejected.
//
// The options only change the ambient behavior, never the verdict:
//
//   - dfa.WithLogger logs each move at Debug level
//   - dfa.WithClock sets the clock timing the trace
func ExampleDFA_Trace() {
	d := dfa.New(
		dfa.SetOf(0, 1, 2),
		dfa.SetOf("a", "b"),
		dfa.Transitions[int, string]{
			{From: 0, Symbol: "a"}: 0, {From: 0, Symbol: "b"}: 1,
			{From: 1, Symbol: "a"}: 2, {From: 1, Symbol: "b"}: 1,
			{From: 2, Symbol: "a"}: 2, {From: 2, Symbol: "b"}: 2,
		},
		0,
		dfa.SetOf(0, 1),
		dfa.WithLogger(flcore.Discard()),
		dfa.WithClock(clock.NewMock()),
	)
	trace, err := d.Trace(dfa.Chars("aaba"))
	if err != nil {
		panic(err)
	}
	fmt.Println(trace)
	fmt.Println(trace.Path(), trace.Accepted)
	fmt.Println(trace.Span.Duration())
	// Output:
	// 0 -a-> 0 -a-> 0 -b-> 1 -a-> 2
	// [0 0 0 1 2] false
	// 0s
}

// # Prefix Consistency
//
// Walk returns the state reached after an input, RunFrom continues from there.
// Walking "ab" then running "ba" is the same as running "abba".
func ExampleDFA_Walk() {
	d := dfa.New(
		dfa.SetOf(0, 1, 2),
		dfa.SetOf("a", "b"),
		dfa.Transitions[int, string]{
			{From: 0, Symbol: "a"}: 0, {From: 0, Symbol: "b"}: 1,
			{From: 1, Symbol: "a"}: 2, {From: 1, Symbol: "b"}: 1,
			{From: 2, Symbol: "a"}: 2, {From: 2, Symbol: "b"}: 2,
		},
		0,
		dfa.SetOf(0, 1),
	)
	q, _ := d.Walk(d.Start(), dfa.Chars("ab"))
	split, _ := d.RunFrom(q, dfa.Chars("ba"))
	whole, _ := d.Run(dfa.Chars("abba"))
	fmt.Println(q, split, whole)
	// Output:
	// 1 false false
}
