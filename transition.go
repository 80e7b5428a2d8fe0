package dfa

import (
	"fmt"
	"slices"
	"strings"
)

// Key is one point of the transition function's domain: the current state and the next symbol.
type Key[S, A comparable] struct {
	From   S
	Symbol A
}

func (k Key[S, A]) String() string { return fmt.Sprintf("(%v, %v)", k.From, k.Symbol) }

// Transitions is the transition function δ, a partial mapping from (state, symbol) to state.
//
//	dfa.Transitions[int, string]{
//		{0, "a"}: 0,
//		{0, "b"}: 1,
//	}
//
// A pair without an entry is undefined, see Next.
type Transitions[S, A comparable] map[Key[S, A]]S

// Next looks up δ(from, symbol), reporting false if the transition is undefined.
func (t Transitions[S, A]) Next(from S, symbol A) (S, bool) {
	to, ok := t[Key[S, A]{From: from, Symbol: symbol}]
	return to, ok
}

func (t Transitions[S, A]) Clone() Transitions[S, A] {
	rv := make(Transitions[S, A], len(t))
	for k, v := range t {
		rv[k] = v
	}
	return rv
}

// Keys returns the defined (state, symbol) pairs, ordered by state then symbol.
func (t Transitions[S, A]) Keys() []Key[S, A] {
	keys := make([]Key[S, A], 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Key[S, A]) int {
		if c := compareText(a.From, b.From); c != 0 {
			return c
		}
		return compareText(a.Symbol, b.Symbol)
	})
	return keys
}

// String prints the transitions as `{(0, a): 0, (0, b): 1}`.
func (t Transitions[S, A]) String() string {
	keys := t.Keys()
	strs := make([]string, 0, len(keys))
	for _, k := range keys {
		strs = append(strs, fmt.Sprintf("%s: %v", k, t[k]))
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
