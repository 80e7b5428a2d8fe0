package dfa

import (
	"fmt"
	"slices"
	"strings"
)

// Set is a set of comparable values, used for states, alphabet and accepting states.
//
// The zero value is an empty set ready to use via Add.
type Set[T comparable] map[T]struct{}

// SetOf builds a Set from the given values.
func SetOf[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	s.Add(vs...)
	return s
}

func (s *Set[T]) Add(vs ...T) {
	if *s == nil {
		*s = make(Set[T])
	}
	for _, v := range vs {
		(*s)[v] = struct{}{}
	}
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

func (s Set[T]) Clone() Set[T] {
	rv := make(Set[T], len(s))
	for v := range s {
		rv[v] = struct{}{}
	}
	return rv
}

// Subset reports whether every value of s is in other.
func (s Set[T]) Subset(other Set[T]) bool {
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Missing returns the values of s that are not in other, in Sorted order.
func (s Set[T]) Missing(other Set[T]) []T {
	var rv []T
	for _, v := range s.Sorted() {
		if !other.Has(v) {
			rv = append(rv, v)
		}
	}
	return rv
}

// Sorted returns the values ordered by their textual form,
// since T is only comparable and has no natural order.
func (s Set[T]) Sorted() []T {
	rv := make([]T, 0, len(s))
	for v := range s {
		rv = append(rv, v)
	}
	slices.SortFunc(rv, func(a, b T) int { return compareText(a, b) })
	return rv
}

// String prints the set as `{a, b, c}`.
func (s Set[T]) String() string {
	vs := s.Sorted()
	strs := make([]string, 0, len(vs))
	for _, v := range vs {
		strs = append(strs, fmt.Sprint(v))
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

// compareText orders values by length of their text first, so that 2 < 10 for integers.
func compareText(a, b any) int {
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	if len(sa) != len(sb) {
		return len(sa) - len(sb)
	}
	return strings.Compare(sa, sb)
}
