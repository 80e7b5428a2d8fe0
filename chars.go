package dfa

// Chars splits a string into single-character symbols,
// so that DFA[S, string] could Run on plain strings.
//
//	d.Run(dfa.Chars("aabbb")) // {"a", "a", "b", "b", "b"}
func Chars(w string) []string {
	rv := make([]string, 0, len(w))
	for _, r := range w {
		rv = append(rv, string(r))
	}
	return rv
}
