package automaton

import "github.com/coregx/ahocorasick"

// LiteralPrefilter accelerates candidate-start scanning for an FA known to
// be the union of plain literal strings: an Aho-Corasick automaton finds
// the next byte offset worth feeding to the (slower) FA simulator, the
// same "literal engine bypass" role ahocorasick.Automaton plays for large
// literal alternations in the teacher engine's meta.Engine.findAhoCorasick.
type LiteralPrefilter struct {
	auto *ahocorasick.Automaton
}

// Find returns the (start, end) of the next literal occurrence at or after
// at, or ok=false if none remain.
func (p *LiteralPrefilter) Find(haystack []byte, at int) (start, end int, ok bool) {
	if p == nil || p.auto == nil {
		return 0, 0, false
	}
	m := p.auto.Find(haystack, at)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// IsMatch reports whether any literal occurs anywhere in haystack.
func (p *LiteralPrefilter) IsMatch(haystack []byte) bool {
	if p == nil || p.auto == nil {
		return false
	}
	return p.auto.IsMatch(haystack)
}

// UnionStrings is the fast path of the union_list constructor for the
// common case where every input is a plain literal produced by String or
// StringIcase: alongside the unioned FA, it builds an Aho-Corasick
// automaton over the literals and returns it as a LiteralPrefilter, the
// same pairing the teacher engine's meta.compile.go performs (ahocorasick
// as the accelerated path, the general automaton as the ground truth).
//
// literals holds the original byte strings (pre-union); it is not mutated
// or consumed. inputs holds the per-literal FAs built via String/
// StringIcase, consumed exactly as UnionList consumes them.
func UnionStrings(literals [][]byte, inputs []*FA, limits Limits) (*FA, *LiteralPrefilter, error) {
	fa, err := UnionList(inputs, limits)
	if err != nil {
		return nil, nil, err
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		// The FA itself is still valid; the prefilter is a pure
		// accelerator, so its failure is not fatal to construction.
		return fa, nil, nil
	}

	return fa, &LiteralPrefilter{auto: auto}, nil
}
