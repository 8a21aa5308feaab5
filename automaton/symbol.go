// Package automaton implements the FA graph model: states, transitions and
// the algebraic constructors (string, union, concat, repeat, star) used to
// build byte-alphabet nondeterministic automata from smaller pieces.
package automaton

// Symbol is a transition label: a concrete byte value in [0, 255], or the
// distinguished sentinel Epsilon.
type Symbol int32

// Epsilon is the sentinel symbol for epsilon transitions. It is never part
// of a byte range.
const Epsilon Symbol = -1

// IsEpsilon reports whether sym is the epsilon sentinel.
func (sym Symbol) IsEpsilon() bool {
	return sym == Epsilon
}
