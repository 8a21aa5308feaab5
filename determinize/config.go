// Package determinize implements subset (powerset) construction: turning
// an NFA into an equivalent DFA via epsilon-closure and a worklist over
// state-set identities (spec.md §4.2).
package determinize

import "github.com/coregx/fa/automaton"

// PriorityFunc resolves which opaque payload an accepting DFA state
// adopts when its NFA-set contains more than one distinct accepting
// opaque value (spec.md §4.2 "Opaque priority resolution"). It receives
// the distinct values in first-seen order and must return one of them.
type PriorityFunc func(opaques []interface{}) interface{}

// Config configures a Determinize call, following the teacher's
// DefaultConfig()+WithXxx chainable-options texture (see
// dfa/lazy/config.go).
type Config struct {
	Limits   automaton.Limits
	Priority PriorityFunc
	Cancel   *int32 // loaded atomically between worklist iterations; non-zero aborts
}

// DefaultConfig returns a Config with no limits, no priority callback, and
// no cancellation flag.
func DefaultConfig() Config {
	return Config{}
}

// WithLimits returns a copy of c with Limits set.
func (c Config) WithLimits(l automaton.Limits) Config {
	c.Limits = l
	return c
}

// WithPriority returns a copy of c with Priority set.
func (c Config) WithPriority(fn PriorityFunc) Config {
	c.Priority = fn
	return c
}

// WithCancel returns a copy of c with Cancel set.
func (c Config) WithCancel(flag *int32) Config {
	c.Cancel = flag
	return c
}
