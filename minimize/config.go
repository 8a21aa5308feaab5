// Package minimize implements Hopcroft-style partition-refinement
// minimization of a determinized FA (spec.md §4.3).
package minimize

// CmpFunc is an optional user-supplied distinguishability callback over
// two states' opaque payloads; returning true forces the pair to be
// treated as distinguishable regardless of transition-range alignment
// (spec.md §4.3 "An optional user callback on their opaque payloads
// returns 'distinguish'").
type CmpFunc func(a, b interface{}) bool

// Config configures a Minimize call, following the teacher's
// DefaultConfig()+WithXxx chainable-options texture (see
// dfa/lazy/config.go), matching determinize.Config's shape.
type Config struct {
	Cmp    CmpFunc
	Cancel *int32 // loaded atomically between refinement sweeps; non-zero aborts
}

// DefaultConfig returns a Config with no user comparator and no
// cancellation flag.
func DefaultConfig() Config {
	return Config{}
}

// WithCmp returns a copy of c with Cmp set.
func (c Config) WithCmp(fn CmpFunc) Config {
	c.Cmp = fn
	return c
}

// WithCancel returns a copy of c with Cancel set.
func (c Config) WithCancel(flag *int32) Config {
	c.Cancel = flag
	return c
}
