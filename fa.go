// Package fa is a finite-automata construction and execution toolkit:
// byte-alphabet NFA/DFA construction, Hopcroft-style minimization, and two
// runtime simulators (dense jump-table, bitmap-compressed), fronted by a
// regexp/syntax-based pattern compiler.
//
// coregx/coregex's root package (regex.go) wraps a capturing, rune-aware
// engine behind Compile/Match/Find; this package fronts the same layered
// pipeline (regexpfa -> determinize -> minimize -> sim) but stays inside
// spec.md §1's non-goals: no capturing groups, no submatch positions, no
// leftmost-longest search — Pattern only answers whether (and, via Run,
// how far) a byte string is accepted by the compiled automaton.
//
// Basic usage:
//
//	p, err := fa.Compile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if p.Match([]byte("_id9")) {
//	    fmt.Println("matched")
//	}
//
// Streaming usage, for input arriving in chunks:
//
//	run := p.NewRun()
//	for chunk := range chunks {
//	    switch p.Step(run, chunk) {
//	    case sim.Reject:
//	        return false
//	    case sim.Accept:
//	        return true
//	    }
//	}
package fa

import (
	"github.com/coregx/fa/automaton"
	"github.com/coregx/fa/determinize"
	"github.com/coregx/fa/minimize"
	"github.com/coregx/fa/regexpfa"
	"github.com/coregx/fa/sim"
)

// Config controls Compile's determinize/minimize/sim pipeline, following
// the same DefaultConfig()+WithXxx chainable texture as determinize.Config
// and minimize.Config.
type Config struct {
	Limits      automaton.Limits
	Compressed  bool // selects sim.Compressed over sim.Dense for the built Pattern
	MinimizeCmp minimize.CmpFunc
	Cancel      *int32
}

// DefaultConfig returns a Config with no limits, no custom distinguishing
// function, no cancellation flag, and the dense simulator.
func DefaultConfig() Config {
	return Config{}
}

// WithLimits returns a copy of c with Limits set.
func (c Config) WithLimits(l automaton.Limits) Config {
	c.Limits = l
	return c
}

// WithCompressed returns a copy of c selecting the bitmap-compressed
// simulator (sim.Compressed) instead of the dense jump table.
func (c Config) WithCompressed(v bool) Config {
	c.Compressed = v
	return c
}

// WithMinimizeCmp returns a copy of c with a user distinguishability
// function for minimize (spec.md §4.3 "User distinguishability").
func (c Config) WithMinimizeCmp(fn minimize.CmpFunc) Config {
	c.MinimizeCmp = fn
	return c
}

// WithCancel returns a copy of c with a cancellation flag shared by both
// the determinize and minimize passes.
func (c Config) WithCancel(flag *int32) Config {
	c.Cancel = flag
	return c
}

// Run is a resumable run cursor obtained from Pattern.NewRun, wrapping
// whichever of sim.DenseRun/sim.CompressedRun the Pattern was built with
// (spec.md §4.4 "Run contract").
type Run interface {
	// Opaque returns the accepting state's opaque payload after a Step
	// call returns sim.Accept; its value before that, or after sim.Reject,
	// is unspecified.
	Opaque() interface{}
}

// runner abstracts over sim.Dense and sim.Compressed so Pattern doesn't
// need to carry a variant tag.
type runner interface {
	Init() Run
	Run(r Run, data []byte) sim.Result
}

type denseRunner struct{ d *sim.Dense }

func (r denseRunner) Init() Run { return denseRun{r.d.Init()} }
func (r denseRunner) Run(rn Run, data []byte) sim.Result {
	return r.d.Run(rn.(denseRun).r, data)
}

type denseRun struct{ r *sim.DenseRun }

func (r denseRun) Opaque() interface{} { return r.r.Opaque }

type compRunner struct{ c *sim.Compressed }

func (r compRunner) Init() Run { return compRun{r.c.Init()} }
func (r compRunner) Run(rn Run, data []byte) sim.Result {
	return r.c.Run(rn.(compRun).r, data)
}

type compRun struct{ r *sim.CompressedRun }

func (r compRun) Opaque() interface{} { return r.r.Opaque }

// Pattern is a compiled, ready-to-run regexp: the output of regexpfa.Compile
// carried through determinize and minimize into one of sim's runtime
// representations. Read-only once built; safe to use concurrently from
// multiple goroutines, except a single Run (obtained from NewRun) must not
// be shared across goroutines.
type Pattern struct {
	source string
	rt     runner
}

// Compile compiles pattern (see regexpfa.Compile for supported syntax and
// spec.md §6 for the anchor-padding rule) using DefaultConfig.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at init time, e.g. package-level vars.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("fa: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles pattern, then determinizes and minimizes the
// resulting FA under cfg, finally building the runtime representation cfg
// selects.
func CompileWithConfig(pattern string, cfg Config) (*Pattern, error) {
	nfa, err := regexpfa.Compile(pattern, cfg.Limits)
	if err != nil {
		return nil, err
	}

	dfa, err := determinize.Determinize(nfa, determinize.DefaultConfig().
		WithLimits(cfg.Limits).
		WithCancel(cfg.Cancel))
	if err != nil {
		return nil, err
	}

	min, err := minimize.Minimize(dfa, minimize.DefaultConfig().
		WithCmp(cfg.MinimizeCmp).
		WithCancel(cfg.Cancel))
	if err != nil {
		return nil, err
	}

	var rt runner
	if cfg.Compressed {
		rt = compRunner{sim.BuildCompressed(min)}
	} else {
		rt = denseRunner{sim.BuildDense(min)}
	}

	return &Pattern{source: pattern, rt: rt}, nil
}

// String returns the pattern text Compile was called with.
func (p *Pattern) String() string {
	return p.source
}

// NewRun returns a fresh, resumable run cursor (spec.md §4.4 "Run
// contract"), positioned at the automaton's start node.
func (p *Pattern) NewRun() Run {
	return p.rt.Init()
}

// Step feeds data into run and returns the resulting sim.Result: sim.More
// if run may still accept further bytes, sim.Accept if run has matched
// (run.Opaque() is then valid), sim.Reject if run can never match
// regardless of further input.
func (p *Pattern) Step(r Run, data []byte) sim.Result {
	return p.rt.Run(r, data)
}

// Match reports whether data is accepted by p in its entirety.
func (p *Pattern) Match(data []byte) bool {
	return p.Step(p.NewRun(), data) == sim.Accept
}

// MatchString reports whether s is accepted by p in its entirety.
func (p *Pattern) MatchString(s string) bool {
	return p.Match([]byte(s))
}
