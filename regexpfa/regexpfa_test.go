package regexpfa

import (
	"testing"

	"github.com/coregx/fa/automaton"
	"github.com/coregx/fa/determinize"
	"github.com/coregx/fa/minimize"
	"github.com/coregx/fa/sim"
)

func acceptsVia(t *testing.T, dense *sim.Dense, in string) (sim.Result, interface{}) {
	t.Helper()
	run := dense.Init()
	res := dense.Run(run, []byte(in))
	return res, run.Opaque
}

// TestEndToEndOpaquePriority is spec.md §8 scenario 1: two anchored
// patterns composed via union with distinct opaque tags, determinized
// with a min-opaque priority and minimized with an opaque-aware
// distinguishability function.
func TestEndToEndOpaquePriority(t *testing.T) {
	fa1, err := Compile("^aa*$", automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range fa1.States() {
		if s.Accepting() {
			s.Opaque = 0
		}
	}

	fa2, err := Compile("^a(a|b)$", automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range fa2.States() {
		if s.Accepting() {
			s.Opaque = 1
		}
	}

	nfa, err := automaton.UnionList([]*automaton.FA{fa1, fa2}, automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}

	cfg := determinize.DefaultConfig().WithPriority(func(opaques []interface{}) interface{} {
		best := opaques[0]
		for _, o := range opaques[1:] {
			if o.(int) < best.(int) {
				best = o
			}
		}
		return best
	})
	dfa, err := determinize.Determinize(nfa, cfg)
	if err != nil {
		t.Fatal(err)
	}

	min, err := minimize.Minimize(dfa, minimize.DefaultConfig().WithCmp(func(a, b interface{}) bool {
		return a != b
	}))
	if err != nil {
		t.Fatal(err)
	}

	dense := sim.BuildDense(min)

	if res, opaque := acceptsVia(t, dense, "aa"); res != sim.Accept || opaque != 0 {
		t.Fatalf(`"aa": got %v/%v, want ACCEPT/0`, res, opaque)
	}
	if res, opaque := acceptsVia(t, dense, "ab"); res != sim.Accept || opaque != 1 {
		t.Fatalf(`"ab": got %v/%v, want ACCEPT/1`, res, opaque)
	}
	if res, _ := acceptsVia(t, dense, "ba"); res != sim.Reject {
		t.Fatalf(`"ba": got %v, want REJECT`, res)
	}
}

// TestEndToEndIdentifierPattern is spec.md §8 scenario 2.
func TestEndToEndIdentifierPattern(t *testing.T) {
	fa, err := Compile(`^(_|[a-zA-Z])(_|[a-zA-Z]|[0-9])*$`, automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	dfa, err := determinize.Determinize(fa, determinize.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	dense := sim.BuildDense(dfa)

	cases := []struct {
		in   string
		want sim.Result
	}{
		{"_x9", sim.Accept},
		{"9x", sim.Reject},
		{"", sim.Reject},
	}
	for _, c := range cases {
		if res, _ := acceptsVia(t, dense, c.in); res != c.want {
			t.Errorf("%q: got %v, want %v", c.in, res, c.want)
		}
	}
}

// TestEndToEndUnanchoredRepeat is spec.md §8 scenario 3.
func TestEndToEndUnanchoredRepeat(t *testing.T) {
	fa, err := Compile("a{3}", automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	dfa, err := determinize.Determinize(fa, determinize.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	dense := sim.BuildDense(dfa)

	if res, _ := acceptsVia(t, dense, "aaa"); res != sim.Accept {
		t.Fatalf(`"aaa": got %v, want ACCEPT`, res)
	}
	if res, _ := acceptsVia(t, dense, "xaaax"); res != sim.Accept {
		t.Fatalf(`"xaaax": got %v, want ACCEPT`, res)
	}
	if res, _ := acceptsVia(t, dense, "aa"); res != sim.More {
		t.Fatalf(`"aa": got %v, want MORE`, res)
	}
}

// TestInvalidRepeatRange is spec.md §8 scenario 6. regexp/syntax itself
// rejects a min > max counted repetition at parse time (its own
// ErrInvalidRepeatSize), so it never reaches regexpfa's AST compiler as
// an OpRepeat node; Compile surfaces that as ErrParse. The distinguished
// ErrInvalidRepeat kind the spec describes is still reachable through the
// automaton.Repeat combinator directly (automaton/fa_test.go's
// TestRepeatInvalid), for any AST producer that does not pre-validate.
func TestInvalidRepeatRange(t *testing.T) {
	_, err := Compile("a{5,3}", automaton.Limits{})
	if err == nil {
		t.Fatal("expected an error for a{5,3}")
	}
	fe, ok := err.(*automaton.Error)
	if !ok || fe.Kind != automaton.ErrParse {
		t.Fatalf("got %v, want ErrParse", err)
	}
}

func TestAnchorStripping(t *testing.T) {
	cases := []struct {
		pattern              string
		body                 string
		startAnchor, endAnchor bool
	}{
		{"^abc$", "abc", true, true},
		{"abc", "abc", false, false},
		{`abc\$`, `abc\$`, false, false},
		{"^", "", true, false},
		{"a$", "a", false, true},
	}
	for _, c := range cases {
		body, sa, ea := stripAnchors(c.pattern)
		if body != c.body || sa != c.startAnchor || ea != c.endAnchor {
			t.Errorf("stripAnchors(%q) = (%q, %v, %v), want (%q, %v, %v)",
				c.pattern, body, sa, ea, c.body, c.startAnchor, c.endAnchor)
		}
	}
}

func TestCompileParseErrorAnchorOffset(t *testing.T) {
	_, errPlain := Compile("(", automaton.Limits{})
	_, errAnchored := Compile("^(", automaton.Limits{})

	fePlain, ok := errPlain.(*automaton.Error)
	if !ok || fePlain.Kind != automaton.ErrParse {
		t.Fatalf("got %v, want ErrParse", errPlain)
	}
	feAnchored, ok := errAnchored.(*automaton.Error)
	if !ok || feAnchored.Kind != automaton.ErrParse {
		t.Fatalf("got %v, want ErrParse", errAnchored)
	}
	if feAnchored.Pos != fePlain.Pos+1 {
		t.Fatalf("anchored pos %d, plain pos %d: expected +1 offset", feAnchored.Pos, fePlain.Pos)
	}
}

func TestUnsupportedLookaroundRejected(t *testing.T) {
	_, err := Compile(`\bfoo\b`, automaton.Limits{})
	if err == nil {
		t.Fatal("expected an error for word-boundary assertions")
	}
	fe, ok := err.(*automaton.Error)
	if !ok || fe.Kind != automaton.ErrParse {
		t.Fatalf("got %v, want ErrParse", err)
	}
}
