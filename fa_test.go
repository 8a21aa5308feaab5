package fa

import (
	"testing"

	"github.com/coregx/fa/sim"
)

func TestCompileAndMatch(t *testing.T) {
	p, err := Compile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		in   string
		want bool
	}{
		{"_id9", true},
		{"x", true},
		{"9x", false},
		{"", false},
		{"has space", false},
	}
	for _, c := range cases {
		if got := p.MatchString(c.in); got != c.want {
			t.Errorf("MatchString(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMustCompilePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile("a{5,3}")
}

func TestCompileWithConfigCompressed(t *testing.T) {
	p, err := CompileWithConfig("a{3}", DefaultConfig().WithCompressed(true))
	if err != nil {
		t.Fatal(err)
	}
	if !p.MatchString("aaa") {
		t.Fatal("expected compressed Pattern to match aaa")
	}
	if p.MatchString("aa") {
		t.Fatal("expected compressed Pattern to reject aa")
	}
}

func TestRunIsResumableAcrossSteps(t *testing.T) {
	p, err := Compile("^abc$")
	if err != nil {
		t.Fatal(err)
	}
	run := p.NewRun()
	if res := p.Step(run, []byte("ab")); res != sim.More {
		t.Fatalf("expected MORE after partial input, got %v", res)
	}
	if res := p.Step(run, []byte("c")); res != sim.Accept {
		t.Fatalf("expected ACCEPT after completing input, got %v", res)
	}
}

func TestOpaquePriorityReachableThroughPattern(t *testing.T) {
	p, err := Compile("^a(a|b)$")
	if err != nil {
		t.Fatal(err)
	}
	run := p.NewRun()
	res := p.Step(run, []byte("aa"))
	if res != sim.Accept {
		t.Fatalf("expected ACCEPT, got %v", res)
	}
	// No opaque tagging was set on this single-pattern compile, so Opaque
	// is whatever regexpfa.Compile's accepting state carried (nil by
	// default); the point of this test is only that Run.Opaque() is
	// reachable through the public Run interface at all.
	_ = run.Opaque()
}

func TestStringReturnsSourcePattern(t *testing.T) {
	p, err := Compile("abc")
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "abc" {
		t.Fatalf("got %q, want %q", p.String(), "abc")
	}
}
