package main

import (
	"testing"

	"github.com/coregx/fa/automaton"
)

func TestSplitFormat(t *testing.T) {
	cases := []struct {
		in         string
		wantFormat string
		wantArg    string
		wantErr    bool
	}{
		{"re:a+b", "re", "a+b", false},
		{"text:/tmp/foo.txt", "text", "/tmp/foo.txt", false},
		{"dot:/tmp/foo.dot", "dot", "/tmp/foo.dot", false},
		{"dottikz:/tmp/foo.tex", "dottikz", "/tmp/foo.tex", false},
		{"dot:", "dot", "", false},
		{"bogus:x", "", "", true},
	}
	for _, c := range cases {
		format, arg, err := splitFormat(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("splitFormat(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("splitFormat(%q): unexpected error: %s", c.in, err)
		}
		if format != c.wantFormat || arg != c.wantArg {
			t.Errorf("splitFormat(%q) = (%q, %q), want (%q, %q)", c.in, format, arg, c.wantFormat, c.wantArg)
		}
	}
}

func TestSplitFormatDisambiguatesDotFromDottikz(t *testing.T) {
	// "dot:" must never swallow a "dottikz:" argument as its prefix.
	format, arg, err := splitFormat("dottikz:out.tex")
	if err != nil {
		t.Fatal(err)
	}
	if format != "dottikz" || arg != "out.tex" {
		t.Fatalf("got (%q, %q), want (\"dottikz\", \"out.tex\")", format, arg)
	}
}

func TestTagAcceptingAndPriority(t *testing.T) {
	fa1 := automaton.New(nil)
	s1 := fa1.AddState()
	fa1.SetStart(s1)
	fa1.State(s1).SetAccepting(true)
	tagAccepting(fa1, 3)

	if fa1.State(s1).Opaque != 3 {
		t.Fatalf("expected opaque 3, got %v", fa1.State(s1).Opaque)
	}

	best := priorityLowestIndex([]interface{}{5, 1, 9})
	if best.(int) != 1 {
		t.Fatalf("expected priority to pick lowest index 1, got %v", best)
	}
}

func TestDistinguishByIndex(t *testing.T) {
	if !distinguishByIndex(1, 2) {
		t.Fatal("expected distinct indices to be distinguishable")
	}
	if distinguishByIndex(1, 1) {
		t.Fatal("expected equal indices to not be distinguishable")
	}
	if distinguishByIndex(1, "not-an-int") {
		t.Fatal("expected a non-int opaque to never force distinguishability")
	}
}

func TestStateNameByIndex(t *testing.T) {
	fa1 := automaton.New(nil)
	s := fa1.AddState()
	fa1.SetStart(s)
	fa1.State(s).SetAccepting(true)
	fa1.State(s).Opaque = 7

	if got := stateNameByIndex(fa1.State(s)); got != "7" {
		t.Fatalf("got %q, want %q", got, "7")
	}

	nonAccepting := fa1.AddState()
	if got := stateNameByIndex(fa1.State(nonAccepting)); got != "" {
		t.Fatalf("got %q, want empty for non-accepting state", got)
	}
}
