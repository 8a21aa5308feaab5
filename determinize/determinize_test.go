package determinize

import (
	"testing"

	"github.com/coregx/fa/automaton"
)

func TestDeterminizeNoEpsilonRemain(t *testing.T) {
	a, _ := automaton.String([]byte("aa"), automaton.Limits{})
	b, _ := automaton.String([]byte("ab"), automaton.Limits{})
	nfa, err := automaton.UnionList([]*automaton.FA{a, b}, automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}

	dfa, err := Determinize(nfa, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range dfa.States() {
		seenBytes := map[automaton.Symbol]bool{}
		for _, tr := range s.Transitions() {
			if tr.IsEpsilon() {
				t.Fatalf("found epsilon transition in determinized DFA on state %v", s.ID())
			}
			for sym := tr.SymFrom; sym <= tr.SymTo; sym++ {
				if seenBytes[sym] {
					t.Fatalf("byte %v has two enabled transitions from state %v", sym, s.ID())
				}
				seenBytes[sym] = true
			}
		}
	}
}

func TestDeterminizeOpaquePriority(t *testing.T) {
	// spec.md §8 scenario 1 (abbreviated): two literal alternatives with
	// distinct opaque tags; priority picks the minimum opaque on overlap.
	a, _ := automaton.String([]byte("a"), automaton.Limits{})
	for _, s := range a.States() {
		if s.Accepting() {
			s.Opaque = 0
		}
	}
	b, _ := automaton.String([]byte("a"), automaton.Limits{})
	for _, s := range b.States() {
		if s.Accepting() {
			s.Opaque = 1
		}
	}
	nfa, err := automaton.UnionList([]*automaton.FA{a, b}, automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig().WithPriority(func(opaques []interface{}) interface{} {
		min := opaques[0].(int)
		for _, o := range opaques[1:] {
			if v := o.(int); v < min {
				min = v
			}
		}
		return min
	})

	dfa, err := Determinize(nfa, cfg)
	if err != nil {
		t.Fatal(err)
	}

	var found bool
	dfa.ForeachAccepting(func(opaque interface{}) {
		found = true
		if opaque != 0 {
			t.Fatalf("expected priority-resolved opaque 0, got %v", opaque)
		}
	})
	if !found {
		t.Fatal("expected at least one accepting state")
	}
}

func TestDeterminizeCancelled(t *testing.T) {
	f, _ := automaton.String([]byte("abc"), automaton.Limits{})
	var cancel int32 = 1
	_, err := Determinize(f, DefaultConfig().WithCancel(&cancel))
	if err == nil {
		t.Fatal("expected ErrCancelled")
	}
	autoErr, ok := err.(*automaton.Error)
	if !ok || autoErr.Kind != automaton.ErrCancelled {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}
