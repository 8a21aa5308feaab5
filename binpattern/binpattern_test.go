package binpattern

import (
	"testing"

	"github.com/coregx/fa/automaton"
)

func TestToFANotByteAligned(t *testing.T) {
	var p Pattern
	p.Add(4, 0xA, 0xF)

	_, err := ToFA(&p, automaton.Limits{})
	if err == nil {
		t.Fatal("expected ErrNotByteAligned")
	}
	autoErr, ok := err.(*automaton.Error)
	if !ok || autoErr.Kind != automaton.ErrNotByteAligned {
		t.Fatalf("expected ErrNotByteAligned, got %v", err)
	}
}

func TestToFAHighNibbleZeroLowNibble(t *testing.T) {
	// spec.md §8 scenario 5: <0xA:4, 0:4> on 0xA0 -> ACCEPT, 0xA1 -> REJECT.
	var p Pattern
	p.Add(4, 0xA, 0xF).Add(4, 0, 0xF)

	fa, err := ToFA(&p, automaton.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	if fa.StateCount() != 2 {
		t.Fatalf("expected 2 states, got %d", fa.StateCount())
	}

	trans := fa.State(fa.Start()).Transitions()
	if len(trans) != 1 || trans[0].SymFrom != automaton.Symbol(0xA0) || trans[0].SymTo != automaton.Symbol(0xA0) {
		t.Fatalf("expected exactly one transition on 0xA0, got %+v", trans)
	}
}

func TestConsistentBytesWildcard(t *testing.T) {
	out := consistentBytes(0xA0, 0xF0)
	if len(out) != 16 {
		t.Fatalf("expected 16 consistent bytes for a 4-bit wildcard, got %d", len(out))
	}
	for _, b := range out {
		if b&0xF0 != 0xA0 {
			t.Fatalf("byte %#x does not match fixed high nibble", b)
		}
	}
}
