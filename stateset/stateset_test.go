package stateset

import (
	"testing"

	"github.com/coregx/fa/automaton"
)

func TestNewSortsAndDedups(t *testing.T) {
	s := New([]automaton.StateID{3, 1, 2, 1, 3})
	got := s.States()
	want := []automaton.StateID{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestEqual(t *testing.T) {
	a := New([]automaton.StateID{1, 2, 3})
	b := New([]automaton.StateID{3, 2, 1})
	if !a.Equal(b) {
		t.Fatal("expected equal sets regardless of input order")
	}
	c := New([]automaton.StateID{1, 2})
	if a.Equal(c) {
		t.Fatal("expected unequal sets of different size")
	}
}

func TestSymbolBitmapAndReachable(t *testing.T) {
	fa := automaton.New(nil)
	s0 := fa.AddState()
	s1 := fa.AddState()
	fa.AddTrans(s0, automaton.Symbol('a'), s1)

	set := New([]automaton.StateID{s0})
	bm := set.SymbolBitmap(fa)
	if !bm.Test('a') {
		t.Fatal("expected 'a' in symbol bitmap")
	}
	reach := set.Reachable(fa, 'a')
	if len(reach) != 1 || reach[0] != s1 {
		t.Fatalf("expected reachable={%v}, got %v", s1, reach)
	}
	if len(set.Reachable(fa, 'b')) != 0 {
		t.Fatal("expected no reachable states on 'b'")
	}
}

func TestTableLookupInsert(t *testing.T) {
	tbl := NewTable()
	key := New([]automaton.StateID{0, 1})
	if _, ok := tbl.Lookup(key); ok {
		t.Fatal("expected miss on empty table")
	}
	tbl.Insert(key, 5)
	got, ok := tbl.Lookup(New([]automaton.StateID{1, 0}))
	if !ok || got != 5 {
		t.Fatalf("expected hit with dfaState=5, got %v,%v", got, ok)
	}
}
