// Package stateset implements the sorted NFA state-set type and its
// identity-keyed hash table that subset construction (package determinize)
// builds DFA states from (spec.md §3 "State-set", §4.2).
package stateset

import (
	"sort"

	"github.com/coregx/fa/automaton"
	"github.com/coregx/fa/charclass"
)

// Set is a collection of NFA state references with a cached sorted order
// and a lazily computed 256-bit symbol bitmap summarizing the union of
// outgoing non-ε transition bytes. Identity equality is by the sorted
// vector of references (spec.md §3).
//
// Grounded on dfa/lazy/state.go's StateSet/StateKey pairing in the
// teacher: a sorted NFA-state vector as a DFA state's identity, plus a
// lazily computed summary bitmap used to drive per-byte worklist
// expansion without rescanning every member state for every byte.
type Set struct {
	states []automaton.StateID

	bitmap      charclass.Bitmap
	bitmapValid bool
}

// New builds a Set from states, sorting and deduplicating them so that two
// Sets over the same underlying members always compare equal via Equal.
func New(states []automaton.StateID) *Set {
	cp := append([]automaton.StateID(nil), states...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	cp = dedupSorted(cp)
	return &Set{states: cp}
}

func dedupSorted(ids []automaton.StateID) []automaton.StateID {
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// States returns the sorted, deduplicated member state ids. The returned
// slice must not be mutated.
func (s *Set) States() []automaton.StateID { return s.states }

// Len returns the number of member states.
func (s *Set) Len() int { return len(s.states) }

// HasAccepting reports whether any member state of fa is accepting
// (spec.md §4.2: "A DFA state is accepting iff its NFA-set contains any
// NFA state flagged accepting").
func (s *Set) HasAccepting(fa *automaton.FA) bool {
	for _, id := range s.states {
		if st := fa.State(id); st != nil && st.Accepting() {
			return true
		}
	}
	return false
}

// AcceptingOpaques collects the distinct opaque payloads of every
// accepting member state, in first-seen order (spec.md §4.2 "Opaque
// priority resolution").
func (s *Set) AcceptingOpaques(fa *automaton.FA) []interface{} {
	var out []interface{}
	seen := make(map[interface{}]bool)
	for _, id := range s.states {
		st := fa.State(id)
		if st == nil || !st.Accepting() {
			continue
		}
		if !seen[st.Opaque] {
			seen[st.Opaque] = true
			out = append(out, st.Opaque)
		}
	}
	return out
}

// SymbolBitmap returns (computing and caching on first call) the bitmap of
// every byte labeling some non-ε outgoing transition of a member state.
func (s *Set) SymbolBitmap(fa *automaton.FA) charclass.Bitmap {
	if s.bitmapValid {
		return s.bitmap
	}
	var bm charclass.Bitmap
	for _, id := range s.states {
		st := fa.State(id)
		if st == nil {
			continue
		}
		for _, t := range st.Transitions() {
			if t.IsEpsilon() {
				continue
			}
			bm.SetRange(byte(t.SymFrom), byte(t.SymTo))
		}
	}
	s.bitmap = bm
	s.bitmapValid = true
	return s.bitmap
}

// Reachable computes the symbol-keyed reachable set (spec.md §4.2): the
// union of transition destinations across every member state whose range
// contains b.
func (s *Set) Reachable(fa *automaton.FA, b byte) []automaton.StateID {
	var out []automaton.StateID
	for _, id := range s.states {
		st := fa.State(id)
		if st == nil {
			continue
		}
		for _, t := range st.Transitions() {
			if t.IsEpsilon() {
				continue
			}
			if byte(t.SymFrom) <= b && b <= byte(t.SymTo) {
				out = append(out, t.Dest)
			}
		}
	}
	return out
}

// Equal reports whether s and other have identical sorted member vectors.
func (s *Set) Equal(other *Set) bool {
	if len(s.states) != len(other.states) {
		return false
	}
	for i, id := range s.states {
		if other.states[i] != id {
			return false
		}
	}
	return true
}
