package automaton

// Absorb moves every state owned by src into fa, reparenting them in
// O(#states) (spec.md §3 "transferring ownership (move) reparents states
// in O(#states)"). src is left empty (its states are destroyed per the
// combinator-consumption contract of spec.md §9). Returns a slice mapping
// src's old StateIDs to their new ids within fa.
func (fa *FA) Absorb(src *FA) []StateID {
	offset := StateID(len(fa.states))
	remap := make([]StateID, len(src.states))
	for i := range src.states {
		remap[i] = offset + StateID(i)
	}

	for i, s := range src.states {
		for j := range s.trans {
			s.trans[j].Dest = remap[s.trans[j].Dest]
		}
		s.id = remap[i]
		fa.states = append(fa.states, s)
	}

	fa.transCount += src.transCount
	src.states = nil
	src.transCount = 0
	src.start = InvalidState
	return remap
}

// stateRange is the contiguous [lo, hi) id range a moved input FA occupies
// within a composite FA after Absorb.
type stateRange struct {
	lo, hi StateID
}

func (r stateRange) contains(id StateID) bool { return id >= r.lo && id < r.hi }
