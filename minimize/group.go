package minimize

import "github.com/coregx/fa/automaton"

// group is a disjoint-partition membership record, used only during
// minimization (spec.md §3 "State-group"). Each state belongs to at most
// one group at any time, recorded on the state's transient workspace slot
// (WorkspaceGroup) as the group's id.
type group struct {
	id      uint32
	members []automaton.StateID
}

func groupIDOf(fa *automaton.FA, id automaton.StateID) uint32 {
	return fa.State(id).Workspace().Value
}

// distinguishable reports whether a and b must be split apart: differing
// ACCEPTING flags, a user cmp callback saying so, or misaligned
// transition-range targets (spec.md §4.3 "Distinguishability of states").
func distinguishable(fa *automaton.FA, a, b automaton.StateID, cmp CmpFunc) bool {
	sa := fa.State(a)
	sb := fa.State(b)

	if sa.Accepting() != sb.Accepting() {
		return true
	}
	if cmp != nil && cmp(sa.Opaque, sb.Opaque) {
		return true
	}
	return rangesDistinguishable(fa, sa.Transitions(), sb.Transitions())
}

// rangesDistinguishable walks two sorted, non-overlapping transition-range
// lists in lockstep, splitting whichever range ends first so both cursors
// cover identical sub-ranges at every step; a misaligned start (one side
// covers a byte the other doesn't) or a sub-range whose targets land in
// different groups makes the pair distinguishable (spec.md §4.3).
func rangesDistinguishable(fa *automaton.FA, transA, transB []automaton.Transition) bool {
	a := nonEpsilon(transA)
	b := nonEpsilon(transB)

	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if i >= len(a) || j >= len(b) {
			return true
		}
		ta, tb := a[i], b[j]
		if ta.SymFrom != tb.SymFrom {
			return true
		}
		if groupIDOf(fa, ta.Dest) != groupIDOf(fa, tb.Dest) {
			return true
		}

		hi := min(ta.SymTo, tb.SymTo)
		if ta.SymTo == hi {
			i++
		} else {
			a[i].SymFrom = hi + 1
		}
		if tb.SymTo == hi {
			j++
		} else {
			b[j].SymFrom = hi + 1
		}
	}
	return false
}

// nonEpsilon copies transitions into a mutable slice, dropping any ε
// transitions (minimize always runs post-determinize so none should be
// present, but this keeps the walk well-defined if called on an NFA).
func nonEpsilon(trans []automaton.Transition) []automaton.Transition {
	out := make([]automaton.Transition, 0, len(trans))
	for _, t := range trans {
		if !t.IsEpsilon() {
			out = append(out, t)
		}
	}
	return out
}

// split scans g's members (after its pivot, g.members[0]) for the first
// one distinguishable from the pivot, then moves every remaining member
// distinguishable from the pivot into a freshly created group (spec.md
// §4.3 "Refinement step"). Returns (newGroup, true) if a split occurred.
func split(fa *automaton.FA, g *group, cmp CmpFunc, newID uint32) (*group, bool) {
	if len(g.members) < 2 {
		return nil, false
	}
	pivot := g.members[0]

	firstSplit := -1
	for i := 1; i < len(g.members); i++ {
		if distinguishable(fa, pivot, g.members[i], cmp) {
			firstSplit = i
			break
		}
	}
	if firstSplit == -1 {
		return nil, false
	}

	stay := g.members[:1:1]
	var moved []automaton.StateID
	for i := 1; i < len(g.members); i++ {
		s := g.members[i]
		if distinguishable(fa, pivot, s, cmp) {
			moved = append(moved, s)
		} else {
			stay = append(stay, s)
		}
	}

	g.members = stay
	ng := &group{id: newID, members: moved}
	for _, s := range moved {
		fa.State(s).Workspace().Value = newID
	}
	return ng, true
}
