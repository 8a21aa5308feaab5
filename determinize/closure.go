package determinize

import (
	"sort"

	"github.com/coregx/fa/automaton"
	"github.com/coregx/fa/internal/sparse"
)

// EpsilonClosure computes the iterative depth-first-expansion ε-closure
// of seed within fa, returning the sorted, deduplicated state vector
// (spec.md §4.2: "iterative depth-first expansion following ε
// transitions, accumulating a superset of S; return the sorted state
// vector"). Reuses internal/sparse.SparseSet for the visited set, the
// same role it plays in the teacher's PikeVM Thompson-simulation
// visited-state tracking.
func EpsilonClosure(fa *automaton.FA, seed []automaton.StateID) []automaton.StateID {
	if len(seed) == 0 {
		return nil
	}

	visited := sparse.NewSparseSet(uint32(fa.StateCount()))
	stack := append([]automaton.StateID(nil), seed...)
	for _, id := range seed {
		visited.Insert(uint32(id))
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		st := fa.State(id)
		if st == nil {
			continue
		}
		for _, t := range st.Transitions() {
			if !t.IsEpsilon() {
				continue
			}
			if !visited.Contains(uint32(t.Dest)) {
				visited.Insert(uint32(t.Dest))
				stack = append(stack, t.Dest)
			}
		}
	}

	out := make([]automaton.StateID, 0, visited.Size())
	for _, v := range visited.Values() {
		out = append(out, automaton.StateID(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
