package automaton

import "github.com/coregx/fa/internal/sparse"

// Clone produces a graph-isomorphic copy of fa with fully disjoint
// ownership (spec.md §4.1 "Clone", §8 invariant 6). It uses each original
// state's transient workspace slot (tagged WorkspaceCloneTwin) to record
// the freshly created twin, exactly as spec.md §9 describes, then replays
// every original transition range onto the twins.
func Clone(fa *FA) *FA {
	out := New(nil)

	twins := make([]StateID, len(fa.states))
	for _, s := range fa.states {
		twin := out.AddState()
		s.workspace.Kind = WorkspaceCloneTwin
		s.workspace.Value = uint32(twin)
		twins[s.ID()] = twin
	}

	for _, s := range fa.states {
		twin := twins[s.ID()]
		out.State(twin).SetAccepting(s.Accepting())
		out.State(twin).Opaque = s.Opaque
		for _, t := range s.Transitions() {
			out.AddTrans(twin, t.SymFrom, twins[t.Dest])
			if !t.IsEpsilon() && t.SymFrom != t.SymTo {
				// AddTrans only takes a single symbol; replay the full range.
				for sym := t.SymFrom + 1; sym <= t.SymTo; sym++ {
					out.AddTrans(twin, sym, twins[t.Dest])
				}
			}
		}
		s.workspace.Reset()
	}

	if start := fa.Start(); start != InvalidState {
		out.SetStart(twins[start])
	}
	return out
}

// RemoveUnreachable performs a breadth-first traversal from fa's start,
// marking every reachable state, then destroys every unmarked state and
// clears marks (spec.md §4.1 "Unreachable-state removal", §8 invariant 7).
func RemoveUnreachable(fa *FA) {
	if fa.Start() == InvalidState || len(fa.states) == 0 {
		return
	}

	reachable := sparse.NewSparseSet(uint32(len(fa.states)))
	queue := []StateID{fa.Start()}
	reachable.Insert(uint32(fa.Start()))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		s := fa.State(id)
		if s == nil {
			continue
		}
		for _, t := range s.Transitions() {
			if !reachable.Contains(uint32(t.Dest)) {
				reachable.Insert(uint32(t.Dest))
				queue = append(queue, t.Dest)
			}
		}
	}

	kept := make([]*State, 0, reachable.Size())
	idMap := make([]StateID, len(fa.states))
	for _, s := range fa.states {
		if reachable.Contains(uint32(s.ID())) {
			idMap[s.ID()] = StateID(len(kept))
			kept = append(kept, s)
		} else {
			idMap[s.ID()] = InvalidState
		}
	}

	transCount := 0
	for _, s := range kept {
		filtered := s.trans[:0]
		for _, t := range s.trans {
			if idMap[t.Dest] == InvalidState {
				continue
			}
			t.Dest = idMap[t.Dest]
			filtered = append(filtered, t)
		}
		s.trans = filtered
		s.id = idMap[s.id]
		transCount += len(s.trans)
	}

	fa.states = kept
	fa.transCount = transCount
	fa.start = idMap[fa.start]
}

// RemoveAcceptingTrans destroys every outgoing transition of every
// accepting state, then runs RemoveUnreachable (spec.md §4.1
// "Accepting-transition removal").
func RemoveAcceptingTrans(fa *FA) {
	for _, s := range fa.states {
		if s.Accepting() {
			fa.RemoveTrans(s.ID())
		}
	}
	RemoveUnreachable(fa)
}
