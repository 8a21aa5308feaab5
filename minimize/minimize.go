package minimize

import (
	"sync/atomic"

	"github.com/coregx/fa/automaton"
)

// Minimize runs Hopcroft-style partition refinement over the (already
// determinized) fa and returns a new, minimal-state-count DFA; fa is read,
// not consumed (its transient workspace slots are used during the call
// and cleared before returning, spec.md §9 "single-writer" contract).
//
// Cancellation is sampled between full refinement sweeps (spec.md §4.3
// "Honor an external cancellation flag between sweeps"); on a raised flag
// construction aborts and returns (nil, *automaton.Error).
func Minimize(fa *automaton.FA, cfg Config) (*automaton.FA, error) {
	if fa.StateCount() == 0 {
		return automaton.New(nil), nil
	}

	all := make([]automaton.StateID, 0, fa.StateCount())
	for _, s := range fa.States() {
		all = append(all, s.ID())
		s.Workspace().Kind = automaton.WorkspaceGroup
		s.Workspace().Value = 0
	}

	groups := []*group{{id: 0, members: all}}
	nextID := uint32(1)

	for {
		if cfg.Cancel != nil && atomic.LoadInt32(cfg.Cancel) != 0 {
			resetWorkspaces(fa)
			return nil, automaton.NewError(automaton.ErrCancelled, "minimize cancelled")
		}

		changed := false
		for i := 0; i < len(groups); i++ {
			ng, ok := split(fa, groups[i], cfg.Cmp, nextID)
			if !ok {
				continue
			}
			nextID++
			changed = true
			groups = append(groups, nil)
			copy(groups[i+2:], groups[i+1:])
			groups[i+1] = ng
		}
		if !changed {
			break
		}
	}

	out := reconstruct(fa, groups)
	resetWorkspaces(fa)
	return out, nil
}

func resetWorkspaces(fa *automaton.FA) {
	for _, s := range fa.States() {
		s.Workspace().Reset()
	}
}

// reconstruct allocates one output state per group and replays each
// group's representative transitions against the groups its destinations
// belong to (spec.md §4.3 "DFA reconstruction").
func reconstruct(fa *automaton.FA, groups []*group) *automaton.FA {
	out := automaton.New(nil)
	outIDs := make(map[uint32]automaton.StateID, len(groups))
	for _, g := range groups {
		outIDs[g.id] = out.AddState()
	}

	out.SetStart(outIDs[groupIDOf(fa, fa.Start())])

	for _, g := range groups {
		rep := fa.State(g.members[0])
		outID := outIDs[g.id]
		if rep.Accepting() {
			out.SetAcceptingOpaque(outID, rep.Opaque)
		}
		for _, t := range rep.Transitions() {
			if t.IsEpsilon() {
				continue
			}
			destOut := outIDs[groupIDOf(fa, t.Dest)]
			for sym := t.SymFrom; sym <= t.SymTo; sym++ {
				out.AddTrans(outID, sym, destOut)
			}
		}
	}

	return out
}
