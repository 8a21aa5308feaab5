package determinize

import (
	"sync/atomic"

	"github.com/coregx/fa/automaton"
	"github.com/coregx/fa/stateset"
)

// worklistItem pairs a DFA state id with the NFA state-set it was built
// from, so the next worklist pop can expand it per spec.md §4.2 step 3.
type worklistItem struct {
	id  automaton.StateID
	set *stateset.Set
}

// Determinize runs subset construction over fa, producing a new DFA (fa is
// not consumed or mutated; the caller may destroy it separately, matching
// spec.md §6's `determinize(fa, pri_cb?, limits?, cancel?)` signature
// which reads the input without claiming its ownership the way the
// in-place combinators do).
//
// Cancellation is sampled before each worklist iteration (spec.md §4.2
// "Termination controls"); on either a raised cancel flag or a limits
// violation on the source NFA, construction aborts and returns
// (nil, *automaton.Error) with the partially built DFA discarded.
func Determinize(fa *automaton.FA, cfg Config) (*automaton.FA, error) {
	out := automaton.New(nil)
	table := stateset.NewTable()

	startClosure := EpsilonClosure(fa, []automaton.StateID{fa.Start()})
	startSet := stateset.New(startClosure)
	startID := out.AddState()
	out.SetStart(startID)
	table.Insert(startSet, startID)
	applyAccepting(out, startID, fa, startSet, cfg.Priority)

	worklist := []worklistItem{{id: startID, set: startSet}}

	for len(worklist) > 0 {
		if cfg.Cancel != nil && atomic.LoadInt32(cfg.Cancel) != 0 {
			return nil, automaton.NewError(automaton.ErrCancelled, "determinize cancelled")
		}
		if cfg.Limits.MaxStates > 0 && fa.StateCount() > cfg.Limits.MaxStates {
			return nil, automaton.NewError(automaton.ErrLimitExceeded, "source NFA state count exceeds configured limit")
		}
		if cfg.Limits.MaxTrans > 0 && fa.TransCount() > cfg.Limits.MaxTrans {
			return nil, automaton.NewError(automaton.ErrLimitExceeded, "source NFA transition count exceeds configured limit")
		}

		item := worklist[0]
		worklist = worklist[1:]

		bm := item.set.SymbolBitmap(fa)
		for b := 0; b < 256; b++ {
			if !bm.Test(byte(b)) {
				continue
			}
			reach := item.set.Reachable(fa, byte(b))
			closure := EpsilonClosure(fa, reach)
			uset := stateset.New(closure)

			if dfaID, ok := table.Lookup(uset); ok {
				out.AddTrans(item.id, automaton.Symbol(b), dfaID)
				continue
			}

			newID := out.AddState()
			table.Insert(uset, newID)
			applyAccepting(out, newID, fa, uset, cfg.Priority)
			out.AddTrans(item.id, automaton.Symbol(b), newID)
			worklist = append(worklist, worklistItem{id: newID, set: uset})
		}
	}

	return out, nil
}

// applyAccepting marks outID accepting with the resolved opaque if set's
// NFA-set contains any accepting member (spec.md §4.2 "A DFA state is
// accepting iff its NFA-set contains any NFA state flagged accepting",
// "Opaque priority resolution").
func applyAccepting(out *automaton.FA, outID automaton.StateID, nfa *automaton.FA, set *stateset.Set, priority PriorityFunc) {
	if !set.HasAccepting(nfa) {
		return
	}
	opaques := set.AcceptingOpaques(nfa)
	var chosen interface{}
	switch {
	case len(opaques) == 1:
		chosen = opaques[0]
	case priority != nil:
		chosen = priority(opaques)
	default:
		chosen = opaques[0]
	}
	out.SetAcceptingOpaque(outID, chosen)
}
