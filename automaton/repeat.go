package automaton

// Repeat builds the bounded-repetition FA for fa{min,max} (spec.md §4.1
// "Bounded repetition"). fa is consumed (cloned internally as many times
// as needed); the caller's fa is left unusable afterwards, matching the
// combinator-consumption contract.
//
//   - max == 0 means unbounded: min mandatory clones followed by a
//     Kleene-starred extra clone.
//   - max > 0, min == max: exactly min clones concatenated.
//   - max > 0, min < max: min mandatory clones followed by (max-min)
//     optional clones, each individually skippable to a shared accept
//     state (so the whole tail can stop after any count in [min, max]).
//   - min > max != 0 fails with ErrInvalidRepeat.
func Repeat(fa *FA, min, max int, limits Limits) (*FA, error) {
	if max != 0 && min > max {
		return nil, newError(ErrInvalidRepeat, "min > max")
	}

	if max == 0 {
		parts := make([]*FA, 0, min+1)
		for i := 0; i < min; i++ {
			parts = append(parts, Clone(fa))
		}
		tail := KStar(Clone(fa))
		parts = append(parts, tail)
		return ConcatList(parts, limits)
	}

	if min == max {
		parts := make([]*FA, 0, min)
		for i := 0; i < min; i++ {
			parts = append(parts, Clone(fa))
		}
		return ConcatList(parts, limits)
	}

	parts := make([]*FA, 0, min+1)
	for i := 0; i < min; i++ {
		parts = append(parts, Clone(fa))
	}
	tail := optionalTail(fa, max-min)
	parts = append(parts, tail)
	return ConcatList(parts, limits)
}

// optionalTail builds an FA matching fa repeated between 0 and count times,
// realized as `count` clones concatenated in sequence, each clone's start
// additionally wired with an epsilon transition directly to a shared
// fresh accepting state (so the caller may stop after any prefix of the
// clones, from zero up to count).
func optionalTail(fa *FA, count int) *FA {
	work := New(nil)
	shared := work.AddState()
	work.State(shared).SetAccepting(true)

	if count == 0 {
		work.SetStart(shared)
		return work
	}

	var tailStart StateID
	var prevAccept []StateID

	for i := 0; i < count; i++ {
		clone := Clone(fa)
		offset := StateID(len(work.states))
		n := StateID(len(clone.states))
		oldStart := clone.Start()
		remap := work.Absorb(clone)
		cloneStart := remap[oldStart]

		if i == 0 {
			tailStart = cloneStart
		} else {
			for _, pid := range prevAccept {
				work.AddTrans(pid, Epsilon, cloneStart)
				work.State(pid).SetAccepting(false)
			}
		}

		// Bail out directly to the shared accept from this clone's start.
		work.AddTrans(cloneStart, Epsilon, shared)

		var curAccept []StateID
		for id := offset; id < offset+n; id++ {
			if work.State(id).Accepting() {
				curAccept = append(curAccept, id)
			}
		}
		prevAccept = curAccept
	}

	for _, pid := range prevAccept {
		work.AddTrans(pid, Epsilon, shared)
		work.State(pid).SetAccepting(false)
	}

	work.SetStart(tailStart)
	return work
}
