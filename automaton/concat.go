package automaton

// ConcatList builds the concatenation of k input FAs (spec.md §4.1
// "Concatenation of k FAs"). Every input is consumed.
//
// The composite start is the first input's (moved) start. For each input
// except the last, every accepting state gains an epsilon transition to
// the next input's start and loses its accepting flag.
func ConcatList(inputs []*FA, limits Limits) (*FA, error) {
	composite := New(nil)
	if len(inputs) == 0 {
		start := composite.AddState()
		composite.SetStart(start)
		composite.State(start).SetAccepting(true)
		return composite, nil
	}

	newStarts := make([]StateID, len(inputs))
	ranges := make([]stateRange, len(inputs))

	for i, in := range inputs {
		count := StateID(len(in.states))
		offset := StateID(len(composite.states))
		oldStart := in.Start()
		remap := composite.Absorb(in)
		newStarts[i] = remap[oldStart]
		ranges[i] = stateRange{lo: offset, hi: offset + count}
	}

	composite.SetStart(newStarts[0])

	for i := 0; i < len(inputs)-1; i++ {
		r := ranges[i]
		for id := r.lo; id < r.hi; id++ {
			s := composite.State(id)
			if s.Accepting() {
				composite.AddTrans(id, Epsilon, newStarts[i+1])
				s.SetAccepting(false)
			}
		}
	}

	if err := limits.Check(composite); err != nil {
		return nil, err
	}
	return composite, nil
}
