package automaton

// UnionList builds the union of k input FAs (spec.md §4.1 "Union of k
// FAs"). Every input is consumed: its states are moved into the returned
// composite and the input FA is left empty.
//
// If any input's start state has only epsilon transitions, that start is
// reused as the composite start; otherwise a fresh start state is created.
// Every input whose start was not reused gets an epsilon transition from
// the composite start to its (moved) start.
func UnionList(inputs []*FA, limits Limits) (*FA, error) {
	composite := New(nil)
	if len(inputs) == 0 {
		composite.SetStart(composite.AddState())
		return composite, nil
	}

	reuseIdx := -1
	for i, in := range inputs {
		s := in.State(in.Start())
		if s == nil {
			continue
		}
		onlyEpsilon := true
		for _, t := range s.Transitions() {
			if !t.IsEpsilon() {
				onlyEpsilon = false
				break
			}
		}
		if onlyEpsilon {
			reuseIdx = i
			break
		}
	}

	newStarts := make([]StateID, len(inputs))
	for i, in := range inputs {
		oldStart := in.Start()
		remap := composite.Absorb(in)
		newStarts[i] = remap[oldStart]
	}

	var compositeStart StateID
	if reuseIdx >= 0 {
		compositeStart = newStarts[reuseIdx]
	} else {
		compositeStart = composite.AddState()
	}
	composite.SetStart(compositeStart)

	for i, ns := range newStarts {
		if i == reuseIdx {
			continue
		}
		composite.AddTrans(compositeStart, Epsilon, ns)
	}

	if err := limits.Check(composite); err != nil {
		return nil, err
	}
	return composite, nil
}
