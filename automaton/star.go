package automaton

// KStar applies the Kleene star to fa in place and returns it (spec.md
// §4.1 "Kleene star"): the start is marked accepting (matches epsilon),
// and every currently accepting non-start state gains an epsilon
// transition back to the start.
func KStar(fa *FA) *FA {
	start := fa.Start()
	startState := fa.State(start)
	if startState == nil {
		return fa
	}

	var toLoop []StateID
	for _, s := range fa.States() {
		if s.ID() != start && s.Accepting() {
			toLoop = append(toLoop, s.ID())
		}
	}

	startState.SetAccepting(true)
	for _, id := range toLoop {
		fa.AddTrans(id, Epsilon, start)
	}
	return fa
}
