package regexpfa

import "github.com/coregx/fa/automaton"

// anyByteLoop adds a fresh state to fa with a self-loop on every byte
// 0x00-0xFF and returns its id, the building block shared by
// unanchorStart/unanchorEnd (original_source/fa_regexp.c's
// fa_regexp_state_any).
func anyByteLoop(fa *automaton.FA) automaton.StateID {
	id := fa.AddState()
	// AddTrans coalesces adjacent same-destination ranges on insertion, so
	// 256 individual byte additions settle into a single [0x00,0xFF] range.
	for b := 0; b <= 0xFF; b++ {
		fa.AddTrans(id, automaton.Symbol(b), id)
	}
	return id
}

// unanchorStart prepends an any-byte self-loop before fa's real start,
// letting the match begin anywhere in the input (original_source/
// fa_regexp.c's fa_regexp_start_unanchor): the new state becomes the FA's
// start, with an epsilon transition into the original start.
func unanchorStart(fa *automaton.FA) *automaton.FA {
	any := anyByteLoop(fa)
	fa.AddTrans(any, automaton.Epsilon, fa.Start())
	fa.SetStart(any)
	return fa
}

// unanchorEnd appends an any-byte self-loop after fa's accepting states,
// letting the match continue past the end of the pattern
// (original_source/fa_regexp.c's fa_regexp_end_unanchor): every
// previously-accepting state gets an epsilon transition into the new
// state and loses its own accepting flag, so acceptance now happens only
// in the shared sink.
func unanchorEnd(fa *automaton.FA) *automaton.FA {
	var toRedirect []automaton.StateID
	for _, s := range fa.States() {
		if s.Accepting() {
			toRedirect = append(toRedirect, s.ID())
		}
	}

	any := anyByteLoop(fa)
	fa.State(any).SetAccepting(true)

	for _, id := range toRedirect {
		fa.State(id).SetAccepting(false)
		fa.AddTrans(id, automaton.Epsilon, any)
	}
	return fa
}
