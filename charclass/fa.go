package charclass

import "github.com/coregx/fa/automaton"

// ToFA flattens c under outerNegate/icase and builds the two-state FA
// accepting exactly one byte from the resulting set (spec.md §4.1
// "Character class → FA"): one transition per set bit, left to the
// insertion algorithm in automaton.FA.AddTrans to coalesce into ranges.
// Fails with ErrEmptyClass if flattening yields zero bytes.
func ToFA(c *Class, outerNegate, icase bool, limits automaton.Limits) (*automaton.FA, error) {
	bm := c.Flatten(outerNegate, icase)
	return BitmapToFA(bm, limits)
}

// BitmapToFA builds the two-state FA directly from an already-flattened
// bitmap, for callers (e.g. regexpfa) that compute the bitmap themselves.
func BitmapToFA(bm Bitmap, limits automaton.Limits) (*automaton.FA, error) {
	if bm.IsEmpty() {
		return nil, automaton.NewEmptyClassError()
	}

	fa := automaton.New(nil)
	start := fa.AddState()
	accept := fa.AddState()
	fa.SetStart(start)
	fa.State(accept).SetAccepting(true)

	for _, b := range bm.Bytes() {
		fa.AddTrans(start, automaton.Symbol(b), accept)
	}

	if err := limits.Check(fa); err != nil {
		return nil, err
	}
	return fa, nil
}
