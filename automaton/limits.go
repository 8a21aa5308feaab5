package automaton

// Limits bounds the state/transition growth a combinator or transform is
// allowed to produce before failing with ErrLimitExceeded (spec.md §4.1,
// §4.2). Zero fields mean "unbounded".
type Limits struct {
	MaxStates int
	MaxTrans  int
}

// Check reports an ErrLimitExceeded if fa would (or already does) exceed l.
func (l Limits) Check(fa *FA) error {
	if l.MaxStates > 0 && fa.StateCount() > l.MaxStates {
		return newError(ErrLimitExceeded, "state count exceeds configured limit")
	}
	if l.MaxTrans > 0 && fa.TransCount() > l.MaxTrans {
		return newError(ErrLimitExceeded, "transition count exceeds configured limit")
	}
	return nil
}
