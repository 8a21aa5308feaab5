package automaton

// String builds a linear-chain FA accepting exactly the given byte
// sequence (spec.md §4.1 "String constructor").
func String(str []byte, limits Limits) (*FA, error) {
	return buildString(str, false, limits)
}

// StringIcase builds a linear-chain FA accepting str case-insensitively:
// for every alphabetic byte, the transition also carries the opposite-case
// byte.
func StringIcase(str []byte, limits Limits) (*FA, error) {
	return buildString(str, true, limits)
}

func buildString(str []byte, icase bool, limits Limits) (*FA, error) {
	fa := New(nil)
	prev := fa.AddState()
	fa.SetStart(prev)

	for _, b := range str {
		next := fa.AddState()
		fa.AddTrans(prev, Symbol(b), next)
		if icase {
			if opp, ok := oppositeCase(b); ok {
				fa.AddTrans(prev, Symbol(opp), next)
			}
		}
		prev = next
	}
	fa.State(prev).SetAccepting(true)

	if err := limits.Check(fa); err != nil {
		return nil, err
	}
	return fa, nil
}

// oppositeCase returns the opposite-case byte for an ASCII letter, per
// spec.md §9's decision to fix byte classification to the POSIX C locale.
func oppositeCase(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - ('a' - 'A'), true
	case b >= 'A' && b <= 'Z':
		return b + ('a' - 'A'), true
	default:
		return 0, false
	}
}
