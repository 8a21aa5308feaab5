// Package regexpfa compiles a regexp/syntax AST into a byte-alphabet
// automaton.FA (spec.md §6 "Regexp front-end"), grounded on
// original_source/fa_regexp.c: regexp surface syntax itself is treated as
// an external collaborator (spec.md §1's "Out of scope"), here played by
// the Go standard library's regexp/syntax parser rather than the
// original's hand-written yacc grammar.
package regexpfa

import (
	"regexp/syntax"

	"github.com/coregx/fa/automaton"
	"github.com/coregx/fa/charclass"
)

// Compile parses pattern and compiles it into an FA recognizing the same
// byte language, applying the anchor-padding rule from spec.md §6: a
// leading '^' suppresses start-padding, a trailing unescaped '$'
// suppresses end-padding; absent anchors, an any-byte self-loop is added
// on the missing side so the FA matches anywhere in the input.
func Compile(pattern string, limits automaton.Limits) (*automaton.FA, error) {
	body, startAnchor, endAnchor := stripAnchors(pattern)

	re, err := syntax.Parse(body, syntax.Perl)
	if err != nil {
		pos := 0
		if se, ok := err.(*syntax.Error); ok {
			pos = locateErrorPos(body, se.Expr)
		}
		if startAnchor {
			pos++
		}
		return nil, &automaton.Error{Kind: automaton.ErrParse, Message: err.Error(), Pos: pos}
	}

	fa, cerr := compileNode(re, limits)
	if cerr != nil {
		if fe, ok := cerr.(*automaton.Error); ok && fe.Kind == automaton.ErrParse && startAnchor {
			fe.Pos++
		}
		return nil, cerr
	}

	if !startAnchor {
		fa = unanchorStart(fa)
	}
	if !endAnchor {
		fa = unanchorEnd(fa)
	}

	if err := limits.Check(fa); err != nil {
		return nil, err
	}
	return fa, nil
}

// compileNode recursively compiles a single regexp/syntax AST node into a
// freshly built, fully owned FA (every returned FA is a new composite: the
// combinators it is built from — ConcatList, UnionList, KStar, Repeat —
// all consume their inputs, so no state is ever shared between sibling
// calls).
func compileNode(re *syntax.Regexp, limits automaton.Limits) (*automaton.FA, error) {
	switch re.Op {
	case syntax.OpLiteral:
		return compileLiteral(re, limits)
	case syntax.OpCharClass:
		return compileCharClass(re.Rune, limits)
	case syntax.OpAnyChar:
		return compileAnyByte(limits)
	case syntax.OpAnyCharNotNL:
		return compileAnyByteNotNL(limits)
	case syntax.OpConcat:
		return compileConcat(re.Sub, limits)
	case syntax.OpAlternate:
		return compileAlternate(re.Sub, limits)
	case syntax.OpStar:
		sub, err := compileNode(re.Sub[0], limits)
		if err != nil {
			return nil, err
		}
		return automaton.KStar(sub), nil
	case syntax.OpPlus:
		sub, err := compileNode(re.Sub[0], limits)
		if err != nil {
			return nil, err
		}
		return automaton.Repeat(sub, 1, 0, limits)
	case syntax.OpQuest:
		sub, err := compileNode(re.Sub[0], limits)
		if err != nil {
			return nil, err
		}
		return automaton.Repeat(sub, 0, 1, limits)
	case syntax.OpRepeat:
		return compileRepeat(re, limits)
	case syntax.OpCapture:
		// Non-goal: capturing groups (spec.md §1). The group boundary
		// carries no meaning in the byte-language model, so compile the
		// captured sub-expression as a plain, non-capturing group.
		return compileNode(re.Sub[0], limits)
	case syntax.OpEmptyMatch:
		return compileEmptyMatch(limits)
	case syntax.OpNoMatch:
		return compileNoMatch(limits)
	default:
		return nil, &automaton.Error{
			Kind: automaton.ErrParse,
			Message: "unsupported regexp construct (lookaround and anchors other than " +
				"a leading ^ or trailing $ are not supported): " + opName(re.Op),
		}
	}
}

func opName(op syntax.Op) string {
	switch op {
	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText:
		return "anchor"
	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return "word boundary"
	default:
		return op.String()
	}
}

// compileLiteral compiles a run of literal runes as a concatenation of
// single bytes: the byte alphabet is non-goal-excluded from UTF-8
// interpretation (spec.md §1), so each rune is truncated to its low byte,
// matching the original C engine's char-based (not UTF-8) literal model.
func compileLiteral(re *syntax.Regexp, limits automaton.Limits) (*automaton.FA, error) {
	if len(re.Rune) == 0 {
		return compileEmptyMatch(limits)
	}
	str := make([]byte, len(re.Rune))
	for i, r := range re.Rune {
		str[i] = byte(r)
	}
	if re.Flags&syntax.FoldCase != 0 {
		return automaton.StringIcase(str, limits)
	}
	return automaton.String(str, limits)
}

// compileCharClass flattens a regexp/syntax rune-range class onto the
// 256-byte alphabet, clamping any range above 0xFF (Unicode-aware
// matching beyond raw bytes is a non-goal, spec.md §1).
func compileCharClass(ranges []rune, limits automaton.Limits) (*automaton.FA, error) {
	var bm charclass.Bitmap
	for i := 0; i+1 < len(ranges); i += 2 {
		lo, hi := ranges[i], ranges[i+1]
		if lo > 0xFF {
			continue
		}
		if hi > 0xFF {
			hi = 0xFF
		}
		bm.SetRange(byte(lo), byte(hi))
	}
	return charclass.BitmapToFA(bm, limits)
}

func compileAnyByte(limits automaton.Limits) (*automaton.FA, error) {
	var bm charclass.Bitmap
	bm.SetRange(0x00, 0xFF)
	return charclass.BitmapToFA(bm, limits)
}

func compileAnyByteNotNL(limits automaton.Limits) (*automaton.FA, error) {
	var bm charclass.Bitmap
	bm.SetRange(0x00, 0xFF)
	bm.Clear('\n')
	return charclass.BitmapToFA(bm, limits)
}

func compileConcat(subs []*syntax.Regexp, limits automaton.Limits) (*automaton.FA, error) {
	if len(subs) == 0 {
		return compileEmptyMatch(limits)
	}
	parts := make([]*automaton.FA, 0, len(subs))
	for _, sub := range subs {
		fa, err := compileNode(sub, limits)
		if err != nil {
			return nil, err
		}
		parts = append(parts, fa)
	}
	return automaton.ConcatList(parts, limits)
}

func compileAlternate(subs []*syntax.Regexp, limits automaton.Limits) (*automaton.FA, error) {
	if len(subs) == 0 {
		return compileEmptyMatch(limits)
	}
	parts := make([]*automaton.FA, 0, len(subs))
	for _, sub := range subs {
		fa, err := compileNode(sub, limits)
		if err != nil {
			return nil, err
		}
		parts = append(parts, fa)
	}
	return automaton.UnionList(parts, limits)
}

// compileRepeat compiles a{min,max}. regexp/syntax reports an unbounded
// upper bound as Max == -1; automaton.Repeat instead uses max == 0 for
// "unbounded", so the two conventions are reconciled here. The exact
// {0,0} case is special-cased to an empty match since automaton.Repeat's
// max == 0 always means unbounded, never "exactly zero".
func compileRepeat(re *syntax.Regexp, limits automaton.Limits) (*automaton.FA, error) {
	if re.Min == 0 && re.Max == 0 {
		return compileEmptyMatch(limits)
	}

	sub, err := compileNode(re.Sub[0], limits)
	if err != nil {
		return nil, err
	}

	max := re.Max
	if max == -1 {
		max = 0
	}
	return automaton.Repeat(sub, re.Min, max, limits)
}

// compileEmptyMatch builds a single accepting state matching only the
// empty byte string.
func compileEmptyMatch(limits automaton.Limits) (*automaton.FA, error) {
	fa := automaton.New(nil)
	s := fa.AddState()
	fa.SetStart(s)
	fa.State(s).SetAccepting(true)
	if err := limits.Check(fa); err != nil {
		return nil, err
	}
	return fa, nil
}

// compileNoMatch builds an FA with no accepting state at all, matching
// syntax.OpNoMatch's "matches nothing" semantics.
func compileNoMatch(limits automaton.Limits) (*automaton.FA, error) {
	fa := automaton.New(nil)
	s := fa.AddState()
	fa.SetStart(s)
	if err := limits.Check(fa); err != nil {
		return nil, err
	}
	return fa, nil
}
