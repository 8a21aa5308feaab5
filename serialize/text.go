// Package serialize provides the textual round-trip format (spec.md §6
// "Textual FA file format") and the GraphViz plain/TikZ emitters (external
// collaborators named in spec.md §1, grounded on original_source/fa_text.c
// and fa_graphviz*.c).
package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coregx/fa/automaton"
)

// WriteText emits fa in the line-oriented textual format (spec.md §6):
// a non-indented "N:[flags]" header per state (flags: s=start, t=accepting)
// in insertion order, followed by indented "SYMBOL -> M" transition lines,
// one per byte of every transition range. label, if non-empty, is emitted
// as a leading "# label" comment line, matching
// original_source/fa_text.c's fa_text_output_ex.
func WriteText(w io.Writer, fa *automaton.FA, label string) error {
	bw := bufio.NewWriter(w)

	ids := assignOneBased(fa)

	if label != "" {
		if _, err := fmt.Fprintf(bw, "# %s\n", label); err != nil {
			return err
		}
	}

	for _, s := range fa.States() {
		n := ids[s.ID()]
		var flags strings.Builder
		if s.Accepting() {
			flags.WriteByte('t')
		}
		if s.ID() == fa.Start() {
			flags.WriteByte('s')
		}
		if _, err := fmt.Fprintf(bw, "%d:%s\n", n, flags.String()); err != nil {
			return err
		}

		for _, t := range s.Transitions() {
			dest := ids[t.Dest]
			if t.IsEpsilon() {
				if _, err := fmt.Fprintf(bw, "  -> %d\n", dest); err != nil {
					return err
				}
				continue
			}
			for b := int(t.SymFrom); b <= int(t.SymTo); b++ {
				if _, err := fmt.Fprintf(bw, "  %s -> %d\n", symbolText(byte(b)), dest); err != nil {
					return err
				}
			}
		}
	}

	return bw.Flush()
}

// assignOneBased assigns each state a stable 1-based output id in
// insertion order, the same numbering original_source/fa_text.c's
// opaque_temp walk produces.
func assignOneBased(fa *automaton.FA) map[automaton.StateID]int {
	ids := make(map[automaton.StateID]int, fa.StateCount())
	n := 1
	for _, s := range fa.States() {
		ids[s.ID()] = n
		n++
	}
	return ids
}

// symbolText renders a byte as a single printable character, or as
// "0xHH" when not printable (spec.md §6: "SYMBOL is a single printable
// byte, empty (ε), or 0xHH").
func symbolText(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%x", b)
}

// ReadText parses the textual format back into an FA (spec.md §6 round
// trip), grounded on original_source/fa_text.c's fa_text_input_ex:
// state numbers in the file need not be contiguous or 1-based — state
// references are resolved on first mention and states are created
// lazily as either a header or a transition destination is seen.
func ReadText(r io.Reader) (*automaton.FA, error) {
	fa := automaton.New(nil)
	byNum := make(map[int]automaton.StateID)

	stateFor := func(n int) automaton.StateID {
		if id, ok := byNum[n]; ok {
			return id
		}
		id := fa.AddState()
		byNum[n] = id
		return id
	}

	var current automaton.StateID
	haveCurrent := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimLeft(line, " ")
		indented := trimmed != line

		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trimmed == "" {
			continue
		}

		if indented {
			if !haveCurrent {
				continue
			}
			arrow := strings.Index(trimmed, "->")
			if arrow < 0 {
				continue
			}
			lhs := strings.TrimSpace(trimmed[:arrow])
			rhsNum, err := strconv.Atoi(strings.TrimSpace(trimmed[arrow+2:]))
			if err != nil {
				return nil, &automaton.Error{Kind: automaton.ErrParse, Message: "malformed transition destination: " + trimmed}
			}
			dest := stateFor(rhsNum)

			if lhs == "" {
				fa.AddTrans(current, automaton.Epsilon, dest)
				continue
			}
			b, err := parseSymbolText(lhs)
			if err != nil {
				return nil, err
			}
			fa.AddTrans(current, automaton.Symbol(b), dest)
			continue
		}

		colon := strings.Index(trimmed, ":")
		if colon < 0 {
			continue
		}
		numStr := trimmed[:colon]
		flags := trimmed[colon+1:]
		num, err := strconv.Atoi(numStr)
		if err != nil {
			return nil, &automaton.Error{Kind: automaton.ErrParse, Message: "malformed state header: " + trimmed}
		}
		current = stateFor(num)
		haveCurrent = true

		if strings.Contains(flags, "t") {
			fa.State(current).SetAccepting(true)
		}
		if strings.Contains(flags, "s") {
			fa.SetStart(current)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return fa, nil
}

// parseSymbolText parses a SYMBOL token: a single printable byte, or
// 0xHH hex notation.
func parseSymbolText(s string) (byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, &automaton.Error{Kind: automaton.ErrParse, Message: "malformed 0xHH symbol: " + s}
		}
		return byte(v), nil
	}
	if len(s) != 1 {
		return 0, &automaton.Error{Kind: automaton.ErrParse, Message: "malformed symbol: " + s}
	}
	return s[0], nil
}
