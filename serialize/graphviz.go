package serialize

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/coregx/fa/automaton"
)

// StateNameFunc returns the display label for an accepting state's
// opaque payload (GraphViz node label); non-accepting states get an
// empty label, matching original_source/fa_graphviz.c's default
// state_name callback.
type StateNameFunc func(s *automaton.State) string

// DefaultStateName is the fallback StateNameFunc: the fmt-formatted
// opaque value for accepting states, empty otherwise.
func DefaultStateName(s *automaton.State) string {
	if !s.Accepting() {
		return ""
	}
	if s.Opaque == nil {
		return ""
	}
	return fmt.Sprintf("%v", s.Opaque)
}

// groupedTrans is a run of transitions from the same source to the same
// destination, merged for label rendering the way
// original_source/fa_graphviz.c's trans_cmp + grouping loop does.
type groupedTrans struct {
	dest automaton.StateID
	syms []automaton.Transition
}

func groupTransitions(trans []automaton.Transition, destOrder map[automaton.StateID]int) []groupedTrans {
	sorted := append([]automaton.Transition(nil), trans...)
	sort.Slice(sorted, func(i, j int) bool {
		di, dj := destOrder[sorted[i].Dest], destOrder[sorted[j].Dest]
		if di != dj {
			return di < dj
		}
		return sorted[i].SymFrom < sorted[j].SymFrom
	})

	var out []groupedTrans
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Dest == sorted[i].Dest {
			j++
		}
		out = append(out, groupedTrans{dest: sorted[i].Dest, syms: sorted[i:j]})
		i = j
	}
	return out
}

func dotEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func dotSymbolText(t automaton.Transition, epsilon string) string {
	var b strings.Builder
	if t.IsEpsilon() {
		b.WriteString(epsilon)
	} else {
		writeByteLabel(&b, byte(t.SymFrom))
		if t.SymTo-t.SymFrom > 1 {
			b.WriteByte('-')
			writeByteLabel(&b, byte(t.SymTo))
		} else if t.SymTo-t.SymFrom == 1 {
			b.WriteByte(',')
			writeByteLabel(&b, byte(t.SymTo))
		}
	}
	return dotEscape(b.String())
}

var cEscapes = map[byte]string{
	0x00: `\0`, 0x07: `\a`, '\t': `\t`, '\n': `\n`,
	0x0b: `\v`, '\f': `\f`, '\r': `\r`,
}

func writeByteLabel(b *strings.Builder, c byte) {
	if c >= 0x20 && c < 0x7f {
		b.WriteByte(c)
		return
	}
	if esc, ok := cEscapes[c]; ok {
		b.WriteString(esc)
		return
	}
	fmt.Fprintf(b, "0x%x", c)
}

// WriteGraphViz emits fa as a GraphViz "dot" digraph (spec.md §6 `dot:`
// format), grounded on original_source/fa_graphviz.c's fa_graphviz_output_ex:
// a start-point node, one node per state (doublecircle if accepting,
// labeled via nameFn), and one edge per (source, destination) pair with
// a comma/range-joined symbol label.
func WriteGraphViz(w io.Writer, fa *automaton.FA, label string, nameFn StateNameFunc) error {
	if nameFn == nil {
		nameFn = DefaultStateName
	}
	bw := bufio.NewWriter(w)
	ids := assignOneBased(fa)

	fmt.Fprintf(bw, "digraph fa {\n")
	fmt.Fprintf(bw, "\trankdir=LR;\n")
	fmt.Fprintf(bw, "\tnode [shape=circle style=filled fillcolor=\"#f0f0f0\"]\n")
	if label != "" {
		fmt.Fprintf(bw, "\tgraph [label=\"%s\"]\n", dotEscape(label))
	}
	fmt.Fprintf(bw, "\tstart [shape=point];\n")
	fmt.Fprintf(bw, "\tstart -> %d\n", ids[fa.Start()])

	for _, s := range fa.States() {
		fmt.Fprintf(bw, "\t%d [label=\"%s\"", ids[s.ID()], dotEscape(nameFn(s)))
		if s.Accepting() {
			fmt.Fprintf(bw, " shape=doublecircle")
		}
		fmt.Fprintf(bw, "];\n")
	}

	for _, s := range fa.States() {
		for _, g := range groupTransitions(s.Transitions(), ids) {
			fmt.Fprintf(bw, "\t%d -> %d [label=\"", ids[s.ID()], ids[g.dest])
			parts := make([]string, len(g.syms))
			for i, t := range g.syms {
				parts[i] = dotSymbolText(t, "\u0190") // UTF-8 epsilon (Ɛ, matching 0xc6 0x90)
			}
			fmt.Fprintf(bw, "%s\"];\n", strings.Join(parts, ","))
		}
	}

	fmt.Fprintf(bw, "}\n")
	return bw.Flush()
}

// WriteGraphVizTikZ emits fa as a TikZ `tikzpicture` automaton drawing
// (spec.md §6 `dottikz:` format), grounded on
// original_source/fa_graphviz_tikz.c: same node/edge structure as the
// plain GraphViz emitter but in `\node`/`\draw` TikZ syntax, with
// epsilon rendered as the literal "\epsilon" macro instead of a UTF-8
// glyph.
func WriteGraphVizTikZ(w io.Writer, fa *automaton.FA, nameFn StateNameFunc) error {
	if nameFn == nil {
		nameFn = func(s *automaton.State) string { return fmt.Sprintf("%d", s.ID()) }
	}
	bw := bufio.NewWriter(w)
	ids := assignOneBased(fa)

	fmt.Fprintf(bw, "\\begin{tikzpicture}[shorten >=1pt,node distance=2cm,auto]\n")

	for _, s := range fa.States() {
		style := "state"
		if s.Accepting() {
			style = "state,accepting"
		}
		fmt.Fprintf(bw, "  \\node[%s] (q%d) {%s};\n", style, ids[s.ID()], dotEscape(nameFn(s)))
	}
	fmt.Fprintf(bw, "  \\node[initial,inner sep=0pt] (start%d) [above of=q%d] {};\n", ids[fa.Start()], ids[fa.Start()])
	fmt.Fprintf(bw, "  \\path (start%d) edge (q%d);\n", ids[fa.Start()], ids[fa.Start()])

	for _, s := range fa.States() {
		for _, g := range groupTransitions(s.Transitions(), ids) {
			parts := make([]string, len(g.syms))
			for i, t := range g.syms {
				parts[i] = dotSymbolText(t, "\\epsilon")
			}
			fmt.Fprintf(bw, "  \\path (q%d) edge node {%s} (q%d);\n", ids[s.ID()], strings.Join(parts, ","), ids[g.dest])
		}
	}

	fmt.Fprintf(bw, "\\end{tikzpicture}\n")
	return bw.Flush()
}
