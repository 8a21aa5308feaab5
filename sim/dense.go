package sim

import (
	"github.com/coregx/fa/accel"
	"github.com/coregx/fa/automaton"
)

// denseNode is one node of a Dense table: a flag byte (only ACCEPTING is
// modeled; MARKED is a construction-time-only transient flag and never
// survives into the runtime form), an opaque payload, and a 256-entry
// byte->next-node table.
//
// selfLo/selfHi/hasSelfLoop cache the widest contiguous byte range the node
// loops back to itself on (e.g. the any-byte padding states regexpfa splices
// in for an unanchored pattern, spec.md §6), letting Run skip whole runs of
// such bytes via accel.FindNotInRange instead of walking next[] one byte at
// a time.
type denseNode struct {
	accepting   bool
	opaque      interface{}
	next        [256]uint32
	selfLo      byte
	selfHi      byte
	hasSelfLoop bool
}

// minSelfLoopWidth is the shortest self-loop run worth accelerating:
// shorter runs aren't worth FindNotInRange's chunk setup over a plain byte
// loop.
const minSelfLoopWidth = 8

// widestSelfLoop scans next for the widest contiguous range of bytes that
// all map back to self, returning ok == false if no such range reaches
// minSelfLoopWidth.
func widestSelfLoop(next [256]uint32, self uint32) (lo, hi byte, ok bool) {
	bestLo, bestLen := 0, 0
	curLo, curLen := -1, 0
	for b := 0; b <= 256; b++ {
		if b < 256 && next[b] == self {
			if curLo < 0 {
				curLo = b
			}
			curLen++
			continue
		}
		if curLen > bestLen {
			bestLo, bestLen = curLo, curLen
		}
		curLo, curLen = -1, 0
	}
	if bestLen < minSelfLoopWidth {
		return 0, 0, false
	}
	return byte(bestLo), byte(bestLo + bestLen - 1), true
}

// Dense is the dense 256-way jump-table runtime representation (spec.md
// §4.4 "Dense form"). Node 0 is always the rejection sink. Read-only once
// built; safe to share across goroutines (run cursors are per-call).
type Dense struct {
	start uint32
	nodes []denseNode
}

// BuildDense walks dfa (which must already be free of ε transitions —
// typically the output of determinize/minimize) and constructs a Dense
// table, assigning indices 1..N to dfa's states in insertion order and
// filling each node's per-byte table by expanding every transition range
// (spec.md §4.4 "Constructed by walking the minimized DFA...").
func BuildDense(dfa *automaton.FA) *Dense {
	nodes := make([]denseNode, 1, dfa.StateCount()+1) // nodes[0] = reject sink, zero value
	idOf := make(map[automaton.StateID]uint32, dfa.StateCount())

	for _, s := range dfa.States() {
		idOf[s.ID()] = uint32(len(nodes))
		nodes = append(nodes, denseNode{accepting: s.Accepting(), opaque: s.Opaque})
	}

	for _, s := range dfa.States() {
		n := &nodes[idOf[s.ID()]]
		for _, t := range s.Transitions() {
			if t.IsEpsilon() {
				continue
			}
			dest := idOf[t.Dest]
			for b := int(t.SymFrom); b <= int(t.SymTo); b++ {
				n.next[b] = dest
			}
		}
	}

	for i := 1; i < len(nodes); i++ {
		if lo, hi, ok := widestSelfLoop(nodes[i].next, uint32(i)); ok {
			nodes[i].selfLo, nodes[i].selfHi, nodes[i].hasSelfLoop = lo, hi, true
		}
	}

	start := idOf[dfa.Start()]
	return &Dense{start: start, nodes: nodes}
}

// DenseRun is a mutable run cursor over a Dense table (spec.md §4.4
// "Run contract").
type DenseRun struct {
	current uint32
	Opaque  interface{}
}

// Init returns a fresh run cursor positioned at d's start node.
func (d *Dense) Init() *DenseRun {
	return &DenseRun{current: d.start}
}

// Run steps run forward over data, one byte at a time. Returns Reject the
// instant the cursor reaches node 0 (remaining bytes are not consumed);
// otherwise returns Accept (with run.Opaque set) if the cursor lands on an
// accepting node after all of data is consumed, else More.
//
// While the cursor sits on a node with a cached self-loop range (typically
// the any-byte padding regexpfa adds for an unanchored pattern), Run uses
// accel.FindNotInRange to skip directly to the first byte that would leave
// the node, rather than re-consulting next[] for every byte in the run.
func (d *Dense) Run(run *DenseRun, data []byte) Result {
	i := 0
	for i < len(data) {
		node := &d.nodes[run.current]
		if node.hasSelfLoop {
			i = accel.FindNotInRange(data, i, node.selfLo, node.selfHi)
			if i >= len(data) {
				break
			}
		}
		run.current = node.next[data[i]]
		if run.current == 0 {
			return Reject
		}
		i++
	}
	node := d.nodes[run.current]
	if node.accepting {
		run.Opaque = node.opaque
		return Accept
	}
	return More
}
