package sim

import (
	"math/bits"

	"github.com/coregx/fa/accel"
	"github.com/coregx/fa/automaton"
)

// compNode is one node of a Compressed table: a 256-bit change bitmap, an
// opaque payload, and a variable-length array of next-node indices
// (spec.md §4.4 "Bitmap-compressed form"). selfLo/selfHi/hasSelfLoop mirror
// denseNode's cached self-loop range, carried over from the Dense table
// BuildCompressed is derived from.
type compNode struct {
	changeBitmap [4]uint64
	opaque       interface{}
	nexts        []uint32
	selfLo       byte
	selfHi       byte
	hasSelfLoop  bool
}

// Compressed is the bitmap-compressed runtime representation. Per node,
// one next-node entry is stored at each byte position where the
// destination differs from the previous byte's destination; byte 0 always
// contributes the first entry. The ACCEPTING flag is packed into bit 0 of
// the change bitmap, which is otherwise unused since byte 0's entry is
// unconditional (spec.md §4.4).
//
// Lookup convention (this module's concrete resolution of the spec's
// popcount rule): index(b) is the population count of the change bitmap
// over bit positions [0, b], with bit 0 always excluded from the count
// (it encodes ACCEPTING, not a change). This is equivalent to the spec's
// "count bits set strictly before b, minus one if bit 0 is set" for every
// b except that it also correctly folds in a change bit set exactly at
// position b itself, which is required for that byte's own new entry to
// be found — see BuildCompressed/Lookup, which are written to be mutually
// consistent under this convention.
type Compressed struct {
	start uint32
	nodes []compNode
}

// BuildCompressed walks dfa the same way BuildDense does, but stores each
// node's 256-entry table in run-length compressed form.
func BuildCompressed(dfa *automaton.FA) *Compressed {
	dense := BuildDense(dfa)

	nodes := make([]compNode, len(dense.nodes))
	for i, dn := range dense.nodes {
		var bm [4]uint64
		nexts := make([]uint32, 0, 1)
		nexts = append(nexts, dn.next[0])

		prev := dn.next[0]
		for b := 1; b < 256; b++ {
			if dn.next[b] != prev {
				setBit(&bm, b)
				nexts = append(nexts, dn.next[b])
				prev = dn.next[b]
			}
		}
		if dn.accepting {
			setBit(&bm, 0)
		}

		nodes[i] = compNode{
			changeBitmap: bm,
			opaque:       dn.opaque,
			nexts:        nexts,
			selfLo:       dn.selfLo,
			selfHi:       dn.selfHi,
			hasSelfLoop:  dn.hasSelfLoop,
		}
	}

	return &Compressed{start: dense.start, nodes: nodes}
}

func setBit(bm *[4]uint64, b int) {
	bm[b/64] |= 1 << (uint(b) % 64)
}

func testBit(bm [4]uint64, b int) bool {
	return bm[b/64]&(1<<(uint(b)%64)) != 0
}

// lookupIndex returns the index into a node's nexts array applicable to
// query byte b, per this module's popcount convention documented on
// Compressed.
func lookupIndex(bm [4]uint64, b byte) int {
	n := int(b)
	count := 0
	for w := 0; w < 4; w++ {
		word := bm[w]
		if w == 0 {
			word &^= 1 // bit 0 encodes ACCEPTING, never a change entry
		}
		lo := w * 64
		hi := lo + 63
		if n < lo {
			break
		}
		if n >= hi {
			count += bits.OnesCount64(word)
			continue
		}
		shift := uint(n-lo) + 1
		mask := uint64(1)<<shift - 1
		count += bits.OnesCount64(word & mask)
		break
	}
	return count
}

// CompressedRun is a mutable run cursor over a Compressed table.
type CompressedRun struct {
	current uint32
	Opaque  interface{}
}

// Init returns a fresh run cursor positioned at c's start node.
func (c *Compressed) Init() *CompressedRun {
	return &CompressedRun{current: c.start}
}

// Run steps run forward over data exactly like Dense.Run, using
// lookupIndex to resolve each byte's next node from the compressed table,
// and the same accel.FindNotInRange self-loop skip Dense.Run uses.
func (c *Compressed) Run(run *CompressedRun, data []byte) Result {
	i := 0
	for i < len(data) {
		node := &c.nodes[run.current]
		if node.hasSelfLoop {
			i = accel.FindNotInRange(data, i, node.selfLo, node.selfHi)
			if i >= len(data) {
				break
			}
		}
		idx := lookupIndex(node.changeBitmap, data[i])
		run.current = node.nexts[idx]
		if run.current == 0 {
			return Reject
		}
		i++
	}
	node := c.nodes[run.current]
	if testBit(node.changeBitmap, 0) {
		run.Opaque = node.opaque
		return Accept
	}
	return More
}
