// Package binpattern flattens ordered bit-length/value-mask part lists
// into the linear chain FA that ToFA constructs (spec.md
// §3 "Binary pattern", §4.1 "Binary pattern → FA").
package binpattern

import "github.com/coregx/fa/automaton"

// Part is one piece of a binary pattern: Bits bits wide, with a concrete
// value where Mask has a 1 bit and a wildcard where Mask has a 0 bit.
// Value's bits beyond Bits-1 are ignored.
type Part struct {
	Bits  int
	Value uint64
	Mask  uint64
}

// Pattern is an ordered list of parts, concatenated bit-for-bit (spec.md
// §3: "The concatenated bit length must be a multiple of 8").
type Pattern struct {
	Parts []Part
}

// Add appends a part and returns the pattern for chaining.
func (p *Pattern) Add(bits int, value, mask uint64) *Pattern {
	p.Parts = append(p.Parts, Part{Bits: bits, Value: value, Mask: mask})
	return p
}

// flatten packs p's parts into a single bitstream then slices it into
// byte-aligned (value, mask) pairs, failing with ErrNotByteAligned if the
// total bit length is not a multiple of 8.
func (p *Pattern) flatten() (values, masks []byte, err error) {
	total := 0
	for _, part := range p.Parts {
		total += part.Bits
	}
	if total%8 != 0 {
		return nil, nil, automaton.NewNotByteAlignedError()
	}

	// Pack MSB-first within the bitstream, matching the wire order a
	// reader of "<0xA:4, 0:4>" would expect: the first part occupies the
	// highest-order bits of the stream.
	bits := make([]byte, total)      // 0/1 value bits
	maskBits := make([]byte, total) // 0/1 mask bits
	pos := 0
	for _, part := range p.Parts {
		for i := part.Bits - 1; i >= 0; i-- {
			bits[pos] = byte((part.Value >> uint(i)) & 1)
			maskBits[pos] = byte((part.Mask >> uint(i)) & 1)
			pos++
		}
	}

	nbytes := total / 8
	values = make([]byte, nbytes)
	masks = make([]byte, nbytes)
	for i := 0; i < nbytes; i++ {
		var v, m byte
		for j := 0; j < 8; j++ {
			v = v<<1 | bits[i*8+j]
			m = m<<1 | maskBits[i*8+j]
		}
		values[i] = v
		masks[i] = m
	}
	return values, masks, nil
}

// ToFA flattens p and builds the linear-chain FA (spec.md §4.1 "Binary
// pattern → FA"): one chain state per byte position, with a transition
// per byte value consistent with that position's (value, mask) pair from
// the previous chain state to a newly appended state; the last state is
// accepting.
func ToFA(p *Pattern, limits automaton.Limits) (*automaton.FA, error) {
	values, masks, err := p.flatten()
	if err != nil {
		return nil, err
	}

	fa := automaton.New(nil)
	prev := fa.AddState()
	fa.SetStart(prev)

	for i := range values {
		next := fa.AddState()
		for _, b := range consistentBytes(values[i], masks[i]) {
			fa.AddTrans(prev, automaton.Symbol(b), next)
		}
		prev = next
	}
	fa.State(prev).SetAccepting(true)

	if err := limits.Check(fa); err != nil {
		return nil, err
	}
	return fa, nil
}

// consistentBytes enumerates every byte value agreeing with value on every
// bit where mask is 1, varying freely over the bits where mask is 0.
func consistentBytes(value, mask byte) []byte {
	var out []byte
	for v := 0; v < 256; v++ {
		b := byte(v)
		if b&mask == value&mask {
			out = append(out, b)
		}
	}
	return out
}
