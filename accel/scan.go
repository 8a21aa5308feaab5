package accel

import "encoding/binary"

// FindNotInRange returns the index of the first byte in data (starting at
// from) that does NOT lie in the inclusive range [lo, hi], or len(data) if
// every byte from that point on is in range. This is the primitive sim's
// dense/compressed Run loops use to skip an entire run of bytes a uniform
// self-loop state accepts unchanged, rather than re-consulting the
// transition table one byte at a time.
//
// Each 8-byte (or, with wideUnroll, 32-byte) window is read as one or more
// words — the same word-at-a-time loading simd/memchr_generic_impl.go
// uses to amortize slice bounds-checking over several bytes per
// iteration — then tested byte-by-byte via shifts, rather than with a
// whole-word bitwise range trick: a per-byte SWAR subtract-and-mask
// range check (unlike memchrGeneric's exact-match case) needs its
// threshold to fit within half the byte's bit width to avoid
// cross-lane borrow, which doesn't hold for an arbitrary [lo,hi] pair,
// so the per-byte comparison stays scalar.
func FindNotInRange(data []byte, from int, lo, hi byte) int {
	n := len(data)
	if from >= n {
		return n
	}
	idx := from

	chunk := 8
	if wideUnroll {
		chunk = 32
	}

	for idx+chunk <= n {
		if p, ok := scanChunkOutOfRange(data[idx:idx+chunk], lo, hi); ok {
			return idx + p
		}
		idx += chunk
	}

	for idx < n {
		if data[idx] < lo || data[idx] > hi {
			return idx
		}
		idx++
	}
	return n
}

// scanChunkOutOfRange tests a chunk (8 or 32 bytes) for the first byte
// outside [lo, hi], loading 8 bytes at a time as a little-endian word to
// cut the number of bounds-checked slice reads.
func scanChunkOutOfRange(chunk []byte, lo, hi byte) (int, bool) {
	for off := 0; off+8 <= len(chunk); off += 8 {
		w := binary.LittleEndian.Uint64(chunk[off:])
		for i := 0; i < 8; i++ {
			b := byte(w >> (8 * i))
			if b < lo || b > hi {
				return off + i, true
			}
		}
	}
	return 0, false
}
