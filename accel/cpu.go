// Package accel provides pure-Go SWAR (SIMD-within-a-register) byte-range
// scanning used by sim to fast-forward through runs of bytes a DFA state
// consumes without changing its verdict (e.g. the any-byte self-loop
// padding regexpfa.Compile splices in for an unanchored pattern). It is
// inspired by the teacher's simd package (simd/memchr_generic_impl.go's
// zero-byte-detection technique, simd/ascii_amd64.go's CPU-gated
// dispatch) but carries no assembly: there is no vectorized instruction
// path behind the gate, only a pure Go SWAR loop whose unroll factor is
// tuned by the detected CPU.
package accel

import "golang.org/x/sys/cpu"

// wideUnroll selects a more aggressively unrolled SWAR loop (four 8-byte
// words per iteration instead of one) on CPUs wide enough to make the
// extra loads pay for themselves — a tuning knob standing in for the
// teacher's hasAVX2 dispatch (simd/memchr_amd64.go), not a real
// instruction-set gate, since this package is pure Go throughout.
var wideUnroll = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
