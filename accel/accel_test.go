package accel

import (
	"bytes"
	"testing"
)

func naiveFindNotInRange(data []byte, from int, lo, hi byte) int {
	for i := from; i < len(data); i++ {
		if data[i] < lo || data[i] > hi {
			return i
		}
	}
	return len(data)
}

func TestFindNotInRangeAllInRange(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 40)
	if got := FindNotInRange(data, 0, 'a', 'z'); got != len(data) {
		t.Fatalf("got %d, want %d", got, len(data))
	}
}

func TestFindNotInRangeImmediateMiss(t *testing.T) {
	data := []byte("Aaaaaaaa")
	if got := FindNotInRange(data, 0, 'a', 'z'); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestFindNotInRangeBoundaryBytes(t *testing.T) {
	data := []byte{0x10, 0x20, 0x1F, 0x21}
	// range [0x10,0x20] inclusive: index 2 (0x1F) is in range, index 3
	// (0x21) is the first miss.
	if got := FindNotInRange(data, 0, 0x10, 0x20); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestFindNotInRangeChunkBoundaryCrossing(t *testing.T) {
	for _, size := range []int{7, 8, 9, 31, 32, 33, 63, 64, 65} {
		for missAt := 0; missAt <= size; missAt++ {
			data := bytes.Repeat([]byte{'m'}, size)
			want := size
			if missAt < size {
				data[missAt] = 'Z'
				want = missAt
			}
			if got := FindNotInRange(data, 0, 'a', 'z'); got != want {
				t.Fatalf("size=%d missAt=%d: got %d, want %d", size, missAt, got, want)
			}
		}
	}
}

func TestFindNotInRangeFromOffset(t *testing.T) {
	data := []byte("zzzzAzzzz")
	if got := FindNotInRange(data, 5, 'a', 'z'); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if got := FindNotInRange(data, 9, 'a', 'z'); got != 9 {
		t.Fatalf("from == len(data): got %d, want 9", got)
	}
}

func TestFindNotInRangeFullByteRange(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	if got := FindNotInRange(data, 0, 0x00, 0xFF); got != len(data) {
		t.Fatalf("got %d, want %d (full range never misses)", got, len(data))
	}
}

func TestFindNotInRangeAgainstNaive(t *testing.T) {
	patterns := [][]byte{
		[]byte("the quick brown FOX jumps over 1234 the lazy dog"),
		bytes.Repeat([]byte{0x00, 0xFF}, 20),
		append(bytes.Repeat([]byte{'x'}, 37), 0x01),
	}
	ranges := [][2]byte{{'a', 'z'}, {0x00, 0x7F}, {'0', '9'}, {0xF0, 0xFF}}
	for _, data := range patterns {
		for _, r := range ranges {
			for from := 0; from <= len(data); from++ {
				got := FindNotInRange(data, from, r[0], r[1])
				want := naiveFindNotInRange(data, from, r[0], r[1])
				if got != want {
					t.Fatalf("data=%q from=%d range=[%02x,%02x]: got %d, want %d",
						data, from, r[0], r[1], got, want)
				}
			}
		}
	}
}
