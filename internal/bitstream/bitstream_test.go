package bitstream

import (
	"testing"

	"pgregory.net/rapid"
)

// writeBits packs v (n bits) into buf MSB-first starting at bit offset from.
// Test-only inverse of ToUint, used to validate the round-trip law in
// spec §8.1.
func writeBits(buf []byte, from, n int, v uint32) {
	for i := 0; i < n; i++ {
		bit := from + i
		mask := byte(1 << (7 - uint(bit%8)))
		shift := uint(n - 1 - i)
		if (v>>shift)&1 != 0 {
			buf[bit/8] |= mask
		} else {
			buf[bit/8] &^= mask
		}
	}
}

func TestToUintRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 32).Draw(rt, "n")
		from := rapid.IntRange(0, 64).Draw(rt, "from")
		var max uint64 = (uint64(1) << uint(n)) - 1
		v := uint32(rapid.Uint64Range(0, max).Draw(rt, "v"))

		buf := make([]byte, (from+n)/8+2)
		writeBits(buf, from, n, v)

		if got := ToUint(buf, from, n); got != v {
			rt.Fatalf("ToUint(from=%d,n=%d) = %d, want %d", from, n, got, v)
		}
	})
}

func TestToUintKnownOffsets(t *testing.T) {
	buf := []byte{0b10110100, 0b00001111}
	if got := ToUint(buf, 0, 6); got != 0b101101 {
		t.Fatalf("got %b", got)
	}
	if got := ToUint(buf, 6, 6); got != 0b000000 {
		t.Fatalf("got %b", got)
	}
}

func TestToASCII(t *testing.T) {
	// 6-bit codes for 'A' (1) and '@' (0): per §4.1, v<32 maps to v+64.
	buf := make([]byte, 2)
	writeBits(buf, 0, 6, 1)  // -> 'A'
	writeBits(buf, 6, 6, 0)  // -> '@'
	got := ToASCII(buf, 0, 12)
	if got != "A@" {
		t.Fatalf("got %q", got)
	}
}
