package channelizer

import (
	"math"
	"testing"
)

// toneIQ synthesizes n IQ byte pairs for a complex tone at freqHz,
// sampled at 300 kHz, centered at the unsigned-byte midpoint 128.
func toneIQ(n int, freqHz float64, amplitude float64) []byte {
	const sampleRate = 300000.0
	buf := make([]byte, 2*n)
	for k := 0; k < n; k++ {
		phase := 2 * math.Pi * freqHz * float64(k) / sampleRate
		i := 128 + amplitude*math.Cos(phase)
		q := 128 + amplitude*math.Sin(phase)
		buf[2*k] = clampByte(i)
		buf[2*k+1] = clampByte(q)
	}
	return buf
}

func clampByte(v float64) byte {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}

func energy(x, y []int32) int64 {
	var e int64
	for i := range x {
		e += int64(x[i])*int64(x[i]) + int64(y[i])*int64(y[i])
	}
	return e
}

// TestChannelOrthogonality implements property 6 from spec.md §8:
// a synthetic tone at +25 kHz should land in channel 2, not channel 1.
func TestChannelOrthogonality(t *testing.T) {
	const n = 6000 // 20ms worth, ample for FIR transients to settle
	iq := toneIQ(n, 25000, 100)

	ch := Process(iq, n)
	if len(ch.I1) == 0 || len(ch.I2) == 0 {
		t.Fatalf("no output samples produced")
	}

	e1 := energy(ch.I1, ch.Q1)
	e2 := energy(ch.I2, ch.Q2)

	if e2 <= e1 {
		t.Fatalf("expected channel 2 energy (%d) to dominate channel 1 (%d)", e2, e1)
	}
	// Channel 1 should be heavily attenuated relative to channel 2.
	if e1*10 > e2 {
		t.Fatalf("channel 1 not sufficiently rejected: e1=%d e2=%d", e1, e2)
	}
}

func TestProcessOutputLengths(t *testing.T) {
	const n = 3000
	iq := toneIQ(n, 0, 50)
	ch := Process(iq, n)
	if len(ch.I1) != len(ch.Q1) || len(ch.I2) != len(ch.Q2) || len(ch.I1) != len(ch.I2) {
		t.Fatalf("mismatched output lengths: %d %d %d %d",
			len(ch.I1), len(ch.Q1), len(ch.I2), len(ch.Q2))
	}
	if len(ch.I1) == 0 {
		t.Fatalf("expected nonzero output for a 3000-sample buffer")
	}
}
