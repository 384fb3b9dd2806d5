// Package channelizer turns an interleaved unsigned-8-bit IQ byte stream
// into two decimated complex baseband streams, one centered on each AIS
// channel (161.975 MHz and 162.025 MHz), per spec.md §4.3.
//
// The channelizer is stateless across buffers: per-buffer FIR transients
// are accepted as lost samples rather than carried via overlap-save, and
// no state survives between calls to Process.
package channelizer

import "github.com/Regentag/ais-go/internal/fir"

// Channels holds the four post-decimation sample streams at the final
// 50 kHz rate: channel 1 (161.975 MHz) and channel 2 (162.025 MHz).
type Channels struct {
	I1, Q1 []int32
	I2, Q2 []int32
}

// decimatedLen returns how many FIR-filtered output samples can be
// produced from n input samples when decimating by factor, given the
// filter needs indices [base, base+2*(Length-1)] valid for base = factor*i.
func decimatedLen(n, factor int) int {
	span := 2 * (fir.Length - 1)
	if n <= span {
		return 0
	}
	return (n-span-1)/factor + 1
}

// recenter subtracts 128 from each unsigned IQ byte, producing signed
// samples. iq holds n pairs of (I, Q) bytes.
func recenter(iq []byte, n int) (i, q []int32) {
	i = make([]int32, n)
	q = make([]int32, n)
	for k := 0; k < n; k++ {
		i[k] = int32(iq[2*k]) - 128
		q[k] = int32(iq[2*k+1]) - 128
	}
	return i, q
}

// decimateBy3 applies h3 and decimates the recentered stream by 3
// (300 kHz -> 100 kHz).
func decimateBy3(i, q []int32) (i1, q1 []int32) {
	n := decimatedLen(len(i), 3)
	i1 = make([]int32, n)
	q1 = make([]int32, n)
	for k := 0; k < n; k++ {
		center := 3*k + fir.Length - 1
		i1[k] = fir.Eval(&fir.H3, i, center)
		q1[k] = fir.Eval(&fir.H3, q, center)
	}
	return i1, q1
}

// splitChannels produces the second channel (shifted -25 kHz) from the
// 100 kHz stream by the length-4 rotation pattern in spec.md §4.3, and
// counter-rotates channel 1 back to baseband in place.
//
// Each output index i is fully determined by i mod 4; there is no carry
// between samples despite the in-place update of i1/q1 (see DESIGN.md for
// the Open Question this literal transcription resolves).
func splitChannels(i1, q1 []int32) (i2, q2 []int32) {
	n := len(i1)
	i2 = make([]int32, n)
	q2 = make([]int32, n)
	for k := 0; k < n; k++ {
		I, Q := i1[k], q1[k]
		switch k % 4 {
		case 0:
			i2[k], q2[k] = I, Q
		case 1:
			i2[k], q2[k] = Q, -I
			i1[k], q1[k] = -Q, I
		case 2:
			i2[k], q2[k] = -I, -Q
			i1[k], q1[k] = -I, -Q
		case 3:
			i2[k], q2[k] = -Q, I
			i1[k], q1[k] = Q, -I
		}
	}
	return i2, q2
}

// decimateBy2 applies h8 and decimates a 100 kHz stream by 2 (-> 50 kHz).
func decimateBy2(x []int32) []int32 {
	n := decimatedLen(len(x), 2)
	out := make([]int32, n)
	for k := 0; k < n; k++ {
		center := 2*k + fir.Length - 1
		out[k] = fir.Eval(&fir.H8, x, center)
	}
	return out
}

// Process runs the full channelization pipeline over n IQ pairs (2n
// bytes) from iq, returning the four 50 kHz streams for channel 1 and
// channel 2.
func Process(iq []byte, n int) Channels {
	i, q := recenter(iq, n)
	i1, q1 := decimateBy3(i, q)
	i2, q2 := splitChannels(i1, q1)

	return Channels{
		I1: decimateBy2(i1),
		Q1: decimateBy2(q1),
		I2: decimateBy2(i2),
		Q2: decimateBy2(q2),
	}
}
