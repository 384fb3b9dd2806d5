// Package fir implements the fixed-point symmetric FIR filters used to
// anti-alias-decimate the raw IQ stream and to low-pass each separated
// AIS channel. Coefficients are stored as one-sided taps scaled by 2^20,
// matching the teacher's bit-exact DSP style.
package fir

const (
	// Length is the odd kernel length shared by all filters here.
	Length = 31
	// scaleShift undoes the 2^20 coefficient scaling (one extra bit of
	// gain is folded in deliberately; see Eval).
	scaleShift = 19
)

// H3 is the one-third-band anti-alias filter applied before decimating
// the raw IQ stream by 3 (300 kHz -> 100 kHz). Hamming-windowed sinc,
// cutoff at the post-decimation Nyquist (in-rate/6), coefficients
// one-sided (index 0 is the center tap) and scaled by 2^20.
var H3 = [Length]int32{
	350006, 288724, 143272, 0, -69485, -54323, 0, 36465,
	30675, 0, -22288, -19133, 0, 14153, 12159, 0,
	-8899, -7566, 0, 5376, 4487, 0, -3055, -2494,
	0, 1640, 1333, 0, -931, -824, 0,
}

// H8 is the ~6.25 kHz low-pass applied after channel separation, before
// decimating by 2 (100 kHz -> 50 kHz). Same construction as H3, cutoff
// at 6.25 kHz / 100 kHz.
var H8 = [Length]int32{
	131387, 127714, 117101, 100716, 80317, 58011, 35966, 16130,
	0, -11529, -18217, -20432, -19019, -15114, -9938, -4609,
	0, 3347, 5229, 5741, 5186, 3969, 2497, 1103,
	0, -725, -1090, -1174, -1076, -880, -631,
}

// Eval evaluates the symmetric FIR kernel h centered so that x[center]
// corresponds to the kernel's middle tap: x[center-(Length-1) ..
// center+(Length-1)] must all be valid indices into x.
//
//	y = (h[0]*x[L-1] + sum_{i=1}^{L-1} h[i]*(x[L-1-i] + x[L-1+i])) >> 19
func Eval(h *[Length]int32, x []int32, center int) int32 {
	base := center - (Length - 1)
	acc := int64(h[0]) * int64(x[base+Length-1])
	for i := 1; i < Length; i++ {
		acc += int64(h[i]) * int64(x[base+Length-1-i]+x[base+Length-1+i])
	}
	return int32(acc >> scaleShift)
}

// Sum returns the DC gain of a kernel: h[0] + 2*sum(h[1:]).
func Sum(h *[Length]int32) int64 {
	s := int64(h[0])
	for i := 1; i < Length; i++ {
		s += 2 * int64(h[i])
	}
	return s
}
