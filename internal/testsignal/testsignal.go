// Package testsignal builds synthetic AIS payloads and HDLC-framed symbol
// streams for exercising internal/hdlc, internal/ais and
// internal/pipeline without a live receiver. It mirrors the teacher
// pack's own precedent (rtldavis's dsp_test.go) of driving DSP-adjacent
// code from hand-built intermediate signals rather than raw captures.
package testsignal

import (
	"math"

	"github.com/Regentag/ais-go/internal/crc16"
)

// WriteBits packs v (n bits) MSB-first into buf starting at bit offset
// from, the same convention internal/bitstream.ToUint reads back.
func WriteBits(buf []byte, from, n int, v uint32) {
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

// WriteASCII packs s as 6-bit AIS characters starting at bit offset from.
func WriteASCII(buf []byte, from int, s string) {
	for i, c := range []byte(s) {
		v := uint32(c)
		if v >= 64 {
			v -= 64
		}
		WriteBits(buf, from+i*6, 6, v)
	}
}

// Seal appends the little-endian CRC-16 FCS over payload[:n] at
// payload[n:n+2].
func Seal(payload []byte, n int) {
	crc := crc16.Checksum(payload[:n])
	payload[n] = byte(crc & 0xFF)
	payload[n+1] = byte(crc >> 8)
}

// bitsLSBFirst returns the serial HDLC transmission order for data: each
// byte's bits LSB-first. internal/hdlc.pack consumes a destuffed serial
// stream the same way in reverse, so this is the exact inverse.
func bitsLSBFirst(data []byte) []int8 {
	bits := make([]int8, 0, len(data)*8)
	for _, b := range data {
		for i := uint(0); i < 8; i++ {
			bits = append(bits, int8((b>>i)&1))
		}
	}
	return bits
}

// stuffBits inserts a 0 after every run of five consecutive 1-bits.
func stuffBits(data []int8) []int8 {
	out := make([]int8, 0, len(data)+len(data)/5+1)
	ones := 0
	for _, b := range data {
		out = append(out, b)
		if b == 1 {
			ones++
			if ones == 5 {
				out = append(out, 0)
				ones = 0
			}
		} else {
			ones = 0
		}
	}
	return out
}

// nrziEncode NRZI-encodes stuffed starting from state cur (0 or 1): a
// transmitted 0 toggles the line, a 1 holds it.
func nrziEncode(stuffed []int8, cur int8) []int8 {
	out := make([]int8, len(stuffed))
	for i, b := range stuffed {
		if b == 0 {
			cur = 1 - cur
		}
		out[i] = cur
	}
	return out
}

var preambleFlagBits = func() []int8 {
	var bits []int8
	for _, b := range []byte{0x55, 0x55, 0x55, 0x7E} {
		for i := 0; i < 8; i++ {
			v := int8(0)
			if b&(1<<uint(7-i)) != 0 {
				v = 1
			}
			bits = append(bits, v)
		}
	}
	return bits
}()

// Frame builds the full transmitted symbol sequence for one HDLC burst:
// the 24-bit training sequence and start flag (sent unstuffed, as the
// physical sync pattern internal/hdlc.preamble correlates against),
// followed by the bit-stuffed, NRZI-encoded payload+CRC. Each returned
// element is 1 or 0, meaning "this symbol correlates with preamble bit
// value 1 or 0" -- the actual sign convention used downstream is an
// implementation detail internal/hdlc is self-consistent about.
func Frame(payload []byte) []int8 {
	serial := stuffBits(bitsLSBFirst(payload))
	encoded := nrziEncode(serial, 0)

	out := make([]int8, 0, len(preambleFlagBits)+len(encoded))
	out = append(out, preambleFlagBits...)
	out = append(out, encoded...)
	return out
}

// SynthesizeChannel builds (am, fm) discriminator streams of length n
// for one AIS channel, holding a single HDLC burst built from Frame,
// starting at burstStart, at the given polarity (+1 or -1). rate is the
// post-decimation sample rate internal/hdlc operates at.
func SynthesizeChannel(n, burstStart int, rate float64, symbols []int8, polarity int8) (am, fm []int32) {
	am = make([]int32, n)
	fm = make([]int32, n)

	const highAM = int32(10000)
	const dev = int32(3000)

	t := rate / 9600.0

	// FindSync only searches a ~20-symbol correlation window starting at
	// the first sample of the 100-sample carrier-detect run, so the burst
	// must start well within that window of the carrier's onset.
	carrierStart := burstStart - 90
	if carrierStart < 0 {
		carrierStart = 0
	}
	carrierEnd := burstStart + int(math.Round(float64(len(symbols))*t)) + int(t) + 10
	if carrierEnd > n {
		carrierEnd = n
	}
	for i := carrierStart; i < carrierEnd; i++ {
		am[i] = highAM
	}

	for j, sym := range symbols {
		level := int32(1)
		if sym == 0 {
			level = -1
		}
		val := int32(polarity) * level * dev

		start := burstStart + int(math.Round(float64(j)*t))
		end := burstStart + int(math.Round(float64(j+1)*t))
		for k := start; k < end && k < n; k++ {
			if k >= 0 {
				fm[k] = val
			}
		}
	}

	return am, fm
}
