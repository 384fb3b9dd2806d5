// Package ais validates HDLC payloads by CRC-16-CCITT and decodes AIS
// message types 1, 2, 3, 4, 5 into records, per spec.md §4.7-§4.8.
package ais

import (
	"github.com/Regentag/ais-go/internal/bitstream"
	"github.com/Regentag/ais-go/internal/crc16"
	"github.com/Regentag/ais-go/internal/hdlc"
)

// Payload length in bytes by message ID, per spec.md §4.7.
const (
	shortPayloadBytes = 21 // 168 bits, message types 1-4
	longPayloadBytes  = 53 // 424 bits, message type 5
)

// payloadLen returns the payload length in bytes expected for msgID.
func payloadLen(msgID uint32) int {
	if msgID == 5 {
		return longPayloadBytes
	}
	return shortPayloadBytes
}

// Validate checks the CRC-16 over the HDLC-recovered message buffer
// (payload starting at hdlc.HeaderOffset, nbytes bytes recovered) and
// returns the validated payload slice, or ok=false on a CRC mismatch or
// an incomplete frame.
func Validate(msg []byte, nbytes int) (payload []byte, ok bool) {
	if nbytes < 1 {
		return nil, false
	}
	payload = msg[hdlc.HeaderOffset:]
	msgID := bitstream.ToUint(payload, 0, 6)
	need := payloadLen(msgID)
	if nbytes < need+2 {
		return nil, false
	}

	computed := crc16.Checksum(payload[:need])
	received := crc16.LittleEndian(payload[need], payload[need+1])
	if computed != received {
		return nil, false
	}
	return payload[:need], true
}

// MessageKind distinguishes the decoded record's payload shape.
type MessageKind int

const (
	KindUnknown MessageKind = iota
	KindPosition
	KindBaseStation
	KindStaticVoyage
)

// Message is a decoded AIS record, per spec.md §3.
type Message struct {
	Kind MessageKind
	ID   uint32 // 6-bit message ID
	MMSI uint32 // 30-bit MMSI

	// Position report (IDs 1-3).
	LongitudeDeg float64
	LatitudeDeg  float64
	SpeedKmh     float64
	CourseDeg    float64

	// Base-station report (ID 4). Longitude/latitude reuse the fields
	// above but are decoded from different bit offsets.
	Year   uint32
	Month  uint32
	Day    uint32
	Hour   uint32
	Minute uint32
	Second uint32

	// Static/voyage data (ID 5).
	CallSign    string
	VesselName  string
	Destination string
}

// signExtend reinterprets the top bit of an n-bit unsigned value as sign.
func signExtend(v uint32, n int) int32 {
	signBit := uint32(1) << uint(n-1)
	if v&signBit != 0 {
		return int32(v) - int32(uint32(1)<<uint(n))
	}
	return int32(v)
}

const (
	lonScale = 1.0 / 600000.0
	latScale = 1.0 / 600000.0
)

// Decode parses a CRC-validated payload into a Message, dispatching on
// the 6-bit message ID per the field table in spec.md §4.8. Unknown
// message IDs produce KindUnknown, not an error.
func Decode(payload []byte) Message {
	id := bitstream.ToUint(payload, 0, 6)
	mmsi := bitstream.ToUint(payload, 8, 30)

	m := Message{ID: id, MMSI: mmsi}

	switch {
	case id == 1 || id == 2 || id == 3:
		m.Kind = KindPosition
		speed := bitstream.ToUint(payload, 50, 10)
		lon := signExtend(bitstream.ToUint(payload, 61, 28), 28)
		lat := signExtend(bitstream.ToUint(payload, 89, 27), 27)
		course := bitstream.ToUint(payload, 116, 12)

		m.LongitudeDeg = float64(lon) * lonScale
		m.LatitudeDeg = float64(lat) * latScale
		m.SpeedKmh = float64(speed) * 0.1852
		m.CourseDeg = float64(course) / 10.0

	case id == 4:
		m.Kind = KindBaseStation
		lon := signExtend(bitstream.ToUint(payload, 79, 28), 28)
		lat := signExtend(bitstream.ToUint(payload, 107, 27), 27)

		m.LongitudeDeg = float64(lon) * lonScale
		m.LatitudeDeg = float64(lat) * latScale
		m.Year = bitstream.ToUint(payload, 38, 14)
		m.Month = bitstream.ToUint(payload, 52, 4)
		m.Day = bitstream.ToUint(payload, 56, 5)
		m.Hour = bitstream.ToUint(payload, 61, 5)
		m.Minute = bitstream.ToUint(payload, 66, 6)
		m.Second = bitstream.ToUint(payload, 72, 6)

	case id == 5:
		m.Kind = KindStaticVoyage
		m.CallSign = bitstream.ToASCII(payload, 70, 42)
		m.VesselName = bitstream.ToASCII(payload, 112, 120)
		m.Destination = bitstream.ToASCII(payload, 302, 120)

	default:
		m.Kind = KindUnknown
	}

	return m
}
