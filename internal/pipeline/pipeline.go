// Package pipeline wires the channelizer, demodulator, HDLC decoder and
// AIS message decoder into the per-buffer driver loop described in
// spec.md §4.9 and §5.
package pipeline

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Regentag/ais-go/internal/ais"
	"github.com/Regentag/ais-go/internal/channelizer"
	"github.com/Regentag/ais-go/internal/demod"
	"github.com/Regentag/ais-go/internal/hdlc"
	"github.com/Regentag/ais-go/internal/sink"
	"github.com/Regentag/ais-go/internal/track"
)

// Rate is the post-decimation sample rate in Hz at which the HDLC layer
// operates (300 kHz / 3 / 2).
const Rate = 50000

// guardSamples is how close to the buffer end the scan must stay before
// the per-channel loop in spec.md §4.9 stops for this buffer.
const guardSamples = 500

// Pipeline holds no carried state across buffers except the optional
// dedup tracker; the DSP and HDLC layers are fully stateless per
// spec.md §5.
type Pipeline struct {
	Sink *sink.Sink

	// Seen, if non-nil, suppresses consecutive duplicate position
	// reports from the same MMSI within its TTL window.
	Seen *track.Seen

	// Log, if non-nil, receives per-buffer diagnostics at Debug level.
	Log *logrus.Logger

	// OnMessage, if non-nil, is additionally called for every decoded
	// record (e.g. to feed a live track table), independent of Sink.
	OnMessage func(ais.Message)
}

// New builds a Pipeline writing records to s.
func New(s *sink.Sink) *Pipeline {
	return &Pipeline{Sink: s}
}

// ProcessBuffer runs the full pipeline over n IQ pairs from iq: both AIS
// channels are channelized and demodulated, then scanned and decoded in
// order -- channel 1 in full before channel 2, per spec.md §5's ordering
// guarantee.
func (p *Pipeline) ProcessBuffer(iq []byte, n int) {
	channels := channelizer.Process(iq, n)

	ch1 := demod.Run(channels.I1, channels.Q1)
	ch2 := demod.Run(channels.I2, channels.Q2)

	p.ProcessChannel(ch1.AM, ch1.FM)
	p.ProcessChannel(ch2.AM, ch2.FM)
}

// ProcessChannel repeatedly syncs, decodes and validates bursts on one
// already-demodulated (am, fm) channel pair until the cursor is within
// guardSamples of the end, per spec.md §4.5-§4.9. Exported so callers
// that already have demodulated streams (or tests driving the HDLC/AIS
// layers directly) can skip channelizer.Process and demod.Run.
func (p *Pipeline) ProcessChannel(am, fm []int32) {
	i := 0
	for i <= len(am)-guardSamples {
		sync := hdlc.FindSync(am, fm, i, Rate)
		if !sync.Found {
			if p.Log != nil {
				p.Log.WithField("cursor", i).Debug("no sync in scan window")
			}
			i = sync.NextScan
			continue
		}

		msg, nbytes, endSymbol := hdlc.Decode(am, fm, sync, Rate)
		p.deliver(msg, nbytes)

		t := hdlc.SamplesPerSymbol(Rate)
		next := sync.Start + int(math.Round(float64(endSymbol)*t))
		if next <= i {
			next = i + 1
		}
		i = next
	}
}

// deliver validates and, on success, decodes and emits one frame.
func (p *Pipeline) deliver(msg []byte, nbytes int) {
	payload, ok := ais.Validate(msg, nbytes)
	if !ok {
		return
	}

	m := ais.Decode(payload)

	if p.Seen != nil && m.Kind == ais.KindPosition && p.Seen.CheckAndMark(m.MMSI) {
		return
	}

	if p.Sink != nil {
		p.Sink.Write(m)
	}
	if p.OnMessage != nil {
		p.OnMessage(m)
	}
}
