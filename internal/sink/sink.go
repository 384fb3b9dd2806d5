// Package sink renders decoded AIS records to a line-oriented text
// writer, per spec.md §6.
package sink

import (
	"fmt"
	"io"

	"github.com/Regentag/ais-go/internal/ais"
)

const header = " MID    MMSI      longitude   latitude     speed    course\n" +
	"-------------------------------------------------------------\n"

// Sink writes formatted AIS records to an underlying writer. The header
// is emitted exactly once, on the first Write call.
type Sink struct {
	w           io.Writer
	headerShown bool
}

// New wraps w as a record sink.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Write formats and emits one record line for m.
func (s *Sink) Write(m ais.Message) {
	if !s.headerShown {
		fmt.Fprint(s.w, header)
		s.headerShown = true
	}

	prefix := fmt.Sprintf("%2d %9d", m.ID, m.MMSI)

	switch m.Kind {
	case ais.KindPosition:
		fmt.Fprintf(s.w, "%s %11.6f %11.6f  %d km/h   %5.1f\n",
			prefix, m.LongitudeDeg, m.LatitudeDeg, int(m.SpeedKmh+0.5), m.CourseDeg)
	case ais.KindBaseStation:
		fmt.Fprintf(s.w, "%s %11.6f %11.6f  %d/%d/%d  %02d:%02d:%02d\n",
			prefix, m.LongitudeDeg, m.LatitudeDeg, m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second)
	case ais.KindStaticVoyage:
		fmt.Fprintf(s.w, "%s %s << %s >> %s\n",
			prefix, m.CallSign, m.VesselName, m.Destination)
	default:
		fmt.Fprintf(s.w, "%s Unknown\n", prefix)
	}
}
