package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Regentag/ais-go/internal/ais"
)

func TestHeaderEmittedOnce(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Write(ais.Message{ID: 1, MMSI: 1, Kind: ais.KindUnknown})
	s.Write(ais.Message{ID: 1, MMSI: 2, Kind: ais.KindUnknown})

	out := buf.String()
	if strings.Count(out, "MID") != 1 {
		t.Fatalf("header emitted more than once:\n%s", out)
	}
}

func TestPositionLineFormat(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Write(ais.Message{
		ID: 1, MMSI: 123456789, Kind: ais.KindPosition,
		LongitudeDeg: -74.0, LatitudeDeg: 40.7, SpeedKmh: 22.78, CourseDeg: 87.5,
	})
	out := buf.String()
	if !strings.Contains(out, "123456789") || !strings.Contains(out, "23 km/h") || !strings.Contains(out, "87.5") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestUnknownMessageStub(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Write(ais.Message{ID: 63, MMSI: 1, Kind: ais.KindUnknown})
	if !strings.Contains(buf.String(), "Unknown") {
		t.Fatalf("expected stub line for unknown message")
	}
}
