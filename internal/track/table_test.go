package track

import (
	"testing"
	"time"

	"github.com/Regentag/ais-go/internal/ais"
)

func TestTableUpdateAndCount(t *testing.T) {
	tb := NewTable(DefaultStaleAfter)
	tb.Update(ais.Message{MMSI: 1, Kind: ais.KindPosition})
	tb.Update(ais.Message{MMSI: 2, Kind: ais.KindPosition})
	tb.Update(ais.Message{MMSI: 1, Kind: ais.KindPosition, SpeedKmh: 5})

	if got := tb.Count(); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
	vessels := tb.Vessels()
	if vessels[1].Messages != 2 {
		t.Fatalf("mmsi 1 messages = %d, want 2", vessels[1].Messages)
	}
	if vessels[1].Message.SpeedKmh != 5 {
		t.Fatalf("mmsi 1 latest speed = %v, want 5", vessels[1].Message.SpeedKmh)
	}
}

func TestTableRemoveStale(t *testing.T) {
	tb := NewTable(10 * time.Millisecond)
	tb.Update(ais.Message{MMSI: 42})

	time.Sleep(20 * time.Millisecond)
	tb.RemoveStale()

	if got := tb.Count(); got != 0 {
		t.Fatalf("count = %d, want 0 after stale removal", got)
	}
}
