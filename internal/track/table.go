package track

import (
	"sync"
	"time"

	"github.com/Regentag/ais-go/internal/ais"
)

// DefaultStaleAfter is how long a vessel is kept in a Table after its
// last report before RemoveStale drops it.
const DefaultStaleAfter = 60 * time.Second

// Entry is one vessel's most recently decoded record.
type Entry struct {
	Message  ais.Message
	LastSeen time.Time
	Messages int64
}

// Table holds the latest decoded record per MMSI, for a live display --
// the AIS analogue of the teacher's mode_s.Sky aircraft table.
type Table struct {
	mu         sync.Mutex
	records    map[uint32]*Entry
	staleAfter time.Duration
}

// NewTable creates an empty table, dropping vessels not heard from
// within staleAfter.
func NewTable(staleAfter time.Duration) *Table {
	return &Table{
		records:    make(map[uint32]*Entry),
		staleAfter: staleAfter,
	}
}

// Update records m as the vessel's latest known state.
func (tb *Table) Update(m ais.Message) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	e := tb.records[m.MMSI]
	if e == nil {
		e = &Entry{}
		tb.records[m.MMSI] = e
	}
	e.Message = m
	e.LastSeen = time.Now()
	e.Messages++
}

// Vessels returns a snapshot of all tracked entries, keyed by MMSI.
func (tb *Table) Vessels() map[uint32]Entry {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	out := make(map[uint32]Entry, len(tb.records))
	for mmsi, e := range tb.records {
		out[mmsi] = *e
	}
	return out
}

// Count returns the number of tracked vessels.
func (tb *Table) Count() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.records)
}

// RemoveStale drops vessels not heard from within staleAfter.
func (tb *Table) RemoveStale() {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	for mmsi, e := range tb.records {
		if now.Sub(e.LastSeen) > tb.staleAfter {
			delete(tb.records, mmsi)
		}
	}
}
