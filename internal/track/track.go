// Package track deduplicates consecutive position reports from the same
// vessel, the AIS analogue of the teacher's recently-seen-ICAO-address
// cache (see SPEC_FULL.md "DOMAIN STACK").
package track

import (
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long an MMSI is considered "recently seen" for
// dedup purposes.
const DefaultTTL = 5 * time.Second

// Seen deduplicates recently-reported MMSIs with a TTL, mirroring
// mode_s.Decoder's icao_cache in the teacher.
type Seen struct {
	cache *cache.Cache
}

// NewSeen creates a dedup tracker with the given TTL.
func NewSeen(ttl time.Duration) *Seen {
	return &Seen{cache: cache.New(ttl, ttl*2)}
}

// CheckAndMark reports whether mmsi was already seen within the TTL
// window, then (re)marks it as seen regardless of the result.
func (s *Seen) CheckAndMark(mmsi uint32) (alreadySeen bool) {
	key := strconv.FormatUint(uint64(mmsi), 10)
	_, found := s.cache.Get(key)
	s.cache.SetDefault(key, mmsi)
	return found
}

// Count returns the number of distinct MMSIs currently tracked.
func (s *Seen) Count() int {
	return s.cache.ItemCount()
}
