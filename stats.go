package ihtcache

import (
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// Counter is a (count, scans) pair: the number of times an operation of a
// given kind completed, and the total number of probe steps taken beyond
// the home slot across all of those completions (for evictions: the number
// of slots the sweep visited, empty ones included). Mirrors iht_stats's
// IhtCounter in original_source/src/index-hash-table.c.
type Counter struct {
	Count uint64
	Scans uint64
}

// stats holds the six live counters (spec §4.10). lookups has no scans
// component — it counts calls to the read path regardless of outcome.
type stats struct {
	lookups   uint64
	hits      Counter
	misses    Counter
	adds      Counter
	updates   Counter
	evictions Counter
}

// StatsSnapshot is a point-in-time, serializable copy of the six counters.
type StatsSnapshot struct {
	Lookups   uint64  `json:"lookups"`
	Hits      Counter `json:"hits"`
	Misses    Counter `json:"misses"`
	Adds      Counter `json:"adds"`
	Updates   Counter `json:"updates"`
	Evictions Counter `json:"evictions"`
}

// Stats returns a snapshot of the current counters.
func (c *Cache) Stats() StatsSnapshot {
	return StatsSnapshot{
		Lookups:   c.stats.lookups,
		Hits:      c.stats.hits,
		Misses:    c.stats.misses,
		Adds:      c.stats.adds,
		Updates:   c.stats.updates,
		Evictions: c.stats.evictions,
	}
}

// ClearStats zeroes all six counters (spec §4.10's clear_stats).
func (c *Cache) ClearStats() {
	c.stats = stats{}
}

// MarshalStats encodes a StatsSnapshot as JSON using the reference
// codebase's own JSON codec (sugawarayuuta/sonnet, used there to decode
// exchange-feed payloads), giving that dependency a second concrete home
// alongside the original price-feed decoding it was pulled in for.
func MarshalStats(s StatsSnapshot) ([]byte, error) {
	return sonnet.Marshal(s)
}

// PrintStats writes a one-line-per-counter human-readable dump, recovering
// the original_source/src/index-hash-table.c ihtCachePrintStats1 text
// layout. Per spec §1's Non-goals, the *design* of statistics-text
// formatting is out of scope for this engine; this is a thin pass-through,
// not a logging subsystem.
func (c *Cache) PrintStats(w io.Writer) {
	s := c.Stats()
	fmt.Fprintf(w, "lookups:   %d\n", s.Lookups)
	fmt.Fprintf(w, "hits:      %d (scans=%d)\n", s.Hits.Count, s.Hits.Scans)
	fmt.Fprintf(w, "misses:    %d (scans=%d)\n", s.Misses.Count, s.Misses.Scans)
	fmt.Fprintf(w, "adds:      %d (scans=%d)\n", s.Adds.Count, s.Adds.Scans)
	fmt.Fprintf(w, "updates:   %d (scans=%d)\n", s.Updates.Count, s.Updates.Scans)
	fmt.Fprintf(w, "evictions: %d (scans=%d)\n", s.Evictions.Count, s.Evictions.Scans)
}
