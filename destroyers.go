package ihtcache

// destroyLiveValues invokes the configured ValueDestroyer on every
// currently ALIVE slot's value, in probe-array order. Used by RemoveAll,
// Destroy (via RemoveAll) and Reconfigure, matching
// original_source/src/index-hash-table.c's remove_all() destroyer loop
// (spec §4.8). Eviction's own destroyer invocation (DESIGN.md O3) lives in
// evict.go, not here — the two call sites are both deliberate per the
// spec's open question resolution: destroy on every path that discards a
// live value, not only at bulk teardown.
func (c *Cache) destroyLiveValues() {
	if c.valueDestroyer == nil {
		return
	}
	for i := range c.slots {
		s := &c.slots[i]
		if s.age >= initialAge {
			c.valueDestroyer(c.context, c.pool.valueBytes(s.itemIndex))
		}
	}
}
