package ihtcache

// findForRead implements the lookup engine (spec §4.4) for the public
// Lookup/Fetch/Get read path: probes forward from the key's home slot,
// bumping the occupant's age on a hit, and accounts every call against the
// lookups/hits/misses counters. It never mutates item-pool contents and
// never invokes the filler — that happens in the caller (filler.go).
func (c *Cache) findForRead(key []byte) (itemIdx uint32, found bool) {
	c.stats.lookups++

	h := hashBytes(key)
	i := c.home(h)
	var scans uint32

	for {
		s := &c.slots[i]

		if isEmpty(s.age) {
			c.stats.misses.Count++
			c.stats.misses.Scans += uint64(scans)
			return 0, false
		}

		if s.age >= initialAge && s.hash == h && keysEqual(c.pool.keyBytes(s.itemIndex), key) {
			if s.age < maxAge {
				s.age++
			}
			c.stats.hits.Count++
			c.stats.hits.Scans += uint64(scans)
			return s.itemIndex, true
		}

		i = c.next(i)
		scans++
	}
}

// findForReadFast is the fast-lookup variant for GetFast (spec §4.4's "fast
// lookup" paragraph): it elides the byte-compare loop in favor of a
// two-word equality test against the stored fast key, and speculatively
// checks the home slot before entering the general probe loop, on the
// expectation that the home slot is the hit case. Only valid when the cache
// was created with both key and value sizes <= 16 (fastMode).
func (c *Cache) findForReadFast(key FastKey) (itemIdx uint32, found bool) {
	c.stats.lookups++

	h := hash16(key.V0, key.V1)
	i := c.home(h)

	// Speculative first probe: the expected hit case.
	s := &c.slots[i]
	if s.age >= initialAge && s.hash == h && fastKeysEqual(c.pool.fastKeyAt(s.itemIndex), key) {
		if s.age < maxAge {
			s.age++
		}
		c.stats.hits.Count++
		return s.itemIndex, true
	}
	if isEmpty(s.age) {
		c.stats.misses.Count++
		return 0, false
	}

	i = c.next(i)
	var scans uint32 = 1
	for {
		s := &c.slots[i]

		if isEmpty(s.age) {
			c.stats.misses.Count++
			c.stats.misses.Scans += uint64(scans)
			return 0, false
		}

		if s.age >= initialAge && s.hash == h && fastKeysEqual(c.pool.fastKeyAt(s.itemIndex), key) {
			if s.age < maxAge {
				s.age++
			}
			c.stats.hits.Count++
			c.stats.hits.Scans += uint64(scans)
			return s.itemIndex, true
		}

		i = c.next(i)
		scans++
	}
}
