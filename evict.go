package ihtcache

// maxEvictionSearch bounds the eviction sweep's per-call work (spec §4.5).
const maxEvictionSearch = 16

// evict runs one bounded sweep from the persistent cursor, selecting an
// ALIVE slot to vacate, decaying the ages of ALIVE slots it passes over but
// does not choose, and marking the chosen victim EMPTY. It returns the
// victim's slot index and recovered item index, along with the victim's
// prior (hash, age) so insert.go can restore them if the insert that
// triggered this eviction turns out to be an update of an already-present
// key (spec §4.6 step 2's victim save/restore).
//
// Grounded directly on original_source/src/index-hash-table.c's
// find_victim(): bounded budget, early exit at the minimum live age,
// decay-on-pass-over, persistent rotating cursor. Per DESIGN.md O2, decay is
// clamped so a visited ALIVE slot never falls into the tombstone range. Per
// DESIGN.md O3, the configured ValueDestroyer runs on the victim's value
// before its item index is handed back for reuse.
//
// Per DESIGN.md O1, the victim is marked EMPTY, not TOMBSTONE. A key stored
// further along the victim's probe run can therefore stop being reachable:
// lookups for it miss until the key is stored again.
func (c *Cache) evict() (victimSlot, recoveredItem, priorHash uint32, priorAge uint8) {
	cursor := c.evictIndex
	victimIdx := cursor
	victimAge := uint8(8) // sentinel: higher than any real age

	var scans uint32
	search := maxEvictionSearch
	for search > 0 {
		s := &c.slots[cursor]

		if isEmpty(s.age) {
			cursor = c.next(cursor)
			scans++
			continue
		}

		brokeEarly := false
		if s.age < victimAge {
			victimIdx = cursor
			victimAge = s.age
			if victimAge == initialAge {
				brokeEarly = true
			}
		} else if s.age > initialAge {
			s.age-- // decay, clamped above initialAge (O2)
		}

		cursor = c.next(cursor)
		scans++
		search--
		if brokeEarly {
			break
		}
	}

	c.evictIndex = cursor
	c.stats.evictions.Count++
	c.stats.evictions.Scans += uint64(scans)

	victim := &c.slots[victimIdx]
	priorHash = victim.hash
	priorAge = victimAge
	recoveredItem = victim.itemIndex

	if c.valueDestroyer != nil {
		c.valueDestroyer(c.context, c.pool.valueBytes(recoveredItem))
	}

	victim.age = ageEmpty
	victim.hash = 0
	victim.itemIndex = 0

	return victimIdx, recoveredItem, priorHash, priorAge
}
