package ihtcache

// insert implements the insertion engine (spec §4.6): allocate an item-pool
// index (dense below capacity, recycled from an evicted victim at
// capacity), walk the probe sequence from the new key's home slot, and
// either update an existing occupant or claim the first non-ALIVE slot.
//
// Grounded directly on original_source/src/index-hash-table.c's
// alloc_new_entry()/store_item(). Returns the item-pool index holding the
// key's value (useful to Get's pointer-return contract) and whether the
// call added a brand-new entry (false means it updated an existing one).
func (c *Cache) insert(key, value []byte) (itemIdx uint32, added bool) {
	var (
		victimTaken     bool
		victimSlotIdx   uint32
		victimPriorHash uint32
		victimPriorAge  uint8
		victimItemIdx   uint32
	)

	if c.itemCount < c.k {
		itemIdx = c.itemCount
	} else {
		vSlot, vItem, vHash, vAge := c.evict()
		victimTaken = true
		victimSlotIdx = vSlot
		victimPriorHash = vHash
		victimPriorAge = vAge
		victimItemIdx = vItem
		itemIdx = vItem
		c.itemCount--
	}

	h := hashBytes(key)
	i := c.home(h)
	var scans uint32

	for {
		s := &c.slots[i]

		if s.age >= initialAge {
			if s.hash == h && keysEqual(c.pool.keyBytes(s.itemIndex), key) {
				// Update: the key already exists. Undo the speculative
				// eviction if one was taken (spec §4.6 step 3). The rolled-back
				// eviction is not counted; its sweep scans stay counted.
				if victimTaken {
					vs := &c.slots[victimSlotIdx]
					vs.hash = victimPriorHash
					vs.itemIndex = victimItemIdx
					vs.age = victimPriorAge
					c.itemCount++
					c.stats.evictions.Count--
				}
				copy(c.pool.valueBytes(s.itemIndex), value)
				c.stats.updates.Count++
				c.stats.updates.Scans += uint64(scans)
				return s.itemIndex, false
			}
			i = c.next(i)
			scans++
			continue
		}

		// First non-ALIVE slot reached: claim it for the new key.
		s.hash = h
		s.itemIndex = itemIdx
		s.age = initialAge
		c.pool.writeItem(itemIdx, key, value)
		c.itemCount++
		c.stats.adds.Count++
		c.stats.adds.Scans += uint64(scans)
		return itemIdx, true
	}
}
