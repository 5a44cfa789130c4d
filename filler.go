package ihtcache

import "encoding/binary"

// Put inserts or updates key→value, evicting if the pool is full (spec
// §4.6). It never invokes the filler. Per DESIGN.md O4, it returns true
// whenever the call completes without error — put never fails due to
// capacity.
func (c *Cache) Put(key, value []byte) (bool, error) {
	if len(key) != c.keySize {
		return false, ErrKeySizeMismatch
	}
	c.insert(key, value)
	return true, nil
}

// Lookup is a read-only probe: it bumps the occupant's age on a hit and
// never invokes the filler (spec §4.7's "Put and Lookup never invoke the
// filler"). On a hit it copies the stored value into out and returns true.
func (c *Cache) Lookup(key []byte, out []byte) bool {
	if len(key) != c.keySize {
		return false
	}
	idx, ok := c.findForRead(key)
	if !ok {
		return false
	}
	copy(out, c.pool.valueBytes(idx))
	return true
}

// Fetch behaves like Lookup, but on a miss consults the configured filler
// with a fresh, zeroed scratch buffer. If the filler returns true, the
// insertion engine installs the result before Fetch returns it. If the
// filler returns false, or none is configured, Fetch reports failure
// without mutating the cache (spec §4.7).
func (c *Cache) Fetch(key []byte, out []byte) (bool, error) {
	if len(key) != c.keySize {
		return false, ErrKeySizeMismatch
	}
	idx, ok := c.findForRead(key)
	if ok {
		copy(out, c.pool.valueBytes(idx))
		return true, nil
	}
	if c.filler == nil {
		return false, nil
	}
	scratch := make([]byte, c.valueSize)
	if !c.callFiller(key, scratch) {
		return false, nil
	}
	c.insert(key, scratch)
	copy(out, scratch)
	return true, nil
}

// callFiller invokes the configured filler, recovering a panicking filler at
// this boundary and reporting it through the diagnostics sink (A2) as a miss
// rather than letting it unwind into the caller — a misbehaving external
// collaborator (e.g. sqlitefiller against a corrupted database) must not be
// able to crash the cache.
func (c *Cache) callFiller(key, out []byte) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			dropMessage("filler panic recovered", panicString(r))
			ok = false
		}
	}()
	return c.filler(c.context, key, out)
}

func panicString(r any) string {
	if err, isErr := r.(error); isErr {
		return err.Error()
	}
	if s, isStr := r.(string); isStr {
		return s
	}
	return "non-error panic value"
}

// Get has fetch's miss semantics but returns a slice directly into the item
// pool instead of copying into a caller-provided buffer. Per spec §7's
// pointer-lifetime contract, the returned slice is valid only until the
// next mutating call (Put, a missing Fetch/Get, RemoveAll, Destroy, or
// Reconfigure) — it aliases the pool's backing array.
func (c *Cache) Get(key []byte) []byte {
	if len(key) != c.keySize {
		return nil
	}
	idx, ok := c.findForRead(key)
	if ok {
		return c.pool.valueBytes(idx)
	}
	if c.filler == nil {
		return nil
	}
	scratch := make([]byte, c.valueSize)
	if !c.callFiller(key, scratch) {
		return nil
	}
	idx, _ = c.insert(key, scratch)
	return c.pool.valueBytes(idx)
}

// GetFast is the register-sized hot path for caches created with both key
// and value sizes <= 16 bytes (fastMode). On a miss it returns the
// configured NA-value (zero-filled by default, per DESIGN.md O5) with no
// filler invocation, matching spec §6's get_fast contract exactly — unlike
// Fetch/Get, get_fast never consults the filler.
func (c *Cache) GetFast(key FastKey) (FastValue, bool) {
	if !c.fastMode {
		return FastValue{}, false
	}
	idx, ok := c.findForReadFast(key)
	if !ok {
		return c.naFastValue(), false
	}
	return c.pool.fastValue(idx), true
}

func (c *Cache) naFastValue() FastValue {
	var buf [16]byte
	copy(buf[:], c.naValue)
	return FastValue{
		V0: binary.LittleEndian.Uint64(buf[0:8]),
		V1: binary.LittleEndian.Uint64(buf[8:16]),
	}
}
