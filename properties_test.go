package ihtcache

import (
	"testing"

	"github.com/codewanderer/ihtcache/fixtures"
)

// P1: item_count never exceeds K and never goes negative.
func TestPropertyOccupancyBounded(t *testing.T) {
	c := newTestCache(t, 16, 0.40)
	max := c.MaxItems()
	stream := fixtures.NewKeyStream(1, 8)

	for i := 0; i < max*10; i++ {
		k := stream.Next()
		c.Put(k, k)
		if c.ItemCount() < 0 || c.ItemCount() > max {
			t.Fatalf("ItemCount out of bounds: %d (max %d)", c.ItemCount(), max)
		}
	}
}

// P2: hashBytes is a pure function of its input bytes.
func TestPropertyHashDeterminism(t *testing.T) {
	stream := fixtures.NewKeyStream(2, 24)
	for i := 0; i < 64; i++ {
		k := stream.Next()
		if hashBytes(k) != hashBytes(append([]byte(nil), k...)) {
			t.Fatalf("hashBytes not deterministic for %x", k)
		}
	}
}

// P3: a value just Put is immediately retrievable via Lookup.
func TestPropertyGetAfterPut(t *testing.T) {
	c := newTestCache(t, 16, 0.40)
	stream := fixtures.NewKeyStream(3, 8)

	for i := 0; i < 20; i++ {
		k := stream.Next()
		v := stream.Next()
		c.Put(k, v)
		out := make([]byte, 8)
		if !c.Lookup(k, out) {
			t.Fatalf("key %x not found immediately after Put", k)
		}
		if string(out) != string(v) {
			t.Fatalf("Lookup(%x) = %x, want %x", k, out, v)
		}
	}
}

// P4: the 16-byte hash path and the general byte-slice path agree once a key
// is zero-padded to 16 bytes (see also TestHashBytesShortKeyPadding).
func TestPropertyHashPathsAgreeAt16Bytes(t *testing.T) {
	stream := fixtures.NewKeyStream(4, 16)
	for i := 0; i < 32; i++ {
		k := stream.Next()
		v0 := leUint64(k[0:8])
		v1 := leUint64(k[8:16])
		if hashBytes(k) != hash16(v0, v1) {
			t.Fatalf("hashBytes and hash16 disagree for 16-byte key %x", k)
		}
	}
}

// P5: probing from a slot's home index, following next(), always reaches
// that slot again (the probe sequence is a closed cycle over all M slots).
func TestPropertyProbeSequenceCovers(t *testing.T) {
	c := newTestCache(t, 16, 0.40)
	m := int(c.mask) + 1

	seen := make(map[uint32]bool, m)
	i := c.home(0)
	start := i
	for n := 0; n < m; n++ {
		seen[i] = true
		i = c.next(i)
	}
	if i != start {
		t.Fatalf("probe sequence did not return to start after M steps: got %d, want %d", i, start)
	}
	if len(seen) != m {
		t.Fatalf("probe sequence visited %d distinct slots, want %d", len(seen), m)
	}
}

// P6: every live item-pool index is referenced by at most one occupied slot.
func TestPropertySingleOwnership(t *testing.T) {
	c := newTestCache(t, 16, 0.40)
	stream := fixtures.NewKeyStream(5, 8)
	for i := 0; i < c.MaxItems()*3; i++ {
		k := stream.Next()
		c.Put(k, k)
	}

	owners := make(map[uint32]int)
	for _, s := range c.slots {
		if s.age >= initialAge {
			owners[s.itemIndex]++
		}
	}
	for idx, n := range owners {
		if n > 1 {
			t.Fatalf("item index %d owned by %d slots, want at most 1", idx, n)
		}
	}
}

// P7: slot ages always stay within [0,7] across repeated Put/Lookup cycles
// that trigger eviction sweeps.
func TestPropertyAgeBounds(t *testing.T) {
	c := newTestCache(t, 16, 0.40)
	stream := fixtures.NewKeyStream(6, 8)
	for i := 0; i < c.MaxItems()*20; i++ {
		k := stream.Next()
		c.Put(k, k)
		var out [8]byte
		c.Lookup(k, out[:])
		for _, s := range c.slots {
			if s.age > maxAge {
				t.Fatalf("slot age %d exceeds maxAge %d", s.age, maxAge)
			}
		}
	}
}

// P8: a single eviction call never scans more than maxEvictionSearch alive
// slots (bounded-work guarantee of spec §4.5).
func TestPropertyEvictionBudget(t *testing.T) {
	c := newTestCache(t, 16, 0.40)
	max := c.MaxItems()
	for i := 0; i < max; i++ {
		c.Put(key8(uint64(i)), key8(uint64(i)))
	}

	before := c.Stats().Evictions.Scans
	c.Put(key8(uint64(max+1000)), key8(uint64(max+1000)))
	after := c.Stats().Evictions.Scans

	if after-before > maxEvictionSearch {
		t.Fatalf("single eviction scanned %d slots, want <= %d", after-before, maxEvictionSearch)
	}
}

// P9: RemoveAll is idempotent and always leaves item_count at 0.
func TestPropertyRemoveAllIdempotent(t *testing.T) {
	c := newTestCache(t, 16, 0.40)
	stream := fixtures.NewKeyStream(7, 8)
	for i := 0; i < c.MaxItems(); i++ {
		k := stream.Next()
		c.Put(k, k)
	}

	c.RemoveAll()
	if c.ItemCount() != 0 {
		t.Fatalf("ItemCount = %d after RemoveAll, want 0", c.ItemCount())
	}
	c.RemoveAll()
	if c.ItemCount() != 0 {
		t.Fatalf("ItemCount = %d after second RemoveAll, want 0", c.ItemCount())
	}
}
