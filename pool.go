package ihtcache

import "encoding/binary"

// itemPool is the fixed K-record item array (spec §4.3): a single backing
// byte arena windowed by key/value offsets and a fixed stride, addressed by
// integer index so that evicting a slot never relocates any other item.
// Grounded on bucketqueue.Queue's fixed [N]node arena (same "array sized at
// construction, addressed by a small integer handle" shape), simplified from
// bucketqueue's doubly-linked free list to plain dense/recycled index
// assignment: an item's storage is only ever reclaimed via eviction, which
// already hands back the exact index to reuse, so no free list is needed.
type itemPool struct {
	arena       []byte
	keySize     int
	valueSize   int
	keyOffset   int
	valueOffset int
	itemSize    int
	fastMode    bool // both keySize and valueSize <= 16: compact two-word layout
}

// align8 rounds n up to the next multiple of 8.
func align8(n int) int {
	return (n + 7) &^ 7
}

func newItemPool(k, keySize, valueSize int) itemPool {
	p := itemPool{keySize: keySize, valueSize: valueSize}
	p.fastMode = keySize <= 16 && valueSize <= 16
	if p.fastMode {
		p.keyOffset = 0
		p.valueOffset = 16
		p.itemSize = 32
	} else {
		p.keyOffset = 0
		p.valueOffset = align8(keySize)
		p.itemSize = align8(p.valueOffset + valueSize)
	}
	p.arena = make([]byte, k*p.itemSize)
	return p
}

//go:nosplit
//go:inline
//go:registerparams
func (p *itemPool) recordAt(idx uint32) []byte {
	base := int(idx) * p.itemSize
	return p.arena[base : base+p.itemSize]
}

//go:nosplit
//go:inline
//go:registerparams
func (p *itemPool) keyBytes(idx uint32) []byte {
	r := p.recordAt(idx)
	return r[p.keyOffset : p.keyOffset+p.keySize]
}

//go:nosplit
//go:inline
//go:registerparams
func (p *itemPool) valueBytes(idx uint32) []byte {
	r := p.recordAt(idx)
	return r[p.valueOffset : p.valueOffset+p.valueSize]
}

// writeItem copies key and value bytes into the record at idx.
func (p *itemPool) writeItem(idx uint32, key, value []byte) {
	copy(p.keyBytes(idx), key)
	copy(p.valueBytes(idx), value)
}

// fastKeyAt reads the full 16-byte fast-key window of the record at idx,
// zero-extended beyond keySize. Only meaningful when p.fastMode.
//
//go:nosplit
//go:inline
//go:registerparams
func (p *itemPool) fastKeyAt(idx uint32) FastKey {
	r := p.recordAt(idx)
	return FastKey{
		V0: binary.LittleEndian.Uint64(r[0:8]),
		V1: binary.LittleEndian.Uint64(r[8:16]),
	}
}

// fastValue reads up to 16 bytes of the value at idx, zero-extended.
func (p *itemPool) fastValue(idx uint32) FastValue {
	var buf [16]byte
	copy(buf[:], p.valueBytes(idx))
	return FastValue{
		V0: binary.LittleEndian.Uint64(buf[0:8]),
		V1: binary.LittleEndian.Uint64(buf[8:16]),
	}
}

// keysEqual compares two equal-length key byte slices. For keys of 16 bytes
// or fewer it uses the two-word XOR-OR trick from the reference codebase's
// pairidx.sameKey (elides the general byte-compare loop on the hot path);
// longer keys fall back to a straightforward byte compare.
//
//go:nosplit
//go:inline
//go:registerparams
func keysEqual(a, b []byte) bool {
	n := len(a)
	if n > 16 {
		for i := 0; i < n; i++ {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	var ba, bb [16]byte
	copy(ba[:], a)
	copy(bb[:], b)
	a0 := binary.LittleEndian.Uint64(ba[0:8])
	a1 := binary.LittleEndian.Uint64(ba[8:16])
	b0 := binary.LittleEndian.Uint64(bb[0:8])
	b1 := binary.LittleEndian.Uint64(bb[8:16])
	return (a0^b0)|(a1^b1) == 0
}

//go:nosplit
//go:inline
//go:registerparams
func fastKeysEqual(a, b FastKey) bool {
	return (a.V0^b.V0)|(a.V1^b.V1) == 0
}
