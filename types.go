package ihtcache

// FastKey is the register-sized representation of a key no longer than 16
// bytes, used by GetFast and by the fast-lookup probe variant. Callers pack
// the key's bytes little-endian into V0 (first 8 bytes) and V1 (next 8
// bytes), zero-padding any bytes beyond the configured key size.
type FastKey struct {
	V0, V1 uint64
}

// FastValue is the register-sized representation of a value no longer than
// 16 bytes, returned by GetFast.
type FastValue struct {
	V0, V1 uint64
}

// Filler computes a value for a key missing from the cache. It must write
// exactly ValueSize() bytes to out and return true on success. Returning
// false leaves the cache state unchanged; the miss is still counted.
// Invoked only from Fetch and Get, never from Put or Lookup.
type Filler func(ctx any, key []byte, out []byte) bool

// ValueDestroyer is invoked once per live value at RemoveAll, Destroy, and
// (per this implementation's resolution of the source's open question, see
// DESIGN.md O3) on eviction, immediately before the item's storage is reused.
// It does not free the storage itself.
type ValueDestroyer func(ctx any, value []byte)

// CxtDestroyer is invoked once, at Destroy, after all live values have been
// destroyed.
type CxtDestroyer func(ctx any)

// Config carries the parameters of Create/Reconfigure. Zero-valued optional
// fields take documented defaults.
type Config struct {
	// MinCapacity is the minimum number of items requested; the table's
	// actual slot count M is the smallest power of two >= MinCapacity /
	// MaxLoadFactor, so MaxItems() is at least MinCapacity. Values below
	// MinCapacityDefault, including zero, are raised to MinCapacityDefault.
	MinCapacity int

	// KeySize and ValueSize are the fixed byte widths of keys and values.
	// Both must be > 0.
	KeySize, ValueSize int

	// MaxLoadFactor bounds item_count/M. Must be in (0, 1]. Defaults to
	// MaxLoadFactorDefault.
	MaxLoadFactor float64

	// Filler, Context, ValueDestroyer, CxtDestroyer and NAValue are all
	// optional. NAValue, if non-nil, must be exactly ValueSize bytes; it is
	// the value GetFast returns (zero-padded/truncated to 16 bytes) on a
	// miss when no filler is configured or the filler is bypassed.
	Filler         Filler
	Context        any
	ValueDestroyer ValueDestroyer
	CxtDestroyer   CxtDestroyer
	NAValue        []byte
}
