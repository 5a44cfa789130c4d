package ihtcache

import "errors"

// Sentinel configuration errors returned by New and Reconfigure. Grounded on
// bucketqueue's package-level sentinel-error pattern rather than panics: spec
// §7 requires "no operation panics on a well-formed call" and treats invalid
// configuration as the caller's responsibility to avoid, which this
// implementation surfaces as an explicit, checkable error instead of leaving
// it as true undefined behavior.
var (
	ErrZeroKeySize     = errors.New("ihtcache: key size must be > 0")
	ErrZeroValueSize   = errors.New("ihtcache: value size must be > 0")
	ErrBadLoadFactor   = errors.New("ihtcache: max load factor must be in (0, 1]")
	ErrBadMinCapacity  = errors.New("ihtcache: min capacity must be >= 0")
	ErrBadNAValueSize  = errors.New("ihtcache: na_value must be exactly value_size bytes")
	ErrKeySizeMismatch = errors.New("ihtcache: key length does not match configured key size")
)
