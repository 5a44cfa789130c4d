// Package fixtures provides deterministic, reproducible test inputs for
// ihtcache's property and stress tests. Keys are derived from a SHA3-256
// stream (golang.org/x/crypto/sha3) rather than math/rand so that a failing
// property test can be reproduced exactly from its seed and index alone,
// without carrying a large literal fixture table in the test files
// themselves.
package fixtures

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// KeyStream generates a deterministic, collision-free-in-practice sequence
// of fixed-width keys from a seed. Each call to Next advances the stream.
type KeyStream struct {
	seed  uint64
	index uint64
	width int
}

// NewKeyStream returns a stream producing keys of the given byte width.
func NewKeyStream(seed uint64, width int) *KeyStream {
	return &KeyStream{seed: seed, width: width}
}

// Next returns the next key in the stream, exactly width bytes long.
func (s *KeyStream) Next() []byte {
	var in [16]byte
	binary.LittleEndian.PutUint64(in[0:8], s.seed)
	binary.LittleEndian.PutUint64(in[8:16], s.index)
	s.index++

	digest := sha3.Sum256(in[:])

	out := make([]byte, s.width)
	for i := 0; i < s.width; i++ {
		out[i] = digest[i%len(digest)]
	}
	return out
}

// NextN returns the next n keys.
func (s *KeyStream) NextN(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = s.Next()
	}
	return keys
}
