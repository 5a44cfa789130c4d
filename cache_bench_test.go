package ihtcache

import "testing"

func BenchmarkPutFastMode(b *testing.B) {
	c, err := New(Config{KeySize: 8, ValueSize: 8, MinCapacity: 1 << 16})
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(key8(uint64(i)), key8(uint64(i)))
	}
}

func BenchmarkGetFastHit(b *testing.B) {
	c, err := New(Config{KeySize: 8, ValueSize: 8, MinCapacity: 1 << 16})
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	k := key8(42)
	c.Put(k, k)
	fk := FastKey{V0: 42}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetFast(fk)
	}
}

func BenchmarkLookupMiss(b *testing.B) {
	c, err := New(Config{KeySize: 8, ValueSize: 8, MinCapacity: 1 << 16})
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	var out [8]byte
	k := key8(0xdeadbeef)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Lookup(k, out[:])
	}
}
