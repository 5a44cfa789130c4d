package sqlitefiller

import (
	"path/filepath"
	"testing"
)

func TestStorePutAndFiller(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "filler.db"), "entries", 8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	key := []byte("somekey1")
	value := []byte("value123")
	if err := s.Put(key, value); err != nil {
		t.Fatalf("Put: %v", err)
	}

	filler := s.Filler()
	out := make([]byte, 8)
	if !filler(nil, key, out) {
		t.Fatal("filler reported a miss for a key that was Put")
	}
	if string(out) != string(value) {
		t.Fatalf("filler out = %q, want %q", out, value)
	}

	if filler(nil, []byte("missingk"), out) {
		t.Fatal("filler reported a hit for an absent key")
	}
}

func TestStorePutReplace(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "filler.db"), "entries", 8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	key := []byte("somekey1")
	if err := s.Put(key, []byte("value111")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(key, []byte("value222")); err != nil {
		t.Fatalf("Put replace: %v", err)
	}

	filler := s.Filler()
	out := make([]byte, 8)
	filler(nil, key, out)
	if string(out) != "value222" {
		t.Fatalf("filler out = %q, want %q after replace", out, "value222")
	}
}
