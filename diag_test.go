package ihtcache

import (
	"bytes"
	"testing"
)

func withDiagSink(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	prev := diagSink
	diagSink = buf
	t.Cleanup(func() { diagSink = prev })
}

func TestFillerPanicRecoveredAndReportedAsMiss(t *testing.T) {
	var buf bytes.Buffer
	withDiagSink(t, &buf)

	c, err := New(Config{
		KeySize:   8,
		ValueSize: 8,
		Filler: func(_ any, key []byte, out []byte) bool {
			panic("simulated filler failure")
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := make([]byte, 8)
	ok, ferr := c.Fetch(key8(1), out)
	if ferr != nil || ok {
		t.Fatalf("Fetch with panicking filler = (%v, %v), want (false, nil)", ok, ferr)
	}
	if c.ItemCount() != 0 {
		t.Fatalf("ItemCount = %d after panicking filler, want 0", c.ItemCount())
	}
	if buf.Len() == 0 {
		t.Fatal("recovered filler panic was not reported to the diagnostics sink")
	}
}

func TestReconfigureRejectionReportedToDiagSink(t *testing.T) {
	var buf bytes.Buffer
	withDiagSink(t, &buf)

	c := newTestCache(t, 16, 0.40)
	c.SetMaxLoadFactor(-1)

	if err := c.Reconfigure(); err == nil {
		t.Fatal("expected Reconfigure to reject a negative load factor")
	}
	if buf.Len() == 0 {
		t.Fatal("rejected Reconfigure was not reported to the diagnostics sink")
	}
}
