//go:build amd64

package ihtcache

import "golang.org/x/sys/cpu"

// detectHardwareCRC32 reports whether the CPU advertises SSE4.2, the
// extension that makes hardware CRC32 worthwhile on amd64.
func detectHardwareCRC32() bool {
	return cpu.X86.HasSSE42
}
