//go:build arm64

package ihtcache

import "golang.org/x/sys/cpu"

// detectHardwareCRC32 reports whether the CPU advertises the ARMv8 CRC32
// extension.
func detectHardwareCRC32() bool {
	return cpu.ARM64.HasCRC32
}
