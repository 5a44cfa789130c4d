package ihtcache

import (
	"io"
	"os"
)

// diagSink is the destination for cold-path diagnostic messages: filler
// panics recovered at the call boundary, configuration warnings during
// Reconfigure. Never written from a hot-path function. Defaults to stderr,
// matching the reference codebase's debug package, which writes error and
// message diagnostics directly to stderr without an intervening logging
// framework.
var diagSink io.Writer = os.Stderr

// dropError writes a cold-path-only diagnostic line. It avoids fmt.Sprintf
// by concatenating directly, mirroring debug.DropError; the concatenation
// and the []byte conversion still allocate.
//
//go:nosplit
//go:inline
//go:registerparams
func dropError(prefix string, err error) {
	if diagSink == nil {
		return
	}
	var msg string
	if err != nil {
		msg = prefix + ": " + err.Error() + "\n"
	} else {
		msg = prefix + "\n"
	}
	_, _ = diagSink.Write([]byte(msg))
}

// dropMessage writes a cold-path-only diagnostic line with a fixed message,
// mirroring debug.DropMessage.
//
//go:nosplit
//go:inline
//go:registerparams
func dropMessage(prefix, message string) {
	if diagSink == nil {
		return
	}
	_, _ = diagSink.Write([]byte(prefix + ": " + message + "\n"))
}
