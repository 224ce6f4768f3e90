// Package io provides console device implementations for the LC-3
// emulator: Terminal for interactive raw-mode tty sessions, and Buffer
// for scripted in-memory I/O.
package io

import (
	"io"
)

// Console is the interface for console devices attached to the machine.
// A Console serves both as the trap I/O endpoint and as the keyboard
// behind the memory-mapped status and data registers.
type Console interface {
	// ReadKey blocks until a key is available and consumes it.
	// Returns ErrKeyEOF once the input source is exhausted.
	ReadKey() (key byte, err error)
	// Poll consumes a pending key, if any.
	Poll() (key byte, ok bool)
	// Writer receives display output.
	io.Writer
}
