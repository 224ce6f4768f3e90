package io

import (
	"bytes"
)

// Buffer is a scripted console device: keys are consumed from a fixed
// script, display output collects in memory. Used by tests and for
// non-interactive runs.
type Buffer struct {
	Keys   []byte       // Remaining scripted keys.
	Output bytes.Buffer // Collected display output.
}

var _ Console = (*Buffer)(nil)

// ReadKey consumes the next scripted key.
func (buf *Buffer) ReadKey() (key byte, err error) {
	if len(buf.Keys) == 0 {
		err = ErrKeyEOF
		return
	}

	key = buf.Keys[0]
	buf.Keys = buf.Keys[1:]

	return
}

// Poll consumes the next scripted key, if any.
func (buf *Buffer) Poll() (key byte, ok bool) {
	key, err := buf.ReadKey()
	ok = err == nil

	return
}

// Write collects display output.
func (buf *Buffer) Write(data []byte) (n int, err error) {
	return buf.Output.Write(data)
}
