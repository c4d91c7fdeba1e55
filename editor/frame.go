package editor

import "io"

// frame accumulates one rendered screen so the whole update goes out in a
// single write. Batching the escapes and row bytes avoids the flicker of
// partially drawn frames and keeps it to one syscall per refresh.
//
// A frame lives for exactly one render pass: built empty, appended to,
// flushed, discarded.
type frame struct {
	buf []byte
}

// Write appends p to the frame. Implementing io.Writer keeps appends on
// the fallible path: render code checks the result instead of output being
// dropped silently.
func (f *frame) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// WriteString appends s without an intermediate copy.
func (f *frame) WriteString(s string) (int, error) {
	f.buf = append(f.buf, s...)
	return len(s), nil
}

// flush writes the accumulated frame in one call and empties the buffer.
func (f *frame) flush(w io.Writer) error {
	_, err := w.Write(f.buf)
	f.buf = f.buf[:0]
	return err
}
