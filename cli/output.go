package cli

import "io"

// countingWriter remembers how much was written and the last byte, so
// the CLI can decide whether to add a cosmetic trailing newline on
// terminals.
type countingWriter struct {
	w       io.Writer
	written int64
	last    byte
}

func (w *countingWriter) Write(bs []byte) (int, error) {
	n, err := w.w.Write(bs)
	if n > 0 {
		w.written += int64(n)
		w.last = bs[n-1]
	}
	return n, err
}
