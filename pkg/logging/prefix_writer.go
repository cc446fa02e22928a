package logging

import (
	"bytes"
	"io"
)

// PrefixWriter decorates an io.Writer so every complete line starts with a
// fixed prefix. Partial lines are held back until their newline arrives.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer. The byte count reported back is always len(p):
// buffered bytes count as written.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending.Write(p)

	for {
		raw := pw.pending.Bytes()
		nl := bytes.IndexByte(raw, '\n')
		if nl < 0 {
			break
		}
		if _, err := pw.writer.Write(pw.prefix); err != nil {
			return len(p), err
		}
		if _, err := pw.writer.Write(raw[:nl+1]); err != nil {
			return len(p), err
		}
		pw.pending.Next(nl + 1)
	}

	return len(p), nil
}
