package trace

import (
	"bufio"
	"io"

	"github.com/andybalholm/brotli"
)

// Writer writes entries as text lines. The first write error is
// kept and returned by Err and Close; later entries are dropped.
type Writer struct {
	buf *bufio.Writer
	br  *brotli.Writer
	err error
}

// NewWriter returns a Writer on w. When compress is set the
// output is a brotli stream.
func NewWriter(w io.Writer, compress bool) *Writer {
	tw := &Writer{}
	if compress {
		tw.br = brotli.NewWriterLevel(w, brotli.DefaultCompression)
		w = tw.br
	}
	tw.buf = bufio.NewWriter(w)
	return tw
}

// Trace implements Tracer.
func (w *Writer) Trace(e Entry) {
	if w.err != nil {
		return
	}
	if _, err := w.buf.WriteString(e.String()); err != nil {
		w.err = err
		return
	}
	w.err = w.buf.WriteByte('\n')
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

// Close flushes any buffered output and terminates the brotli
// stream. The underlying writer is not closed.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if w.br != nil {
		return w.br.Close()
	}
	return nil
}
