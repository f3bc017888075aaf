package csv

import (
	"io"

	"github.com/shapestone/strictcsv/internal/fastparser"
)

// Writer serializes rows of fields back into CSV bytes, quoting only
// what round-tripping requires. It buffers its output; call Flush (or
// WriteAll, which flushes for you) before the underlying writer is
// closed.
type Writer struct {
	inner *fastparser.Writer
}

// NewWriter creates a Writer with the default options: comma delimiter,
// minimal quoting, LF line endings.
func NewWriter(w io.Writer) *Writer {
	inner, _ := fastparser.NewWriter(w, ',', false, LF.bytes())
	return &Writer{inner: inner}
}

// NewWriterOptions creates a Writer with custom options, validating them
// up front.
func NewWriterOptions(w io.Writer, opts WriterOptions) (*Writer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	inner, err := fastparser.NewWriter(w, opts.Comma, opts.Quote == QuoteAll, opts.Terminator.bytes())
	if err != nil {
		return nil, err
	}
	return &Writer{inner: inner}, nil
}

// WriteRow writes one row. Once an error occurs, every subsequent call
// is a no-op returning that same error; check Error (or the return of
// the final WriteRow/Flush) rather than after every call.
func (w *Writer) WriteRow(fields []string) error {
	return w.inner.WriteRow(fields)
}

// WriteAll writes every row in rows and flushes.
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		if err := w.inner.WriteRow(row); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.inner.Flush()
}

// Error returns the first error encountered by WriteRow or Flush.
func (w *Writer) Error() error {
	return w.inner.Error()
}
