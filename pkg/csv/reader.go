package csv

import (
	"errors"
	"io"

	"github.com/shapestone/strictcsv/internal/fastparser"
)

// Reader reads CSV rows one at a time from an underlying io.Reader. It
// distinguishes a row, end-of-input, and failure the idiomatic Go way:
// Read returns (*Row, nil) for a row, (nil, io.EOF) at clean end of
// input, and (nil, err) — err wrapped in a *ParseError — on failure.
type Reader struct {
	inner *fastparser.Reader
}

// NewReader creates a Reader with the default options: comma delimiter,
// no size ceilings.
func NewReader(r io.Reader) *Reader {
	return &Reader{inner: fastparser.NewReader(r)}
}

// NewReaderOptions creates a Reader with custom options, validating them
// up front so a bad delimiter or ceiling fails at construction rather
// than at the first Read.
func NewReaderOptions(r io.Reader, opts ReaderOptions) (*Reader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	inner, err := fastparser.NewReaderComma(r, opts.Comma)
	if err != nil {
		return nil, err
	}
	inner.MaxFieldSize = opts.MaxFieldSize
	inner.MaxRowSize = opts.MaxRowSize
	return &Reader{inner: inner}, nil
}

// Read returns the next row. See the Reader doc comment for the
// io.EOF/error contract.
func (r *Reader) Read() (*Row, error) {
	row, err := r.inner.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		line, col := r.inner.Position()
		return nil, &ParseError{Line: line, Column: col, Err: err}
	}
	return row, nil
}

// ReadAll reads every remaining row, returning the fields of each as a
// plain [][]string. It stops at the first error, returning whatever rows
// were read successfully alongside it.
func (r *Reader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row.Fields())
		r.Release(row)
	}
}

// Release returns row to the internal pool once a caller is done with its
// fields, so a later Read can reuse its backing buffers instead of
// allocating a fresh Row. ReadAll calls this itself after copying a row's
// fields out; callers driving Read directly may call it too, once they no
// longer hold a reference to the row's fields.
func (r *Reader) Release(row *Row) {
	r.inner.Release(row)
}
