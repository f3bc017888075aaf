package fastparser

import (
	"bufio"
	"io"
)

// state is one of the two states of the parser's finite automaton.
type state uint8

const (
	stateStart    state = iota // between fields, including at row start
	stateInField               // inside a field body
)

const (
	// DefaultComma is the default field delimiter.
	DefaultComma = ','
)

// Reader is a streaming, pull-based CSV parser: a two-state automaton with
// one byte of lookahead over an io.Reader. It does not own the underlying
// stream — the caller opens and closes it.
//
// A Reader is not safe for concurrent use by multiple goroutines.
// Independent Readers over independent streams may run in parallel.
type Reader struct {
	src   *bufio.Reader
	comma byte

	// MaxFieldSize bounds the number of decoded bytes a single field may
	// hold; 0 means unbounded. MaxRowSize bounds the total decoded bytes
	// across every field in one row; 0 means unbounded. Exceeding either
	// returns ErrOutOfMemory — the canonical, non-allocating sentinel —
	// rather than letting a hostile or malformed stream grow a row
	// without limit.
	MaxFieldSize int
	MaxRowSize   int

	// ReuseRow controls whether Read returns the same *Row on every call,
	// reset in place, instead of a fresh one from the row pool. Reusing
	// avoids an allocation per row but means the previous row's content
	// is no longer valid once the next Read is called.
	ReuseRow bool

	row  *Row // only used when ReuseRow is true
	line int
	col  int
}

// NewReader creates a Reader reading CSV from r with the default comma
// delimiter.
func NewReader(r io.Reader) *Reader {
	rd, _ := NewReaderComma(r, DefaultComma)
	return rd
}

// NewReaderComma creates a Reader reading CSV from r with a custom field
// delimiter. It fails with InvalidFieldDelimiter if comma is CR, LF, or the
// quote character.
func NewReaderComma(r io.Reader, comma byte) (*Reader, error) {
	if err := validateComma(comma); err != nil {
		return nil, err
	}
	return &Reader{
		src:   bufio.NewReader(r),
		comma: comma,
		line:  1,
		col:   1,
	}, nil
}

func validateComma(comma byte) error {
	if comma == '\r' || comma == '\n' || comma == '"' {
		return NewError(InvalidFieldDelimiter, "delimiter must not be CR, LF, or the quote character")
	}
	return nil
}

// Position returns the 1-indexed line and column just past the byte most
// recently consumed, i.e. where the next byte would be read. The byte
// examined after a closing quote is not counted. It is intended for
// diagnostics, not for resuming a stream.
func (r *Reader) Position() (line, col int) {
	return r.line, r.col
}

// Read pulls the next row from the stream. It distinguishes three
// outcomes the idiomatic Go way: a row with a nil error; a nil row with
// io.EOF when the stream is exhausted with nothing pending; and a nil row
// with any other error when parsing failed. Callers check errors.Is(err,
// io.EOF) to detect clean end-of-input, exactly as with bufio.Scanner or
// encoding/csv.Reader.
func (r *Reader) Read() (*Row, error) {
	var row *Row
	if r.ReuseRow {
		if r.row == nil {
			r.row = NewRow()
		}
		row = r.row
		row.Reset()
	} else {
		row = getRow()
	}

	st := stateStart
	quoted := false
	fieldSize := 0
	rowSize := 0

	appendByte := func(b byte) error {
		if r.MaxFieldSize > 0 && fieldSize >= r.MaxFieldSize {
			return ErrOutOfMemory
		}
		if r.MaxRowSize > 0 && rowSize >= r.MaxRowSize {
			return ErrOutOfMemory
		}
		row.AppendByte(b)
		fieldSize++
		rowSize++
		return nil
	}

	for {
		b, readErr := r.src.ReadByte()
		if readErr != nil {
			if readErr != io.EOF {
				return nil, NewIOError(readErr)
			}
			switch {
			case st == stateInField && quoted:
				return nil, NewFormatError("unclosed quoted field")
			case st == stateInField && !quoted:
				row.EndField()
				return row, nil
			case row.FieldCount() >= 1:
				row.EndField()
				return row, nil
			default:
				return nil, io.EOF
			}
		}

		r.advancePosition(b)

		switch st {
		case stateStart:
			switch {
			case b == '"':
				quoted = true
				st = stateInField
			case b == r.comma:
				row.EndField()
				fieldSize = 0
			case b == '\r' || b == '\n':
				if b == '\r' {
					if err := r.consumeLF(); err != nil {
						return nil, NewIOError(err)
					}
				}
				if row.FieldCount() >= 1 {
					row.EndField()
				}
				return row, nil
			default:
				if err := appendByte(b); err != nil {
					return nil, err
				}
				st = stateInField
			}

		case stateInField:
			if quoted {
				if b != '"' {
					if err := appendByte(b); err != nil {
						return nil, err
					}
					continue
				}
				next, ok, err := r.peekByte()
				if err != nil {
					return nil, NewIOError(err)
				}
				switch {
				case ok && next == '"':
					if err := appendByte('"'); err != nil {
						return nil, err
					}
				case ok && next == r.comma:
					row.EndField()
					fieldSize = 0
					quoted = false
					st = stateStart
				case ok && (next == '\r' || next == '\n'):
					if next == '\r' {
						if err := r.consumeLF(); err != nil {
							return nil, NewIOError(err)
						}
					}
					row.EndField()
					return row, nil
				default:
					return nil, NewFormatError("closing quote must be followed by delimiter or line terminator")
				}
				continue
			}

			switch {
			case b == '"':
				return nil, NewFormatError("quote must be escaped")
			case b == r.comma:
				row.EndField()
				fieldSize = 0
				st = stateStart
			case b == '\r' || b == '\n':
				if b == '\r' {
					if err := r.consumeLF(); err != nil {
						return nil, NewIOError(err)
					}
				}
				row.EndField()
				return row, nil
			default:
				if err := appendByte(b); err != nil {
					return nil, err
				}
			}
		}
	}
}

// Release returns row to the internal pool so a later Read call can reuse
// its backing buffers instead of allocating a fresh Row. Callers should
// call Release only once they are done reading a row's fields — e.g.
// after copying them out — since the row's storage may be handed back
// out by a subsequent Read.
//
// Release is a no-op when ReuseRow is enabled: that Row belongs to this
// Reader, not the shared pool, and is reset in place on the next Read.
func (r *Reader) Release(row *Row) {
	if r.ReuseRow || row == nil {
		return
	}
	putRow(row)
}

// peekByte reads one byte of lookahead. ok is false only at EOF; a
// genuine read error is returned in err. The byte is left consumed from
// the stream — callers that decide not to use it must UnreadByte
// themselves (see consumeLF), mirroring getc/ungetc.
func (r *Reader) peekByte() (b byte, ok bool, err error) {
	b, err = r.src.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return b, true, nil
}

// consumeLF implements CRLF coalescing: after any CR terminator, look at
// the very next byte and consume it only if it is LF, otherwise push it
// back so it starts the next row. This is the fix for the source
// ambiguity spec.md flags — the lookahead here is always the byte that
// actually follows the CR, not the byte that triggered the transition.
func (r *Reader) consumeLF() error {
	b, err := r.src.ReadByte()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if b != '\n' {
		return r.src.UnreadByte()
	}
	r.advancePosition(b)
	return nil
}

func (r *Reader) advancePosition(b byte) {
	if b == '\n' {
		r.line++
		r.col = 1
		return
	}
	r.col++
}
