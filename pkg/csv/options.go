// Package csv provides a strict, round-tripping CSV reader and writer
// built on a streaming byte-level engine with one byte of lookahead.
package csv

import (
	"fmt"

	"github.com/shapestone/strictcsv/internal/fastparser"
)

// QuotePolicy controls which fields a Writer quotes.
type QuotePolicy int

const (
	// QuoteMinimal quotes a field only when it contains the delimiter, a
	// quote character, or a line break — the smallest quoting that still
	// round-trips.
	QuoteMinimal QuotePolicy = iota
	// QuoteAll quotes every field regardless of content.
	QuoteAll
)

func (p QuotePolicy) String() string {
	switch p {
	case QuoteMinimal:
		return "QuoteMinimal"
	case QuoteAll:
		return "QuoteAll"
	default:
		return fmt.Sprintf("QuotePolicy(%d)", int(p))
	}
}

func (p QuotePolicy) valid() bool {
	return p == QuoteMinimal || p == QuoteAll
}

// LineTerminator selects the row terminator a Writer emits.
type LineTerminator int

const (
	// LF terminates rows with "\n".
	LF LineTerminator = iota
	// CRLF terminates rows with "\r\n".
	CRLF
	// CR terminates rows with "\r".
	CR
)

func (t LineTerminator) String() string {
	switch t {
	case LF:
		return "LF"
	case CRLF:
		return "CRLF"
	case CR:
		return "CR"
	default:
		return fmt.Sprintf("LineTerminator(%d)", int(t))
	}
}

func (t LineTerminator) valid() bool {
	return t == LF || t == CRLF || t == CR
}

func (t LineTerminator) bytes() []byte {
	switch t {
	case CRLF:
		return []byte("\r\n")
	case CR:
		return []byte("\r")
	default:
		return []byte("\n")
	}
}

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// Comma is the field delimiter. It must not be CR, LF, or the quote
	// character.
	Comma byte

	// MaxFieldSize bounds the decoded bytes a single field may hold; 0
	// means unbounded.
	MaxFieldSize int

	// MaxRowSize bounds the decoded bytes across every field in one row;
	// 0 means unbounded.
	MaxRowSize int
}

// DefaultReaderOptions returns the default reader configuration: comma
// delimiter, no size ceilings.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{
		Comma:        ',',
		MaxFieldSize: 0,
		MaxRowSize:   0,
	}
}

// Validate reports whether the options are usable, catching a bad
// configuration at construction time instead of at the first Read.
func (o ReaderOptions) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{
			Field:   "Comma",
			Message: "must not be CR, LF, or the quote character",
			Err:     fastparser.NewError(fastparser.InvalidFieldDelimiter, "configured delimiter is CR, LF, or the quote character"),
		}
	}
	if o.MaxFieldSize < 0 {
		return &OptionsError{Field: "MaxFieldSize", Message: "must not be negative"}
	}
	if o.MaxRowSize < 0 {
		return &OptionsError{Field: "MaxRowSize", Message: "must not be negative"}
	}
	return nil
}

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Comma is the field delimiter. It must not be CR, LF, or the quote
	// character.
	Comma byte

	// Quote selects which fields get quoted.
	Quote QuotePolicy

	// Terminator selects the row terminator bytes.
	Terminator LineTerminator
}

// DefaultWriterOptions returns the default writer configuration: comma
// delimiter, minimal quoting, LF line endings.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{
		Comma:      ',',
		Quote:      QuoteMinimal,
		Terminator: LF,
	}
}

// Validate reports whether the options are usable.
func (o WriterOptions) Validate() error {
	if !validDelim(o.Comma) {
		return &OptionsError{
			Field:   "Comma",
			Message: "must not be CR, LF, or the quote character",
			Err:     fastparser.NewError(fastparser.InvalidFieldDelimiter, "configured delimiter is CR, LF, or the quote character"),
		}
	}
	if !o.Quote.valid() {
		return &OptionsError{
			Field:   "Quote",
			Message: "unrecognized quote policy",
			Err:     fastparser.NewError(fastparser.InvalidQuoteStyle, "unrecognized quote policy"),
		}
	}
	if !o.Terminator.valid() {
		return &OptionsError{
			Field:   "Terminator",
			Message: "unrecognized line terminator",
			Err:     fastparser.NewError(fastparser.InvalidLineBreak, "unrecognized line terminator"),
		}
	}
	return nil
}

// validDelim reports whether b is usable as a field delimiter.
func validDelim(b byte) bool {
	return b != '\r' && b != '\n' && b != '"'
}
