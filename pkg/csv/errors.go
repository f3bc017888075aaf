package csv

import (
	"fmt"

	"github.com/shapestone/strictcsv/internal/fastparser"
)

// ErrorKind classifies a failure returned by a Reader or Writer in this
// package. It is re-exported from the internal byte-level engine so
// callers never need to import internal/fastparser directly.
type ErrorKind = fastparser.ErrorKind

// Error is the tagged error value every Reader/Writer failure carries.
// It implements error and Unwrap, so errors.Is/errors.As work against
// both the Kind and any wrapped underlying cause.
type Error = fastparser.Error

const (
	OutOfMemory           = fastparser.OutOfMemory
	InvalidFieldDelimiter = fastparser.InvalidFieldDelimiter
	IO                    = fastparser.IO
	InvalidFormat         = fastparser.InvalidFormat
	InvalidQuoteStyle     = fastparser.InvalidQuoteStyle
	InvalidLineBreak      = fastparser.InvalidLineBreak
)

// ErrOutOfMemory is the canonical error a Reader returns once a row or
// field grows past its configured size ceiling.
var ErrOutOfMemory = fastparser.ErrOutOfMemory

// ParseError augments an underlying Error with the line and column at
// which it was detected, so a caller can report exactly where a
// malformed document broke.
type ParseError struct {
	// Line is the 1-indexed line of the Reader's position when the error
	// was detected.
	Line int
	// Column is the 1-indexed column just past the last byte consumed
	// when the error was detected.
	Column int
	// Err is the underlying error, typically an *Error from this package.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv: line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OptionsError reports an invalid field in a ReaderOptions or
// WriterOptions value, caught at construction time rather than at the
// first Read or WriteRow. When the violation maps to one of the tagged
// ErrorKind values (InvalidFieldDelimiter, InvalidQuoteStyle,
// InvalidLineBreak), Err holds that *Error so callers can recover the
// Kind with errors.As instead of matching on Field/Message text.
type OptionsError struct {
	Field   string
	Message string
	Err     error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("csv: invalid option %s: %s", e.Field, e.Message)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}
