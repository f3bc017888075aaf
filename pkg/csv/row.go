package csv

import "github.com/shapestone/strictcsv/internal/fastparser"

// Row is a decoded CSV record: an ordered, growable sequence of fields
// backed by a single buffer rather than one allocation per field.
type Row = fastparser.Row

// NewRow allocates an empty Row.
func NewRow() *Row {
	return fastparser.NewRow()
}
