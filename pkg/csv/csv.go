package csv

import (
	"bytes"
	"io"
	"strings"
)

// Format identifies this codec, for callers that dispatch across
// multiple formats by name.
func Format() string {
	return "CSV"
}

// ReadAll reads every row from r using the default Reader options.
//
// Example:
//
//	rows, err := csv.ReadAll(file)
func ReadAll(r io.Reader) ([][]string, error) {
	return NewReader(r).ReadAll()
}

// ReadAllString reads every row from a CSV document already in memory.
func ReadAllString(input string) ([][]string, error) {
	return ReadAll(strings.NewReader(input))
}

// WriteAll serializes rows to w using the default Writer options.
//
// Example:
//
//	err := csv.WriteAll(file, [][]string{{"name", "age"}, {"Alice", "30"}})
func WriteAll(w io.Writer, rows [][]string) error {
	return NewWriter(w).WriteAll(rows)
}

// WriteAllString serializes rows to a freshly allocated CSV document.
func WriteAllString(rows [][]string) (string, error) {
	var buf bytes.Buffer
	if err := WriteAll(&buf, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Validate reports whether input is well-formed CSV, without retaining
// any of the decoded rows.
func Validate(input string) error {
	_, err := ReadAllString(input)
	return err
}
