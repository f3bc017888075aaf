package csv_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shapestone/strictcsv/pkg/csv"
)

func TestWriteAllString(t *testing.T) {
	rows := [][]string{{"name", "age"}, {"Alice", "30"}, {"Bob, Jr.", "25"}}
	got, err := csv.WriteAllString(rows)
	if err != nil {
		t.Fatalf("WriteAllString: %v", err)
	}
	want := "name,age\nAlice,30\n\"Bob, Jr.\",25\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterOptionsQuoteAllAndCRLF(t *testing.T) {
	var buf bytes.Buffer
	w, err := csv.NewWriterOptions(&buf, csv.WriterOptions{Comma: ',', Quote: csv.QuoteAll, Terminator: csv.CRLF})
	if err != nil {
		t.Fatalf("NewWriterOptions: %v", err)
	}
	if err := w.WriteAll([][]string{{"a", "b"}}); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	want := "\"a\",\"b\"\r\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRoundTripThroughReaderAndWriter(t *testing.T) {
	rows := [][]string{
		{"a", "b,c", "d\ne"},
		{""},
		{},
		{`f"g`, ""},
	}

	encoded, err := csv.WriteAllString(rows)
	if err != nil {
		t.Fatalf("WriteAllString: %v", err)
	}

	decoded, err := csv.ReadAllString(encoded)
	if err != nil {
		t.Fatalf("ReadAllString: %v", err)
	}

	if len(decoded) != len(rows) {
		t.Fatalf("got %d rows, want %d (encoded: %q)", len(decoded), len(rows), encoded)
	}
	for i := range rows {
		if len(decoded[i]) != len(rows[i]) {
			t.Fatalf("row %d: got %v, want %v", i, decoded[i], rows[i])
		}
		for j := range rows[i] {
			if decoded[i][j] != rows[i][j] {
				t.Errorf("row %d field %d: got %q, want %q", i, j, decoded[i][j], rows[i][j])
			}
		}
	}
}

func TestWriterRejectsInvalidOptions(t *testing.T) {
	_, err := csv.NewWriterOptions(&bytes.Buffer{}, csv.WriterOptions{Comma: '"'})
	var optsErr *csv.OptionsError
	if !errors.As(err, &optsErr) {
		t.Fatalf("got %v, want *OptionsError", err)
	}
	var kindErr *csv.Error
	if !errors.As(err, &kindErr) || kindErr.Kind != csv.InvalidFieldDelimiter {
		t.Fatalf("got %v, want an error wrapping InvalidFieldDelimiter", err)
	}
}

func TestWriterStickyError(t *testing.T) {
	w := csv.NewWriter(failingWriter{})
	// Output is buffered: a short row reaches the failing sink only at
	// Flush, which is where the write failure first surfaces.
	if err := w.WriteRow([]string{"a"}); err != nil {
		t.Fatalf("WriteRow before Flush: %v", err)
	}
	err1 := w.Flush()
	if err1 == nil {
		t.Fatal("expected error")
	}
	err2 := w.WriteRow([]string{"b"})
	if err2 != err1 {
		t.Fatalf("sticky error: got %v, want %v", err2, err1)
	}
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}
