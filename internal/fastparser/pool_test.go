package fastparser

import "testing"

func TestRowPoolGetIsReset(t *testing.T) {
	row := getRow()
	row.AppendBytes([]byte("leftover"))
	row.EndField()
	putRow(row)

	reused := getRow()
	if got := reused.FieldCount(); got != 0 {
		t.Fatalf("FieldCount() on pooled row = %d, want 0", got)
	}
}

func TestRowPoolPutOversizedRow(t *testing.T) {
	row := NewRow()
	row.AppendBytes(make([]byte, 128*1024))
	row.EndField()

	// putRow must not panic on an oversized row; whether the pool keeps
	// it is an implementation detail, not something callers observe.
	putRow(row)
}
