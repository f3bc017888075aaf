package fastparser

import "sync"

// rowPool recycles *Row values across Reader instances and ReadAll calls.
// A Row's own Reset already keeps its backing slices; pooling the Row
// itself additionally avoids the outer allocation for callers that parse
// many short-lived streams back to back.
var rowPool = sync.Pool{
	New: func() interface{} {
		return NewRow()
	},
}

// getRow retrieves a Row from the pool, reset and ready to decode into.
func getRow() *Row {
	row := rowPool.Get().(*Row)
	row.Reset()
	return row
}

// putRow returns a Row to the pool. Only reasonably sized rows are kept,
// so a single enormous record doesn't pin a huge buffer in the pool.
func putRow(row *Row) {
	const maxCapacity = 64 * 1024
	if cap(row.data) > maxCapacity {
		return
	}
	rowPool.Put(row)
}
