// Package parallel splits row-wise work across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// RowThreshold is the row count below which parallel row processing is
// not worth the goroutine overhead.
const RowThreshold = 256

// ForRows partitions [0, rows) into contiguous chunks, one per worker,
// and runs fn on each chunk concurrently. fn must only touch rows in
// its [start, end) range.
func ForRows(rows int, fn func(start, end int)) {
	if rows == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if end > rows {
			end = rows
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// MaybeForRows runs fn sequentially over the whole range when rows is
// at or below threshold, in parallel chunks otherwise.
func MaybeForRows(rows, threshold int, fn func(start, end int)) {
	if rows <= threshold {
		fn(0, rows)
		return
	}
	ForRows(rows, fn)
}
