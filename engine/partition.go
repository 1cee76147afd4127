package engine

import "fmt"

// The global board is decomposed into contiguous horizontal strips, one per
// worker. Global rows are 1-based: row 0 and row size+1 only ever exist as
// ghost rows inside a worker's local grid. The remainder of an uneven
// division is always absorbed by the last rank, so the mapping is fully
// determined by (size, workers) alone.

// RowsPerWorker - the strip height of every rank except possibly the last.
func RowsPerWorker(size, workers int) int {
	return (size + workers - 1) / workers
}

// LocalRows - how many board rows the given rank owns.
func LocalRows(rank, size, workers int) int {
	if rank == workers-1 {
		return size - (workers-1)*RowsPerWorker(size, workers)
	}
	return RowsPerWorker(size, workers)
}

// StartRow - first global row owned by rank (inclusive, 1-based).
func StartRow(rank, size, workers int) int {
	return rank*RowsPerWorker(size, workers) + 1
}

// EndRow - one past the last global row owned by rank.
func EndRow(rank, size, workers int) int {
	if rank == workers-1 {
		return size + 1
	}
	return StartRow(rank, size, workers) + RowsPerWorker(size, workers)
}

// OwningRank - which rank owns the given global row.
func OwningRank(row, size, workers int) int {
	return (row - 1) / RowsPerWorker(size, workers)
}

// Validate rejects launch parameters before any worker is touched. More
// workers than rows would leave a rank owning zero rows, which the strip
// arithmetic cannot represent.
func Validate(size, turns, workers int) error {
	if size < 1 {
		return fmt.Errorf("board size must be positive, got %d", size)
	}
	if turns < 0 {
		return fmt.Errorf("turns must be non-negative, got %d", turns)
	}
	if workers < 1 {
		return fmt.Errorf("need at least one worker, got %d", workers)
	}
	if workers > size {
		return fmt.Errorf("%d workers cannot share a %d-row board", workers, size)
	}
	return nil
}
