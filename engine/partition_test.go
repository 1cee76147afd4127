package engine

import "testing"

func TestPartitionCoversBoardExactlyOnce(t *testing.T) {
	for size := 1; size <= 64; size++ {
		for workers := 1; workers <= size; workers++ {
			covered := make([]int, size+2)
			for rank := 0; rank < workers; rank++ {
				rows := LocalRows(rank, size, workers)
				if rows < 1 {
					t.Fatalf("size=%d workers=%d rank=%d owns %d rows", size, workers, rank, rows)
				}
				start := StartRow(rank, size, workers)
				end := EndRow(rank, size, workers)
				if end-start != rows {
					t.Fatalf("size=%d workers=%d rank=%d: [%d,%d) disagrees with %d rows",
						size, workers, rank, start, end, rows)
				}
				for row := start; row < end; row++ {
					covered[row]++
					if got := OwningRank(row, size, workers); got != rank {
						t.Fatalf("size=%d workers=%d: row %d owned by rank %d, OwningRank says %d",
							size, workers, row, rank, got)
					}
				}
			}
			for row := 1; row <= size; row++ {
				if covered[row] != 1 {
					t.Fatalf("size=%d workers=%d: row %d covered %d times", size, workers, row, covered[row])
				}
			}
			if covered[0] != 0 || covered[size+1] != 0 {
				t.Fatalf("size=%d workers=%d: partition leaks outside the board", size, workers)
			}
		}
	}
}

func TestRemainderGoesToLastRank(t *testing.T) {
	// 10 rows over 4 workers: ceil gives 3 each, the last absorbs the single
	// leftover row.
	for rank := 0; rank < 3; rank++ {
		if got := LocalRows(rank, 10, 4); got != 3 {
			t.Errorf("rank %d: got %d rows, want 3", rank, got)
		}
	}
	if got := LocalRows(3, 10, 4); got != 1 {
		t.Errorf("last rank: got %d rows, want 1", got)
	}
	if got := EndRow(3, 10, 4); got != 11 {
		t.Errorf("last rank end: got %d, want 11", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		turns   int
		workers int
		wantErr bool
	}{
		{"typical", 16, 100, 4, false},
		{"zero turns", 16, 0, 1, false},
		{"one row each", 4, 1, 4, false},
		{"zero size", 0, 1, 1, true},
		{"negative turns", 16, -1, 1, true},
		{"zero workers", 16, 1, 0, true},
		{"more workers than rows", 4, 1, 5, true},
	}
	for _, tt := range tests {
		err := Validate(tt.size, tt.turns, tt.workers)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate(%d, %d, %d) = %v, wantErr=%v",
				tt.name, tt.size, tt.turns, tt.workers, err, tt.wantErr)
		}
	}
}
