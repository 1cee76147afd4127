package gol

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"uk.ac.bris.cs/distgol/engine"
)

func TestBoardFileRoundTrip(t *testing.T) {
	const size = 4
	board := []uint8{
		0, 255, 0, 0,
		0, 255, 0, 255,
		255, 0, 0, 0,
		0, 0, 255, 255,
	}
	filename := filepath.Join(t.TempDir(), "4x4.txt")

	out := make(chan uint8, size*size)
	for _, v := range board {
		out <- v
	}
	if err := writeBoardFile(filename, size, out); err != nil {
		t.Fatalf("write: %v", err)
	}

	in := make(chan uint8, size*size)
	if err := readBoardFile(filename, size, in); err != nil {
		t.Fatalf("read: %v", err)
	}
	close(in)
	var got []uint8
	for v := range in {
		got = append(got, v)
	}
	if !reflect.DeepEqual(got, board) {
		t.Fatal("board did not round-trip through the file format")
	}
}

func TestReadBoardFileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad cell value", "2\n0 1\n1 7\n"},
		{"truncated", "2\n0 1\n"},
		{"size mismatch", "3\n0 0 0\n0 0 0\n0 0 0\n"},
		{"no size", ""},
	}
	for _, tt := range tests {
		filename := filepath.Join(t.TempDir(), "board.txt")
		if err := os.WriteFile(filename, []byte(tt.content), 0644); err != nil {
			t.Fatal(err)
		}
		in := make(chan uint8, 4)
		if err := readBoardFile(filename, 2, in); err == nil {
			t.Errorf("%s: accepted", tt.name)
		}
	}
}

func TestAliveAndFlippedCells(t *testing.T) {
	before := [][]uint8{
		{engine.Alive, engine.Dead},
		{engine.Dead, engine.Dead},
	}
	after := [][]uint8{
		{engine.Dead, engine.Dead},
		{engine.Dead, engine.Alive},
	}
	if got := aliveCells(before); len(got) != 1 || got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("aliveCells = %v", got)
	}
	if got := flippedCells(before, after); len(got) != 2 {
		t.Errorf("flippedCells = %v, want 2 flips", got)
	}
}
