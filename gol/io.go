package gol

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"uk.ac.bris.cs/distgol/engine"
)

type ioCommand uint8

const (
	ioOutput ioCommand = iota
	ioInput
	ioCheckIdle
)

type ioChannels struct {
	command  <-chan ioCommand
	idle     chan<- bool
	filename <-chan string
	output   <-chan uint8
	input    chan<- uint8
}

// startIo runs the file IO goroutine. Boards are plain text: the size
// followed by size*size cells, each 0 or 1, row-major. Cells cross the
// channels one at a time in the internal 0/255 convention.
//
// A defective board file is an argument error: there is nothing to compute
// without a full valid board, so it ends the run with a single diagnostic.
func startIo(p Params, c ioChannels) {
	for {
		switch <-c.command {
		case ioInput:
			if err := readBoardFile(<-c.filename, p.Size, c.input); err != nil {
				log.Fatalf("Unable to read board: %v", err)
			}
		case ioOutput:
			if err := writeBoardFile(<-c.filename, p.Size, c.output); err != nil {
				log.Fatalf("Unable to write board: %v", err)
			}
		case ioCheckIdle:
			c.idle <- true
		}
	}
}

// readBoardFile streams a board file onto the input channel.
func readBoardFile(filename string, size int, input chan<- uint8) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var fileSize int
	if _, err := fmt.Fscan(r, &fileSize); err != nil {
		return fmt.Errorf("board size: %v", err)
	}
	if fileSize != size {
		return fmt.Errorf("board file is %dx%d, run asked for %dx%d", fileSize, fileSize, size, size)
	}

	for i := 0; i < size*size; i++ {
		var v int
		if _, err := fmt.Fscan(r, &v); err != nil {
			return fmt.Errorf("board values: %v", err)
		}
		switch v {
		case 0:
			input <- engine.Dead
		case 1:
			input <- engine.Alive
		default:
			return fmt.Errorf("board cell must be 0 or 1, got %d", v)
		}
	}
	return nil
}

// writeBoardFile drains size*size cells from the output channel into a file
// in the same format readBoardFile accepts.
func writeBoardFile(filename string, size int, output <-chan uint8) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x > 0 {
				fmt.Fprint(w, " ")
			}
			v := 0
			if <-output != engine.Dead {
				v = 1
			}
			fmt.Fprint(w, v)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// renderBoard prints a gathered board, one glyph per cell.
func renderBoard(board [][]uint8) {
	w := bufio.NewWriter(os.Stdout)
	for _, row := range board {
		for _, v := range row {
			if v != engine.Dead {
				fmt.Fprint(w, "▉")
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
