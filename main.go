package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"uk.ac.bris.cs/distgol/gol"
	"uk.ac.bris.cs/distgol/sdl"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	runtime.LockOSThread()
	var params gol.Params

	flag.IntVar(
		&params.Size,
		"size",
		512,
		"Specify the board size (the board is size x size). Defaults to 512.")

	flag.IntVar(
		&params.Turns,
		"turns",
		100,
		"Specify the number of turns to process. Defaults to 100.")

	flag.IntVar(
		&params.Threads,
		"t",
		4,
		"Specify the number of in-process workers used when no -workers list is given. Defaults to 4.")

	flag.Int64Var(
		&params.Seed,
		"seed",
		0,
		"Specify the seed for the random board. Defaults to 0.")

	flag.StringVar(
		&params.Input,
		"input",
		"",
		"Specify a board file to start from instead of a random fill.")

	flag.BoolVar(
		&params.Render,
		"print",
		false,
		"Print the final board to stdout, one glyph per cell.")

	workerList := flag.String(
		"workers",
		"",
		"Comma-separated worker addresses in rank order. Empty runs in process; falls back to GOL_WORKERS.")

	noVis := flag.Bool(
		"noVis",
		false,
		"Disables the SDL window, so there is no visualisation during the tests.")
	flag.Parse()

	if *workerList == "" {
		*workerList = os.Getenv("GOL_WORKERS")
	}
	var workers []string
	if *workerList != "" {
		workers = strings.Split(*workerList, ",")
	}

	fmt.Println("Size:", params.Size)
	fmt.Println("Turns:", params.Turns)
	if len(workers) > 0 {
		fmt.Println("Workers:", len(workers))
	} else {
		fmt.Println("Threads:", params.Threads)
	}

	keyPresses := make(chan rune, 10)
	events := make(chan gol.Event, 1000)

	go gol.Run(params, workers, events, keyPresses)

	if !(*noVis) {
		sdl.Run(params, events, keyPresses)
	} else {
		// Drain events until the run closes the channel; everything has
		// been flushed to disk by then.
		for event := range events {
			switch e := event.(type) {
			case gol.FinalTurnComplete:
				fmt.Println(e)
			}
		}
	}
}
