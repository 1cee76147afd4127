package gol

import (
	"fmt"
	"log"
	"net/rpc"
	"time"

	"uk.ac.bris.cs/distgol/engine"
	"uk.ac.bris.cs/distgol/stubs"
)

type distributorChannels struct {
	events     chan<- Event
	ioCommand  chan<- ioCommand
	ioIdle     <-chan bool
	ioFilename chan<- string
	ioOutput   chan<- uint8
	ioInput    <-chan uint8
}

// distributor plays the coordinating rank's part: it sizes the partitions,
// hands every worker its strip, waits out the generation loop and gathers
// and reports the result. Only this process prints timings and counts.
func distributor(p Params, workers []string, c distributorChannels, keyPresses <-chan rune) {
	nworkers := len(workers)
	if nworkers == 0 {
		nworkers = p.Threads
	}
	if err := engine.Validate(p.Size, p.Turns, nworkers); err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	setupStart := time.Now()
	board, fromFile := initialBoard(p, c)

	c.events <- CellsFlipped{0, aliveCells(board)}
	c.events <- TurnComplete{0}
	c.events <- StateChange{0, Executing}

	var (
		final     [][]uint8
		turnsDone int
		setup     time.Duration
		compute   time.Duration
	)
	if len(workers) > 0 {
		final, turnsDone, setup, compute = runMesh(p, workers, board, fromFile, setupStart, c, keyPresses)
	} else {
		final, turnsDone, setup, compute = runLocal(p, board, setupStart, c, keyPresses)
	}

	cells := aliveCells(final)
	fmt.Printf("\n- Time setup:\t\t%.4f seconds\n", setup.Seconds())
	fmt.Printf("- Time parallel:\t%.4f seconds\n", compute.Seconds())
	fmt.Printf("\nAlive cells after %d turns: %d\n", turnsDone, len(cells))
	if p.Render {
		renderBoard(final)
	}

	saveBoard(p, final, turnsDone, c)

	c.events <- CellsFlipped{turnsDone, flippedCells(board, final)}
	c.events <- TurnComplete{turnsDone}
	c.events <- FinalTurnComplete{turnsDone, cells}

	// Make sure the IO goroutine has finished any output before exiting.
	c.ioCommand <- ioCheckIdle
	<-c.ioIdle

	c.events <- StateChange{turnsDone, Quitting}

	// Close the channel to stop the SDL goroutine gracefully. Removing may cause deadlock.
	close(c.events)
}

// initialBoard produces the board the run starts from. A file board is read
// through the IO goroutine; otherwise the coordinator replays the shared
// seed, which rebuilds exactly the board every worker fills in for itself.
func initialBoard(p Params, c distributorChannels) ([][]uint8, bool) {
	if p.Input != "" {
		c.ioCommand <- ioInput
		c.ioFilename <- p.Input
		board := make([][]uint8, p.Size)
		for y := range board {
			board[y] = make([]uint8, p.Size)
			for x := range board[y] {
				board[y][x] = <-c.ioInput
			}
		}
		return board, true
	}
	g := engine.NewGrid(p.Size, p.Size)
	g.Randomise(p.Seed, 1)
	return g.Interior(), false
}

// runMesh drives a run over remote workers: initialise every rank, start
// them all at once, then sit on the progress ticker and keypresses until the
// whole mesh has finished, and gather the final board.
func runMesh(p Params, workers []string, board [][]uint8, fromFile bool, setupStart time.Time, c distributorChannels, keyPresses <-chan rune) ([][]uint8, int, time.Duration, time.Duration) {
	clients, err := dialMesh(workers)
	if err != nil {
		log.Fatalf("Run aborted: %v", err)
	}

	n := len(workers)
	for rank, client := range clients {
		req := stubs.InitRequest{Rank: rank, Workers: n, Size: p.Size, Seed: p.Seed}
		if fromFile {
			start := engine.StartRow(rank, p.Size, n)
			end := engine.EndRow(rank, p.Size, n)
			req.Rows = board[start-1 : end-1]
		}
		if rank > 0 {
			req.Above = workers[rank-1]
		}
		if rank < n-1 {
			req.Below = workers[rank+1]
		}
		if err := client.Call(stubs.Init, req, new(stubs.InitResponse)); err != nil {
			abortRun(clients, fmt.Errorf("init rank %d: %v", rank, err))
		}
	}
	setup := time.Since(setupStart)

	computeStart := time.Now()
	type outcome struct {
		rank int
		res  stubs.StartResponse
		err  error
	}
	done := make(chan outcome, n)
	for rank, client := range clients {
		go func(rank int, client *rpc.Client) {
			res := new(stubs.StartResponse)
			err := client.Call(stubs.Start, stubs.StartRequest{Turns: p.Turns}, res)
			done <- outcome{rank, *res, err}
		}(rank, client)
	}

	ticker := time.NewTicker(2 * time.Second)
	paused := false
	quitting := false
	shutdown := false
	turnsDone := p.Turns
	for remaining := n; remaining > 0; {
		select {
		case o := <-done:
			if o.err != nil {
				// A quit can cut a rank off mid-exchange before its own
				// Quit call lands; that is not a failure of the mesh.
				if !quitting {
					abortRun(clients, fmt.Errorf("rank %d: %v", o.rank, o.err))
				}
			} else if o.res.TurnsDone < turnsDone {
				turnsDone = o.res.TurnsDone
			}
			remaining--
		case <-ticker.C:
			if paused || quitting {
				continue
			}
			count, turn, err := meshAlive(clients)
			if err != nil {
				abortRun(clients, err)
			}
			c.events <- AliveCellsCount{turn, count}
		case key := <-keyPresses:
			switch key {
			case 'p':
				method, state := stubs.Pause, Paused
				if paused {
					method, state = stubs.Resume, Executing
				}
				paused = !paused
				if err := broadcast(clients, method); err != nil {
					abortRun(clients, err)
				}
				_, turn, err := meshAlive(clients)
				if err != nil {
					abortRun(clients, err)
				}
				c.events <- StateChange{turn, state}
			case 's':
				snap, err := gather(clients, p.Size)
				if err != nil {
					abortRun(clients, err)
				}
				_, turn, err := meshAlive(clients)
				if err != nil {
					abortRun(clients, err)
				}
				saveBoard(p, snap, turn, c)
			case 'q', 'k':
				if !quitting {
					quitting = true
					shutdown = key == 'k'
					if err := broadcast(clients, stubs.Quit); err != nil {
						abortRun(clients, err)
					}
				}
			}
		}
	}
	ticker.Stop()
	compute := time.Since(computeStart)

	final, err := gather(clients, p.Size)
	if err != nil {
		abortRun(clients, err)
	}
	if shutdown {
		broadcast(clients, stubs.Shutdown)
	}
	for _, client := range clients {
		client.Close()
	}
	return final, turnsDone, setup, compute
}

// saveBoard writes a gathered board through the IO goroutine.
func saveBoard(p Params, board [][]uint8, turn int, c distributorChannels) {
	filename := fmt.Sprintf("%dx%dx%d.txt", p.Size, p.Size, turn)
	c.ioCommand <- ioOutput
	c.ioFilename <- filename
	for _, row := range board {
		for _, v := range row {
			c.ioOutput <- v
		}
	}
	c.events <- BoardOutputComplete{turn, filename}
}
