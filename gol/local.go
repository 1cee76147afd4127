package gol

import (
	"log"
	"sync"
	"time"

	"uk.ac.bris.cs/distgol/engine"
	"uk.ac.bris.cs/distgol/node"
)

// localControl coordinates pause and quit across in-process nodes. Quitting
// picks a common stop turn, the furthest any node has reached: every slower
// node can still get there because the halo rows it needs are already in (or
// blocked on) its mailboxes, so the whole mesh stops at one consistent
// generation.
type localControl struct {
	mu     sync.Mutex
	resume *sync.Cond
	paused bool
	quitAt int
	turns  []int
}

func newLocalControl(workers, turns int) *localControl {
	lc := &localControl{quitAt: turns, turns: make([]int, workers)}
	lc.resume = sync.NewCond(&lc.mu)
	return lc
}

// gate returns the per-turn check for one rank's generation loop.
func (lc *localControl) gate(rank int) func(int) bool {
	return func(turn int) bool {
		lc.mu.Lock()
		defer lc.mu.Unlock()
		lc.turns[rank] = turn
		for lc.paused && turn < lc.quitAt {
			lc.resume.Wait()
		}
		return turn < lc.quitAt
	}
}

func (lc *localControl) pause(on bool) {
	lc.mu.Lock()
	lc.paused = on
	lc.resume.Broadcast()
	lc.mu.Unlock()
}

func (lc *localControl) quit() {
	lc.mu.Lock()
	max := 0
	for _, t := range lc.turns {
		if t > max {
			max = t
		}
	}
	if max < lc.quitAt {
		lc.quitAt = max
	}
	lc.paused = false
	lc.resume.Broadcast()
	lc.mu.Unlock()
}

func (lc *localControl) minTurn() int {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	min := lc.turns[0]
	for _, t := range lc.turns {
		if t < min {
			min = t
		}
	}
	return min
}

// runLocal executes the same rank/partition model inside one process: each
// node runs its own generation loop on a goroutine, linked to its
// neighbours by channel pipes instead of the wire.
func runLocal(p Params, board [][]uint8, setupStart time.Time, c distributorChannels, keyPresses <-chan rune) ([][]uint8, int, time.Duration, time.Duration) {
	n := p.Threads
	nodes := make([]*node.Node, n)
	for rank := range nodes {
		rows := engine.LocalRows(rank, p.Size, n)
		start := engine.StartRow(rank, p.Size, n)
		grid := engine.NewGrid(rows, p.Size)
		grid.SetInterior(board[start-1 : start-1+rows])
		nodes[rank] = node.New(rank, n, grid)
	}
	node.Connect(nodes)
	setup := time.Since(setupStart)

	computeStart := time.Now()
	lc := newLocalControl(n, p.Turns)
	type outcome struct {
		rank  int
		turns int
		err   error
	}
	done := make(chan outcome, n)
	for rank, nd := range nodes {
		go func(rank int, nd *node.Node) {
			turns, err := nd.Run(p.Turns, lc.gate(rank))
			done <- outcome{rank, turns, err}
		}(rank, nd)
	}

	ticker := time.NewTicker(2 * time.Second)
	paused := false
	turnsDone := p.Turns
	for remaining := n; remaining > 0; {
		select {
		case o := <-done:
			if o.err != nil {
				log.Fatalf("Run aborted: rank %d: %v", o.rank, o.err)
			}
			if o.turns < turnsDone {
				turnsDone = o.turns
			}
			remaining--
		case <-ticker.C:
			if paused {
				continue
			}
			count := 0
			for _, nd := range nodes {
				count += nd.AliveCount()
			}
			c.events <- AliveCellsCount{lc.minTurn(), count}
		case key := <-keyPresses:
			switch key {
			case 'p':
				paused = !paused
				lc.pause(paused)
				state := Executing
				if paused {
					state = Paused
				}
				c.events <- StateChange{lc.minTurn(), state}
			case 's':
				saveBoard(p, gatherLocal(nodes, p.Size), lc.minTurn(), c)
			case 'q', 'k':
				lc.quit()
			}
		}
	}
	ticker.Stop()
	compute := time.Since(computeStart)

	return gatherLocal(nodes, p.Size), turnsDone, setup, compute
}

// gatherLocal mirrors the wire gather: rows assembled in ascending global
// order from whichever rank owns them.
func gatherLocal(nodes []*node.Node, size int) [][]uint8 {
	board := make([][]uint8, size)
	n := len(nodes)
	for row := 1; row <= size; row++ {
		rank := engine.OwningRank(row, size, n)
		start := engine.StartRow(rank, size, n)
		board[row-1] = nodes[rank].SnapshotRow(row - start + 1)
	}
	return board
}
