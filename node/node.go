// Package node implements the distributed core of a single worker: a
// ghost-padded partition of the board advanced one synchronous generation at
// a time, with its boundary rows exchanged against its row-adjacent
// neighbours before every step.
package node

import (
	"fmt"
	"sync"

	"uk.ac.bris.cs/distgol/engine"
)

// Node owns one rank's partition for the lifetime of a run. Above and Below
// are nil at the ends of the chain, where the ghost rows simply stay dead.
type Node struct {
	Rank    int
	Workers int
	Above   Link
	Below   Link

	mu        sync.Mutex // guards cur against snapshot readers during the swap
	cur, next *engine.Grid
}

// New wraps an initialised local grid. The spare grid for double-buffering
// is allocated here, once, and the two swap roles every generation.
func New(rank, workers int, g *engine.Grid) *Node {
	return &Node{
		Rank:    rank,
		Workers: workers,
		cur:     g,
		next:    engine.NewGrid(g.Rows, g.Size),
	}
}

// Exchange refreshes both ghost rows for the given turn. All four operations
// (up to two sends, up to two receives) are issued before any is waited on;
// two neighbours that each started with a blocking send would deadlock.
// It returns only once every issued operation has completed, so a failure of
// any one of them fails the exchange as a whole and the run cannot continue
// on a half-refreshed grid.
func (n *Node) Exchange(turn int) error {
	var wg sync.WaitGroup
	errs := make(chan error, 4)

	issue := func(op func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := op(); err != nil {
				errs <- err
			}
		}()
	}

	if n.Above != nil {
		issue(func() error {
			row, err := n.Above.Recv(turn)
			if err != nil {
				return err
			}
			copy(n.cur.InteriorRow(0), row)
			return nil
		})
		issue(func() error {
			return n.Above.Send(turn, n.cur.InteriorRow(1))
		})
	}
	if n.Below != nil {
		issue(func() error {
			row, err := n.Below.Recv(turn)
			if err != nil {
				return err
			}
			copy(n.cur.InteriorRow(n.cur.Rows+1), row)
			return nil
		})
		issue(func() error {
			return n.Below.Send(turn, n.cur.InteriorRow(n.cur.Rows))
		})
	}

	wg.Wait()
	close(errs)
	return <-errs
}

// Turn runs one full generation: halo refresh, rule application, buffer swap.
func (n *Node) Turn(turn int) error {
	if err := n.Exchange(turn); err != nil {
		return fmt.Errorf("halo exchange failed: %v", err)
	}
	engine.Step(n.cur, n.next)
	n.mu.Lock()
	n.cur, n.next = n.next, n.cur
	n.mu.Unlock()
	return nil
}

// Run advances the node by the given number of generations. check, if
// non-nil, is consulted at the top of every turn and may end the run early;
// either way Run reports how many turns actually completed.
func (n *Node) Run(turns int, check func(turn int) bool) (int, error) {
	for t := 0; t < turns; t++ {
		if check != nil && !check(t) {
			return t, nil
		}
		if err := n.Turn(t); err != nil {
			return t, err
		}
	}
	return turns, nil
}

// Snapshot copies out the node's owned rows.
func (n *Node) Snapshot() [][]uint8 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cur.Interior()
}

// SnapshotRow copies out one owned row by local index (1..Rows).
func (n *Node) SnapshotRow(local int) []uint8 {
	n.mu.Lock()
	defer n.mu.Unlock()
	row := make([]uint8, n.cur.Size)
	copy(row, n.cur.InteriorRow(local))
	return row
}

// AliveCount counts live cells in the owned rows.
func (n *Node) AliveCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cur.Alive()
}
