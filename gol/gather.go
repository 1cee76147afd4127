package gol

import (
	"fmt"
	"log"
	"net/rpc"

	"uk.ac.bris.cs/distgol/engine"
	"uk.ac.bris.cs/distgol/stubs"
	"uk.ac.bris.cs/distgol/util"
)

// dialMesh connects to every worker, in rank order.
func dialMesh(addrs []string) ([]*rpc.Client, error) {
	clients := make([]*rpc.Client, len(addrs))
	for rank, addr := range addrs {
		client, err := rpc.Dial("tcp", addr)
		if err != nil {
			for _, c := range clients {
				if c != nil {
					c.Close()
				}
			}
			return nil, fmt.Errorf("dial worker %d at %v: %v", rank, addr, err)
		}
		clients[rank] = client
	}
	return clients, nil
}

// broadcast calls a no-argument method on every worker.
func broadcast(clients []*rpc.Client, method string) error {
	for rank, client := range clients {
		if err := client.Call(method, stubs.Empty{}, new(stubs.Empty)); err != nil {
			return fmt.Errorf("worker %d: %v", rank, err)
		}
	}
	return nil
}

// abortRun is the collective failure path: a partial partition set cannot
// safely continue, so every reachable worker is told to shut down and the
// run ends with a single diagnostic and a non-zero exit.
func abortRun(clients []*rpc.Client, err error) {
	for _, client := range clients {
		if client != nil {
			client.Call(stubs.Shutdown, stubs.Empty{}, new(stubs.Empty))
			client.Close()
		}
	}
	log.Fatalf("Run aborted: %v", err)
}

// gather assembles the global board one row at a time, in ascending global
// order, with a blocking call to whichever rank owns each row. It only runs
// once per run, after the generation loop, so plain sequential calls are
// fine here.
func gather(clients []*rpc.Client, size int) ([][]uint8, error) {
	workers := len(clients)
	board := make([][]uint8, size)
	for row := 1; row <= size; row++ {
		rank := engine.OwningRank(row, size, workers)
		res := new(stubs.RowResponse)
		if err := clients[rank].Call(stubs.Row, stubs.RowRequest{GlobalRow: row}, res); err != nil {
			return nil, fmt.Errorf("gather row %d from rank %d: %v", row, rank, err)
		}
		board[row-1] = res.Row
	}
	return board, nil
}

// meshAlive sums live cells across all workers mid-run. The reported turn is
// the lowest any worker has reached; the count is only as consistent as the
// mesh is synchronised, which is all a progress ticker needs.
func meshAlive(clients []*rpc.Client) (count, turn int, err error) {
	for rank, client := range clients {
		res := new(stubs.AliveResponse)
		if err := client.Call(stubs.Alive, stubs.AliveRequest{}, res); err != nil {
			return 0, 0, fmt.Errorf("worker %d: %v", rank, err)
		}
		count += res.Count
		if rank == 0 || res.Turn < turn {
			turn = res.Turn
		}
	}
	return count, turn, nil
}

// aliveCells lists the live cells of a gathered board.
func aliveCells(board [][]uint8) []util.Cell {
	var cells []util.Cell
	for y, row := range board {
		for x, v := range row {
			if v != engine.Dead {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// flippedCells lists the cells that differ between two boards.
func flippedCells(before, after [][]uint8) []util.Cell {
	var cells []util.Cell
	for y := range before {
		for x := range before[y] {
			if before[y][x] != after[y][x] {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}
