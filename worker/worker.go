package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/rpc"
	"sync"

	"uk.ac.bris.cs/distgol/engine"
	"uk.ac.bris.cs/distgol/node"
	"uk.ac.bris.cs/distgol/stubs"
)

type haloMsg struct {
	turn int
	row  []uint8
}

// rpcLink carries halo rows between this worker and one neighbour. Sends are
// RPC pushes into the neighbour's mailbox; receives drain the local mailbox
// this worker's PushHalo handler fills. Mailboxes hold one row, so a
// neighbour that runs ahead blocks on its next push until the row here has
// been consumed.
type rpcLink struct {
	rank   int
	client *rpc.Client
	mail   chan haloMsg
	abort  <-chan struct{}
}

func (l *rpcLink) Send(turn int, row []uint8) error {
	req := stubs.HaloRequest{FromRank: l.rank, Turn: turn, Row: append([]uint8(nil), row...)}
	return l.client.Call(stubs.PushHalo, req, new(stubs.HaloResponse))
}

func (l *rpcLink) Recv(turn int) ([]uint8, error) {
	select {
	case m := <-l.mail:
		if m.turn != turn {
			return nil, fmt.Errorf("stale halo row: got turn %d, want turn %d", m.turn, turn)
		}
		return m.row, nil
	case <-l.abort:
		return nil, fmt.Errorf("run aborted at turn %d", turn)
	}
}

// Worker owns one rank's partition between Init and Shutdown and serves both
// the controller and its two neighbours.
type Worker struct {
	mu     sync.Mutex
	resume *sync.Cond
	kill   chan bool

	n         *node.Node
	abort     chan struct{}
	rows      int
	startRow  int
	aboveAddr string
	belowAddr string
	aboveMail chan haloMsg
	belowMail chan haloMsg
	turn      int
	paused    bool
	quit      bool
}

// Init sizes and fills this worker's local grid. With no explicit rows the
// interior is filled from the shared seed; every worker draws the full
// global board and keeps its own strip, so the board does not depend on the
// worker count.
func (w *Worker) Init(req stubs.InitRequest, res *stubs.InitResponse) error {
	if err := engine.Validate(req.Size, 0, req.Workers); err != nil {
		return err
	}
	rows := engine.LocalRows(req.Rank, req.Size, req.Workers)
	grid := engine.NewGrid(rows, req.Size)
	if req.Rows != nil {
		if len(req.Rows) != rows {
			return fmt.Errorf("rank %d expected %d rows, got %d", req.Rank, rows, len(req.Rows))
		}
		grid.SetInterior(req.Rows)
	} else {
		grid.Randomise(req.Seed, engine.StartRow(req.Rank, req.Size, req.Workers))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.n = node.New(req.Rank, req.Workers, grid)
	w.abort = make(chan struct{})
	w.rows = rows
	w.startRow = engine.StartRow(req.Rank, req.Size, req.Workers)
	w.aboveAddr = req.Above
	w.belowAddr = req.Below
	w.aboveMail = make(chan haloMsg, 1)
	w.belowMail = make(chan haloMsg, 1)
	w.turn = 0
	w.paused = false
	w.quit = false
	log.Printf("rank %d/%d: %d rows from row %d", req.Rank, req.Workers, rows, w.startRow)
	return nil
}

// Start dials the neighbours and runs the generation loop. Any halo failure
// aborts the loop and surfaces to the controller as the RPC error.
func (w *Worker) Start(req stubs.StartRequest, res *stubs.StartResponse) error {
	w.mu.Lock()
	n := w.n
	abort := w.abort
	aboveAddr, belowAddr := w.aboveAddr, w.belowAddr
	w.mu.Unlock()
	if n == nil {
		return fmt.Errorf("worker not initialised")
	}

	if aboveAddr != "" {
		client, err := rpc.Dial("tcp", aboveAddr)
		if err != nil {
			return fmt.Errorf("rank %d: dial neighbour above: %v", n.Rank, err)
		}
		defer client.Close()
		n.Above = &rpcLink{rank: n.Rank, client: client, mail: w.aboveMail, abort: abort}
	}
	if belowAddr != "" {
		client, err := rpc.Dial("tcp", belowAddr)
		if err != nil {
			return fmt.Errorf("rank %d: dial neighbour below: %v", n.Rank, err)
		}
		defer client.Close()
		n.Below = &rpcLink{rank: n.Rank, client: client, mail: w.belowMail, abort: abort}
	}

	done, err := n.Run(req.Turns, w.gate)
	if err != nil {
		// A quit can land while a neighbour exchange is in flight; that
		// abort is expected and the grid is still gatherable.
		w.mu.Lock()
		quit, turn := w.quit, w.turn
		w.mu.Unlock()
		if !quit {
			return fmt.Errorf("rank %d: %v", n.Rank, err)
		}
		done = turn
	}
	res.TurnsDone = done
	res.Alive = n.AliveCount()
	return nil
}

// gate runs at the top of every turn: it records progress, holds the loop
// while paused, and ends the run early after Quit.
func (w *Worker) gate(turn int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.turn = turn
	for w.paused && !w.quit {
		w.resume.Wait()
	}
	return !w.quit
}

// PushHalo is called by a neighbour depositing a boundary row for one turn.
func (w *Worker) PushHalo(req stubs.HaloRequest, res *stubs.HaloResponse) error {
	w.mu.Lock()
	n := w.n
	abort := w.abort
	mail := w.belowMail
	if n != nil && req.FromRank < n.Rank {
		mail = w.aboveMail
	}
	w.mu.Unlock()
	if n == nil {
		return fmt.Errorf("worker not initialised")
	}
	select {
	case mail <- haloMsg{req.Turn, req.Row}:
		return nil
	case <-abort:
		return fmt.Errorf("run aborted at turn %d", req.Turn)
	}
}

// Row serves one globally-indexed row to the gathering controller.
func (w *Worker) Row(req stubs.RowRequest, res *stubs.RowResponse) error {
	w.mu.Lock()
	n := w.n
	local := req.GlobalRow - w.startRow + 1
	rows := w.rows
	w.mu.Unlock()
	if n == nil {
		return fmt.Errorf("worker not initialised")
	}
	if local < 1 || local > rows {
		return fmt.Errorf("rank %d does not own row %d", n.Rank, req.GlobalRow)
	}
	res.Row = n.SnapshotRow(local)
	return nil
}

func (w *Worker) Alive(req stubs.AliveRequest, res *stubs.AliveResponse) error {
	w.mu.Lock()
	n := w.n
	turn := w.turn
	w.mu.Unlock()
	if n == nil {
		return fmt.Errorf("worker not initialised")
	}
	res.Count = n.AliveCount()
	res.Turn = turn
	return nil
}

func (w *Worker) Pause(req stubs.Empty, res *stubs.Empty) error {
	w.mu.Lock()
	w.paused = true
	w.mu.Unlock()
	return nil
}

func (w *Worker) Resume(req stubs.Empty, res *stubs.Empty) error {
	w.mu.Lock()
	w.paused = false
	w.resume.Broadcast()
	w.mu.Unlock()
	return nil
}

// Quit makes the generation loop stop at the next turn boundary; the grid
// stays gatherable afterwards.
func (w *Worker) Quit(req stubs.Empty, res *stubs.Empty) error {
	w.mu.Lock()
	if !w.quit {
		w.quit = true
		if w.abort != nil {
			close(w.abort)
		}
		w.resume.Broadcast()
	}
	w.mu.Unlock()
	return nil
}

// Shutdown stops the listener so the process exits cleanly.
func (w *Worker) Shutdown(req stubs.Empty, res *stubs.Empty) error {
	w.kill <- true
	return nil
}

func main() {
	pAddr := flag.String("port", "8040", "Port to listen on")
	flag.Parse()

	w := &Worker{kill: make(chan bool, 1)}
	w.resume = sync.NewCond(&w.mu)
	if err := rpc.Register(w); err != nil {
		log.Fatalf("Failed to register worker: %v", err)
	}
	listener, err := net.Listen("tcp", ":"+*pAddr)
	if err != nil {
		log.Fatalf("Failed to listen on :%v: %v", *pAddr, err)
	}
	defer listener.Close()
	log.Printf("worker listening on %v", listener.Addr())

	go func() {
		<-w.kill
		listener.Close()
	}()
	rpc.Accept(listener)
}
