package stubs

// RPC method names served by the worker process.
var Init = "Worker.Init"
var Start = "Worker.Start"
var PushHalo = "Worker.PushHalo"
var Row = "Worker.Row"
var Alive = "Worker.Alive"
var Pause = "Worker.Pause"
var Resume = "Worker.Resume"
var Quit = "Worker.Quit"
var Shutdown = "Worker.Shutdown"

// InitRequest hands a worker its identity and partition for the run. Rows
// carries an explicit initial strip (file-based boards); when nil the worker
// fills its own interior from Seed instead, with no further coordination.
// Above/Below are the listen addresses of the row-adjacent neighbours, empty
// at the ends of the chain.
type InitRequest struct {
	Rank    int
	Workers int
	Size    int
	Seed    int64
	Rows    [][]uint8
	Above   string
	Below   string
}

type InitResponse struct{}

// StartRequest runs the generation loop.
type StartRequest struct {
	Turns int
}

// StartResponse reports how far the loop got and the local live count at
// that point.
type StartResponse struct {
	TurnsDone int
	Alive     int
}

// HaloRequest deposits one boundary row into a neighbour's mailbox. FromRank
// tells the receiver which side the row arrived from; Turn is the generation
// the row belongs to.
type HaloRequest struct {
	FromRank int
	Turn     int
	Row      []uint8
}

type HaloResponse struct{}

// RowRequest asks for one globally-indexed board row (1-based) during the
// final gather; the caller is responsible for asking the owning rank.
type RowRequest struct {
	GlobalRow int
}

type RowResponse struct {
	Row []uint8
}

type AliveRequest struct{}

// AliveResponse carries a mid-run live count and the turn it was read at.
type AliveResponse struct {
	Count int
	Turn  int
}

type Empty struct{}
