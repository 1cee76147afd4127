package gol

import (
	"fmt"

	"uk.ac.bris.cs/distgol/util"
)

// Event is anything the run reports to the outside world: the SDL view or
// the headless wait loop in main.
type Event interface {
	fmt.Stringer
}

type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (s State) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is reported whenever the run starts, pauses, resumes or ends.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

func (e StateChange) String() string {
	return fmt.Sprintf("completed %d turns, now %v", e.CompletedTurns, e.NewState)
}

// CellsFlipped reports cells that changed state, so a view only needs to
// redraw the difference.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

func (e CellsFlipped) String() string {
	return fmt.Sprintf("completed %d turns, %d cells flipped", e.CompletedTurns, len(e.Cells))
}

// TurnComplete asks the view to present whatever has been flipped so far.
type TurnComplete struct {
	CompletedTurns int
}

func (e TurnComplete) String() string {
	return fmt.Sprintf("completed %d turns", e.CompletedTurns)
}

// AliveCellsCount is the periodic live count the coordinator samples while
// the generation loop runs.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

func (e AliveCellsCount) String() string {
	return fmt.Sprintf("completed %d turns, %d cells alive", e.CompletedTurns, e.CellsCount)
}

// BoardOutputComplete is reported once a board file has been written.
type BoardOutputComplete struct {
	CompletedTurns int
	Filename       string
}

func (e BoardOutputComplete) String() string {
	return fmt.Sprintf("completed %d turns, board saved as %v", e.CompletedTurns, e.Filename)
}

// FinalTurnComplete carries the live cells of the gathered final board.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (e FinalTurnComplete) String() string {
	return fmt.Sprintf("completed %d turns, %d cells alive", e.CompletedTurns, len(e.Alive))
}
