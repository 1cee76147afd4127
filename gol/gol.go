package gol

// Params provides the details of how to run the Game of Life.
type Params struct {
	Size    int    // board is Size x Size
	Turns   int    // generations to compute
	Threads int    // in-process workers when no addresses are given
	Seed    int64  // seed for the random board
	Input   string // optional board file; empty means random fill from Seed
	Render  bool   // print the final board to stdout
}

// Run starts the processing of Game of Life. workers is the list of worker
// addresses in rank order; with none the same rank/partition model runs in
// process instead.
func Run(p Params, workers []string, events chan<- Event, keyPresses <-chan rune) {
	ioCommand := make(chan ioCommand)
	ioIdle := make(chan bool)
	ioFilename := make(chan string)
	ioOutput := make(chan uint8)
	ioInput := make(chan uint8)

	ioChannels := ioChannels{
		command:  ioCommand,
		idle:     ioIdle,
		filename: ioFilename,
		output:   ioOutput,
		input:    ioInput,
	}
	go startIo(p, ioChannels)

	distributorChannels := distributorChannels{
		events:     events,
		ioCommand:  ioCommand,
		ioIdle:     ioIdle,
		ioFilename: ioFilename,
		ioOutput:   ioOutput,
		ioInput:    ioInput,
	}

	distributor(p, workers, distributorChannels, keyPresses)
}
