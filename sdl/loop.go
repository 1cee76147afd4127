package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/distgol/gol"
)

// Run displays the board and forwards keypresses to the run until the event
// channel is closed.
func Run(p gol.Params, events <-chan gol.Event, keyPresses chan<- rune) {
	w := NewWindow(int32(p.Size), int32(p.Size))
	defer w.Destroy()

	for {
		event := w.PollEvent()
		if event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				keyPresses <- 'q'
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					switch e.Keysym.Sym {
					case sdl.K_p:
						keyPresses <- 'p'
					case sdl.K_s:
						keyPresses <- 's'
					case sdl.K_q:
						keyPresses <- 'q'
					case sdl.K_k:
						keyPresses <- 'k'
					}
				}
			}
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case gol.CellsFlipped:
				for _, cell := range e.Cells {
					w.FlipPixel(cell.X, cell.Y)
				}
			case gol.TurnComplete:
				w.RenderFrame()
			case gol.FinalTurnComplete:
				w.RenderFrame()
				fmt.Println(e)
			case gol.AliveCellsCount:
				fmt.Println(e)
			case gol.StateChange:
				fmt.Println(e)
			case gol.BoardOutputComplete:
				fmt.Println(e)
			}
		default:
			sdl.Delay(1)
		}
	}
}
