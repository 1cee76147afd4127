package sdl

import "github.com/veandco/go-sdl2/sdl"

// Window is a fixed-size pixel view of the board: one pixel per cell, black
// for dead and white for alive, scaled to the window by the renderer.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []uint32
	width    int32
	height   int32
}

func NewWindow(width, height int32) *Window {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}

	window, err := sdl.CreateWindow(
		"Distributed Game of Life",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		512,
		512,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		panic(err)
	}
	renderer.SetLogicalSize(width, height)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, width, height)
	if err != nil {
		panic(err)
	}

	w := &Window{
		window:   window,
		renderer: renderer,
		texture:  texture,
		pixels:   make([]uint32, width*height),
		width:    width,
		height:   height,
	}
	w.ClearPixels()
	return w
}

func (w *Window) Destroy() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}

// ClearPixels resets the whole view to dead cells.
func (w *Window) ClearPixels() {
	for i := range w.pixels {
		w.pixels[i] = 0xFF000000
	}
}

// FlipPixel toggles one cell between dead and alive.
func (w *Window) FlipPixel(x, y int) {
	if x < 0 || y < 0 || int32(x) >= w.width || int32(y) >= w.height {
		return
	}
	w.pixels[int32(y)*w.width+int32(x)] ^= 0x00FFFFFF
}

// RenderFrame presents the current pixel buffer.
func (w *Window) RenderFrame() {
	w.texture.UpdateRGBA(nil, w.pixels, int(w.width))
	w.renderer.Clear()
	w.renderer.Copy(w.texture, nil, nil)
	w.renderer.Present()
}

// PollEvent passes through pending SDL events, nil when there are none.
func (w *Window) PollEvent() sdl.Event {
	return sdl.PollEvent()
}
