// Package preview shows the render incrementally in an SDL window. Render
// workers push completed rows; the main goroutine runs a frame-capped blit
// loop until rendering finishes.
package preview

import (
	"image/color"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// Timing values for the blit loop.
const (
	fps        uint32 = 30
	msPerFrame uint32 = 1000 / fps
)

const channels = 3

// Window is a live view of the pixel buffer being rendered. Rows arrive
// from any goroutine; drawing happens only on the goroutine running Run.
type Window struct {
	window  *sdl.Window
	surface *sdl.Surface
	width   int
	height  int

	mu    sync.Mutex
	pix   []byte // RGB copy of the rows received so far
	dirty bool
}

// Open initializes SDL and creates a visible window of the given size.
func Open(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	return &Window{
		window:  window,
		surface: surface,
		width:   width,
		height:  height,
		pix:     make([]byte, width*height*channels),
	}, nil
}

// UpdateRow stores a completed row of RGB pixels. Safe to call from render
// workers; the row is copied before the caller reuses it.
func (w *Window) UpdateRow(y int, row []byte) {
	if y < 0 || y >= w.height {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	copy(w.pix[y*w.width*channels:], row)
	w.dirty = true
}

// Run blits received rows to the window until done closes, then draws one
// final frame. Must be called from the main goroutine; SDL video is not
// thread-safe.
func (w *Window) Run(done <-chan struct{}) {
	for {
		// Drain the event queue so the window stays responsive.
		for sdl.PollEvent() != nil {
		}

		select {
		case <-done:
			w.blit()
			return
		default:
		}

		w.blit()
		sdl.Delay(msPerFrame)
	}
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	w.window.Destroy()
	sdl.Quit()
}

func (w *Window) blit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirty {
		return
	}

	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			i := (y*w.width + x) * channels
			w.surface.Set(x, y, color.RGBA{R: w.pix[i], G: w.pix[i+1], B: w.pix[i+2], A: 255})
		}
	}
	w.window.UpdateSurface()
	w.dirty = false
}
