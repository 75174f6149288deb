// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


// Package sdlwindow is a display backend using SDL. The window must be
// created, serviced and destroyed on the main thread. The VM goroutine only
// ever touches the embedded gui.Frame.
package sdlwindow

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the error pattern for failures in the SDL library.
const SDLError = "sdl: %v"

// the parts of the VM the window talks to. the window is created before the
// VM so these are connected later
type connection struct {
	keypad *input.Keypad
	stop   func()
}

// SdlWindow implements the display.Renderer interface.
type SdlWindow struct {
	gui.Frame

	window   *sdl.Window
	renderer *sdl.Renderer

	conn atomic.Pointer[connection]

	// scale requested by Initialise() and the scale applied to the window.
	// the window is only ever resized on the main thread
	reqScale atomic.Int32
	scale    int32

	// the most recently presented image. redrawn whenever the window is
	// exposed
	pixels gui.Pixels
	rects  []sdl.Rect

	// Service() is called in a tight loop by the main thread
	lmtr *limiter.Pacer
}

// NewSdlWindow is the preferred method of initialisation for the SdlWindow
// type.
//
// MUST ONLY be called from the #mainthread
func NewSdlWindow() (*SdlWindow, error) {
	assert.MainThread("sdlwindow")

	win := &SdlWindow{
		lmtr:  limiter.NewPacer(clocks.TimerFrequency),
		rects: make([]sdl.Rect, 0, display.Width*display.Height),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// the window is sized when the first call to Service() notices the
	// scale requested by Initialise()
	win.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width, display.Height,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		win.release()
		return nil, curated.Errorf(SDLError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		win.release()
		return nil, curated.Errorf(SDLError, err)
	}

	win.reqScale.Store(gui.DefaultScale)

	return win, nil
}

// Initialise implements the display.Renderer interface.
func (win *SdlWindow) Initialise(scale int) error {
	if scale < 1 {
		return fmt.Errorf("sdl: illegal scale value (%d)", scale)
	}
	win.reqScale.Store(int32(scale))
	return nil
}

// Connect the window to the VM keypad. The stop function is called when the
// window is closed.
func (win *SdlWindow) Connect(keypad *input.Keypad, stop func()) {
	win.conn.Store(&connection{keypad: keypad, stop: stop})
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (win *SdlWindow) Service() {
	assert.MainThread("sdlwindow")

	start := time.Now()
	defer win.lmtr.Pace(start)

	conn := win.conn.Load()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			if conn != nil {
				logger.Log(logger.Allow, "sdlwindow", "window closed")
				conn.stop()
			}

		case *sdl.KeyboardEvent:
			if conn == nil || ev.Repeat != 0 {
				continue
			}

			key, ok := input.KeyFromName(sdl.GetKeyName(ev.Keysym.Sym))
			if !ok {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				conn.keypad.Press(key)
			case sdl.KEYUP:
				conn.keypad.Release(key)
			}
		}
	}

	if s := win.reqScale.Load(); s != win.scale {
		win.scale = s
		win.window.SetSize(display.Width*s, display.Height*s)
		win.window.Show()
		win.draw()
		return
	}

	if pix, fresh := win.Latest(); fresh {
		win.pixels = pix
		win.draw()
	}
}

// draw the most recent image to the window.
func (win *SdlWindow) draw() {
	win.rects = win.rects[:0]
	for y := range win.pixels {
		for x := range win.pixels[y] {
			if win.pixels[y][x] {
				win.rects = append(win.rects, sdl.Rect{
					X: int32(x) * win.scale,
					Y: int32(y) * win.scale,
					W: win.scale,
					H: win.scale,
				})
			}
		}
	}

	win.renderer.SetDrawColor(gui.PixelOff[0], gui.PixelOff[1], gui.PixelOff[2], gui.PixelOff[3])
	win.renderer.Clear()

	if len(win.rects) > 0 {
		win.renderer.SetDrawColor(gui.PixelOn[0], gui.PixelOn[1], gui.PixelOn[2], gui.PixelOn[3])
		if err := win.renderer.FillRects(win.rects); err != nil {
			logger.Log(logger.Allow, "sdlwindow", err)
		}
	}

	win.renderer.Present()
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (win *SdlWindow) Destroy(output io.Writer) {
	assert.MainThread("sdlwindow")

	for _, err := range win.release() {
		fmt.Fprintln(output, err)
	}
}

// release whatever SDL resources have been created and shut SDL down. safe to
// call on a partially created window.
func (win *SdlWindow) release() []error {
	var errs []error
	if win.renderer != nil {
		if err := win.renderer.Destroy(); err != nil {
			errs = append(errs, err)
		}
		win.renderer = nil
	}
	if win.window != nil {
		if err := win.window.Destroy(); err != nil {
			errs = append(errs, err)
		}
		win.window = nil
	}
	sdl.Quit()
	return errs
}
