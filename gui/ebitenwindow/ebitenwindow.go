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


// Package ebitenwindow is a display backend using the ebiten game library.
// Unlike the SDL backend it does not need to be serviced by the main thread.
// Ebiten runs its own loop, started by Start(), and calls back into the
// window to update the keypad and to draw.
package ebitenwindow

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/version"
)

// host keys for each keypad key
var keys = [input.NumKeys][]ebiten.Key{
	{ebiten.KeyDigit0, ebiten.KeyNumpad0},
	{ebiten.KeyDigit1, ebiten.KeyNumpad1},
	{ebiten.KeyDigit2, ebiten.KeyNumpad2},
	{ebiten.KeyDigit3, ebiten.KeyNumpad3},
	{ebiten.KeyDigit4, ebiten.KeyNumpad4},
	{ebiten.KeyDigit5, ebiten.KeyNumpad5},
	{ebiten.KeyDigit6, ebiten.KeyNumpad6},
	{ebiten.KeyDigit7, ebiten.KeyNumpad7},
	{ebiten.KeyDigit8, ebiten.KeyNumpad8},
	{ebiten.KeyDigit9, ebiten.KeyNumpad9},
	{ebiten.KeyA},
	{ebiten.KeyB},
	{ebiten.KeyC},
	{ebiten.KeyD},
	{ebiten.KeyE},
	{ebiten.KeyF},
}

// KeypadState returns the keypad bitmap for the host keys reported as
// pressed by the isPressed function.
func KeypadState(isPressed func(ebiten.Key) bool) uint16 {
	var bitmap uint16
	for k := range keys {
		for _, h := range keys[k] {
			if isPressed(h) {
				bitmap |= 1 << k
				break
			}
		}
	}
	return bitmap
}

type connection struct {
	keypad *input.Keypad
	stop   func()
}

// EbitenWindow implements the display.Renderer and the ebiten.Game
// interfaces.
type EbitenWindow struct {
	gui.Frame

	conn atomic.Pointer[connection]

	// keypad bitmap most recently published
	bitmap uint16

	image  *ebiten.Image
	pixels []uint8

	// Update() returns ebiten.Termination once closing is set
	closing atomic.Bool

	// closed when RunGame() returns. only valid if started is true
	started bool
	done    chan struct{}

	lmtr *limiter.Pacer
}

// NewEbitenWindow is the preferred method of initialisation for the
// EbitenWindow type.
func NewEbitenWindow() *EbitenWindow {
	return &EbitenWindow{
		pixels: make([]uint8, display.Width*display.Height*gui.PixelDepth),
		done:   make(chan struct{}),
		lmtr:   limiter.NewPacer(clocks.TimerFrequency),
	}
}

// Initialise implements the display.Renderer interface.
func (win *EbitenWindow) Initialise(scale int) error {
	if scale < 1 {
		return fmt.Errorf("ebiten: illegal scale value (%d)", scale)
	}
	ebiten.SetWindowSize(display.Width*scale, display.Height*scale)
	return nil
}

// Connect the window to the VM keypad. The stop function is called when the
// window is closed.
func (win *EbitenWindow) Connect(keypad *input.Keypad, stop func()) {
	win.conn.Store(&connection{keypad: keypad, stop: stop})
}

// Start the ebiten loop in a new goroutine.
func (win *EbitenWindow) Start() {
	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetRunnableOnUnfocused(true)

	win.started = true
	go func() {
		defer close(win.done)

		if err := ebiten.RunGame(win); err != nil {
			logger.Log(logger.Allow, "ebitenwindow", err)
		}

		// the user closed the window or Destroy() was called
		if conn := win.conn.Load(); conn != nil {
			conn.stop()
		}
	}()
}

// Update implements the ebiten.Game interface.
func (win *EbitenWindow) Update() error {
	if win.closing.Load() {
		return ebiten.Termination
	}

	conn := win.conn.Load()
	if conn == nil {
		return nil
	}

	bitmap := KeypadState(ebiten.IsKeyPressed)
	if bitmap != win.bitmap {
		win.bitmap = bitmap
		conn.keypad.Publish(bitmap)
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (win *EbitenWindow) Draw(screen *ebiten.Image) {
	if win.image == nil {
		win.image = ebiten.NewImage(display.Width, display.Height)
		win.image.Fill(ebitenColor(gui.PixelOff))
	}

	if win.RGBA(win.pixels) {
		win.image.WritePixels(win.pixels)
	}

	screen.DrawImage(win.image, nil)
}

// Layout implements the ebiten.Game interface. The display is always drawn
// at its native size and ebiten scales it to fit the window.
func (win *EbitenWindow) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}

// Service implements the GuiCreator interface. Ebiten services itself so
// this only stops the caller's loop from spinning.
func (win *EbitenWindow) Service() {
	win.lmtr.Pace(time.Now())
}

// Destroy implements the GuiCreator interface. Blocks until the ebiten loop
// has finished.
func (win *EbitenWindow) Destroy(output io.Writer) {
	win.closing.Store(true)
	if win.started {
		<-win.done
	}
	fmt.Fprintln(output, "ebiten window closed")
}
