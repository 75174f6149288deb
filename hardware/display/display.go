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

package display

import (
	"strings"

	"github.com/jetsetilly/gopher8/logger"
)

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Renderer implementations show the display to the user. Methods are called
// from the VM's goroutine.
type Renderer interface {
	// Initialise is called before any other method and again whenever the
	// scale changes. The scale value is the size in screen pixels of each
	// display pixel.
	Initialise(scale int) error

	// SetPixel is called whenever a pixel is drawn.
	SetPixel(x, y int, on bool) error

	// Present is called when a complete frame is ready to be shown.
	Present() error
}

// Display is the one bit per pixel display buffer. Pixels are changed only
// by Toggle() and every change is forwarded to the Renderer.
type Display struct {
	cells    [Height][Width]bool
	renderer Renderer
}

// NewDisplay is the preferred method of initialisation for the Display type.
// A nil Renderer is allowed, in which case the display is headless.
func NewDisplay(renderer Renderer) *Display {
	return &Display{
		renderer: renderer,
	}
}

// Toggle flips the pixel at x, y. Coordinates wrap. Returns true if the pixel
// was on before the toggle and is now off.
func (dsp *Display) Toggle(x, y int) bool {
	x %= Width
	y %= Height
	if x < 0 {
		x += Width
	}
	if y < 0 {
		y += Height
	}

	erased := dsp.cells[y][x]
	dsp.cells[y][x] = !erased

	if dsp.renderer != nil {
		if err := dsp.renderer.SetPixel(x, y, !erased); err != nil {
			logger.Log(logger.Allow, "display", err)
		}
	}

	return erased
}

// Pixel returns the state of the pixel at x, y. Coordinates wrap.
func (dsp *Display) Pixel(x, y int) bool {
	return dsp.cells[((y%Height)+Height)%Height][((x%Width)+Width)%Width]
}

// Present asks the Renderer to show the current frame.
func (dsp *Display) Present() error {
	if dsp.renderer == nil {
		return nil
	}
	return dsp.renderer.Present()
}

// Clear turns off every pixel. Only the pixels that were on are forwarded to
// the Renderer.
func (dsp *Display) Clear() {
	for y := range dsp.cells {
		for x := range dsp.cells[y] {
			if dsp.cells[y][x] {
				dsp.Toggle(x, y)
			}
		}
	}
}

// String returns the display as rows of text. One character per pixel.
func (dsp *Display) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := range dsp.cells {
		for x := range dsp.cells[y] {
			if dsp.cells[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
