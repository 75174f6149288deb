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


package gui

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Colours used when converting a frame to RGBA. Each colour is red, green,
// blue, alpha.
var (
	PixelOn  = [4]uint8{0xe0, 0xf0, 0xd0, 0xff}
	PixelOff = [4]uint8{0x10, 0x18, 0x10, 0xff}
)

// PixelDepth is the number of bytes per pixel in RGBA data.
const PixelDepth = 4

// Pixels is a copy of the display.
type Pixels [display.Height][display.Width]bool

// Frame implements the SetPixel() and Present() functions of the
// display.Renderer interface. Backends embed a Frame and read the most
// recently presented image with Latest() or RGBA().
//
// SetPixel() and Present() are called from the VM goroutine. Latest() and
// RGBA() can be called from any other goroutine.
type Frame struct {
	crit sync.Mutex

	// pixels changed by SetPixel(). copied to presented by Present()
	working Pixels

	presented Pixels

	// true if Present() has been called since the last call to Latest() or
	// RGBA()
	fresh bool

	// number of calls to Present()
	count int
}

// SetPixel implements the display.Renderer interface.
func (f *Frame) SetPixel(x, y int, on bool) error {
	if x < 0 || x >= display.Width || y < 0 || y >= display.Height {
		return fmt.Errorf("gui: pixel out of range (%d, %d)", x, y)
	}

	f.crit.Lock()
	defer f.crit.Unlock()
	f.working[y][x] = on

	return nil
}

// Present implements the display.Renderer interface.
func (f *Frame) Present() error {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.presented = f.working
	f.fresh = true
	f.count++
	return nil
}

// Latest returns a copy of the most recently presented image. The boolean
// result is true if the image has not been returned before.
func (f *Frame) Latest() (Pixels, bool) {
	f.crit.Lock()
	defer f.crit.Unlock()
	fresh := f.fresh
	f.fresh = false
	return f.presented, fresh
}

// Count returns the number of frames presented.
func (f *Frame) Count() int {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.count
}

// RGBA writes the most recently presented image to dst using the PixelOn
// and PixelOff colours. The dst slice must be at least Width * Height *
// PixelDepth bytes long. Returns false without changing dst if there is no
// new image since the last call.
func (f *Frame) RGBA(dst []uint8) bool {
	pix, fresh := f.Latest()
	if !fresh {
		return false
	}

	i := 0
	for y := range pix {
		for x := range pix[y] {
			if pix[y][x] {
				copy(dst[i:i+PixelDepth], PixelOn[:])
			} else {
				copy(dst[i:i+PixelDepth], PixelOff[:])
			}
			i += PixelDepth
		}
	}

	return true
}
