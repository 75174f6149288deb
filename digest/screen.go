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


// Package digest produces a cryptographic hash of the display. The Screen
// type is a display.Renderer that chains a SHA1 digest over every presented
// frame. Two runs of the same program for the same number of cycles, with
// the random number generator seeded with zero, produce the same digest. If
// a later run produces a different digest then something has changed.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Screen implements the display.Renderer interface. Calls are forwarded to a
// second renderer if one is given to NewScreen().
type Screen struct {
	next display.Renderer

	// the first sha1.Size bytes are the previous digest. the remainder is one
	// byte per pixel
	pixels [sha1.Size + display.Width*display.Height]byte

	digest [sha1.Size]byte
	frames int
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The next renderer can be nil.
func NewScreen(next display.Renderer) *Screen {
	return &Screen{next: next}
}

// Hash returns the current digest as a hex string.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames included in the digest.
func (dig *Screen) Frames() int {
	return dig.frames
}

// ResetDigest sets the digest value to zero.
func (dig *Screen) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Initialise implements the display.Renderer interface.
func (dig *Screen) Initialise(scale int) error {
	if dig.next != nil {
		return dig.next.Initialise(scale)
	}
	return nil
}

// SetPixel implements the display.Renderer interface.
func (dig *Screen) SetPixel(x, y int, on bool) error {
	if x >= 0 && x < display.Width && y >= 0 && y < display.Height {
		var v byte
		if on {
			v = 1
		}
		dig.pixels[sha1.Size+y*display.Width+x] = v
	}

	if dig.next != nil {
		return dig.next.SetPixel(x, y, on)
	}
	return nil
}

// Present implements the display.Renderer interface.
func (dig *Screen) Present() error {
	copy(dig.pixels[:], dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels[:])
	dig.frames++

	if dig.next != nil {
		return dig.next.Present()
	}
	return nil
}
