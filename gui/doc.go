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


// Package gui contains the parts shared by the display backends: the
// preferences, the list of backends and the Frame type that safely carries
// the VM display from the VM goroutine to the goroutine that draws it.
//
// The backends themselves are in sub-packages:
//
//	sdlwindow	SDL window. must be created and serviced on the main thread
//	ebitenwindow	ebiten window. runs its own game loop
//	termdisplay	draws the display in the terminal with block characters
//
// Windowed backends also feed the host keyboard to the VM keypad. The number
// keys map to keys 0 to 9 and the letters A to F map to keys A to F.
package gui
