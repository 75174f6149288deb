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


package ebitenwindow_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/gopher8/gui/ebitenwindow"
	"github.com/jetsetilly/gopher8/test"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if k == p {
				return true
			}
		}
		return false
	}
}

func TestKeypadState(t *testing.T) {
	test.ExpectEquality(t, ebitenwindow.KeypadState(pressed()), uint16(0))
	test.ExpectEquality(t, ebitenwindow.KeypadState(pressed(ebiten.KeyDigit0)), uint16(0x0001))
	test.ExpectEquality(t, ebitenwindow.KeypadState(pressed(ebiten.KeyNumpad9)), uint16(0x0200))
	test.ExpectEquality(t, ebitenwindow.KeypadState(pressed(ebiten.KeyA, ebiten.KeyF)), uint16(0x8400))

	// keys not on the keypad are ignored
	test.ExpectEquality(t, ebitenwindow.KeypadState(pressed(ebiten.KeyG, ebiten.KeySpace)), uint16(0))

	// both keys for the same keypad key
	test.ExpectEquality(t, ebitenwindow.KeypadState(pressed(ebiten.KeyDigit5, ebiten.KeyNumpad5)), uint16(0x0020))
}
