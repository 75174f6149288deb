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


package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/test"
)

// draws a random sprite at a random position forever
var program = []uint8{
	0xc0, 0xff, // RND V0, $FF
	0xc1, 0x1f, // RND V1, $1F
	0xa2, 0x0c, // LD I, $20C
	0xd0, 0x13, // DRW V0, V1, 3
	0x12, 0x00, // JP $200
	0x00, 0x00,
	0xf0, 0x90, 0xf0,
}

func run(t *testing.T, cycles int, next *gui.Frame) *digest.Screen {
	t.Helper()

	var dig *digest.Screen
	if next == nil {
		dig = digest.NewScreen(nil)
	} else {
		dig = digest.NewScreen(next)
	}

	vm, err := hardware.NewVM(dig, nil)
	test.DemandSuccess(t, err)
	vm.Random.ZeroSeed = true
	test.DemandSuccess(t, vm.LoadROM(program))

	for i := 0; i < cycles; i++ {
		test.DemandSuccess(t, vm.Step())
	}

	return dig
}

func TestDigest(t *testing.T) {
	a := run(t, 100, nil)
	b := run(t, 100, nil)
	test.ExpectEquality(t, a.Frames(), 20)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	c := run(t, 105, nil)
	test.ExpectEquality(t, c.Frames(), 21)
	test.ExpectInequality(t, a.Hash(), c.Hash())

	c.ResetDigest()
	test.ExpectEquality(t, c.Frames(), 0)
	test.ExpectEquality(t, c.Hash(), "0000000000000000000000000000000000000000")
}

func TestChaining(t *testing.T) {
	f := &gui.Frame{}
	dig := run(t, 100, f)
	test.ExpectEquality(t, f.Count(), dig.Frames())
}
