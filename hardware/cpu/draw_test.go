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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawTwice(t *testing.T) {
	h := newHarness()
	h.putInstructions(0x300, 0xff, 0x81)
	h.putInstructions(0x200,
		0xa3, 0x00, // LD I, $300
		0x61, 0x08, // LD V1, $08
		0x62, 0x04, // LD V2, $04
		0xd1, 0x22, // DRW V1, V2, 2
		0xd1, 0x22, // DRW V1, V2, 2
	)
	h.step(t)
	h.step(t)
	h.step(t)

	before := h.disp.String()

	r := h.step(t)
	test.ExpectEquality(t, r.Signal, execution.SigFrameReady)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(0))
	for x := 8; x < 16; x++ {
		test.ExpectEquality(t, h.disp.Pixel(x, 4), true, x)
	}
	test.ExpectEquality(t, h.disp.Pixel(8, 5), true)
	test.ExpectEquality(t, h.disp.Pixel(9, 5), false)
	test.ExpectEquality(t, h.disp.Pixel(15, 5), true)

	// second draw erases the sprite and sets the collision flag
	r = h.step(t)
	test.ExpectEquality(t, r.Signal, execution.SigFrameReady)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))
	test.ExpectEquality(t, h.disp.String(), before)
}

func TestDrawWrap(t *testing.T) {
	h := newHarness()
	h.putInstructions(0x300, 0xc0, 0xc0)
	h.putInstructions(0x200,
		0xa3, 0x00, // LD I, $300
		0x61, 0x3f, // LD V1, 63
		0x62, 0x1f, // LD V2, 31
		0xd1, 0x22, // DRW V1, V2, 2
	)
	h.step(t)
	h.step(t)
	h.step(t)
	h.step(t)

	test.ExpectEquality(t, h.mc.V[0xf], uint8(0))
	test.ExpectEquality(t, h.disp.Pixel(63, 31), true)
	test.ExpectEquality(t, h.disp.Pixel(0, 31), true)
	test.ExpectEquality(t, h.disp.Pixel(63, 0), true)
	test.ExpectEquality(t, h.disp.Pixel(0, 0), true)
	test.ExpectEquality(t, h.disp.Pixel(1, 0), false)
}

func TestDrawCollisionIsSticky(t *testing.T) {
	h := newHarness()
	h.putInstructions(0x300, 0x80, 0x80)
	h.putInstructions(0x200,
		0xa3, 0x00, // LD I, $300
		0x61, 0x00, // LD V1, 0
		0x62, 0x00, // LD V2, 0
		0xd1, 0x21, // DRW V1, V2, 1
		0xd1, 0x22, // DRW V1, V2, 2
	)
	h.step(t)
	h.step(t)
	h.step(t)
	h.step(t)

	// the first row collides and the second row doesn't. the flag is set for
	// the whole of the draw
	h.step(t)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))
	test.ExpectEquality(t, h.disp.Pixel(0, 0), false)
	test.ExpectEquality(t, h.disp.Pixel(0, 1), true)
}

func TestDrawFlagAsCoordinate(t *testing.T) {
	h := newHarness()
	h.putInstructions(0x300, 0x80)
	h.putInstructions(0x200,
		0xa3, 0x00, // LD I, $300
		0x6f, 0x05, // LD VF, 5
		0x60, 0x02, // LD V0, 2
		0xdf, 0x01, // DRW VF, V0, 1
	)
	h.step(t)
	h.step(t)
	h.step(t)
	h.step(t)

	test.ExpectEquality(t, h.disp.Pixel(5, 2), true)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(0))
}
