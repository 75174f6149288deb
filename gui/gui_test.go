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


package gui_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestFrame(t *testing.T) {
	var f gui.Frame

	_, fresh := f.Latest()
	test.ExpectFailure(t, fresh)

	test.ExpectSuccess(t, f.SetPixel(3, 2, true))
	test.ExpectFailure(t, f.SetPixel(display.Width, 0, true))
	test.ExpectFailure(t, f.SetPixel(0, -1, true))

	// nothing is visible until the frame is presented
	pix, fresh := f.Latest()
	test.ExpectFailure(t, fresh)
	test.ExpectFailure(t, pix[2][3])

	test.ExpectSuccess(t, f.Present())
	pix, fresh = f.Latest()
	test.ExpectSuccess(t, fresh)
	test.ExpectSuccess(t, pix[2][3])
	test.ExpectEquality(t, f.Count(), 1)

	// a frame is only fresh once
	_, fresh = f.Latest()
	test.ExpectFailure(t, fresh)
}

func TestRGBA(t *testing.T) {
	var f gui.Frame
	dst := make([]uint8, display.Width*display.Height*gui.PixelDepth)

	test.ExpectFailure(t, f.RGBA(dst))

	test.ExpectSuccess(t, f.SetPixel(1, 0, true))
	test.ExpectSuccess(t, f.Present())
	test.ExpectSuccess(t, f.RGBA(dst))

	test.ExpectDiff(t, dst[0:4], gui.PixelOff[:])
	test.ExpectDiff(t, dst[4:8], gui.PixelOn[:])

	// second pixel of the second row
	i := (display.Width + 1) * gui.PixelDepth
	test.ExpectDiff(t, dst[i:i+4], gui.PixelOff[:])

	test.ExpectFailure(t, f.RGBA(dst))
}

func TestFrameAsRenderer(t *testing.T) {
	f := &gui.Frame{}
	vm, err := hardware.NewVM(f, nil)
	test.DemandSuccess(t, err)

	// draw the glyph for 0 at 0,0
	test.DemandSuccess(t, vm.LoadROM([]uint8{0x60, 0x00, 0xf0, 0x29, 0xd0, 0x05}))
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, vm.Step())
	}

	pix, fresh := f.Latest()
	test.ExpectSuccess(t, fresh)
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			test.ExpectEquality(t, pix[y][x], vm.Display.Pixel(x, y), x, y)
		}
	}
}

func TestParseBackend(t *testing.T) {
	b, err := gui.ParseBackend("sdl")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, gui.SDL)

	b, err = gui.ParseBackend(" Ebiten ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, gui.Ebiten)

	_, err = gui.ParseBackend("imgui")
	test.ExpectSuccess(t, curated.Is(err, gui.UnknownBackend))
}

func TestPreferences(t *testing.T) {
	p := gui.NewPreferences()
	test.ExpectEquality(t, p.Scale.Get().(int), gui.DefaultScale)
	test.ExpectFailure(t, p.Scale.Set(0))
	test.ExpectFailure(t, p.Scale.Set(51))
	test.ExpectEquality(t, p.String(), "gui.scale :: 10\n")

	fn := filepath.Join(t.TempDir(), "preferences")
	test.DemandSuccess(t, p.AttachDisk(fn))
	test.ExpectSuccess(t, p.Scale.Set(4))
	test.ExpectSuccess(t, p.Save())

	// other preferences can share the same file
	vmp := hardware.NewPreferences()
	test.DemandSuccess(t, vmp.AttachDisk(fn))
	test.ExpectSuccess(t, vmp.Save())

	q := gui.NewPreferences()
	test.DemandSuccess(t, q.AttachDisk(fn))
	test.ExpectEquality(t, q.Scale.Get().(int), 4)
}
