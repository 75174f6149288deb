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


// Package termdisplay draws the VM display in a text terminal. Each
// character cell shows two display pixels, one above the other, using the
// Unicode half block characters. The complete display needs a terminal of at
// least 64 columns and 16 rows.
//
// The terminal backend has no keyboard input.
package termdisplay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"golang.org/x/term"
)

// TooSmall is the error pattern returned by Initialise() when the terminal
// can't show the complete display.
const TooSmall = "termdisplay: terminal too small (%dx%d)"

// Rows is the number of text rows needed to show the display.
const Rows = display.Height / 2

// characters for the four combinations of top and bottom pixel.
var blocks = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

// Render writes the pixels to w as Rows lines of text.
func Render(w io.Writer, pix *gui.Pixels) error {
	b := bufio.NewWriter(w)
	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			top := 0
			if pix[y][x] {
				top = 1
			}
			bottom := 0
			if pix[y+1][x] {
				bottom = 1
			}
			b.WriteRune(blocks[top][bottom])
		}
		b.WriteRune('\n')
	}
	return b.Flush()
}

// TermDisplay implements the display.Renderer interface.
type TermDisplay struct {
	gui.Frame

	output io.Writer

	// whether output is an interactive terminal. if it is the display is
	// redrawn in place
	interactive bool

	lmtr *limiter.Pacer
}

// NewTermDisplay is the preferred method of initialisation for the
// TermDisplay type.
func NewTermDisplay(output io.Writer) *TermDisplay {
	td := &TermDisplay{
		output: output,
		lmtr:   limiter.NewPacer(clocks.TimerFrequency),
	}

	if f, ok := output.(*os.File); ok {
		td.interactive = term.IsTerminal(int(f.Fd()))
	}

	return td
}

// Initialise implements the display.Renderer interface. The scale value is
// ignored.
func (td *TermDisplay) Initialise(_ int) error {
	if !td.interactive {
		return nil
	}

	w, h, err := term.GetSize(int(td.output.(*os.File).Fd()))
	if err != nil {
		return err
	}
	if w < display.Width || h < Rows {
		return curated.Errorf(TooSmall, w, h)
	}

	fmt.Fprint(td.output, ansi.ClearScreen, ansi.CursorHide)

	return nil
}

// Service implements the GuiCreator interface. The display is drawn if a new
// frame has been presented since the previous call.
func (td *TermDisplay) Service() {
	start := time.Now()
	defer td.lmtr.Pace(start)

	pix, fresh := td.Latest()
	if !fresh {
		return
	}

	if td.interactive {
		fmt.Fprint(td.output, ansi.CursorHome)
	}
	if err := Render(td.output, &pix); err != nil {
		logger.Log(logger.Allow, "termdisplay", err)
	}
}

// Destroy implements the GuiCreator interface.
func (td *TermDisplay) Destroy(_ io.Writer) {
	if td.interactive {
		fmt.Fprint(td.output, ansi.CursorShow)
	}
}
