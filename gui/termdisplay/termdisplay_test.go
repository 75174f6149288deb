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


package termdisplay_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/termdisplay"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestRender(t *testing.T) {
	var pix gui.Pixels
	pix[0][0] = true
	pix[1][1] = true
	pix[2][2] = true
	pix[3][2] = true

	w := &strings.Builder{}
	test.DemandSuccess(t, termdisplay.Render(w, &pix))

	lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), termdisplay.Rows)

	blank := strings.Repeat(" ", display.Width)
	test.ExpectEquality(t, lines[0], "▀▄"+blank[2:])
	test.ExpectEquality(t, lines[1], "  █"+blank[3:])
	for i := 2; i < len(lines); i++ {
		test.ExpectEquality(t, lines[i], blank, i)
	}
}

func TestService(t *testing.T) {
	w := &test.Writer{}
	td := termdisplay.NewTermDisplay(w)
	test.DemandSuccess(t, td.Initialise(1))

	// nothing is drawn until a frame is presented
	td.Service()
	test.ExpectEquality(t, w.String(), "")

	test.ExpectSuccess(t, td.SetPixel(display.Width-1, display.Height-1, true))
	test.ExpectSuccess(t, td.Present())
	td.Service()

	lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), termdisplay.Rows)
	test.ExpectSuccess(t, strings.HasSuffix(lines[termdisplay.Rows-1], "▄"))

	// the same frame is not drawn twice
	w.Clear()
	td.Service()
	test.ExpectEquality(t, w.String(), "")

	td.Destroy(w)
	test.ExpectEquality(t, w.String(), "")
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestServiceWriteError(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	td := termdisplay.NewTermDisplay(brokenWriter{})
	test.ExpectSuccess(t, td.Present())
	td.Service()

	w := &test.Writer{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "termdisplay: broken pipe\n")
}
