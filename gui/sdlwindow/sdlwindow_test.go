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

package sdlwindow

import (
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestReleasePartial(t *testing.T) {
	// a window that failed before anything was created
	var win SdlWindow
	test.ExpectEquality(t, len(win.release()), 0)
	test.ExpectSuccess(t, win.window == nil)
	test.ExpectSuccess(t, win.renderer == nil)

	// releasing twice is harmless
	test.ExpectEquality(t, len(win.release()), 0)
}
