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


//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Address of the HTTP server. Unused in this build.
const Address = ""

// Launch does nothing except report that the stats server is not part of
// this build.
func Launch(output io.Writer) {
	fmt.Fprintln(output, "stats server not available in this build (use the statsview build tag)")
}

// Available returns true if the stats server can be launched.
func Available() bool {
	return false
}
