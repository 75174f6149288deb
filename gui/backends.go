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


package gui

import (
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// List of the display backends selectable from the command line.
const (
	SDL    = "SDL"
	Ebiten = "EBITEN"
	Term   = "TERM"
	None   = "NONE"
)

// Backends lists every backend in the order they should be presented to
// the user.
var Backends = []string{SDL, Ebiten, Term, None}

// UnknownBackend is the error pattern returned by ParseBackend().
const UnknownBackend = "gui: unknown backend (%s)"

// ParseBackend normalises the name of a backend. Names are not case
// sensitive.
func ParseBackend(name string) (string, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, b := range Backends {
		if n == b {
			return b, nil
		}
	}
	return "", curated.Errorf(UnknownBackend, name)
}
