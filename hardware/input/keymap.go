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

package input

import "strings"

// KeyFromName translates the name of a key on the host keyboard to a keypad
// key. The digit keys map to keys 0x0 to 0x9 and the letters A to F map to
// keys 0xa to 0xf. Keypad digits are also accepted with a "Keypad " prefix,
// which is how SDL names them.
//
// The second return value is false if the name does not map to a key.
func KeyFromName(name string) (uint8, bool) {
	name = strings.TrimPrefix(name, "Keypad ")
	if len(name) != 1 {
		return 0, false
	}

	c := name[0]
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 0xa, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 0xa, true
	}

	return 0, false
}
