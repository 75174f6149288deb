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

// Package input represents the sixteen key keypad of the VM.
//
// The GUI is the only writer. It calls Publish() with the complete set of keys
// that are down, or Press() and Release() for individual keys. The CPU is the
// only reader and uses IsPressed(), which never blocks.
//
// WaitForKey() is the blocking counterpart to IsPressed(). It is woken each
// time the keypad state is published.
package input
