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


// Package romloader reads CHIP-8 programs for the VM.
//
// A ROM is a raw stream of big-endian opcodes with no header. The ROM can be
// a local file or a file served over HTTP:
//
//	ld := romloader.NewLoader("roms/maze.ch8")
//	err := ld.Load()
//
// After a successful Load() the Data field holds the program and the Hash
// field holds the SHA1 of the program. If the Hash field is set before Load()
// is called, the loaded data must match it.
package romloader
