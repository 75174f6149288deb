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


// Package disassembly creates listings of CHIP-8 programs.
//
// Every even address of the program is decoded. Entries are then blessed by
// following the flow of the program from the program origin, taking into
// account jumps, subroutine calls and skips. Blessed entries are the entries
// that are most likely to be executed. Unblessed entries are probably data
// but it isn't possible to say for sure.
//
// A jump or call to an odd address causes the instructions at that address
// to be decoded and added to the disassembly.
//
// The FromMemory() function decodes a short run of instructions directly from
// memory, without any flow analysis. It is used by the debugger.
package disassembly
