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

// Package cpu emulates the CPU of the VM. The CPU executes one decoded
// instruction at a time with the Execute() function. Fetching and decoding
// instructions, and advancing the program counter, is the job of the VM in
// the hardware package.
//
// Instructions that can not complete raise a signal in the returned
// execution.Result rather than returning an error. How to deal with the
// signal is decided by the VM.
//
// The CPU accesses memory, the display and the keypad through the Bus,
// Display and Keypad interfaces. The implementations in the hardware/memory,
// hardware/display and hardware/input packages satisfy these interfaces.
package cpu
