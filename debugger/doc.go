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


// Package debugger implements an interactive command line debugger for the
// VM. The debugger attaches itself to the VM as a hardware.Tracer and so sees
// every cycle before it is executed.
//
// Commands are read from a terminal.Terminal. The HELP command lists the
// available commands.
//
// Breakpoints halt the VM before the instruction at the breakpoint address is
// executed. When execution is resumed, the breakpoint at the current address
// is ignored for the first cycle so that the VM can move past it.
//
// The hang guard stops the VM if the program counter does not change between
// consecutive cycles. This catches the common idiom of a program ending with
// a jump to itself. The hang guard can be turned off with the
// debugger.hangguard preference.
package debugger
