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

// Package hardware is the base package for the VM. The VM type collects the
// CPU, memory, display and keypad together and runs the fetch, execute and
// pace cycle.
//
// A headless VM running a program looks like this (error handling removed for
// clarity):
//
//	vm, _ := hardware.NewVM(nil, nil)
//	vm.LoadROM(program)
//	err := vm.Run(ctx)
//
// Run() returns nil when the VM is stopped with Stop() or the context is
// cancelled. Any other return value is an error that ended execution. Faults
// raised by the CPU (illegal instructions and stack errors) are logged and
// returned as curated errors.
//
// Step() runs a single cycle without pacing. It is used by the debugger and
// for testing.
//
// The cycle frequency is a preference and can be changed while the VM is
// running. The delay and sound timers are decremented at sixty ticks per
// second of VM time regardless of the cycle frequency.
package hardware
