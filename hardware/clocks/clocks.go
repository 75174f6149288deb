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

// Package clocks defines the constant values that define the speed of the VM.
//
// There is no real hardware to be faithful to. The cycle frequency is a
// reasonable default for most programs and can be changed with the
// vm.cyclefrequency preference. The timer frequency is fixed.
package clocks

const (
	// CycleFrequency is the default number of instructions executed per
	// second.
	CycleFrequency = 500

	// TimerFrequency is the rate at which the delay and sound timers
	// decrement.
	TimerFrequency = 60
)
