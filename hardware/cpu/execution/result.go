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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Patterns for the errors created by Result.Fault().
const (
	IllegalInstruction = "cpu: illegal instruction (%04x) at (%03x)"
	StackOverflow      = "cpu: stack overflow at (%03x)"
	StackUnderflow     = "cpu: stack underflow at (%03x)"
)

// Signal is raised by the execution of an instruction. At most one signal is
// raised by each instruction.
type Signal int

// List of valid Signal values.
const (
	SigNone Signal = iota
	SigIllegalInstruction
	SigStackOverflow
	SigStackUnderflow
	SigFrameReady

	// the number of signals. not a valid signal
	NumSignals
)

func (sig Signal) String() string {
	switch sig {
	case SigNone:
		return "none"
	case SigIllegalInstruction:
		return "illegal instruction"
	case SigStackOverflow:
		return "stack overflow"
	case SigStackUnderflow:
		return "stack underflow"
	case SigFrameReady:
		return "frame ready"
	}
	return fmt.Sprintf("unknown signal (%d)", int(sig))
}

// IsFault returns true if the signal indicates that execution can not
// continue.
func (sig Signal) IsFault() bool {
	switch sig {
	case SigIllegalInstruction, SigStackOverflow, SigStackUnderflow:
		return true
	}
	return false
}

// Result records the execution of a single instruction.
type Result struct {
	// address of the instruction
	Address uint16

	Instruction instructions.Instruction

	// signal raised by the instruction, if any
	Signal Signal
}

func (r Result) String() string {
	if r.Instruction == nil {
		return fmt.Sprintf("%03x  ????  ???", r.Address)
	}
	s := fmt.Sprintf("%03x  %04x  %s", r.Address, r.Instruction.Opcode(), r.Instruction)
	if r.Signal != SigNone {
		s = fmt.Sprintf("%s  [%s]", s, r.Signal)
	}
	return s
}

// Fault returns the error for the signal raised by the instruction. Returns
// nil if the signal is not a fault.
func (r Result) Fault() error {
	switch r.Signal {
	case SigIllegalInstruction:
		var opcode uint16
		if r.Instruction != nil {
			opcode = r.Instruction.Opcode()
		}
		return curated.Errorf(IllegalInstruction, opcode, r.Address)
	case SigStackOverflow:
		return curated.Errorf(StackOverflow, r.Address)
	case SigStackUnderflow:
		return curated.Errorf(StackUnderflow, r.Address)
	}
	return nil
}
