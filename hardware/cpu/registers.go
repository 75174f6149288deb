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

package cpu

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// StackDepth is the number of entries in the call stack.
const StackDepth = 16

// the flag register is the last of the general purpose registers
const flag = 0xf

// Registers is the programmer visible state of the CPU. It is a plain value
// and can be copied to take a snapshot of the CPU.
type Registers struct {
	V [NumRegisters]uint8

	// the index register and program counter are never masked. memory
	// accesses wrap instead
	I  uint16
	PC uint16

	Stack [StackDepth]uint16
	SP    uint8

	Delay uint8
	Sound uint8
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x I=%04x SP=%02d DT=%02x ST=%02x\n", r.PC, r.I, r.SP, r.Delay, r.Sound))
	for i, v := range r.V {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("V%X=%02x", i, v))
	}
	return s.String()
}

// StackString returns the active entries in the stack, most recent first.
func (r Registers) StackString() string {
	if r.SP == 0 {
		return "stack empty"
	}
	s := strings.Builder{}
	for i := int(r.SP) - 1; i >= 0; i-- {
		s.WriteString(fmt.Sprintf("%02d: %04x\n", i, r.Stack[i]))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
