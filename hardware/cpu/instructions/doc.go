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

// Package instructions defines the instruction set of the VM and decodes
// opcodes into it.
//
// Decode() turns a byte pair into one of the Instruction types. Families of
// instructions that share a primary opcode but are distinguished by a
// sub-opcode (Arithmetic, KeySkip and Misc) are a single type with the
// sub-opcode as a field. Code that executes instructions should use a type
// switch:
//
//	switch ins := instructions.Decode(hi, lo).(type) {
//	case instructions.Jump:
//		pc = ins.Address
//	case instructions.Illegal:
//		return fault
//	...
//	}
//
// Every Instruction implements fmt.Stringer and returns the disassembly of
// the instruction.
package instructions
