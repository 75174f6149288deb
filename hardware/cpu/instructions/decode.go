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

package instructions

// Decode the two bytes of an opcode. The first byte is the most significant.
// Every byte pair decodes to exactly one Instruction. Opcodes without a
// definition decode to Illegal.
//
// The primary opcode is the high nibble of the first byte. The 0x0, 0x8 and
// 0xE families have a sub-opcode in the low nibble of the second byte and the
// 0xF family has a sub-opcode in the entire second byte.
func Decode(hi uint8, lo uint8) Instruction {
	w := Word(uint16(hi)<<8 | uint16(lo))

	x := hi & 0x0f
	y := lo >> 4
	n := lo & 0x0f
	nnn := uint16(w) & 0x0fff

	switch hi >> 4 {
	case 0x0:
		if n == 0xe {
			return Return{Word: w}
		}
	case 0x1:
		return Jump{Word: w, Address: nnn}
	case 0x2:
		return Call{Word: w, Address: nnn}
	case 0x3:
		return SkipImmediate{Word: w, Register: x, Value: lo, Equal: true}
	case 0x4:
		return SkipImmediate{Word: w, Register: x, Value: lo, Equal: false}
	case 0x6:
		return LoadImmediate{Word: w, Register: x, Value: lo}
	case 0x7:
		return AddImmediate{Word: w, Register: x, Value: lo}
	case 0x8:
		switch op := ArithmeticOp(n); op {
		case Assign, And, AddCarry, SubBorrow:
			return Arithmetic{Word: w, Op: op, X: x, Y: y}
		}
	case 0xa:
		return LoadIndex{Word: w, Address: nnn}
	case 0xc:
		return Random{Word: w, Register: x, Mask: lo}
	case 0xd:
		return Draw{Word: w, X: x, Y: y, Height: n}
	case 0xe:
		switch op := KeyOp(n); op {
		case SkipPressed, SkipNotPressed:
			return KeySkip{Word: w, Op: op, Register: x}
		}
	case 0xf:
		switch op := MiscOp(lo); op {
		case GetDelay, SetDelay, SetSound, FontAddress, BCD, LoadRegisters:
			return Misc{Word: w, Op: op, Register: x}
		}
	}

	return Illegal{Word: w}
}
