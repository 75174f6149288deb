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

import (
	"fmt"
)

// Instruction is implemented by every decoded instruction. The set of
// implementations is closed. Any opcode that doesn't decode to a defined
// instruction is represented by Illegal.
type Instruction interface {
	fmt.Stringer

	// the opcode the instruction was decoded from
	Opcode() uint16

	sealed()
}

// Word is the two byte opcode an instruction was decoded from. It is embedded
// in every Instruction implementation.
type Word uint16

// Opcode implements the Instruction interface.
func (w Word) Opcode() uint16 {
	return uint16(w)
}

func (Word) sealed() {}

// Illegal is an opcode with no definition.
type Illegal struct {
	Word
}

func (ins Illegal) String() string {
	return fmt.Sprintf("ILLEGAL $%04X", uint16(ins.Word))
}

// Return from subroutine. Opcode 00EE.
type Return struct {
	Word
}

func (ins Return) String() string {
	return "RET"
}

// Jump to address. Opcode 1nnn.
type Jump struct {
	Word
	Address uint16
}

func (ins Jump) String() string {
	return fmt.Sprintf("JP $%03X", ins.Address)
}

// Call subroutine at address. Opcode 2nnn.
type Call struct {
	Word
	Address uint16
}

func (ins Call) String() string {
	return fmt.Sprintf("CALL $%03X", ins.Address)
}

// SkipImmediate skips the next instruction if the register is equal to the
// value. Opcode 3xkk. If Equal is false the instruction is skipped if the
// register is not equal to the value. Opcode 4xkk.
type SkipImmediate struct {
	Word
	Register uint8
	Value    uint8
	Equal    bool
}

func (ins SkipImmediate) String() string {
	if ins.Equal {
		return fmt.Sprintf("SE V%X, $%02X", ins.Register, ins.Value)
	}
	return fmt.Sprintf("SNE V%X, $%02X", ins.Register, ins.Value)
}

// LoadImmediate sets the register to the value. Opcode 6xkk.
type LoadImmediate struct {
	Word
	Register uint8
	Value    uint8
}

func (ins LoadImmediate) String() string {
	return fmt.Sprintf("LD V%X, $%02X", ins.Register, ins.Value)
}

// AddImmediate adds the value to the register. Opcode 7xkk.
type AddImmediate struct {
	Word
	Register uint8
	Value    uint8
}

func (ins AddImmediate) String() string {
	return fmt.Sprintf("ADD V%X, $%02X", ins.Register, ins.Value)
}

// ArithmeticOp is the sub-opcode of the Arithmetic instruction. The value is
// the low nibble of the opcode.
type ArithmeticOp uint8

// List of valid ArithmeticOp values.
const (
	Assign    ArithmeticOp = 0x0
	And       ArithmeticOp = 0x2
	AddCarry  ArithmeticOp = 0x4
	SubBorrow ArithmeticOp = 0x5
)

// Arithmetic is a register to register operation. Opcode 8xyn.
type Arithmetic struct {
	Word
	Op ArithmeticOp
	X  uint8
	Y  uint8
}

func (ins Arithmetic) String() string {
	var m string
	switch ins.Op {
	case Assign:
		m = "LD"
	case And:
		m = "AND"
	case AddCarry:
		m = "ADD"
	case SubBorrow:
		m = "SUB"
	default:
		m = "???"
	}
	return fmt.Sprintf("%s V%X, V%X", m, ins.X, ins.Y)
}

// LoadIndex sets the index register to the address. Opcode Annn.
type LoadIndex struct {
	Word
	Address uint16
}

func (ins LoadIndex) String() string {
	return fmt.Sprintf("LD I, $%03X", ins.Address)
}

// Random sets the register to a random number masked with the value. Opcode
// Cxkk.
type Random struct {
	Word
	Register uint8
	Mask     uint8
}

func (ins Random) String() string {
	return fmt.Sprintf("RND V%X, $%02X", ins.Register, ins.Mask)
}

// Draw a sprite of Height rows at the coordinates in registers X and Y.
// Opcode Dxyn.
type Draw struct {
	Word
	X      uint8
	Y      uint8
	Height uint8
}

func (ins Draw) String() string {
	return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.Height)
}

// KeyOp is the sub-opcode of the KeySkip instruction. The value is the low
// nibble of the opcode.
type KeyOp uint8

// List of valid KeyOp values.
const (
	SkipPressed    KeyOp = 0xe
	SkipNotPressed KeyOp = 0x1
)

// KeySkip skips the next instruction depending on the state of the key
// numbered by the register. Opcodes Ex9E and ExA1.
type KeySkip struct {
	Word
	Op       KeyOp
	Register uint8
}

func (ins KeySkip) String() string {
	if ins.Op == SkipPressed {
		return fmt.Sprintf("SKP V%X", ins.Register)
	}
	return fmt.Sprintf("SKNP V%X", ins.Register)
}

// MiscOp is the sub-opcode of the Misc instruction. The value is the low
// byte of the opcode.
type MiscOp uint8

// List of valid MiscOp values.
const (
	GetDelay      MiscOp = 0x07
	SetDelay      MiscOp = 0x15
	SetSound      MiscOp = 0x18
	FontAddress   MiscOp = 0x29
	BCD           MiscOp = 0x33
	LoadRegisters MiscOp = 0x65
)

// Misc is the family of timer, index and memory operations. Opcode Fxkk.
type Misc struct {
	Word
	Op       MiscOp
	Register uint8
}

func (ins Misc) String() string {
	switch ins.Op {
	case GetDelay:
		return fmt.Sprintf("LD V%X, DT", ins.Register)
	case SetDelay:
		return fmt.Sprintf("LD DT, V%X", ins.Register)
	case SetSound:
		return fmt.Sprintf("LD ST, V%X", ins.Register)
	case FontAddress:
		return fmt.Sprintf("LD F, V%X", ins.Register)
	case BCD:
		return fmt.Sprintf("LD B, V%X", ins.Register)
	case LoadRegisters:
		return fmt.Sprintf("LD V%X, [I]", ins.Register)
	}
	return fmt.Sprintf("??? V%X", ins.Register)
}
