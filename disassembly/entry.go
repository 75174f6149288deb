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


package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes the reliability of an Entry.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address     uint16
	Bytecode    [2]uint8
	Instruction instructions.Instruction
	Level       EntryLevel
}

func newEntry(address uint16, hi uint8, lo uint8) *Entry {
	return &Entry{
		Address:     address,
		Bytecode:    [2]uint8{hi, lo},
		Instruction: instructions.Decode(hi, lo),
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%03x  %s", e.Address, e.Instruction)
}

// Line returns the entry formatted according to the WriteAttr.
func (e Entry) Line(attr WriteAttr) string {
	s := strings.Builder{}
	if attr.Level {
		if e.Level == EntryLevelBlessed {
			s.WriteString("* ")
		} else {
			s.WriteString("  ")
		}
	}
	s.WriteString(fmt.Sprintf("%03x  ", e.Address))
	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%02x %02x  ", e.Bytecode[0], e.Bytecode[1]))
	}
	if e.Instruction != nil {
		s.WriteString(e.Instruction.String())
	}
	return s.String()
}
