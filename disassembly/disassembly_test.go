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


package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

var program = []uint8{
	0x60, 0x05, // LD V0, $05
	0x22, 0x08, // CALL $208
	0x12, 0x04, // JP $204
	0xab, 0xcd, // data
	0x30, 0x01, // SE V0, $01
	0x00, 0xee, // RET
	0x00, 0xee, // RET
}

func TestBlessing(t *testing.T) {
	dsm, err := disassembly.FromProgram(program)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Len(), 7)

	for _, a := range []uint16{0x200, 0x202, 0x204, 0x208, 0x20a, 0x20c} {
		e, ok := dsm.Get(a)
		test.DemandSuccess(t, ok, a)
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed, a)
	}

	e, ok := dsm.Get(0x206)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.String(), "206  LD I, $BCD")
}

func TestOddAddress(t *testing.T) {
	dsm, err := disassembly.FromProgram([]uint8{0x12, 0x03, 0x00, 0x60, 0x05, 0x12, 0x00})
	test.DemandSuccess(t, err)

	var addresses []uint16
	var blessed []uint16
	for _, e := range dsm.Entries() {
		addresses = append(addresses, e.Address)
		if e.Level == disassembly.EntryLevelBlessed {
			blessed = append(blessed, e.Address)
		}
	}
	test.ExpectDiff(t, addresses, []uint16{0x200, 0x202, 0x203, 0x204, 0x205, 0x206})
	test.ExpectDiff(t, blessed, []uint16{0x200, 0x203, 0x205})

	e, _ := dsm.Get(0x203)
	test.ExpectEquality(t, e.Instruction.String(), "LD V0, $05")
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromProgram(program[:6])
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "200  LD V0, $05\n202  CALL $208\n204  JP $204\n")

	w.Clear()
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectEquality(t, w.String(), "200  60 05  LD V0, $05\n202  22 08  CALL $208\n204  12 04  JP $204\n")
}

func TestWriteLevel(t *testing.T) {
	dsm, err := disassembly.FromProgram(program)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{Level: true}))
	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 7)
	test.ExpectEquality(t, lines[3], "  206  LD I, $BCD")
	test.ExpectEquality(t, lines[4], "* 208  SE V0, $01")

	w.Clear()
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{BlessedOnly: true}))
	test.ExpectFailure(t, strings.Contains(w.String(), "206"))
}

func TestTooLarge(t *testing.T) {
	_, err := disassembly.FromProgram(make([]uint8, memory.MaxProgramSize+1))
	test.ExpectSuccess(t, curated.Is(err, disassembly.DisasmError))
	test.ExpectSuccess(t, curated.Has(err, memory.ProgramTooLarge))
}

func TestFromMemory(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.LoadProgram(program))

	l := disassembly.FromMemory(mem, 0x202, 2)
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0].String(), "202  CALL $208")
	test.ExpectEquality(t, l[1].Line(disassembly.WriteAttr{ByteCode: true}), "204  12 04  JP $204")

	// addresses wrap
	l = disassembly.FromMemory(mem, 0xffe, 2)
	test.ExpectEquality(t, l[1].Address, uint16(0x000))
}
