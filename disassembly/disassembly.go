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
	"sort"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// DisasmError is the pattern for errors created by the disassembly package.
const DisasmError = "disassembly: %v"

// Reader is the memory interface required by FromMemory().
type Reader interface {
	Read(address uint16) uint8
}

// Disassembly of an entire program.
type Disassembly struct {
	mem *memory.Memory

	// first address after the program
	end uint16

	// entries sorted by address
	entries []*Entry

	// entries indexed by address
	index map[uint16]*Entry
}

// FromProgram disassembles the program as it would be loaded into the VM.
func FromProgram(program []uint8) (*Disassembly, error) {
	dsm := &Disassembly{
		mem:   memory.NewMemory(),
		index: make(map[uint16]*Entry),
	}

	err := dsm.mem.LoadProgram(program)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	// decode every even address. an odd length program will have the final
	// byte paired with the memory sentinel
	dsm.end = uint16(memory.ProgramOrigin + len(program))
	for a := uint16(memory.ProgramOrigin); a < dsm.end; a += 2 {
		dsm.decode(a)
	}

	dsm.bless(memory.ProgramOrigin)

	sort.Slice(dsm.entries, func(i, j int) bool {
		return dsm.entries[i].Address < dsm.entries[j].Address
	})

	return dsm, nil
}

// decode the instruction at address if it hasn't already been decoded.
func (dsm *Disassembly) decode(address uint16) *Entry {
	address %= memory.Size
	if e, ok := dsm.index[address]; ok {
		return e
	}
	e := newEntry(address, dsm.mem.Read(address), dsm.mem.Read(address+1))
	dsm.entries = append(dsm.entries, e)
	dsm.index[address] = e
	return e
}

// bless entries by following the flow of the program from address. entries
// outside the program are not blessed.
func (dsm *Disassembly) bless(address uint16) {
	queue := []uint16{address}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if a < memory.ProgramOrigin || a >= dsm.end {
			continue
		}

		e := dsm.decode(a)
		if e.Level == EntryLevelBlessed {
			continue
		}
		e.Level = EntryLevelBlessed

		switch ins := e.Instruction.(type) {
		case instructions.Illegal, instructions.Return:
		case instructions.Jump:
			queue = append(queue, ins.Address)
		case instructions.Call:
			queue = append(queue, ins.Address, a+2)
		case instructions.SkipImmediate, instructions.KeySkip:
			queue = append(queue, a+2, a+4)
		default:
			queue = append(queue, a+2)
		}
	}
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// Get returns the entry at address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	e, ok := dsm.index[address%memory.Size]
	return e, ok
}

// Entries returns a copy of every entry in address order.
func (dsm *Disassembly) Entries() []Entry {
	l := make([]Entry, len(dsm.entries))
	for i, e := range dsm.entries {
		l[i] = *e
	}
	return l
}

// FromMemory decodes n instructions starting at address. No flow analysis is
// performed and every entry is at EntryLevelDecoded.
func FromMemory(mem Reader, address uint16, n int) []Entry {
	l := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		a := (address + uint16(i*2)) % memory.Size
		l = append(l, *newEntry(a, mem.Read(a), mem.Read(a+1)))
	}
	return l
}
