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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Memory layout.
const (
	Size          = 4096
	ProgramOrigin = 0x200
	FontBase      = 0x050
	GlyphSize     = 5

	// the largest program that can be loaded at ProgramOrigin
	MaxProgramSize = Size - ProgramOrigin

	// memory is filled with this value on reset unless the zero state is
	// requested. there is no significance to the value except that it is
	// easy to spot in a memory dump
	Sentinel = 0xff
)

// ProgramTooLarge is the pattern for errors returned by LoadProgram().
const ProgramTooLarge = "memory: program too large (%d bytes, maximum %d)"

// font glyphs for the hex digits 0 to F. each glyph is GlyphSize bytes, the
// upper four bits of each byte being one row of the glyph
var font = [16 * GlyphSize]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Memory is the 4096 byte address space of the VM. All addresses wrap so
// there is no such thing as an out of range access.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Memory is filled with the sentinel value.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset(false)
	return mem
}

// Reset fills memory with the sentinel value, or with zero if zero is true,
// and then copies the font glyphs to FontBase.
func (mem *Memory) Reset(zero bool) {
	v := uint8(Sentinel)
	if zero {
		v = 0
	}
	for i := range mem.data {
		mem.data[i] = v
	}
	copy(mem.data[FontBase:], font[:])
}

// Read returns the byte at address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address%Size]
}

// Write data to address.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address%Size] = data
}

// LoadProgram copies the program to ProgramOrigin. Memory outside of the
// program area is left untouched.
func (mem *Memory) LoadProgram(program []uint8) error {
	if len(program) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(mem.data[ProgramOrigin:], program)
	return nil
}

// Dump writes a hex dump of n bytes starting at address to output. Addresses
// wrap in the same way as Read().
func (mem *Memory) Dump(output io.Writer, address uint16, n int) {
	s := strings.Builder{}
	for i := 0; i < n; i++ {
		a := (int(address) + i) % Size
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%03x ", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
	}
	if n > 0 {
		s.WriteString("\n")
	}
	io.WriteString(output, s.String())
}
