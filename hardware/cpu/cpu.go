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
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/random"
)

// Bus defines the memory operations required by the CPU. Addresses wrap so
// neither operation can fail.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Display defines the display operations required by the CPU.
type Display interface {
	// flip the pixel at x, y and return true if the pixel was turned off
	Toggle(x, y int) bool
}

// Keypad defines the input operations required by the CPU.
type Keypad interface {
	IsPressed(key uint8) bool
}

// the value the registers are filled with on reset unless the zero state is
// requested
const sentinel = 0xff

// CPU implements the instruction set of the VM.
type CPU struct {
	Registers

	mem    Bus
	disp   Display
	keypad Keypad
	rand   *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is reset with sentinel values.
func NewCPU(mem Bus, disp Display, keypad Keypad, rand *random.Random) *CPU {
	mc := &CPU{
		mem:    mem,
		disp:   disp,
		keypad: keypad,
		rand:   rand,
	}
	mc.Reset(false)
	return mc
}

// Reset the CPU. The general purpose registers and the index register are
// filled with sentinel values unless zero is true. The program counter is set
// to the program origin and the stack is emptied.
func (mc *CPU) Reset(zero bool) {
	var v uint8 = sentinel
	var i uint16 = sentinel<<8 | sentinel
	if zero {
		v = 0
		i = 0
	}

	for r := range mc.V {
		mc.V[r] = v
	}
	mc.I = i
	mc.PC = memory.ProgramOrigin
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.Delay = 0
	mc.Sound = 0
}

// DecrementTimers decreases the delay and sound timers by one. Neither timer
// goes below zero.
func (mc *CPU) DecrementTimers() {
	if mc.Delay > 0 {
		mc.Delay--
	}
	if mc.Sound > 0 {
		mc.Sound--
	}
}

// Execute the instruction. The program counter should be pointing to the
// instruction. The program counter is not advanced past the instruction, that
// is the responsibility of the caller. Instructions that change the flow of
// control compensate for this.
//
// The returned Result records any signal raised by the instruction. The CPU
// state is unchanged if the signal is a fault.
func (mc *CPU) Execute(ins instructions.Instruction) execution.Result {
	r := execution.Result{
		Address:     mc.PC,
		Instruction: ins,
	}

	switch ins := ins.(type) {
	case instructions.Return:
		if mc.SP == 0 {
			r.Signal = execution.SigStackUnderflow
			return r
		}
		mc.SP--
		mc.PC = mc.Stack[mc.SP]

	case instructions.Jump:
		mc.PC = ins.Address - 2

	case instructions.Call:
		if mc.SP >= StackDepth {
			r.Signal = execution.SigStackOverflow
			return r
		}
		mc.Stack[mc.SP] = mc.PC
		mc.SP++
		mc.PC = ins.Address - 2

	case instructions.SkipImmediate:
		if (mc.V[ins.Register] == ins.Value) == ins.Equal {
			mc.PC += 2
		}

	case instructions.LoadImmediate:
		mc.V[ins.Register] = ins.Value

	case instructions.AddImmediate:
		mc.V[ins.Register] += ins.Value

	case instructions.Arithmetic:
		mc.arithmetic(ins)

	case instructions.LoadIndex:
		mc.I = ins.Address

	case instructions.Random:
		mc.V[ins.Register] = mc.rand.Byte() & ins.Mask

	case instructions.Draw:
		mc.draw(ins)
		r.Signal = execution.SigFrameReady

	case instructions.KeySkip:
		if mc.keypad.IsPressed(mc.V[ins.Register]) == (ins.Op == instructions.SkipPressed) {
			mc.PC += 2
		}

	case instructions.Misc:
		mc.misc(ins)

	case instructions.Illegal:
		r.Signal = execution.SigIllegalInstruction

	default:
		r.Signal = execution.SigIllegalInstruction
	}

	return r
}

func (mc *CPU) arithmetic(ins instructions.Arithmetic) {
	x := mc.V[ins.X]
	y := mc.V[ins.Y]

	switch ins.Op {
	case instructions.Assign:
		mc.V[ins.X] = y

	case instructions.And:
		mc.V[ins.X] = x & y

	case instructions.AddCarry:
		sum := uint16(x) + uint16(y)
		mc.V[ins.X] = uint8(sum)
		if sum > 0xff {
			mc.V[flag] = 1
		} else {
			mc.V[flag] = 0
		}

	case instructions.SubBorrow:
		mc.V[ins.X] = x - y
		if x < y {
			mc.V[flag] = 0
		} else {
			mc.V[flag] = 1
		}
	}
}

func (mc *CPU) misc(ins instructions.Misc) {
	x := ins.Register

	switch ins.Op {
	case instructions.GetDelay:
		mc.V[x] = mc.Delay

	case instructions.SetDelay:
		mc.Delay = mc.V[x]

	case instructions.SetSound:
		mc.Sound = mc.V[x]

	case instructions.FontAddress:
		mc.I = memory.FontBase + uint16(mc.V[x])*memory.GlyphSize

	case instructions.BCD:
		v := mc.V[x]
		mc.mem.Write(mc.I, v/100)
		mc.mem.Write(mc.I+1, (v/10)%10)
		mc.mem.Write(mc.I+2, v%10)

	case instructions.LoadRegisters:
		for r := uint8(0); r <= x; r++ {
			mc.V[r] = mc.mem.Read(mc.I)
			mc.I++
		}
	}
}

// draw the sprite at the index register. the flag register is set if any
// pixel is turned off.
func (mc *CPU) draw(ins instructions.Draw) {
	vx := int(mc.V[ins.X])
	vy := int(mc.V[ins.Y])

	// the flag is set after reading the coordinates because either of the
	// coordinate registers may be the flag register
	mc.V[flag] = 0

	for row := 0; row < int(ins.Height); row++ {
		b := mc.mem.Read(mc.I + uint16(row))
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			if mc.disp.Toggle((vx+col)%display.Width, (vy+row)%display.Height) {
				mc.V[flag] = 1
			}
		}
	}
}
