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

package hardware

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/random"
)

// Tracer implementations are called once per cycle, before the instruction
// at the program counter is fetched. The VM can be inspected but should not
// be changed. Returning true halts the VM before the instruction is
// executed.
type Tracer interface {
	Trace(vm *VM) bool
}

// VM is the complete virtual machine. The VM should only be used from a
// single goroutine, with the exception of Stop(), Cycles() and the
// preferences.
type VM struct {
	Prefs *Preferences

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *input.Keypad

	Random *random.Random

	pacer  *limiter.Pacer
	tracer Tracer

	// set by Stop(). once set the VM will not run again
	stopped atomic.Bool

	// number of completed cycles
	cycles atomic.Uint64

	// timer accumulator. increases by clocks.TimerFrequency every cycle and
	// the timers tick when it reaches the cycle frequency
	timerAccumulator int

	// result of the most recent cycle
	lastResult execution.Result
}

// NewVM creates a new VM and everything associated with the hardware. The
// renderer can be nil, in which case the VM is headless. The preferences
// can be nil, in which case default preferences are used.
func NewVM(renderer display.Renderer, p *Preferences) (*VM, error) {
	if p == nil {
		p = NewPreferences()
	}

	vm := &VM{
		Prefs:   p,
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(renderer),
		Keypad:  input.NewKeypad(),
	}

	vm.Random = random.NewRandom(vm)
	vm.CPU = cpu.NewCPU(vm.Mem, vm.Display, vm.Keypad, vm.Random)

	vm.pacer = limiter.NewPacer(p.CycleFrequency.Get().(int))
	p.CycleFrequency.SetHookPost(func(v prefs.Value) error {
		vm.pacer.SetFrequency(v.(int))
		return nil
	})

	vm.Reset()

	return vm, nil
}

// Reset the VM. The contents of memory, including any loaded program, are
// lost.
func (vm *VM) Reset() {
	zero := vm.Prefs.ZeroState.Get().(bool)
	vm.Mem.Reset(zero)
	vm.CPU.Reset(zero)
	vm.Display.Clear()
	vm.cycles.Store(0)
	vm.timerAccumulator = 0
	vm.lastResult = execution.Result{}
}

// LoadROM resets the VM and loads the program into memory at the program
// origin.
func (vm *VM) LoadROM(program []uint8) error {
	vm.Reset()
	if err := vm.Mem.LoadProgram(program); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "vm", "loaded %d bytes", len(program))
	return nil
}

// SetTracer attaches a Tracer to the VM. A nil Tracer removes the current
// Tracer.
func (vm *VM) SetTracer(t Tracer) {
	vm.tracer = t
}

// Stop the VM. The VM stops at the start of the next cycle. Stopping is
// permanent. Safe to call from any goroutine.
func (vm *VM) Stop() {
	vm.stopped.Store(true)
}

// IsStopped returns true if Stop() has been called. Safe to call from any
// goroutine.
func (vm *VM) IsStopped() bool {
	return vm.stopped.Load()
}

// Cycles returns the number of completed cycles since the last reset. Safe to
// call from any goroutine.
func (vm *VM) Cycles() uint64 {
	return vm.cycles.Load()
}

// LastResult returns the result of the most recently executed instruction.
func (vm *VM) LastResult() execution.Result {
	return vm.lastResult
}

// MeasuredFrequency returns the cycle frequency most recently achieved by
// Run(). Safe to call from any goroutine.
func (vm *VM) MeasuredFrequency() float64 {
	return vm.pacer.Measured()
}

// tick the timers if enough cycles have passed.
func (vm *VM) tickTimers() {
	freq := vm.Prefs.CycleFrequency.Get().(int)
	vm.timerAccumulator += clocks.TimerFrequency
	for vm.timerAccumulator >= freq {
		vm.timerAccumulator -= freq
		vm.CPU.DecrementTimers()
	}
}
