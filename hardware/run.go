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
	"context"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Patterns for errors returned by Step() and Run().
const (
	Stopped = "vm: stopped"
	Halted  = "vm: halted at (%03x)"
)

// Step runs a single cycle of the VM without pacing:
//
//   - the Tracer is called and may halt the VM
//   - the instruction at the program counter is fetched and decoded
//   - the instruction is executed
//   - any signal raised by the instruction is serviced
//   - the program counter is advanced
//   - the timers are ticked if enough cycles have passed
//
// Returns a Halted error if the Tracer requested a halt and a Stopped error if
// the VM has been stopped. The VM can be stepped again after a halt. A fault
// raised by the instruction stops the VM and is returned. The program counter
// is left pointing at the faulting instruction.
func (vm *VM) Step() error {
	if vm.stopped.Load() {
		return curated.Errorf(Stopped)
	}

	if vm.tracer != nil && vm.tracer.Trace(vm) {
		return curated.Errorf(Halted, vm.CPU.PC)
	}

	pc := vm.CPU.PC
	ins := instructions.Decode(vm.Mem.Read(pc), vm.Mem.Read(pc+1))

	r := vm.CPU.Execute(ins)
	vm.lastResult = r

	if err := vm.service(r); err != nil {
		return err
	}

	vm.CPU.PC += 2
	vm.cycles.Add(1)
	vm.tickTimers()

	return nil
}

// Run the VM until it is stopped, the context is cancelled, the Tracer
// requests a halt or an instruction faults. Each cycle is paced to the cycle
// frequency.
//
// Returns nil if the VM was stopped or the context was cancelled. Stop
// requests and cancellation are noticed at the start of a cycle.
func (vm *VM) Run(ctx context.Context) error {
	for {
		if vm.stopped.Load() || ctx.Err() != nil {
			return nil
		}

		start := time.Now()

		if err := vm.Step(); err != nil {
			if curated.Is(err, Stopped) {
				return nil
			}
			return err
		}

		vm.pacer.Pace(start)
	}
}
