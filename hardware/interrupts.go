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
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/logger"
)

// interrupt is the action taken for a signal raised by the CPU. a non-nil
// error means the VM must stop.
type interrupt func(vm *VM, r execution.Result) error

// every signal has exactly one entry. SigNone has no action
var interruptTable = [execution.NumSignals]interrupt{
	execution.SigNone:               nil,
	execution.SigIllegalInstruction: halt,
	execution.SigStackOverflow:      halt,
	execution.SigStackUnderflow:     halt,
	execution.SigFrameReady:         present,
}

// halt stops the VM and reports the fault.
func halt(vm *VM, r execution.Result) error {
	err := r.Fault()
	logger.Log(logger.Allow, "vm", err)
	vm.Stop()
	return err
}

// present the display. a failure is logged but is not fatal.
func present(vm *VM, _ execution.Result) error {
	if err := vm.Display.Present(); err != nil {
		logger.Logf(logger.Allow, "vm", "present: %v", err)
	}
	return nil
}

// service the signal in the result.
func (vm *VM) service(r execution.Result) error {
	if r.Signal < 0 || r.Signal >= execution.NumSignals {
		return nil
	}
	if action := interruptTable[r.Signal]; action != nil {
		return action(vm, r)
	}
	return nil
}
