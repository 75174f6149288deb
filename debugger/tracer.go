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


package debugger

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
)

// HangDetected is the pattern for the error reported when the hang guard
// stops the VM.
const HangDetected = "debugger: hang detected at (%03x)"

// tracer is attached to the VM while the debugger is running.
type tracer struct {
	dbg *Debugger

	// print every instruction and the state of the registers
	trace bool

	// program counter on the previous call to Trace(). a negative value
	// means that there has been no previous call since the last resume
	prevPC int

	// the breakpoint at this address is ignored on the first call to
	// Trace() after a resume. a negative value means no address is ignored
	ignore int

	// the reason for the most recent halt. nil if the halt was caused by a
	// breakpoint
	reason error
}

func newTracer(dbg *Debugger) *tracer {
	return &tracer{
		dbg:    dbg,
		prevPC: -1,
		ignore: -1,
	}
}

// resume must be called before the VM is stepped or run by the debugger.
func (tr *tracer) resume(pc uint16) {
	tr.prevPC = -1
	tr.ignore = int(pc)
	tr.reason = nil
}

// Trace implements the hardware.Tracer interface.
func (tr *tracer) Trace(vm *hardware.VM) bool {
	pc := vm.CPU.PC

	if tr.trace {
		e := disassembly.FromMemory(vm.Mem, pc, 1)[0]
		tr.dbg.printLine(terminal.StyleCPUStep, e.Line(disassembly.WriteAttr{ByteCode: true}))
		tr.dbg.printLine(terminal.StyleInstrument, vm.CPU.Registers.String())
	}

	if tr.dbg.Prefs.HangGuard.Get().(bool) && tr.prevPC == int(pc) {
		tr.reason = curated.Errorf(HangDetected, pc)
		logger.Log(logger.Allow, "debugger", tr.reason)
		vm.Stop()
		return true
	}
	tr.prevPC = int(pc)

	ignore := tr.ignore == int(pc)
	tr.ignore = -1

	return !ignore && tr.dbg.breakpoints.check(pc)
}
