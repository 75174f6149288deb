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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware"
)

// Saver is implemented by preference types that can be saved to disk.
type Saver interface {
	Save() error
}

// Debugger is the basic debugging frontend for the VM.
type Debugger struct {
	vm   *hardware.VM
	term terminal.Terminal

	// preferences for the debugger
	Prefs *Preferences

	// other preferences saved by the SAVE command
	savers []Saver

	breakpoints breakpoints
	tracer      *tracer

	// statistics for the most recent RUN command
	lastRunCycles   uint64
	lastRunDuration time.Duration

	quit bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The debugger preferences can be nil, in which case default
// preferences are used.
func NewDebugger(vm *hardware.VM, term terminal.Terminal, p *Preferences) (*Debugger, error) {
	if vm == nil {
		return nil, fmt.Errorf("debugger: no VM")
	}
	if term == nil {
		return nil, fmt.Errorf("debugger: no terminal")
	}
	if p == nil {
		p = NewPreferences()
	}

	dbg := &Debugger{
		vm:    vm,
		term:  term,
		Prefs: p,
	}
	dbg.tracer = newTracer(dbg)
	dbg.savers = []Saver{vm.Prefs, p}

	return dbg, nil
}

// AddSaver adds preferences that will be saved by the SAVE command.
func (dbg *Debugger) AddSaver(s Saver) {
	dbg.savers = append(dbg.savers, s)
}

// Start the main debugger sequence. Returns when the QUIT command is entered,
// when input is exhausted or when the context is cancelled.
func (dbg *Debugger) Start(ctx context.Context) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.vm.SetTracer(dbg.tracer)
	defer dbg.vm.SetTracer(nil)

	dbg.printLine(terminal.StyleFeedback, "type HELP for a list of commands")

	for !dbg.quit {
		if ctx.Err() != nil {
			return nil
		}

		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.printLine(terminal.StyleEcho, input)

		err = dbg.parseInput(ctx, input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// prompt shows the instruction at the program counter.
func (dbg *Debugger) prompt() terminal.Prompt {
	e := disassembly.FromMemory(dbg.vm.Mem, dbg.vm.CPU.PC, 1)[0]
	return terminal.Prompt{
		Content: e.String(),
		Stopped: dbg.vm.IsStopped(),
	}
}

// step the VM n times. stepping ends early if the VM halts.
func (dbg *Debugger) step(n int) error {
	dbg.tracer.resume(dbg.vm.CPU.PC)

	for i := 0; i < n; i++ {
		err := dbg.vm.Step()
		if err != nil {
			return dbg.haltReason(err)
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.vm.LastResult())
	}

	return nil
}

// run the VM until it halts. CTRL-C interrupts the VM and returns control to
// the debugger.
func (dbg *Debugger) run(ctx context.Context) error {
	if dbg.vm.IsStopped() {
		return curated.Errorf(hardware.Stopped)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	go func() {
		select {
		case <-sig:
			cancel()
		case <-runCtx.Done():
		}
	}()

	dbg.tracer.resume(dbg.vm.CPU.PC)

	startCycles := dbg.vm.Cycles()
	startTime := time.Now()

	err := dbg.vm.Run(runCtx)

	dbg.lastRunDuration = time.Since(startTime)
	dbg.lastRunCycles = dbg.vm.Cycles() - startCycles

	if err != nil {
		return dbg.haltReason(err)
	}

	if dbg.vm.IsStopped() {
		dbg.printLine(terminal.StyleFeedback, "vm stopped")
	} else {
		dbg.printLine(terminal.StyleFeedback, "interrupted at %03x", dbg.vm.CPU.PC)
	}

	return nil
}

// haltReason converts the error from the VM into the error to show the user.
// a breakpoint is not an error.
func (dbg *Debugger) haltReason(err error) error {
	if !curated.Is(err, hardware.Halted) {
		return err
	}
	if dbg.tracer.reason != nil {
		return dbg.tracer.reason
	}
	dbg.printLine(terminal.StyleFeedback, "break at %03x", dbg.vm.CPU.PC)
	return nil
}

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if sty != terminal.StyleHelp {
		s = fmt.Sprintf(s, a...)
	}

	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	dbg.term.TermPrintLine(sty, s)
}

// styleWriter implements the io.Writer interface. it is useful for when an
// io.Writer is required and you want to direct the output to the terminal.
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, "%s", string(p))
	return len(p), nil
}
