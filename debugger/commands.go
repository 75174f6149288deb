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
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance"
)

// CommandError is the pattern for errors caused by bad command input.
const CommandError = "command: %v"

// parseAddress interprets the string as a hexadecimal address. The address
// can be prefixed with $ or 0x.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint16(a), nil
}

// parseCount interprets the string as a positive decimal number.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid number (%s)", s)
	}
	return n, nil
}

// parseInput splits the input into tokens and runs the command.
func (dbg *Debugger) parseInput(ctx context.Context, input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	limits, ok := arguments[cmd]
	if !ok {
		return curated.Errorf(CommandError, fmt.Sprintf("unrecognised command (%s)", tokens[0]))
	}
	if len(args) < limits.min {
		return curated.Errorf(CommandError, fmt.Sprintf("too few arguments: %s", usage[cmd]))
	}
	if len(args) > limits.max {
		return curated.Errorf(CommandError, fmt.Sprintf("too many arguments: %s", usage[cmd]))
	}

	err := dbg.processCommand(ctx, cmd, args)
	if err != nil && !curated.IsAny(err) {
		return curated.Errorf(CommandError, err)
	}
	return err
}

func (dbg *Debugger) processCommand(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case cmdQuit:
		dbg.quit = true

	case cmdHelp:
		if len(args) == 0 {
			dbg.printLine(terminal.StyleHelp, strings.Join(commandList, "  "))
			return nil
		}
		c := strings.ToUpper(args[0])
		h, ok := help[c]
		if !ok {
			return fmt.Errorf("no help for %s", args[0])
		}
		dbg.printLine(terminal.StyleHelp, usage[c])
		dbg.printLine(terminal.StyleHelp, h)

	case cmdRun:
		return dbg.run(ctx)

	case cmdStep:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = parseCount(args[0])
			if err != nil {
				return err
			}
		}
		return dbg.step(n)

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.CPU.Registers)
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.CPU.StackString())

	case cmdMem:
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		n := 16
		if len(args) > 1 {
			n, err = parseCount(args[1])
			if err != nil {
				return err
			}
		}
		dbg.vm.Mem.Dump(dbg.printStyle(terminal.StyleInstrument), address, n)

	case cmdScreen:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.Display)

	case cmdDisasm:
		address := dbg.vm.CPU.PC
		n := 10
		var err error
		if len(args) > 0 {
			address, err = parseAddress(args[0])
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			n, err = parseCount(args[1])
			if err != nil {
				return err
			}
		}
		w := dbg.printStyle(terminal.StyleFeedback)
		for _, e := range disassembly.FromMemory(dbg.vm.Mem, address, n) {
			disassembly.WriteEntry(w, disassembly.WriteAttr{ByteCode: true}, e)
		}

	case cmdKeypad:
		key, ok := input.KeyFromName(args[0])
		if !ok {
			return fmt.Errorf("unrecognised key (%s)", args[0])
		}
		action := "DOWN"
		if len(args) > 1 {
			action = strings.ToUpper(args[1])
		}
		switch action {
		case "DOWN":
			dbg.vm.Keypad.Press(key)
		case "UP":
			dbg.vm.Keypad.Release(key)
		default:
			return fmt.Errorf("unrecognised key action (%s)", args[1])
		}
		dbg.printLine(terminal.StyleFeedback, "keypad %04x", dbg.vm.Keypad.Snapshot())

	case cmdMemviz:
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		memviz.Map(f, &dbg.vm.CPU.Registers)
		if err := f.Close(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "CPU state written to %s", args[0])

	case cmdBreak:
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.add(address); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "break at %03x", address)

	case cmdDrop:
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.drop(address); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "break at %03x dropped", address)

	case cmdClear:
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdList:
		dbg.printLine(terminal.StyleFeedback, "%s", &dbg.breakpoints)

	case cmdTrace:
		if len(args) == 0 {
			dbg.tracer.trace = !dbg.tracer.trace
		} else {
			switch strings.ToUpper(args[0]) {
			case "ON":
				dbg.tracer.trace = true
			case "OFF":
				dbg.tracer.trace = false
			default:
				return fmt.Errorf("unrecognised trace option (%s)", args[0])
			}
		}
		if dbg.tracer.trace {
			dbg.printLine(terminal.StyleFeedback, "trace on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "trace off")
		}

	case cmdStats:
		dbg.printLine(terminal.StyleInstrument, "cycles: %d", dbg.vm.Cycles())
		if dbg.lastRunCycles > 0 {
			target := dbg.vm.Prefs.CycleFrequency.Get().(int)
			rate, accuracy := performance.CalcRate(dbg.lastRunCycles, dbg.lastRunDuration, target)
			dbg.printLine(terminal.StyleInstrument, "last run: %d cycles in %s (%.2fHz, %.1f%% of %dHz)",
				dbg.lastRunCycles, dbg.lastRunDuration.Round(time.Millisecond), rate, accuracy, target)
		}
		if m := dbg.vm.MeasuredFrequency(); m > 0 {
			dbg.printLine(terminal.StyleInstrument, "measured: %.2fHz", m)
		}

	case cmdLog:
		n := 10
		if len(args) > 0 {
			var err error
			n, err = parseCount(args[0])
			if err != nil {
				return err
			}
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), n)

	case cmdSave:
		for _, s := range dbg.savers {
			if err := s.Save(); err != nil {
				return err
			}
		}
		dbg.printLine(terminal.StyleFeedback, "preferences saved")
	}

	return nil
}
