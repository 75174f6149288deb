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

// debugger keywords.
const (
	cmdQuit = "QUIT"
	cmdHelp = "HELP"

	cmdRun  = "RUN"
	cmdStep = "STEP"

	cmdCPU    = "CPU"
	cmdMem    = "MEM"
	cmdScreen = "SCREEN"
	cmdDisasm = "DISASM"
	cmdKeypad = "KEYPAD"
	cmdMemviz = "MEMVIZ"

	// halt conditions
	cmdBreak = "BREAK"
	cmdDrop  = "DROP"
	cmdClear = "CLEAR"
	cmdList  = "LIST"
	cmdTrace = "TRACE"

	// meta
	cmdStats = "STATS"
	cmdLog   = "LOG"
	cmdSave  = "SAVE"
)

// the order in which commands are listed by HELP.
var commandList = []string{
	cmdRun, cmdStep,
	cmdBreak, cmdDrop, cmdClear, cmdList, cmdTrace,
	cmdCPU, cmdMem, cmdScreen, cmdDisasm, cmdKeypad, cmdMemviz,
	cmdStats, cmdLog, cmdSave,
	cmdHelp, cmdQuit,
}

var usage = map[string]string{
	cmdQuit:   cmdQuit,
	cmdHelp:   cmdHelp + " [command]",
	cmdRun:    cmdRun,
	cmdStep:   cmdStep + " [n]",
	cmdCPU:    cmdCPU,
	cmdMem:    cmdMem + " address [n]",
	cmdScreen: cmdScreen,
	cmdDisasm: cmdDisasm + " [address [n]]",
	cmdKeypad: cmdKeypad + " key [DOWN|UP]",
	cmdMemviz: cmdMemviz + " file",
	cmdBreak:  cmdBreak + " address",
	cmdDrop:   cmdDrop + " address",
	cmdClear:  cmdClear,
	cmdList:   cmdList,
	cmdTrace:  cmdTrace + " [ON|OFF]",
	cmdStats:  cmdStats,
	cmdLog:    cmdLog + " [n]",
	cmdSave:   cmdSave,
}

var help = map[string]string{
	cmdQuit:   "Exit the debugger",
	cmdHelp:   "Lists commands or shows help for a specific command",
	cmdRun:    "Run the VM until a breakpoint, a fault or CTRL-C",
	cmdStep:   "Execute the next n instructions (default one)",
	cmdCPU:    "Display the registers and the stack",
	cmdMem:    "Display n bytes of memory (default 16) starting at the address",
	cmdScreen: "Display the contents of the display buffer",
	cmdDisasm: "Disassemble n instructions (default 10) starting at the address (default PC)",
	cmdKeypad: "Press or release a key on the keypad (0 to F)",
	cmdMemviz: "Write a graphviz description of the CPU state to file",
	cmdBreak:  "Halt the VM before the instruction at the address is executed",
	cmdDrop:   "Remove the breakpoint at the address",
	cmdClear:  "Remove all breakpoints",
	cmdList:   "List breakpoints",
	cmdTrace:  "Print every instruction and the registers as they are executed",
	cmdStats:  "Display cycle counts and the achieved cycle frequency",
	cmdLog:    "Display the n most recent log entries (default 10)",
	cmdSave:   "Save preferences to disk",
}

// argument requirements for each command.
var arguments = map[string]struct{ min, max int }{
	cmdQuit:   {0, 0},
	cmdHelp:   {0, 1},
	cmdRun:    {0, 0},
	cmdStep:   {0, 1},
	cmdCPU:    {0, 0},
	cmdMem:    {1, 2},
	cmdScreen: {0, 0},
	cmdDisasm: {0, 2},
	cmdKeypad: {1, 2},
	cmdMemviz: {1, 1},
	cmdBreak:  {1, 1},
	cmdDrop:   {1, 1},
	cmdClear:  {0, 0},
	cmdList:   {0, 0},
	cmdTrace:  {0, 1},
	cmdStats:  {0, 0},
	cmdLog:    {0, 1},
	cmdSave:   {0, 0},
}
