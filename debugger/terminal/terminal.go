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


package terminal

// Sentinel errors returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit, the most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// the user input echoed back. not all terminals will need to print this
	StyleEcho Style = iota

	// information from the debugger as a result of a command
	StyleFeedback

	// help text
	StyleHelp

	// the instruction trace, printed as the VM runs
	StyleCPUStep

	// detailed information about the state of the VM
	StyleInstrument

	// log entries
	StyleLog

	// errors can be generated by the debugger or the VM
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input without the newline. Implementations
	// should return io.EOF when no more input is possible.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
