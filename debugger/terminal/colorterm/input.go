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


//go:build !windows

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	p := prompt.String()

	var input []rune
	cursor := 0
	history := len(ct.commandHistory)

	// the input in progress is kept while the user scrolls through the history
	var inProgress []rune

	// each iteration clears the line, prints the prompt and the input and then
	// places the cursor at the correct position
	redraw := func() {
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(p)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorMove(cursor - len(input)))
	}

	recall := func(r []rune) {
		input = append(input[:0:0], r...)
		cursor = len(input)
	}

	for {
		redraw()

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			if len(input) == 0 {
				ct.TermPrint("\n")
				return "", io.EOF
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.CBreakMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(input)
			if len(s) > 0 {
				n := len(ct.commandHistory)
				if n == 0 || ct.commandHistory[n-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}
			ct.TermPrint("\n")
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						inProgress = append(inProgress[:0:0], input...)
					}
					history--
					recall([]rune(ct.commandHistory[history]))
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					recall([]rune(ct.commandHistory[history]))
				} else if history == len(ct.commandHistory)-1 {
					history++
					recall(inProgress)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			case easyterm.EscHome:
				cursor = 0
			case easyterm.EscEnd:
				cursor = len(input)
			case easyterm.EscDelete:
				// delete key sends a trailing tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.commandHistory)
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
