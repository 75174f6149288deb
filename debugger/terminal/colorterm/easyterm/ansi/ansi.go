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


// Package ansi defines ANSI control codes for styles, colours and cursor
// movement.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
)

// Cursor control sequences.
const (
	CursorStore       = "\0337"
	CursorRestore     = "\0338"
	ClearLine         = "\033[2K"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
	CursorHome        = "\033[H"
	CursorHide        = "\033[?25l"
	CursorShow        = "\033[?25h"
	ClearScreen       = "\033[2J"
)

// CursorMove returns the sequence to move the cursor n columns. Negative
// values move the cursor backwards.
func CursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}

// Pens is the table of colors to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colors to be used for text.
var DimPens = map[string]string{}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{}

// NormalPen is the CSI sequence for regular text.
var NormalPen = "\033[m"

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true, false)
		DimPens[c], _ = ColorBuild(c, "", "", false, false)
	}
	PenStyles["bold"], _ = ColorBuild("", "", "bold", false, false)
	PenStyles["underline"], _ = ColorBuild("", "", "underline", false, false)
	PenStyles["inverse"], _ = ColorBuild("", "", "inverse", false, false)
}

func color(name string) (int, error) {
	switch strings.ToUpper(name) {
	case "BLACK":
		return colBlack, nil
	case "RED":
		return colRed, nil
	case "GREEN":
		return colGreen, nil
	case "YELLOW":
		return colYellow, nil
	case "BLUE":
		return colBlue, nil
	case "MAGENTA":
		return colMagenta, nil
	case "CYAN":
		return colCyan, nil
	case "WHITE":
		return colWhite, nil
	case "NORMAL":
		return colDefault, nil
	}
	return 0, fmt.Errorf("unknown ANSI color (%s)", name)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var parts []string

	if pen != "" {
		c, err := color(pen)
		if err != nil {
			return "", err
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, err := color(paper)
		if err != nil {
			return "", err
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", target, c))
	}

	switch strings.ToUpper(attribute) {
	case "BOLD":
		parts = append(parts, fmt.Sprintf("%d", attrBold))
	case "UNDERLINE":
		parts = append(parts, fmt.Sprintf("%d", attrUnderline))
	case "INVERSE":
		parts = append(parts, fmt.Sprintf("%d", attrInverse))
	case "":
	default:
		return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}
