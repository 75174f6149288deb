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


// Package modalflag wraps the flag package in the standard library. It adds
// program modes, each with its own set of flags.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//	p, err := md.Parse()
//
// After a successful Parse() the selected mode is returned by Mode(). The
// first sub-mode is the default and is selected if the first argument is not
// the name of a mode. Mode names are not case sensitive.
//
// Flags for the selected mode are added after a call to NewMode(). A second
// call to Parse() then parses the arguments that follow the mode name:
//
//	md.NewMode()
//	freq := md.AddInt("freq", 500, "instructions per second")
//	p, err = md.Parse()
//
// Parse() prints help automatically when the -help flag is found. Help
// for the current mode includes the flags, the sub-modes and any text given
// to AdditionalHelp().
//
// AddChoice() adds a string flag restricted to a list of values. The value is
// checked during Parse() and an unlisted value is a ParseError.
package modalflag
