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

// Package prefs facilitates the storage of preferential values in the
// gopher8 system. It is a very simple system and is sufficient for the
// project's needs.
//
// The Bool and Int types are safe to read and write from any
// goroutine, so a preference can be changed in the GUI while the VM is
// running. Hooks can be registered to react to, or veto, a change in value.
//
// Values are stored on disk with the Disk type:
//
//	var freq prefs.Int
//
//	dsk, _ := prefs.NewDisk("preferences")
//	dsk.Add("vm.cyclefrequency", &freq)
//	dsk.Load()
//
// The file is a plain text file with a boilerplate warning as the first line
// and one "key :: value" pair per line after that.
package prefs
