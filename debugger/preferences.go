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
	"fmt"

	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences for the debugger.
type Preferences struct {
	dsk *prefs.Disk

	// stop the VM if the program counter does not change between cycles
	HangGuard prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("debugger.hangguard :: %s\n", &p.HangGuard)
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.HangGuard.Set(true)
}

// AttachDisk associates the preferences with a file and loads any values
// already in the file.
func (p *Preferences) AttachDisk(path string) error {
	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return err
	}
	err = p.dsk.Add("debugger.hangguard", &p.HangGuard)
	if err != nil {
		return err
	}

	return p.dsk.Load()
}

// Save preferences to disk. Does nothing if the preferences have not been
// attached to a file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
