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


package gui

import (
	"fmt"

	"github.com/jetsetilly/gopher8/prefs"
)

// DefaultScale is the number of screen pixels used for each side of a
// display pixel.
const DefaultScale = 10

// Preferences for the display backends.
type Preferences struct {
	dsk *prefs.Disk

	// size of each display pixel on the screen
	Scale prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("gui.scale :: %s\n", &p.Scale)
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 1 || s > 50 {
			return fmt.Errorf("scale must be between 1 and 50 (%d)", s)
		}
		return nil
	})

	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(DefaultScale)
}

// AttachDisk associates the preferences with a file and loads any values
// already in the file.
func (p *Preferences) AttachDisk(path string) error {
	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return err
	}
	err = p.dsk.Add("gui.scale", &p.Scale)
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
