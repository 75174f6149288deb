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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences for the VM. Values can be changed while the VM is running.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions executed per second
	CycleFrequency prefs.Int

	// start with zeroed memory and registers rather than sentinel values
	ZeroState prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("vm.cyclefrequency :: %s\ncpu.zerostate :: %s\n", &p.CycleFrequency, &p.ZeroState)
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The new instance has default values and is not attached
// to a file.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()

	p.CycleFrequency.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("cycle frequency must be positive (%d)", v.(int))
		}
		return nil
	})

	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.CycleFrequency.Set(clocks.CycleFrequency)
	p.ZeroState.Set(false)
}

// AttachDisk associates the preferences with a file and loads any values
// already in the file.
func (p *Preferences) AttachDisk(path string) error {
	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return err
	}
	err = p.dsk.Add("vm.cyclefrequency", &p.CycleFrequency)
	if err != nil {
		return err
	}
	err = p.dsk.Add("cpu.zerostate", &p.ZeroState)
	if err != nil {
		return err
	}

	return p.dsk.Load()
}

// Load preferences from disk. Does nothing if the preferences have not been
// attached to a file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
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
