// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the user preferences for the emulated hardware.
// Preferences are stored on disk with the prefs package.
package preferences

import (
	"github.com/jetsetilly/gopher6502/hardware/clocks"
	"github.com/jetsetilly/gopher6502/prefs"
)

// DefaultPrefsFile is the file used when no other path is specified.
const DefaultPrefsFile = "gopher6502.prefs"

// Preferences for the CPU and the program that hosts it.
type Preferences struct {
	dsk *prefs.Disk

	// use a stack that grows down from 0x01ff, pushing the high byte of the
	// return address first. the default is the simplified stack, where the
	// return address is written as a little-endian word at the stack pointer
	// and the stack pointer is then incremented
	HardwareStack prefs.Bool

	// load the program counter from the reset vector after an image has been
	// loaded into memory
	ResetVector prefs.Bool

	// speed of processor in MHz. used for reporting only
	Clock prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means that the preferences are never
// loaded or saved.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.hardwareStack", &p.HardwareStack)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.resetVector", &p.ResetVector)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.clock", &p.Clock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.HardwareStack.Set(false)
	_ = p.ResetVector.Set(false)
	_ = p.Clock.Set(clocks.NTSC)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
