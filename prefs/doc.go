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

// Package prefs facilitates the storage of preference values on disk.
//
// Values are of type Bool, Int, Float or String. Each value is added to a Disk with
// a unique key. The Save() and Load() functions of Disk then write and read
// all values associated with that Disk:
//
//	dsk, _ := prefs.NewDisk("gopher6502.prefs")
//
//	var stack prefs.Bool
//	_ = dsk.Add("cpu.hardwareStack", &stack)
//	_ = dsk.Load()
//
// The file format is one "key :: value" pair per line, preceded by a warning
// not to edit the file by hand. Keys in the file that have not been added to
// the Disk are preserved when the file is saved.
package prefs
