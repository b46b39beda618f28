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

//go:build windows

package monitor

import (
	"io"
	"os"
)

// Terminal is the input and output used by the Monitor. On windows the
// terminal is left in whatever mode it started.
type Terminal struct{}

// OpenTerminal is the preferred method of initialisation for the Terminal
// type.
func OpenTerminal() (*Terminal, error) {
	return &Terminal{}, nil
}

// IsRealTerminal returns true if the Terminal is attached to a tty.
func (t *Terminal) IsRealTerminal() bool {
	return false
}

// Input returns the reader from which key presses should be taken.
func (t *Terminal) Input() io.Reader {
	return os.Stdin
}

// Output returns the writer to which monitor output should be sent.
func (t *Terminal) Output() io.Writer {
	return os.Stdout
}

// Close is a no-op on windows.
func (t *Terminal) Close() error {
	return nil
}
