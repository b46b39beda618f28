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

//go:build !windows

package monitor

import (
	"io"
	"os"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Terminal is the input and output used by the Monitor. If the standard input
// is a real terminal then it will be in cbreak mode until Close() is called.
type Terminal struct {
	tty *term.Term
}

// OpenTerminal is the preferred method of initialisation for the Terminal
// type.
func OpenTerminal() (*Terminal, error) {
	t := &Terminal{}

	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return t, nil
	}

	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, err
	}
	t.tty = tty

	return t, nil
}

// IsRealTerminal returns true if the Terminal is attached to a tty.
func (t *Terminal) IsRealTerminal() bool {
	return t.tty != nil
}

// Input returns the reader from which key presses should be taken.
func (t *Terminal) Input() io.Reader {
	if t.tty != nil {
		return t.tty
	}
	return os.Stdin
}

// Output returns the writer to which monitor output should be sent.
func (t *Terminal) Output() io.Writer {
	return os.Stdout
}

// Close restores the terminal to the mode it was in when it was opened.
func (t *Terminal) Close() error {
	if t.tty == nil {
		return nil
	}
	if err := t.tty.Restore(); err != nil {
		return err
	}
	return t.tty.Close()
}
