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

package modalflag

import (
	"flag"
	"fmt"
	"strconv"
)

// address implements the flag.Value interface for a 16 bit address. Values
// can be given in decimal, hexadecimal (0x prefix) or octal (0 prefix).
type address uint16

func (a *address) String() string {
	return fmt.Sprintf("%#04x", uint16(*a))
}

func (a *address) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit address: %s", s)
	}
	*a = address(v)
	return nil
}

// AddAddress flag for next call to Parse().
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	p := new(uint16)
	*p = value
	md.flags.Var((*address)(p), name, usage)
	return p
}

var _ flag.Value = (*address)(nil)
