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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction at the address. nil if the opcode is
	// not implemented
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully decoded
	ByteCount int

	// the operand of the instruction. for single byte operands only the low
	// byte is used
	InstructionData uint16

	// number of cycles consumed by the instruction so far
	Cycles int

	// whether an extra cycle was required because of a page boundary being
	// crossed by an indexed address
	PageFault bool

	// whether an address wrapping behaviour was triggered
	CPUBug Bug

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x ??? (%d cycles)", r.Address, r.Cycles)
	}

	s := fmt.Sprintf("%#04x %s %s (%d cycles)", r.Address, r.Defn.Operator, r.Defn.AddressingMode, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s [page fault]", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s [%s]", s, r.CPUBug)
	}
	return s
}
