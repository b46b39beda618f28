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
	"github.com/jetsetilly/gopher6502/curated"
)

// Sentinel error patterns returned by IsValid().
const (
	NotFinalised   = "cpu: execution not finalised (bad opcode?)"
	UnexpectedPage = "cpu: unexpected page fault"
	WrongBytes     = "cpu: unexpected number of bytes read during decode (%d instead of %d)"
	WrongCycles    = "cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)"
	WrongCyclesPF  = "cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d or %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final || r.Defn == nil {
		return curated.Errorf(NotFinalised)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(UnexpectedPage)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongBytes, r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.PageSensitive {
		if r.Cycles != r.Defn.Cycles && !(r.PageFault && r.Cycles == r.Defn.Cycles+1) {
			return curated.Errorf(WrongCyclesPF,
				uint8(r.Defn.OpCode),
				r.Defn.Operator,
				r.Cycles,
				r.Defn.Cycles,
				r.Defn.Cycles+1)
		}
	} else if r.Cycles != r.Defn.Cycles {
		return curated.Errorf(WrongCycles,
			uint8(r.Defn.OpCode),
			r.Defn.Operator,
			r.Cycles,
			r.Defn.Cycles)
	}

	return nil
}
