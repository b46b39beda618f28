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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// Entry is a disassembled instruction. The constituent parts of the
// disassembly are stored as strings, ready for display. It is a representation
// of execution.Result.
type Entry struct {
	// the decoded instruction. Result.Final is always false because the
	// instruction has not been executed
	Result execution.Result

	// the bytes of the instruction
	Bytes []uint8

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// String returns the operator and operand of the entry. For example,
//
//	LDA $4480,X
func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Line returns the address, bytecode, operator and operand of the entry,
// aligned for columnar output.
func (e Entry) Line() string {
	return fmt.Sprintf("%s  %-8s  %s", e.Address, e.Bytecode, e.String())
}

func bytecode(b []uint8) string {
	s := strings.Builder{}
	for i, v := range b {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", v))
	}
	return s.String()
}
