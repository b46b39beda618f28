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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefinitionTable(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.DemandEquality(t, len(defns), 256)

	var implemented int
	for i, defn := range defns {
		if defn == nil {
			continue
		}
		implemented++

		// every entry is stored at the index of its opcode
		test.ExpectEquality(t, int(defn.OpCode), i)

		// only indexed modes can be page sensitive
		if defn.PageSensitive {
			switch defn.AddressingMode {
			case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
			default:
				t.Errorf("%s: page sensitive definition with mode %s", defn, defn.AddressingMode)
			}
		}

		// store instructions never take longer than their addressing
		if defn.Effect == instructions.Write {
			test.ExpectEquality(t, defn.PageSensitive, false, defn)
		}
	}
	test.ExpectEquality(t, implemented, 25)
}

func TestDefinitionSizes(t *testing.T) {
	defns := instructions.GetDefinitions()

	test.ExpectEquality(t, defns[instructions.LdaImmediate].Bytes, 2)
	test.ExpectEquality(t, defns[instructions.LdaIndirectIndexed].Bytes, 2)
	test.ExpectEquality(t, defns[instructions.LdaAbsoluteY].Bytes, 3)
	test.ExpectEquality(t, defns[instructions.JsrAbsolute].Bytes, 3)
	test.ExpectEquality(t, defns[instructions.JsrAbsolute].Cycles, 6)

	// unimplemented opcode
	test.ExpectEquality(t, defns[0x00] == nil, true)
	test.ExpectEquality(t, defns[0xff] == nil, true)
}

func TestTableIsACopy(t *testing.T) {
	a := instructions.GetDefinitions()
	a[instructions.LdaImmediate].Cycles = 100
	b := instructions.GetDefinitions()
	test.ExpectEquality(t, b[instructions.LdaImmediate].Cycles, 2)
}

func TestOperatorStrings(t *testing.T) {
	test.ExpectEquality(t, instructions.Lda.String(), "LDA")
	test.ExpectEquality(t, instructions.Jsr.String(), "JSR")
	test.ExpectEquality(t, instructions.ZeroPageIndexedY.String(), "ZeroPageIndexedY")
}
