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

package dump_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/dump"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

func TestSnapshot(t *testing.T) {
	mc := cpu.NewCPU(nil)
	mem := memory.NewMemory()
	mc.Reset(mem)

	s := dump.NewSnapshot(mc)
	test.ExpectEquality(t, s.Registers.PC, uint16(0xfffc))
	test.ExpectEquality(t, s.Registers.Status, "nv-bdizc")
	test.ExpectSuccess(t, s.Instruction == nil)

	mem.Poke(0xfffc, 0xa0)
	mem.Poke(0xfffd, 0x00)
	_, err := mc.Execute(2, mem)
	test.DemandSuccess(t, err)

	s = dump.NewSnapshot(mc)
	test.ExpectEquality(t, s.Registers.Status, "nv-bdiZc")
	test.DemandSuccess(t, s.Instruction != nil)
	test.ExpectEquality(t, s.Instruction.Operator, "LDY")
	test.ExpectEquality(t, s.Instruction.Cycles, 2)
	test.ExpectEquality(t, s.Instruction.Final, true)
}

func TestState(t *testing.T) {
	mc := cpu.NewCPU(nil)
	mc.Reset(memory.NewMemory())

	w := &strings.Builder{}
	dump.State(w, mc)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
