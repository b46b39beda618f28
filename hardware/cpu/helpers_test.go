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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/test"
)

// origin of test programs that do not need to start at the reset address
const origin = uint16(0x0200)

func putInstructions(mem *memory.Memory, origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

// newTestCPU returns a CPU and memory pair that have been reset and with the
// PC pointing at the origin.
func newTestCPU(t *testing.T) (*cpu.CPU, *memory.Memory) {
	t.Helper()
	mc := cpu.NewCPU(nil)
	mem := memory.NewMemory()
	mc.Reset(mem)
	test.DemandSuccess(t, mc.LoadPC(origin))
	return mc, mem
}

// step executes a single instruction and checks that the result is
// consistent with the instruction definition.
func step(t *testing.T, mc *cpu.CPU, mem *memory.Memory) {
	t.Helper()
	err := mc.ExecuteInstruction(mem, cpu.NilCycleCallback)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
}

// selectors for the general purpose registers
type selector func(mc *cpu.CPU) *registers.Register

func selectA(mc *cpu.CPU) *registers.Register { return &mc.A }
func selectX(mc *cpu.CPU) *registers.Register { return &mc.X }
func selectY(mc *cpu.CPU) *registers.Register { return &mc.Y }

// the five flags that are never changed by load and store instructions
type untouchedFlags struct {
	carry, interrupt, decimal, brk, overflow bool
}

func setUntouchedFlags(mc *cpu.CPU, v bool) untouchedFlags {
	mc.Status.Carry = v
	mc.Status.InterruptDisable = v
	mc.Status.DecimalMode = v
	mc.Status.Break = v
	mc.Status.Overflow = v
	return getUntouchedFlags(mc)
}

func getUntouchedFlags(mc *cpu.CPU) untouchedFlags {
	return untouchedFlags{
		carry:     mc.Status.Carry,
		interrupt: mc.Status.InterruptDisable,
		decimal:   mc.Status.DecimalMode,
		brk:       mc.Status.Break,
		overflow:  mc.Status.Overflow,
	}
}
