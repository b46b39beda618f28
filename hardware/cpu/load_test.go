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

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestLoadImmediate(t *testing.T) {
	tests := []struct {
		name   string
		opcode instructions.OpCode
		reg    selector
	}{
		{name: "LDA", opcode: instructions.LdaImmediate, reg: selectA},
		{name: "LDX", opcode: instructions.LdxImmediate, reg: selectX},
		{name: "LDY", opcode: instructions.LdyImmediate, reg: selectY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, flags := range []bool{false, true} {
				mc, mem := newTestCPU(t)
				before := setUntouchedFlags(mc, flags)

				putInstructions(mem, origin, uint8(tt.opcode), 0x84, uint8(tt.opcode), 0x00)

				step(t, mc, mem)
				test.ExpectEquality(t, mc.LastResult.Cycles, 2)
				test.ExpectEquality(t, tt.reg(mc).Value(), uint8(0x84))
				test.ExpectEquality(t, mc.Status.Negative, true)
				test.ExpectEquality(t, mc.Status.Zero, false)
				test.ExpectEquality(t, getUntouchedFlags(mc), before)

				step(t, mc, mem)
				test.ExpectEquality(t, tt.reg(mc).Value(), uint8(0x00))
				test.ExpectEquality(t, mc.Status.Negative, false)
				test.ExpectEquality(t, mc.Status.Zero, true)
				test.ExpectEquality(t, getUntouchedFlags(mc), before)

				test.ExpectEquality(t, mc.PC.Address(), origin+4)
			}
		})
	}
}

func TestLoadZeroPage(t *testing.T) {
	tests := []struct {
		name   string
		opcode instructions.OpCode
		reg    selector
	}{
		{name: "LDA", opcode: instructions.LdaZeroPage, reg: selectA},
		{name: "LDX", opcode: instructions.LdxZeroPage, reg: selectX},
		{name: "LDY", opcode: instructions.LdyZeroPage, reg: selectY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, mem := newTestCPU(t)
			before := setUntouchedFlags(mc, true)

			mem.Write(0x0042, 0x37)
			putInstructions(mem, origin, uint8(tt.opcode), 0x42)

			step(t, mc, mem)
			test.ExpectEquality(t, mc.LastResult.Cycles, 3)
			test.ExpectEquality(t, tt.reg(mc).Value(), uint8(0x37))
			test.ExpectEquality(t, mc.Status.Negative, false)
			test.ExpectEquality(t, mc.Status.Zero, false)
			test.ExpectEquality(t, getUntouchedFlags(mc), before)
		})
	}
}

func TestLoadZeroPageIndexed(t *testing.T) {
	tests := []struct {
		name   string
		opcode instructions.OpCode
		reg    selector
		index  selector
	}{
		{name: "LDA zpg,X", opcode: instructions.LdaZeroPageX, reg: selectA, index: selectX},
		{name: "LDX zpg,Y", opcode: instructions.LdxZeroPageY, reg: selectX, index: selectY},
		{name: "LDY zpg,X", opcode: instructions.LdyZeroPageX, reg: selectY, index: selectX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, mem := newTestCPU(t)

			mem.Write(0x0047, 0x37)
			putInstructions(mem, origin, uint8(tt.opcode), 0x42)
			tt.index(mc).Load(5)

			step(t, mc, mem)
			test.ExpectEquality(t, mc.LastResult.Cycles, 4)
			test.ExpectEquality(t, tt.reg(mc).Value(), uint8(0x37))
			test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
		})

		t.Run(tt.name+" wraps", func(t *testing.T) {
			mc, mem := newTestCPU(t)

			// the effective address must be 0x7f and not 0x17f
			mem.Write(0x007f, 0x37)
			mem.Write(0x017f, 0x99)
			putInstructions(mem, origin, uint8(tt.opcode), 0x80)
			tt.index(mc).Load(0xff)

			step(t, mc, mem)
			test.ExpectEquality(t, mc.LastResult.Cycles, 4)
			test.ExpectEquality(t, tt.reg(mc).Value(), uint8(0x37))
			test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)
		})
	}
}

func TestLoadAbsolute(t *testing.T) {
	tests := []struct {
		name   string
		opcode instructions.OpCode
		reg    selector
	}{
		{name: "LDA", opcode: instructions.LdaAbsolute, reg: selectA},
		{name: "LDX", opcode: instructions.LdxAbsolute, reg: selectX},
		{name: "LDY", opcode: instructions.LdyAbsolute, reg: selectY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc, mem := newTestCPU(t)
			before := setUntouchedFlags(mc, true)

			mem.Write(0x4480, 0x80)
			putInstructions(mem, origin, uint8(tt.opcode), 0x80, 0x44)

			step(t, mc, mem)
			test.ExpectEquality(t, mc.LastResult.Cycles, 4)
			test.ExpectEquality(t, mc.LastResult.InstructionData, uint16(0x4480))
			test.ExpectEquality(t, tt.reg(mc).Value(), uint8(0x80))
			test.ExpectEquality(t, mc.Status.Negative, true)
			test.ExpectEquality(t, getUntouchedFlags(mc), before)
			test.ExpectEquality(t, mc.PC.Address(), origin+3)
		})
	}
}

func TestLoadAbsoluteIndexed(t *testing.T) {
	registers := []struct {
		name   string
		opcode instructions.OpCode
		reg    selector
		index  selector
	}{
		{name: "LDA abs,X", opcode: instructions.LdaAbsoluteX, reg: selectA, index: selectX},
		{name: "LDA abs,Y", opcode: instructions.LdaAbsoluteY, reg: selectA, index: selectY},
		{name: "LDX abs,Y", opcode: instructions.LdxAbsoluteY, reg: selectX, index: selectY},
		{name: "LDY abs,X", opcode: instructions.LdyAbsoluteX, reg: selectY, index: selectX},
	}

	addresses := []struct {
		name      string
		base      uint16
		index     uint8
		cycles    int
		pageFault bool
	}{
		{name: "same page", base: 0x4480, index: 0x01, cycles: 4},
		{name: "page crossed", base: 0x4402, index: 0xff, cycles: 5, pageFault: true},
		{name: "end of page", base: 0x4400, index: 0xff, cycles: 4},
		{name: "top of memory", base: 0xffff, index: 0x02, cycles: 5, pageFault: true},
	}

	for _, r := range registers {
		for _, a := range addresses {
			t.Run(r.name+" "+a.name, func(t *testing.T) {
				mc, mem := newTestCPU(t)

				effective := a.base + uint16(a.index)
				mem.Write(effective, 0x37)
				putInstructions(mem, origin, uint8(r.opcode), uint8(a.base), uint8(a.base>>8))
				r.index(mc).Load(a.index)

				step(t, mc, mem)
				test.ExpectEquality(t, mc.LastResult.Cycles, a.cycles)
				test.ExpectEquality(t, mc.LastResult.PageFault, a.pageFault)
				test.ExpectEquality(t, r.reg(mc).Value(), uint8(0x37))
			})
		}
	}
}

func TestLoadIndexedIndirect(t *testing.T) {
	mc, mem := newTestCPU(t)
	before := setUntouchedFlags(mc, true)

	// pointer at 0x0006 points to 0x8000
	mem.Write(0x0006, 0x00)
	mem.Write(0x0007, 0x80)
	mem.Write(0x8000, 0x84)
	putInstructions(mem, origin, uint8(instructions.LdaIndexedIndirect), 0x02)
	mc.X.Load(0x04)

	step(t, mc, mem)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x84))
	test.ExpectEquality(t, mc.Status.Negative, true)
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, getUntouchedFlags(mc), before)
}

func TestLoadIndexedIndirectWrap(t *testing.T) {
	mc, mem := newTestCPU(t)

	// pointer is (0x80 + 0xff) & 0xff == 0x7f
	mem.Write(0x007f, 0x00)
	mem.Write(0x0080, 0x80)
	mem.Write(0x8000, 0x37)
	putInstructions(mem, origin, uint8(instructions.LdaIndexedIndirect), 0x80)
	mc.X.Load(0xff)

	step(t, mc, mem)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x37))

	// pointer at 0xff takes its high byte from 0x00
	mc, mem = newTestCPU(t)
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x90)
	mem.Write(0x0100, 0x80)
	mem.Write(0x9000, 0x42)
	putInstructions(mem, origin, uint8(instructions.LdaIndexedIndirect), 0xff)

	step(t, mc, mem)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)
}

func TestLoadIndirectIndexed(t *testing.T) {
	mc, mem := newTestCPU(t)
	before := setUntouchedFlags(mc, false)

	// pointer at 0x0002 points to 0x8000
	mem.Write(0x0002, 0x00)
	mem.Write(0x0003, 0x80)
	mem.Write(0x8004, 0x37)
	putInstructions(mem, origin, uint8(instructions.LdaIndirectIndexed), 0x02)
	mc.Y.Load(0x04)

	step(t, mc, mem)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x37))
	test.ExpectEquality(t, getUntouchedFlags(mc), before)

	// pointer at 0x0002 points to 0x80ff. adding Y crosses into page 0x81
	mc, mem = newTestCPU(t)
	mem.Write(0x0002, 0xff)
	mem.Write(0x0003, 0x80)
	mem.Write(0x8101, 0x00)
	putInstructions(mem, origin, uint8(instructions.LdaIndirectIndexed), 0x02)
	mc.Y.Load(0x02)
	mc.A.Load(0x99)

	step(t, mc, mem)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Status.Zero, true)
}
