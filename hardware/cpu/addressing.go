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

package cpu

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// resolveAddress reads the operand of the instruction according to its
// addressing mode and returns the effective address. the operand is always
// stored in LastResult.InstructionData.
//
// for immediate mode the operand is the value to use in the instruction and
// the returned address is meaningless.
//
// JSR reads its operand in stages, interleaved with the stack writes, and so
// nothing is done here for subroutine instructions.
func (mc *CPU) resolveAddress(defn *instructions.Definition) (uint16, error) {
	var address uint16
	var err error

	switch defn.AddressingMode {
	case instructions.Immediate:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, err
		}

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, err
		}
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			err = mc.read16BitPC()
			if err != nil {
				return 0, err
			}
			address = mc.LastResult.InstructionData
		}

	case instructions.ZeroPageIndexedX:
		address, err = mc.zeroPageIndexed(mc.X.Value())
		if err != nil {
			return 0, err
		}

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX ZeroPage,y
		address, err = mc.zeroPageIndexed(mc.Y.Value())
		if err != nil {
			return 0, err
		}

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address, err = mc.indexed(defn, mc.LastResult.InstructionData, mc.X.Address())
		if err != nil {
			return 0, err
		}

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address, err = mc.indexed(defn, mc.LastResult.InstructionData, mc.Y.Address())
		if err != nil {
			return 0, err
		}

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, err
		}
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		err = mc.phantomRead(uint16(indirectAddress))
		if err != nil {
			return 0, err
		}

		// using 8bit addition so that the indexed address does not extend past
		// the zero page
		pointer := indirectAddress + mc.X.Value()
		if uint16(indirectAddress)+mc.X.Address() > uint16(memorymap.MemtopZeroPage) {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		if pointer == uint8(memorymap.MemtopZeroPage) {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		// +2 cycles
		address, err = mc.read16BitZeroPage(pointer)
		if err != nil {
			return 0, err
		}

		// never a page fault wth pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, err
		}
		pointer := uint8(mc.LastResult.InstructionData)
		if pointer == uint8(memorymap.MemtopZeroPage) {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		// +2 cycles
		var indexedAddress uint16
		indexedAddress, err = mc.read16BitZeroPage(pointer)
		if err != nil {
			return 0, err
		}

		address, err = mc.indexed(defn, indexedAddress, mc.Y.Address())
		if err != nil {
			return 0, err
		}

	default:
		return 0, curated.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	return address, nil
}

// zeroPageIndexed reads a zero page operand and adds the index to it. the
// result wraps within the zero page.
//
// +2 cycles
func (mc *CPU) zeroPageIndexed(index uint8) (uint16, error) {
	// +1 cycle
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return 0, err
	}
	base := uint8(mc.LastResult.InstructionData)

	// phantom read from base address before index adjustment
	// +1 cycle
	err = mc.phantomRead(uint16(base))
	if err != nil {
		return 0, err
	}

	// make a note of zero page index bug
	if uint16(base)+uint16(index) > uint16(memorymap.MemtopZeroPage) {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return uint16(base + index), nil
}

// indexed adds the index to the base address. if the result is in a
// different page to the base address and the instruction is page sensitive
// then an extra cycle is used.
//
// +0 or +1 cycle
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint16) (uint16, error) {
	address := base + index

	if defn.PageSensitive && memorymap.PageCrossed(base, address) {
		mc.LastResult.PageFault = true

		// the first read is from the un-carried address
		// +1 cycle
		err := mc.phantomRead((base & 0xff00) | (address & 0x00ff))
		if err != nil {
			return 0, err
		}
	}

	return address, nil
}
