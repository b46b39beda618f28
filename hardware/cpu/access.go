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

import "github.com/jetsetilly/gopher6502/curated"

// cycle ends the current cycle. the cycle count in LastResult is incremented
// before the callback is run so that the callback sees the correct count.
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val := mc.mem.Read(address)

	// +1 cycle
	err := mc.cycle()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// phantomRead reads from the address and discards the value. the 6502 reads
// from memory on every cycle, even when it has no use for the data.
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) phantomRead(address uint16) error {
	_, err := mc.read8Bit(address)
	return err
}

// write8Bit writes 8 bits to the specified address.
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	mc.mem.Write(address, value)

	// +1 cycle
	return mc.cycle()
}

// read16BitZeroPage returns the 16bit value from the specified zero-page
// address. the high byte is read from the next address in the zero page,
// wrapping from 0xff to 0x00.
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address))
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(uint16(address + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	v := mc.mem.Read(mc.PC.Address())

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		// look up definition. a nil entry is dealt with after the cycle has
		// completed
		mc.LastResult.Defn = mc.instructions[v]

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	err := mc.cycle()
	if err != nil {
		return err
	}

	if effect == newOpcode && mc.LastResult.Defn == nil {
		return curated.Errorf(UnimplementedOpcode, v, mc.LastResult.Address)
	}

	return nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() error {
	// +1 cycle
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.read8BitPC(hiNibble)
}
