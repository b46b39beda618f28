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
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// operator performs an instruction after the addressing mode has been
// resolved. value is only meaningful for read instructions.
type operator func(mc *CPU, address uint16, value uint8) error

// selector chooses one of the general purpose registers of the CPU.
type selector func(mc *CPU) *registers.Register

func accumulator(mc *CPU) *registers.Register { return &mc.A }
func indexX(mc *CPU) *registers.Register      { return &mc.X }
func indexY(mc *CPU) *registers.Register      { return &mc.Y }

func newOperators() map[instructions.Operator]operator {
	return map[instructions.Operator]operator{
		instructions.Lda: load(accumulator),
		instructions.Ldx: load(indexX),
		instructions.Ldy: load(indexY),
		instructions.Sta: store(accumulator),
		instructions.Stx: store(indexX),
		instructions.Sty: store(indexY),
		instructions.Jsr: jsr,
	}
}

// load the value into the selected register and update the zero and
// negative flags. no other flag is affected.
func load(reg selector) operator {
	return func(mc *CPU, _ uint16, value uint8) error {
		r := reg(mc)
		r.Load(value)
		mc.Status.Zero = r.IsZero()
		mc.Status.Negative = r.IsNegative()
		return nil
	}
}

// store the selected register at the address. no flag is affected.
func store(reg selector) operator {
	return func(mc *CPU, address uint16, _ uint8) error {
		// +1 cycle
		return mc.write8Bit(address, reg(mc).Value())
	}
}

// jsr writes the address of the last byte of the instruction to the stack and
// jumps to the operand.
func jsr(mc *CPU, _ uint16, _ uint8) error {
	// +1 cycle
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}

	// the current value of the PC is now pointing at the last byte of the
	// instruction. this is the value that is written to the stack

	// internal operation
	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return err
	}

	ret := mc.PC.Address()

	if mc.hardwareStack() {
		// push MSB of PC onto stack, and decrement SP
		// +1 cycle
		err = mc.write8Bit(mc.SP.PageAddress(), uint8(ret>>8))
		if err != nil {
			return err
		}
		mc.SP.Decrement()

		// push LSB of PC onto stack, and decrement SP
		// +1 cycle
		err = mc.write8Bit(mc.SP.PageAddress(), uint8(ret))
		if err != nil {
			return err
		}
		mc.SP.Decrement()
	} else {
		// little-endian word at the stack pointer
		// +2 cycles
		err = mc.write8Bit(mc.SP.Address(), uint8(ret))
		if err != nil {
			return err
		}
		err = mc.write8Bit(mc.SP.Address()+1, uint8(ret>>8))
		if err != nil {
			return err
		}
		mc.SP.Increment(1)
	}

	// +1 cycle
	err = mc.read8BitPC(hiNibble)
	if err != nil {
		return err
	}

	mc.PC.Load(mc.LastResult.InstructionData)

	return nil
}
