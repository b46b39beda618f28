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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         OpCode
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		uint8(defn.OpCode), defn.Operator, defn.Bytes, defn.Cycles,
		defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// the list of definitions. the number of bytes is always one plus the number
// of operand bytes for the addressing mode and so is filled in by
// GetDefinitions()
var definitions = []Definition{
	{OpCode: LdaImmediate, Operator: Lda, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: LdaZeroPage, Operator: Lda, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: LdaZeroPageX, Operator: Lda, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: LdaAbsolute, Operator: Lda, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: LdaAbsoluteX, Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: LdaAbsoluteY, Operator: Lda, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: LdaIndexedIndirect, Operator: Lda, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	{OpCode: LdaIndirectIndexed, Operator: Lda, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},

	{OpCode: LdxImmediate, Operator: Ldx, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: LdxZeroPage, Operator: Ldx, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: LdxZeroPageY, Operator: Ldx, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	{OpCode: LdxAbsolute, Operator: Ldx, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: LdxAbsoluteY, Operator: Ldx, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},

	{OpCode: LdyImmediate, Operator: Ldy, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: LdyZeroPage, Operator: Ldy, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: LdyZeroPageX, Operator: Ldy, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: LdyAbsolute, Operator: Ldy, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	{OpCode: LdyAbsoluteX, Operator: Ldy, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},

	{OpCode: StaZeroPage, Operator: Sta, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: StaAbsolute, Operator: Sta, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: StxZeroPage, Operator: Stx, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: StxAbsolute, Operator: Stx, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	{OpCode: StyZeroPage, Operator: Sty, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: StyAbsolute, Operator: Sty, Cycles: 4, AddressingMode: Absolute, Effect: Write},

	{OpCode: JsrAbsolute, Operator: Jsr, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
}

// GetDefinitions returns the table of instruction definitions indexed by
// opcode. Unimplemented opcodes have a nil entry. The table is created anew on
// every call and can be modified by the caller without consequence.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		defn := definitions[i]
		defn.Bytes = 1 + defn.AddressingMode.OperandBytes()
		table[defn.OpCode] = &defn
	}
	return table
}
