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

// OpCode is the first byte of an instruction.
type OpCode uint8

// List of implemented opcodes.
const (
	LdaImmediate       OpCode = 0xa9
	LdaZeroPage        OpCode = 0xa5
	LdaZeroPageX       OpCode = 0xb5
	LdaAbsolute        OpCode = 0xad
	LdaAbsoluteX       OpCode = 0xbd
	LdaAbsoluteY       OpCode = 0xb9
	LdaIndexedIndirect OpCode = 0xa1
	LdaIndirectIndexed OpCode = 0xb1
	LdxImmediate       OpCode = 0xa2
	LdxZeroPage        OpCode = 0xa6
	LdxZeroPageY       OpCode = 0xb6
	LdxAbsolute        OpCode = 0xae
	LdxAbsoluteY       OpCode = 0xbe
	LdyImmediate       OpCode = 0xa0
	LdyZeroPage        OpCode = 0xa4
	LdyZeroPageX       OpCode = 0xb4
	LdyAbsolute        OpCode = 0xac
	LdyAbsoluteX       OpCode = 0xbc
	StaZeroPage        OpCode = 0x85
	StaAbsolute        OpCode = 0x8d
	StxZeroPage        OpCode = 0x86
	StxAbsolute        OpCode = 0x8e
	StyZeroPage        OpCode = 0x84
	StyAbsolute        OpCode = 0x8c
	JsrAbsolute        OpCode = 0x20
)
