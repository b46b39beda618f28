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

// Package disassembly decodes the instructions in memory into a textual form.
//
// Decoding does not require a CPU and has no effect on the state of memory.
// Every address is decoded as though it is the start of an instruction, so
// the caller must take care to start from a meaningful address:
//
//	e := disassembly.Disassemble(mem, 0xfffc)
//	fmt.Println(e)
//
// Unimplemented opcodes are decoded as a single byte entry with an operator
// of "???".
package disassembly
