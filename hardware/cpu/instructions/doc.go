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

// Package instructions defines the instruction set understood by the CPU.
//
// Each opcode is described by a Definition. The definitions are held in a
// 256 entry table indexed by opcode, returned by GetDefinitions(). A nil
// entry in the table means that the opcode is not implemented.
//
// The definitions describe the size of an instruction, the minimum number of
// cycles it takes and whether an extra cycle is required when an indexed
// address crosses a page boundary. The execution of an instruction is the
// job of the cpu package.
package instructions
