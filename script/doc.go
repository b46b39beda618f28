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

// Package script runs Lua scripts against a CPU and Memory pair. Scripts are
// useful for setting up memory, running the CPU and checking the results
// without recompiling the host program.
//
// The following functions are available to scripts:
//
//	reset()                 reset the CPU and clear memory
//	vector()                load the PC from the reset vector
//	poke(address, value)    write a byte to memory
//	peek(address)           read a byte from memory
//	pokew(address, value)   write a little-endian word to memory
//	peekw(address)          read a little-endian word from memory
//	execute(cycles)         run the CPU for the number of cycles. returns the number of cycles used
//	step()                  run a single instruction. returns the number of cycles used
//	reg(name)               value of register A, X, Y, PC or SP
//	setreg(name, value)     set value of register A, X, Y, PC or SP
//	flag(name)              state of flag C, Z, I, D, B, V or N
//	setflag(name, bool)     set state of flag
//	disasm(address)         disassembly of the instruction at address
//	log(message)            add message to the central log
//
// An error in the CPU, such as an unimplemented opcode, is raised as a Lua
// error and can be caught with pcall().
package script
