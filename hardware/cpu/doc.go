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

// Package cpu emulates the instruction execution core of the 6502
// microprocessor. Like all 8-bit processors of the era, the 6502 executes
// instructions according to the single byte value read from an address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The instruction definition for that
// opcode is then used to move execution of the program forward.
//
// Only a subset of the instruction set is implemented: the register loads
// (LDA, LDX, LDY), the register stores (STA, STX, STY) and JSR. Executing any
// other opcode results in an UnimplementedOpcode error.
//
// Memory is owned by the caller and is passed to the CPU for the duration of
// each call. The CPU holds no reference to memory between calls.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its second argument is a callback function to be called at every cycle
// boundary of the instruction.
//
// Let's assume mem is an instance of the cpubus.Memory interface loaded with
// 6502 instructions.
//
//	mc := cpu.NewCPU(nil)
//	mc.Reset(mem)
//
//	numCycles := 0
//
//	for {
//		err := mc.ExecuteInstruction(mem, func() error {
//			numCycles++
//			return nil
//		})
//		if err != nil {
//			break
//		}
//	}
//
// The Execute() function is built on ExecuteInstruction() and runs whole
// instructions until a cycle budget has been spent. The final instruction
// always completes so the number of cycles used can be more than the number
// requested.
//
// The LastResult field can be probed for information about the last
// instruction executed, or about the current instruction being executed if
// accessed from ExecuteInstruction()'s callback function. See the execution
// package for more information.
package cpu
