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

// Package registers implements the three types of register found in the 6502.
// The general purpose registers A, X and Y are implemented by the Register
// type. The program counter and the stack pointer are 16 bit registers and
// are implemented by ProgramCounter and StackPointer. The flags are kept in
// the StatusRegister.
//
// None of the register types change the status register. Updating flags is
// done by the CPU after the register has been loaded. For instance, in the
// CPU we might have this sequence of function calls:
//
//	a.Load(0x80)
//	sr.Zero = a.IsZero()
//	sr.Negative = a.IsNegative()
//
// In this case, the zero flag in the status register will be false and the
// negative flag will be true.
package registers
