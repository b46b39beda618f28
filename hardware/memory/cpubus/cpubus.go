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

// Package cpubus defines the interfaces through which the CPU sees memory.
//
// The CPU reads through a Reader when it does not need to change memory, for
// example when loading the program counter from a vector. Instruction
// execution requires the Memory interface.
package cpubus

// Reset is the address of the reset vector.
const Reset = uint16(0xfffc)

// Reader is the read-only view of memory.
type Reader interface {
	Read(address uint16) uint8
}

// Memory is the mutable view of memory as seen by the CPU. Initialise() fills
// the entire address space with zero.
type Memory interface {
	Reader
	Write(address uint16, data uint8)
	Initialise()
}
