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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/clocks"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// Memory is the 64KB address space.
type Memory struct {
	data [memorymap.Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// Initialise fills memory with zero.
func (mem *Memory) Initialise() {
	clear(mem.data[:])
}

// Read implements the cpubus.Reader interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Peek is the debugger interface to memory. It is the same as Read().
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke is the debugger interface to memory. It is the same as Write().
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// ReadWord reads the little-endian word at address through any cpubus.Reader
// and charges the budget with two cycles. The high byte is read from
// address+1, which wraps at the top of memory. A nil budget is not charged.
func ReadWord(mem cpubus.Reader, b *clocks.Budget, address uint16) uint16 {
	lo := uint16(mem.Read(address))
	hi := uint16(mem.Read(address + 1))
	if b != nil {
		b.Charge(2)
	}
	return lo | hi<<8
}

// WriteWord writes value as a little-endian word at address through any
// cpubus.Memory and charges the budget with two cycles.
func WriteWord(mem cpubus.Memory, b *clocks.Budget, value uint16, address uint16) {
	mem.Write(address, uint8(value))
	mem.Write(address+1, uint8(value>>8))
	if b != nil {
		b.Charge(2)
	}
}

// ReadWord is the method form of the package level ReadWord() function.
func (mem *Memory) ReadWord(b *clocks.Budget, address uint16) uint16 {
	return ReadWord(mem, b, address)
}

// WriteWord is the method form of the package level WriteWord() function.
func (mem *Memory) WriteWord(b *clocks.Budget, value uint16, address uint16) {
	WriteWord(mem, b, value, address)
}

// Dump returns a hex dump of the memory between the two addresses
// (inclusive). Each line shows sixteen bytes.
func (mem *Memory) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	from &= 0xfff0
	for a := uint32(from); a <= uint32(to); a += 16 {
		s.WriteString(fmt.Sprintf("%04x:", a))
		for i := uint32(0); i < 16; i++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+i]))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// String returns a dump of the zero page and the stack page.
func (mem *Memory) String() string {
	return mem.Dump(memorymap.OriginZeroPage, memorymap.MemtopStack)
}
