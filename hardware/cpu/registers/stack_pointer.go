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

package registers

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// StackPointer is the 16 bit stack register.
//
// The CPU can use the stack in one of two ways. In the simplified form the
// stack pointer is an ordinary 16 bit address that is incremented after a push.
// In the hardware form only the low byte is significant and the stack
// occupies page one, growing downwards.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#04x", sp.value)
}

// Address returns the value of the stack pointer.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the stack pointer
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Increment the stack pointer by n. The value wraps at 0xffff.
func (sp *StackPointer) Increment(n uint16) {
	sp.value += n
}

// PageAddress is the address in the stack page indicated by the low byte of
// the stack pointer.
func (sp StackPointer) PageAddress() uint16 {
	return memorymap.OriginStack | (sp.value & 0x00ff)
}

// Decrement the low byte of the stack pointer, wrapping within the stack page.
func (sp *StackPointer) Decrement() {
	sp.value = memorymap.OriginStack | ((sp.value - 1) & 0x00ff)
}
