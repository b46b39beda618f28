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

// Package memorymap defines the named areas of the 6502 address space and
// the helper functions for reasoning about pages.
//
// The 6502 address space is divided into 256 pages of 256 bytes. The first
// page is the zero page, which is reachable with single byte addresses. The
// second page is the stack page.
package memorymap

// Size of the address space.
const Size = 0x10000

// Bounds of the named areas of memory.
const (
	OriginZeroPage = uint16(0x0000)
	MemtopZeroPage = uint16(0x00ff)
	OriginStack    = uint16(0x0100)
	MemtopStack    = uint16(0x01ff)
	Memtop         = uint16(0xffff)
)

// PageSize is the number of bytes in a single page.
const PageSize = 0x100

// Page returns the page number of the address.
func Page(address uint16) uint8 {
	return uint8(address >> 8)
}

// PageCrossed returns true if the two addresses are in different pages. This
// is the condition for the extra cycle in the indexed addressing modes.
func PageCrossed(a uint16, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// IsZeroPage returns true if the address is in the zero page.
func IsZeroPage(address uint16) bool {
	return address <= MemtopZeroPage
}
