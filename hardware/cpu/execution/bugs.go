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

package execution

// Bug describes the address wrapping behaviour of the 6502 that can catch
// people out. A Bug is noted in the Result when the behaviour is triggered.
type Bug string

// List of address wrapping behaviours.
const (
	NoBug                        Bug = ""
	ZeroPageIndexBug             Bug = "zero page index bug"
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"
)
