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

// Package memory implements the flat 64KB address space of a 6502 system.
//
// Every address is readable and writable and there is no mirroring. The
// Memory type implements the cpubus.Memory interface so that it can be
// attached to the CPU.
//
// The ReadWord() and WriteWord() functions access little-endian words and
// charge a cycle budget with one cycle for each byte transferred.
package memory
