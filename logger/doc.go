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

// Package logger is the central log for the emulation. Log entries are made
// with a tag and a detail:
//
//	logger.Log(logger.Allow, "cpu", "reset from vector")
//
// The detail can be a string, an error or any type that implements the
// fmt.Stringer interface. Consecutive identical entries are collapsed into a
// single entry with a repeat count.
//
// The Permission argument allows the environment making the request to veto
// the new entry. For most purposes, logger.Allow is the correct value.
package logger
