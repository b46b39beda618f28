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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions record a test error and allow the test to
// continue. The Demand*() functions are fatal to the test and should be used
// when the value being tested is relied upon by the remainder of the test.
//
// Success and failure are decided generically according to the type of the
// value. The documentation for ExpectSuccess() describes the supported types.
// It is worth noting how nil is treated: nil is a success value because a nil
// error indicates success. Consequently ExpectFailure(nil) will fail.
package test
