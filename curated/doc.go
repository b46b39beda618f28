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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is remembered and is what distinguishes one curated error from
// another. For example:
//
//	const unknown = "cpu: unimplemented opcode (%#02x)"
//
//	e := curated.Errorf(unknown, 0xff)
//
//	if curated.Is(e, unknown) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. A chain is made by using a curated error as one of the
// placeholder values of another curated error:
//
//	f := curated.Errorf("script: %v", e)
//
//	curated.Has(f, unknown) // true
//	curated.Is(f, unknown)  // false
//
// The Error() function normalises the chain so that it does not contain
// duplicate adjacent parts. Chains are thought of as parts separated by the
// sub-string ": " and so the following will print "cpu: halted" and not
// "cpu: cpu: halted"
//
//	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: halted"))
//	fmt.Println(e)
//
// There is no special provision for sentinel errors. Patterns that are to be
// tested for should be stored as exported string constants.
package curated
