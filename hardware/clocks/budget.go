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

package clocks

import "time"

// Budget is a signed count of cycles remaining. An instruction that is started
// while the budget is positive always completes, so the budget can go
// negative.
type Budget int

// NewBudget returns a Budget of n cycles.
func NewBudget(n int) *Budget {
	b := Budget(n)
	return &b
}

// Charge the budget with n cycles.
func (b *Budget) Charge(n int) {
	*b -= Budget(n)
}

// Exhausted returns true if there are no cycles remaining.
func (b *Budget) Exhausted() bool {
	return *b <= 0
}

// Remaining returns the number of cycles remaining. The value will be
// negative if the budget has been overspent.
func (b *Budget) Remaining() int {
	return int(*b)
}

// Duration returns the time taken by the number of cycles at the clock rate
// (in MHz).
func Duration(cycles int, mhz float64) time.Duration {
	if mhz <= 0 {
		return 0
	}
	return time.Duration(float64(cycles) / mhz * float64(time.Microsecond))
}
