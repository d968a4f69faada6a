// This file is part of GopherAce.
//
// GopherAce is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAce is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAce.  If not, see <https://www.gnu.org/licenses/>.

package pacing

// Arms returns the number of times a ticker has been armed.
func (tmr *Timer) Arms() int {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.arms
}

// Measuring returns true if the rate measurement pulse is running.
func (tmr *Timer) Measuring() bool {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.measuring
}
