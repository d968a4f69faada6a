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

// Package pacing provides the real-time tick that throttles the emulated CPU
// and triggers display refresh.
//
// A goroutine owned by the Timer sets a sticky flag once per period. The flag
// is a boolean and not a counter, so if the consumer falls behind then
// overruns collapse into a single pending tick. The consumer, usually the
// interrupt coordinator, checks the flag with Pending() and clears it with
// Clear().
//
// Warp mode is advisory. Setting it never touches the underlying ticker; the
// CPU loop checks Warp() to decide whether to Wait() for the next tick.
package pacing
