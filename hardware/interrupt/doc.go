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

// Package interrupt turns the interrupts of the emulated machine into host
// side housekeeping.
//
// The Coordinator is called once for every interrupt raised by the CPU. Every
// Nth call, where N is the divisor, the tape is polled. On any call where the
// pacing tick is pending the display is refreshed and host events are polled
// before the tick is cleared.
//
// With the default divisor of 4 and a machine interrupt rate of 50Hz, the
// tape is polled at 12.5Hz.
package interrupt
