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

// Package cpu defines the interfaces between the host harness and a CPU
// core. The core reads and writes memory through the Memory interface and
// performs port I/O through the IO interface. Once per machine interrupt the
// core calls the Interrupter, which is where the host does its housekeeping.
//
// A core returns from Run() when the context is cancelled or when the
// Interrupter returns an error. Cancellation is a normal exit and Run()
// returns nil.
//
// The Halted type is a core that never executes an instruction. It models a
// processor that has executed HALT with interrupts enabled, which is enough
// to drive the host harness: pacing, display refresh and tape polling all
// happen at the correct rate.
package cpu
