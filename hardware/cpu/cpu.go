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

package cpu

import "context"

// Memory is the view of memory required by a CPU core.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8) bool
}

// IO is the view of the I/O bus required by a CPU core. The high and low
// bytes are those placed on the address bus during the I/O cycle.
type IO interface {
	Read(high uint8, low uint8) uint8
	Write(high uint8, low uint8, value uint8) uint8
}

// Interrupter is called by the core once for every interrupt.
type Interrupter interface {
	Interrupt() error
}

// Tape is the view of the tape deck required by a CPU core that services the
// load and save traps in the firmware. LoadInto copies the next block into
// memory and returns the number of bytes copied. SaveFrom records a block
// taken from memory.
type Tape interface {
	LoadInto(mem Memory, address uint16, length int) (int, error)
	SaveFrom(mem Memory, address uint16, length int) error
}

// Pacer is the view of the pacing timer required by a CPU core.
type Pacer interface {
	Warp() bool
	Wait(ctx context.Context) error
}

// Core is a CPU implementation.
type Core interface {
	Run(ctx context.Context) error
}
