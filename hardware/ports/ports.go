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

package ports

import "math/bits"

// KeyboardPort is the low byte of the keyboard's port address.
const KeyboardPort = uint8(0xfe)

// Unmapped is the value returned by a read of an unmapped port or of an
// unselected keyboard row.
const Unmapped = uint8(0xff)

// WriteAck is the value returned by every write.
const WriteAck = uint8(0x00)

// Keyboard is the view of the keyboard matrix required by the Bus.
type Keyboard interface {
	Row(n int) uint8
}

// Reader decodes the high byte of an I/O read request for a port.
type Reader func(high uint8) uint8

// Bus is the I/O bus of the emulated machine.
type Bus struct {
	readers [256]Reader
}

// NewBus is the preferred method of initialisation for the Bus type. The
// keyboard is attached to KeyboardPort.
func NewBus(kb Keyboard) *Bus {
	bus := &Bus{}
	bus.AttachReader(KeyboardPort, keyboardReader(kb))
	return bus
}

// AttachReader places a Reader in the decode table for the port. A nil
// Reader removes the port from the table.
func (bus *Bus) AttachReader(low uint8, r Reader) {
	bus.readers[low] = r
}

// Read the port. The low byte selects the port and the high byte is decoded
// by the port's Reader.
func (bus *Bus) Read(high uint8, low uint8) uint8 {
	if r := bus.readers[low]; r != nil {
		return r(high)
	}
	return Unmapped
}

// Write to the port. Writes have no effect.
func (bus *Bus) Write(high uint8, low uint8, value uint8) uint8 {
	return WriteAck
}

// SelectedRow interprets the high byte as an active low row mask. Exactly one
// bit must be clear for a row to be selected.
func SelectedRow(high uint8) (int, bool) {
	sel := ^high
	if sel == 0 || sel&(sel-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros8(sel), true
}

func keyboardReader(kb Keyboard) Reader {
	return func(high uint8) uint8 {
		row, ok := SelectedRow(high)
		if !ok {
			return Unmapped
		}
		return kb.Row(row)
	}
}
