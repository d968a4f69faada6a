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

package ports_test

import (
	"testing"

	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/ports"
	"github.com/gopherace/gopherace/test"
)

// distinct value for each row so that row selection can be checked
type rowIdentity struct{}

func (rowIdentity) Row(n int) uint8 {
	return uint8(0xe0 | n)
}

func TestKeyboardRows(t *testing.T) {
	bus := ports.NewBus(rowIdentity{})

	masks := []uint8{0xfe, 0xfd, 0xfb, 0xf7, 0xef, 0xdf, 0xbf, 0x7f}
	for row, m := range masks {
		test.ExpectEquality(t, bus.Read(m, 0xfe), uint8(0xe0|row), m)
	}

	// every other mask returns 0xff
	for h := 0; h < 256; h++ {
		high := uint8(h)
		if _, ok := ports.SelectedRow(high); ok {
			continue
		}
		test.ExpectEquality(t, bus.Read(high, 0xfe), ports.Unmapped, high)
	}
}

func TestSelectedRow(t *testing.T) {
	var selected int
	for h := 0; h < 256; h++ {
		if _, ok := ports.SelectedRow(uint8(h)); ok {
			selected++
		}
	}
	test.ExpectEquality(t, selected, 8)

	row, ok := ports.SelectedRow(0xbf)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, row, 6)

	_, ok = ports.SelectedRow(0xff)
	test.ExpectFailure(t, ok)
	_, ok = ports.SelectedRow(0x00)
	test.ExpectFailure(t, ok)
	_, ok = ports.SelectedRow(0xfc)
	test.ExpectFailure(t, ok)
}

func TestUnmappedPorts(t *testing.T) {
	bus := ports.NewBus(rowIdentity{})
	for l := 0; l < 256; l++ {
		if uint8(l) == ports.KeyboardPort {
			continue
		}
		for _, h := range []uint8{0x00, 0x7f, 0xfe, 0xff} {
			test.ExpectEquality(t, bus.Read(h, uint8(l)), ports.Unmapped, l, h)
		}
	}
}

func TestWrite(t *testing.T) {
	kb := keyboard.NewKeyboard()
	bus := ports.NewBus(kb)
	for l := 0; l < 256; l++ {
		test.ExpectEquality(t, bus.Write(0xfe, uint8(l), 0x55), ports.WriteAck, l)
	}

	// writes have no effect on the keyboard
	test.ExpectEquality(t, bus.Read(0xfe, 0xfe), uint8(0xff))
}

func TestKeyboard(t *testing.T) {
	kb := keyboard.NewKeyboard()
	bus := ports.NewBus(kb)

	kb.Press(keyboard.KeyShift, keyboard.KeyX)
	test.ExpectEquality(t, bus.Read(0xfe, 0xfe), uint8(0xf6))
	test.ExpectEquality(t, bus.Read(0xfd, 0xfe), uint8(0xff))

	kb.Keypress('\n')
	test.ExpectEquality(t, bus.Read(0xbf, 0xfe), uint8(0xfe))
}

func TestAttachReader(t *testing.T) {
	bus := ports.NewBus(rowIdentity{})

	bus.AttachReader(0x01, func(high uint8) uint8 {
		return high ^ 0xff
	})
	test.ExpectEquality(t, bus.Read(0x0f, 0x01), uint8(0xf0))

	bus.AttachReader(0x01, nil)
	test.ExpectEquality(t, bus.Read(0x0f, 0x01), ports.Unmapped)

	// the keyboard port can be removed
	bus.AttachReader(ports.KeyboardPort, nil)
	test.ExpectEquality(t, bus.Read(0xfe, 0xfe), ports.Unmapped)
}
