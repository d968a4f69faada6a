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

package keyboard

import (
	"fmt"
	"strings"
)

// NumRows and NumCols describe the size of the keyboard matrix.
const (
	NumRows = 8
	NumCols = 5
)

// Key identifies a single key in the matrix. The value of a Key is its row
// multiplied by NumCols plus its column.
type Key int

// List of valid keys, in matrix order.
const (
	KeyShift Key = iota
	KeySymbolShift
	KeyZ
	KeyX
	KeyC

	KeyA
	KeyS
	KeyD
	KeyF
	KeyG

	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT

	Key1
	Key2
	Key3
	Key4
	Key5

	Key0
	Key9
	Key8
	Key7
	Key6

	KeyP
	KeyO
	KeyI
	KeyU
	KeyY

	KeyEnter
	KeyL
	KeyK
	KeyJ
	KeyH

	KeySpace
	KeyM
	KeyN
	KeyB
	KeyV

	numKeys
)

var keyNames = [numKeys]string{
	"SHIFT", "SYMBOL SHIFT", "Z", "X", "C",
	"A", "S", "D", "F", "G",
	"Q", "W", "E", "R", "T",
	"1", "2", "3", "4", "5",
	"0", "9", "8", "7", "6",
	"P", "O", "I", "U", "Y",
	"ENTER", "L", "K", "J", "H",
	"SPACE", "M", "N", "B", "V",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return keyNames[k]
}

// Row returns the matrix row of the key.
func (k Key) Row() int {
	return int(k) / NumCols
}

// Col returns the matrix column of the key.
func (k Key) Col() int {
	return int(k) % NumCols
}

// Keyboard is the state of the key matrix.
type Keyboard struct {
	// one bit per column. a set bit means the key is down
	down [NumRows]uint8
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. All keys are up.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (kb *Keyboard) String() string {
	var s []string
	for k := Key(0); k < numKeys; k++ {
		if kb.IsDown(k) {
			s = append(s, k.String())
		}
	}
	if len(s) == 0 {
		return "no keys"
	}
	return strings.Join(s, "+")
}

// Press the keys. Invalid keys are ignored.
func (kb *Keyboard) Press(keys ...Key) {
	for _, k := range keys {
		if k >= 0 && k < numKeys {
			kb.down[k.Row()] |= 1 << k.Col()
		}
	}
}

// Release the keys. Invalid keys are ignored.
func (kb *Keyboard) Release(keys ...Key) {
	for _, k := range keys {
		if k >= 0 && k < numKeys {
			kb.down[k.Row()] &^= 1 << k.Col()
		}
	}
}

// Clear releases every key.
func (kb *Keyboard) Clear() {
	kb.down = [NumRows]uint8{}
}

// IsDown returns true if the key is pressed.
func (kb *Keyboard) IsDown(k Key) bool {
	if k < 0 || k >= numKeys {
		return false
	}
	return kb.down[k.Row()]&(1<<k.Col()) != 0
}

// Row returns the state of the row as read by the CPU. Bits for keys that
// are down are cleared. All other bits are set. Rows outside of the matrix
// return 0xff.
func (kb *Keyboard) Row(n int) uint8 {
	if n < 0 || n >= NumRows {
		return 0xff
	}
	return ^kb.down[n]
}

// Keypress presses the combination of keys that produce the character.
// Returns false if the character cannot be typed on the keyboard, in which
// case no key is pressed.
func (kb *Keyboard) Keypress(r rune) bool {
	keys, ok := Combination(r)
	if !ok {
		return false
	}
	kb.Press(keys...)
	return true
}
