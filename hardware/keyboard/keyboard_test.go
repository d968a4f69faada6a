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

package keyboard_test

import (
	"testing"

	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/test"
)

func TestMatrix(t *testing.T) {
	test.ExpectEquality(t, keyboard.KeyShift.Row(), 0)
	test.ExpectEquality(t, keyboard.KeyShift.Col(), 0)
	test.ExpectEquality(t, keyboard.KeyC.Row(), 0)
	test.ExpectEquality(t, keyboard.KeyC.Col(), 4)
	test.ExpectEquality(t, keyboard.Key6.Row(), 4)
	test.ExpectEquality(t, keyboard.Key6.Col(), 4)
	test.ExpectEquality(t, keyboard.KeyEnter.Row(), 6)
	test.ExpectEquality(t, keyboard.KeySpace.Row(), 7)
	test.ExpectEquality(t, keyboard.KeyV.Row(), 7)
	test.ExpectEquality(t, keyboard.KeyV.Col(), 4)
	test.ExpectEquality(t, keyboard.KeySymbolShift.String(), "SYMBOL SHIFT")
}

func TestRows(t *testing.T) {
	kb := keyboard.NewKeyboard()
	for r := 0; r < keyboard.NumRows; r++ {
		test.ExpectEquality(t, kb.Row(r), uint8(0xff), r)
	}

	kb.Press(keyboard.KeyA)
	test.ExpectEquality(t, kb.Row(1), uint8(0xfe))

	kb.Press(keyboard.KeyG)
	test.ExpectEquality(t, kb.Row(1), uint8(0xee))

	kb.Press(keyboard.KeyEnter, keyboard.KeyH)
	test.ExpectEquality(t, kb.Row(6), uint8(0xee))

	kb.Release(keyboard.KeyA)
	test.ExpectEquality(t, kb.Row(1), uint8(0xef))
	test.ExpectEquality(t, kb.String(), "G+ENTER+H")

	kb.Clear()
	test.ExpectEquality(t, kb.Row(1), uint8(0xff))
	test.ExpectEquality(t, kb.Row(6), uint8(0xff))
	test.ExpectEquality(t, kb.String(), "no keys")

	// outside of the matrix
	test.ExpectEquality(t, kb.Row(-1), uint8(0xff))
	test.ExpectEquality(t, kb.Row(8), uint8(0xff))
}

func TestKeypress(t *testing.T) {
	kb := keyboard.NewKeyboard()

	test.ExpectSuccess(t, kb.Keypress('q'))
	test.ExpectEquality(t, kb.String(), "Q")
	kb.Clear()

	test.ExpectSuccess(t, kb.Keypress('Q'))
	test.ExpectEquality(t, kb.String(), "SHIFT+Q")
	kb.Clear()

	test.ExpectSuccess(t, kb.Keypress('7'))
	test.ExpectEquality(t, kb.String(), "7")
	kb.Clear()

	test.ExpectSuccess(t, kb.Keypress('"'))
	test.ExpectEquality(t, kb.String(), "SYMBOL SHIFT+P")
	kb.Clear()

	test.ExpectSuccess(t, kb.Keypress('\n'))
	test.ExpectEquality(t, kb.String(), "ENTER")
	kb.Clear()

	test.ExpectSuccess(t, kb.Keypress('\b'))
	test.ExpectEquality(t, kb.String(), "SHIFT+0")
	kb.Clear()

	test.ExpectFailure(t, kb.Keypress('\t'))
	test.ExpectFailure(t, kb.Keypress('é'))
	test.ExpectEquality(t, kb.String(), "no keys")
}

func TestEveryPrintable(t *testing.T) {
	// every printable ASCII character except backtick can be typed
	for r := rune(' '); r < 0x7f; r++ {
		_, ok := keyboard.Combination(r)
		if r == '`' {
			test.ExpectFailure(t, ok, string(r))
		} else {
			test.ExpectSuccess(t, ok, string(r))
		}
	}
}

func TestTyper(t *testing.T) {
	kb := keyboard.NewKeyboard()
	ty := keyboard.NewTyper(kb)
	test.ExpectFailure(t, ty.Busy())

	ty.Type("a\tB")
	test.ExpectEquality(t, ty.Pending(), 3)

	// press a
	test.ExpectSuccess(t, ty.Step())
	test.ExpectEquality(t, kb.String(), "A")

	// release
	test.ExpectSuccess(t, ty.Step())
	test.ExpectEquality(t, kb.String(), "no keys")

	// tab cannot be typed so B is pressed instead
	test.ExpectSuccess(t, ty.Step())
	test.ExpectEquality(t, kb.String(), "SHIFT+B")
	test.ExpectEquality(t, ty.Pending(), 0)

	// release and finish
	test.ExpectFailure(t, ty.Step())
	test.ExpectEquality(t, kb.String(), "no keys")
	test.ExpectFailure(t, ty.Busy())

	// stepping an idle typer is harmless
	test.ExpectFailure(t, ty.Step())
}

func TestTyperReset(t *testing.T) {
	kb := keyboard.NewKeyboard()
	ty := keyboard.NewTyper(kb)

	ty.Type("words")
	ty.Step()
	test.ExpectSuccess(t, kb.IsDown(keyboard.KeyW))

	ty.Reset()
	test.ExpectFailure(t, ty.Busy())
	test.ExpectFailure(t, kb.IsDown(keyboard.KeyW))
}

func TestTyperLeavesOtherKeys(t *testing.T) {
	kb := keyboard.NewKeyboard()
	ty := keyboard.NewTyper(kb)

	// a key held on the host keyboard while the typer is working
	kb.Press(keyboard.KeySpace)

	ty.Type("q")
	ty.Step()
	test.ExpectEquality(t, kb.String(), "Q+SPACE")

	ty.Step()
	test.ExpectEquality(t, kb.String(), "SPACE")

	ty.Type("w")
	ty.Step()
	ty.Reset()
	test.ExpectEquality(t, kb.String(), "SPACE")
}
