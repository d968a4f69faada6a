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

package sdlace

import (
	"strings"
	"unicode/utf8"

	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/veandco/go-sdl2/sdl"
)

// host keys with names longer than one character. keys with single character
// names are looked up with keyboard.Combination()
var namedKeys = map[string][]keyboard.Key{
	"Return":      {keyboard.KeyEnter},
	"Space":       {keyboard.KeySpace},
	"Left Shift":  {keyboard.KeyShift},
	"Right Shift": {keyboard.KeyShift},
	"Left Ctrl":   {keyboard.KeySymbolShift},
	"Right Ctrl":  {keyboard.KeySymbolShift},
	"Backspace":   {keyboard.KeyShift, keyboard.Key0},
	"Delete":      {keyboard.KeyShift, keyboard.Key0},
	"Left":        {keyboard.KeyShift, keyboard.Key5},
	"Down":        {keyboard.KeyShift, keyboard.Key6},
	"Up":          {keyboard.KeyShift, keyboard.Key7},
	"Right":       {keyboard.KeyShift, keyboard.Key8},
}

// translate the SDL key name to the keys on the ACE keyboard. returns false
// if there is no equivalent.
func translate(name string) ([]keyboard.Key, bool) {
	if keys, ok := namedKeys[name]; ok {
		return keys, true
	}

	if utf8.RuneCountInString(name) != 1 {
		return nil, false
	}

	// SDL names letter keys in upper case. the shift keys are handled
	// separately so the unshifted combination is always wanted
	r, _ := utf8.DecodeRuneInString(strings.ToLower(name))
	return keyboard.Combination(r)
}

func (ace *SdlAce) service(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		ace.quit()

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return
		}

		keys, ok := translate(sdl.GetKeyName(ev.Keysym.Sym))
		if !ok {
			return
		}

		switch ev.Type {
		case sdl.KEYDOWN:
			ace.kb.Press(keys...)
		case sdl.KEYUP:
			ace.kb.Release(keys...)
		}
	}
}
