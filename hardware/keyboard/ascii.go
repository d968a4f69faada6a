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

// the unshifted key for each letter
var letters = map[rune]Key{
	'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF,
	'g': KeyG, 'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL,
	'm': KeyM, 'n': KeyN, 'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR,
	's': KeyS, 't': KeyT, 'u': KeyU, 'v': KeyV, 'w': KeyW, 'x': KeyX,
	'y': KeyY, 'z': KeyZ,
}

var digits = map[rune]Key{
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
}

// characters produced with SYMBOL SHIFT
var symbols = map[rune]Key{
	'!': Key1, '@': Key2, '#': Key3, '$': Key4, '%': Key5,
	'&': Key6, '\'': Key7, '(': Key8, ')': Key9, '_': Key0,
	'<': KeyR, '>': KeyT,
	'[': KeyY, ']': KeyU, ';': KeyO, '"': KeyP,
	'~': KeyA, '|': KeyS, '\\': KeyD, '{': KeyF, '}': KeyG,
	'^': KeyH, '-': KeyJ, '+': KeyK, '=': KeyL,
	':': KeyZ, '£': KeyX, '?': KeyC,
	'/': KeyV, '*': KeyB, ',': KeyN, '.': KeyM,
}

// Combination returns the keys that must be held down to produce the
// character. Upper case letters are produced with SHIFT and punctuation with
// SYMBOL SHIFT. Both newline and carriage return produce ENTER. Backspace and
// delete produce SHIFT+0.
func Combination(r rune) ([]Key, bool) {
	switch r {
	case '\n', '\r':
		return []Key{KeyEnter}, true
	case ' ':
		return []Key{KeySpace}, true
	case '\b', 0x7f:
		return []Key{KeyShift, Key0}, true
	}

	if k, ok := letters[r]; ok {
		return []Key{k}, true
	}
	if r >= 'A' && r <= 'Z' {
		return []Key{KeyShift, letters[r-'A'+'a']}, true
	}
	if k, ok := digits[r]; ok {
		return []Key{k}, true
	}
	if k, ok := symbols[r]; ok {
		return []Key{KeySymbolShift, k}, true
	}

	return nil, false
}
