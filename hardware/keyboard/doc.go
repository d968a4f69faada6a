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

// Package keyboard emulates the keyboard matrix of the Jupiter ACE.
//
// The forty keys are arranged in eight rows of five. Each row is read by the
// CPU as a single byte, with the bits of keys that are held down cleared.
// The bits above the fifth column are always set.
//
// The Keypress() function translates a character into the combination of
// keys that produce it, pressing SHIFT or SYMBOL SHIFT as required. The Typer
// type uses Keypress() to type a string one key at a time, releasing each
// key before pressing the next.
package keyboard
