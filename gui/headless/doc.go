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

// Package headless is a display with no output. If standard input is a
// terminal then the controlling terminal is put into raw mode and characters
// typed into it are passed to the emulated keyboard.
//
// Raw mode means that Ctrl-C does not raise a signal. Instead it requests
// that the emulation quits.
package headless
