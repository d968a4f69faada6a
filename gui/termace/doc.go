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

// Package termace displays the Jupiter ACE screen as text in a terminal.
//
// Each character cell of the ACE screen is drawn as one terminal character.
// User defined graphics cannot be shown and characters outside of the
// printable range are drawn as spaces. Inverse video cells are drawn in
// reverse.
//
// Terminals report key presses but not key releases, so typed characters are
// queued and passed to the emulated keyboard with a keyboard.Typer. Ctrl-C
// requests that the emulation quits.
package termace
