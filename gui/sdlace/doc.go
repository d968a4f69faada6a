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

// Package sdlace displays the Jupiter ACE screen in an SDL window. Host key
// presses and releases are passed to the emulated keyboard as they happen.
//
// SDL requires that window and event functions are called from the main
// thread. The program's main goroutine must be locked to the main thread and
// the display must only be used from that goroutine.
package sdlace
