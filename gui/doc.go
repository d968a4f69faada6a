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

// Package gui defines the Display interface and chooses an implementation
// by name.
//
// A Display is driven by the interrupt coordinator. Refresh() is called once
// per pacing tick and should redraw the screen if the video memory has
// changed. PollEvents() is called immediately afterwards and should service
// any host input, translating it into key presses on the emulated keyboard.
// Both must return quickly.
//
// Destroy() releases the resources held by the display. It is called once
// during shutdown.
//
// Each implementation is given a quit function. Calling it requests a normal
// shutdown of the emulation. The sdlace display calls it when the window is
// closed, the termace and headless displays call it when Ctrl-C is typed.
package gui
