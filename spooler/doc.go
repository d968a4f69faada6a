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

// Package spooler types the contents of a text file into the emulated
// keyboard. It is the usual way of getting a program into the machine
// without a tape: the -s option on the command line names the file.
//
// The spooler is driven by the tape-poll hook of the interrupt coordinator.
// Each call to Poll() is one step of typing: a key is either pressed or
// released. When the file is exhausted it is closed, observers are notified
// and the normal-speed hook is called so that an emulator running in warp
// mode slows back down.
package spooler
