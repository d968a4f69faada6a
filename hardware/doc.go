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

// Package hardware is the base package for the Jupiter ACE emulation. It and
// its sub-packages contain everything required for the emulated machine
// apart from the CPU core, which is supplied separately through the
// interfaces in the cpu package.
//
// The Ace type bundles the parts of the machine together. It is owned by the
// lifecycle manager and passed by reference to the parts of the program that
// need it.
package hardware
