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

// Package logger is the central log for the emulator. Entries are tagged with
// the part of the program that created them and are kept in memory so that
// they can be written out, in whole or in part, at a convenient moment. For
// example, the tail of the log is printed when the emulator exits.
//
// Adjacent entries with the same tag and detail are collapsed into a single
// entry with a repeat count. This keeps the log readable when something is
// logged every frame.
//
// Every logging request carries a Permission. The Allow value always permits
// logging; environment.Environment implements the interface too so that
// emulations other than the main one can be kept quiet.
package logger
