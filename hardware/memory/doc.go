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

// Package memory implements the 64K address space of the emulated machine.
//
// The address space is divided into eight banks of 8K. Each bank has an
// attribute of ReadOnly or ReadWrite. Bank 0 holds the firmware and is always
// ReadOnly. The CPU should change memory only through the Write() function,
// which respects the attribute of the bank. Loading and patching the firmware
// is done with Poke(), which ignores the attribute.
//
// The memorymap sub-package describes the areas of memory that are of
// interest to other parts of the emulation.
package memory
