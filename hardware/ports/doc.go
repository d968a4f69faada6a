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

// Package ports decodes the port mapped I/O requests of the CPU.
//
// The CPU places a 16 bit address on the bus for every I/O request. The low
// byte selects the device and the high byte is passed to the device. Decoding
// is driven by a table indexed by the low byte. Devices are added to the
// table with AttachReader(). By default the only device is the keyboard, on
// port 0xfe, which interprets the high byte as an active low row mask.
//
// Reads of unmapped ports return 0xff. Writes are accepted for every port but
// have no effect. The return value of a write is always 0x00.
package ports
