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

// Package memorymap describes the layout of the Jupiter ACE address space.
// Other packages should use these values rather than hard coding addresses.
package memorymap

// Size of the address space and the size and number of banks within it.
// Bank boundaries never change.
const (
	Size     = 0x10000
	BankSize = 0x2000
	NumBanks = Size / BankSize
)

// Area represents the different areas of memory.
type Area int

// The different memory areas.
const (
	Undefined Area = iota
	Firmware
	VideoRAM
	CharRAM
	RAM
)

func (a Area) String() string {
	switch a {
	case Firmware:
		return "Firmware"
	case VideoRAM:
		return "Video RAM"
	case CharRAM:
		return "Character RAM"
	case RAM:
		return "RAM"
	}
	return "undefined"
}

// The origin and memory top for each area of memory.
const (
	OriginFirmware = uint16(0x0000)
	MemtopFirmware = uint16(0x1fff)
	OriginVideoRAM = uint16(0x2400)
	MemtopVideoRAM = uint16(0x27ff)
	OriginCharRAM  = uint16(0x2c00)
	MemtopCharRAM  = uint16(0x2fff)
	OriginRAM      = uint16(0x2000)
	MemtopRAM      = uint16(0xffff)
)

// FillValue is the value that RAM is initialised with at startup.
const FillValue = uint8(0xff)

// Bank returns the bank number for the address.
func Bank(address uint16) int {
	return int(address) / BankSize
}

// MapAddress returns the area of memory the address falls within. Video RAM
// and character RAM take priority over the general RAM area.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopFirmware:
		return Firmware
	case address >= OriginVideoRAM && address <= MemtopVideoRAM:
		return VideoRAM
	case address >= OriginCharRAM && address <= MemtopCharRAM:
		return CharRAM
	}
	return RAM
}
