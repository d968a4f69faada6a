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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/hardware/memory/memorymap"
)

// Sentinal error patterns.
const (
	InvalidBank     = "memory: invalid bank (%d)"
	FirmwareBank    = "memory: bank 0 must be read only"
	FirmwareLoading = "memory: firmware: %v"
	PatchOverflow   = "memory: patch at %#04x overflows address space"
)

// Attribute of a memory bank.
type Attribute int

// List of valid Attribute values.
const (
	ReadOnly Attribute = iota
	ReadWrite
)

func (a Attribute) String() string {
	switch a {
	case ReadOnly:
		return "RO"
	case ReadWrite:
		return "RW"
	}
	return "??"
}

// Patch is a sequence of bytes to be poked into memory at an address.
type Patch struct {
	Address uint16
	Data    []uint8
}

// AddressSpace is the memory of the emulated machine.
type AddressSpace struct {
	data [memorymap.Size]uint8
	attr [memorymap.NumBanks]Attribute
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type. Bank 0 is ReadOnly and all other banks are ReadWrite.
// Memory is zeroed.
func NewAddressSpace() *AddressSpace {
	mem := &AddressSpace{}
	for b := range mem.attr {
		mem.attr[b] = ReadWrite
	}
	mem.attr[0] = ReadOnly
	return mem
}

func (mem *AddressSpace) String() string {
	s := strings.Builder{}
	for b, a := range mem.attr {
		if b > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%d:%s", b, a))
	}
	return s.String()
}

// Read the value at the address.
func (mem *AddressSpace) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write the value to the address. Writes to a ReadOnly bank are ignored and
// the function returns false.
func (mem *AddressSpace) Write(address uint16, data uint8) bool {
	if mem.attr[memorymap.Bank(address)] == ReadOnly {
		return false
	}
	mem.data[address] = data
	return true
}

// Poke writes the value to the address regardless of the bank attribute.
func (mem *AddressSpace) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

// Fill memory from the address to the top of the address space with the
// value. The bank attributes are ignored.
func (mem *AddressSpace) Fill(from uint16, value uint8) {
	for i := int(from); i < memorymap.Size; i++ {
		mem.data[i] = value
	}
}

// Slice returns the memory between origin and memtop inclusive. The returned
// slice shares storage with the AddressSpace.
func (mem *AddressSpace) Slice(origin uint16, memtop uint16) []uint8 {
	if memtop < origin {
		return nil
	}
	return mem.data[origin : int(memtop)+1]
}

// Attribute returns the attribute of the bank.
func (mem *AddressSpace) Attribute(bank int) (Attribute, error) {
	if bank < 0 || bank >= memorymap.NumBanks {
		return ReadOnly, curated.Errorf(InvalidBank, bank)
	}
	return mem.attr[bank], nil
}

// SetAttribute changes the attribute of the bank. Bank 0 cannot be made
// ReadWrite.
func (mem *AddressSpace) SetAttribute(bank int, attr Attribute) error {
	if bank < 0 || bank >= memorymap.NumBanks {
		return curated.Errorf(InvalidBank, bank)
	}
	if bank == 0 && attr != ReadOnly {
		return curated.Errorf(FirmwareBank)
	}
	mem.attr[bank] = attr
	return nil
}

// LoadFirmware reads the firmware image into bank 0. The image must not be
// empty and must fit into the bank. Any part of the bank not covered by the
// image is zeroed.
func (mem *AddressSpace) LoadFirmware(r io.Reader) error {
	// read one more byte than the bank can hold so that oversized images
	// can be detected
	buf := make([]uint8, memorymap.BankSize+1)
	n, err := io.ReadFull(r, buf)
	switch err {
	case nil:
		return curated.Errorf(FirmwareLoading, fmt.Sprintf("image larger than %d bytes", memorymap.BankSize))
	case io.EOF:
		return curated.Errorf(FirmwareLoading, "image is empty")
	case io.ErrUnexpectedEOF:
	default:
		return curated.Errorf(FirmwareLoading, err)
	}

	for i := 0; i < memorymap.BankSize; i++ {
		var v uint8
		if i < n {
			v = buf[i]
		}
		mem.Poke(uint16(i), v)
	}

	return nil
}

// ApplyPatches pokes each patch into memory. No patch is applied if any of
// them would overflow the address space.
func (mem *AddressSpace) ApplyPatches(patches ...Patch) error {
	for _, p := range patches {
		if int(p.Address)+len(p.Data) > memorymap.Size {
			return curated.Errorf(PatchOverflow, p.Address)
		}
	}
	for _, p := range patches {
		for i, v := range p.Data {
			mem.Poke(p.Address+uint16(i), v)
		}
	}
	return nil
}
