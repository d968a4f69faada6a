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

package memory_test

import (
	"bytes"
	"testing"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/hardware/memory"
	"github.com/gopherace/gopherace/hardware/memory/memorymap"
	"github.com/gopherace/gopherace/test"
)

func TestAttributes(t *testing.T) {
	mem := memory.NewAddressSpace()
	test.ExpectEquality(t, mem.String(), "0:RO 1:RW 2:RW 3:RW 4:RW 5:RW 6:RW 7:RW")

	a, err := mem.Attribute(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, memory.ReadOnly)

	// bank 0 is always read only
	err = mem.SetAttribute(0, memory.ReadWrite)
	test.ExpectSuccess(t, curated.Is(err, memory.FirmwareBank))

	test.ExpectSuccess(t, mem.SetAttribute(3, memory.ReadOnly))
	a, _ = mem.Attribute(3)
	test.ExpectEquality(t, a, memory.ReadOnly)

	_, err = mem.Attribute(memorymap.NumBanks)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidBank))
	err = mem.SetAttribute(-1, memory.ReadOnly)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidBank))
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewAddressSpace()

	// writes to firmware are ignored
	test.ExpectFailure(t, mem.Write(0x0010, 0xaa))
	test.ExpectEquality(t, mem.Read(0x0010), uint8(0x00))

	// but poke always succeeds
	mem.Poke(0x0010, 0xaa)
	test.ExpectEquality(t, mem.Read(0x0010), uint8(0xaa))

	test.ExpectSuccess(t, mem.Write(0x2000, 0x55))
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0x55))
	test.ExpectSuccess(t, mem.Write(0xffff, 0x66))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x66))

	// attribute changes are respected
	test.DemandSuccess(t, mem.SetAttribute(7, memory.ReadOnly))
	test.ExpectFailure(t, mem.Write(0xffff, 0x77))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x66))
}

func TestFill(t *testing.T) {
	mem := memory.NewAddressSpace()
	mem.Poke(0x1fff, 0x12)
	mem.Fill(memorymap.OriginRAM, memorymap.FillValue)

	test.ExpectEquality(t, mem.Read(0x1fff), uint8(0x12))
	for _, a := range []uint16{0x2000, 0x2400, 0x8000, 0xffff} {
		test.ExpectEquality(t, mem.Read(a), uint8(0xff), a)
	}
}

func TestLoadFirmware(t *testing.T) {
	mem := memory.NewAddressSpace()

	rom := bytes.Repeat([]uint8{0xf3}, memorymap.BankSize)
	test.ExpectSuccess(t, mem.LoadFirmware(bytes.NewReader(rom)))
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0xf3))
	test.ExpectEquality(t, mem.Read(0x1fff), uint8(0xf3))

	// short images are padded with zero
	test.ExpectSuccess(t, mem.LoadFirmware(bytes.NewReader([]uint8{0x01, 0x02})))
	test.ExpectEquality(t, mem.Read(0x0001), uint8(0x02))
	test.ExpectEquality(t, mem.Read(0x0002), uint8(0x00))

	err := mem.LoadFirmware(bytes.NewReader(nil))
	test.ExpectSuccess(t, curated.Is(err, memory.FirmwareLoading))

	err = mem.LoadFirmware(bytes.NewReader(make([]uint8, memorymap.BankSize+1)))
	test.ExpectSuccess(t, curated.Is(err, memory.FirmwareLoading))
}

func TestPatches(t *testing.T) {
	mem := memory.NewAddressSpace()

	err := mem.ApplyPatches(
		memory.Patch{Address: 0x18a7, Data: []uint8{0xed, 0xfc}},
		memory.Patch{Address: 0x1820, Data: []uint8{0xed, 0xfd}},
	)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Read(0x18a7), uint8(0xed))
	test.ExpectEquality(t, mem.Read(0x18a8), uint8(0xfc))
	test.ExpectEquality(t, mem.Read(0x1821), uint8(0xfd))

	// nothing is applied if one patch overflows
	err = mem.ApplyPatches(
		memory.Patch{Address: 0x0000, Data: []uint8{0x99}},
		memory.Patch{Address: 0xffff, Data: []uint8{0x01, 0x02}},
	)
	test.ExpectSuccess(t, curated.Is(err, memory.PatchOverflow))
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x00))
}

func TestSlice(t *testing.T) {
	mem := memory.NewAddressSpace()
	vid := mem.Slice(memorymap.OriginVideoRAM, memorymap.MemtopVideoRAM)
	test.ExpectEquality(t, len(vid), 1024)

	// slice shares storage
	test.ExpectSuccess(t, mem.Write(memorymap.OriginVideoRAM, 0x41))
	test.ExpectEquality(t, vid[0], uint8(0x41))

	test.ExpectEquality(t, len(mem.Slice(0x10, 0x0f)), 0)
}
