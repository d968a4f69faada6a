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

// Package video reads the display memory of the Jupiter ACE.
//
// The display is 32 columns by 24 rows of character cells. Each byte of video
// RAM is a character code: the lower seven bits select one of the 128 glyphs
// in character RAM and bit 7 selects inverse video. Each glyph is eight bytes,
// one for each pixel line, most significant bit on the left.
package video

import (
	"hash/maphash"

	"github.com/gopherace/gopherace/hardware/memory/memorymap"
)

// Dimensions of the display.
const (
	Columns     = 32
	Rows        = 24
	CellSize    = 8
	PixelWidth  = Columns * CellSize
	PixelHeight = Rows * CellSize
)

// Memory is the view of memory required by Video.
type Memory interface {
	Slice(origin uint16, memtop uint16) []uint8
}

// Video reads the display from memory.
type Video struct {
	vram  []uint8
	chars []uint8

	seed maphash.Seed
	hash uint64
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mem Memory) *Video {
	return &Video{
		vram:  mem.Slice(memorymap.OriginVideoRAM, memorymap.OriginVideoRAM+Columns*Rows-1),
		chars: mem.Slice(memorymap.OriginCharRAM, memorymap.MemtopCharRAM),
		seed:  maphash.MakeSeed(),
	}
}

// Cell returns the character code at the column and row. Returns zero for
// positions outside the display.
func (vid *Video) Cell(col int, row int) uint8 {
	if col < 0 || col >= Columns || row < 0 || row >= Rows {
		return 0
	}
	return vid.vram[row*Columns+col]
}

// Glyph returns the eight bytes of the character. Inverse video is not
// applied.
func (vid *Video) Glyph(code uint8) []uint8 {
	o := int(code&0x7f) * CellSize
	return vid.chars[o : o+CellSize]
}

// Pixel returns true if the pixel is lit. Returns false for positions
// outside the display.
func (vid *Video) Pixel(x int, y int) bool {
	if x < 0 || x >= PixelWidth || y < 0 || y >= PixelHeight {
		return false
	}
	code := vid.Cell(x/CellSize, y/CellSize)
	lit := vid.Glyph(code)[y%CellSize]&(0x80>>(x%CellSize)) != 0
	if code&0x80 != 0 {
		return !lit
	}
	return lit
}

// Changed returns true if the display memory has changed since the previous
// call to Changed(). The first call always returns true.
func (vid *Video) Changed() bool {
	var h maphash.Hash
	h.SetSeed(vid.seed)
	h.Write(vid.vram)
	h.Write(vid.chars)
	sum := h.Sum64()
	if sum == vid.hash && sum != 0 {
		return false
	}
	vid.hash = sum
	return true
}
