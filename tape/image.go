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

package tape

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maximum length of a block in a tape image.
const maxBlockLen = 0xffff

// parse the blocks of a tape image.
func readBlocks(data []uint8) ([][]uint8, error) {
	var blocks [][]uint8
	for o := 0; o < len(data); {
		if len(data)-o < 2 {
			return nil, fmt.Errorf("truncated block header at offset %d", o)
		}
		n := int(binary.LittleEndian.Uint16(data[o:]))
		o += 2
		if len(data)-o < n {
			return nil, fmt.Errorf("truncated block at offset %d (need %d bytes, have %d)", o-2, n, len(data)-o)
		}
		blocks = append(blocks, data[o:o+n])
		o += n
	}
	return blocks, nil
}

// write blocks in the tape image format.
func writeBlocks(w io.Writer, blocks [][]uint8) error {
	for _, b := range blocks {
		if len(b) > maxBlockLen {
			return fmt.Errorf("block too long (%d bytes)", len(b))
		}
		var hdr [2]uint8
		binary.LittleEndian.PutUint16(hdr[:], uint16(len(b)))
		if _, err := w.Write(hdr[:]); err != nil {
			return err
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
