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
	"github.com/gopherace/gopherace/hardware/memory"
)

// The trap instructions placed in the firmware. Both are unused opcodes in
// the ED prefixed group.
var (
	TrapLoad = []uint8{0xed, 0xfc}
	TrapSave = []uint8{0xed, 0xfd}
)

// Patches returns the firmware patches that place the trap instructions at
// the addresses of the firmware's tape load and save routines.
func Patches(load uint16, save uint16) []memory.Patch {
	return []memory.Patch{
		{Address: load, Data: TrapLoad},
		{Address: save, Data: TrapSave},
	}
}
