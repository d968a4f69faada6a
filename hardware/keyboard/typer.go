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

package keyboard

// Typer types characters into a Keyboard one step at a time. A character's
// keys are pressed on one step and released on the next, so that the
// emulated machine sees each key go down and come back up.
//
// Characters that cannot be typed are skipped.
type Typer struct {
	kb    *Keyboard
	queue []rune

	// the keys pressed by the most recent step. keys pressed by anything
	// else are left alone on release
	held []Key
}

// NewTyper is the preferred method of initialisation for the Typer type.
func NewTyper(kb *Keyboard) *Typer {
	return &Typer{kb: kb}
}

// Type adds the string to the queue of characters to be typed.
func (ty *Typer) Type(s string) {
	ty.queue = append(ty.queue, []rune(s)...)
}

// Push adds a single character to the queue.
func (ty *Typer) Push(r rune) {
	ty.queue = append(ty.queue, r)
}

// Busy returns true if there are characters still to be typed or if a key
// is still being held down.
func (ty *Typer) Busy() bool {
	return len(ty.held) > 0 || len(ty.queue) > 0
}

// Pending returns the number of characters waiting to be typed.
func (ty *Typer) Pending() int {
	return len(ty.queue)
}

// Step performs the next action. Returns true if the Typer is still busy
// after the step.
func (ty *Typer) Step() bool {
	if len(ty.held) > 0 {
		ty.release()
		return ty.Busy()
	}

	for len(ty.queue) > 0 {
		r := ty.queue[0]
		ty.queue = ty.queue[1:]
		if keys, ok := Combination(r); ok {
			ty.kb.Press(keys...)
			ty.held = keys
			break
		}
	}

	return ty.Busy()
}

// Reset empties the queue and releases any held keys.
func (ty *Typer) Reset() {
	ty.queue = ty.queue[:0]
	ty.release()
}

func (ty *Typer) release() {
	ty.kb.Release(ty.held...)
	ty.held = nil
}
