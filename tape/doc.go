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

// Package tape emulates the cassette tape deck of the Jupiter ACE.
//
// Two kinds of tape can be inserted into the Deck. Tape images (.tap files)
// are a sequence of blocks, each prefixed by its length as a little endian 16
// bit value. Sound tapes (.wav and .mp3 files) are recordings of the audio
// signal, which are decoded into a single channel of samples.
//
// Blocks are transferred to and from a tape image by the firmware's tape
// routines, which are replaced by trap instructions (see Patches()). A CPU
// core that meets one of the trap instructions calls LoadInto() or SaveFrom().
// Sound tapes are read a sample at a time with Ear() and Step().
//
// Blocks saved during a session are written out when the tape is ejected:
// appended to the image for tape images and written to a new image alongside
// the sound file for sound tapes.
package tape
