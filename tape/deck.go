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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/hardware/cpu"
	"github.com/gopherace/gopherace/logger"
	"github.com/gopherace/gopherace/notifications"
)

// tag string used in calls to Log().
const logTag = "tape"

// Sentinal error patterns.
const (
	NoTape     = "tape: no tape inserted"
	EndOfTape  = "tape: end of tape"
	WrongKind  = "tape: %s not possible with a %s"
	Inserting  = "tape: insert: %v"
	Ejecting   = "tape: eject: %v"
	BadAddress = "tape: block at %#04x overflows memory"
)

// Kind of tape in the deck.
type Kind int

// List of valid Kind values.
const (
	None Kind = iota
	Image
	Sound
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "tape image"
	case Sound:
		return "sound tape"
	}
	return "empty deck"
}

// SavedSuffix is added to the name of a sound tape, in place of its
// extension, to create the name of the tape image that blocks saved during
// the session are written to.
const SavedSuffix = ".saved.tap"

// Memory is the view of memory required by the trap functions. It is the
// same view of memory that a CPU core has.
type Memory = cpu.Memory

// Deck is the tape deck.
type Deck struct {
	env *environment.Environment

	path string
	kind Kind

	// blocks in a tape image and the index of the next block to load
	blocks [][]uint8
	next   int

	// blocks saved since the tape was inserted
	saved [][]uint8

	// sound tape samples and the current position
	pcm pcmData
	idx int
}

// NewDeck is the preferred method of initialisation for the Deck type. The
// deck is empty.
func NewDeck(env *environment.Environment) *Deck {
	return &Deck{env: env}
}

func (dk *Deck) String() string {
	switch dk.kind {
	case Image:
		return fmt.Sprintf("%s: block %d of %d", filepath.Base(dk.path), dk.next, len(dk.blocks))
	case Sound:
		return fmt.Sprintf("%s: %.02fs of %.02fs", filepath.Base(dk.path), float64(dk.idx)/dk.pcm.sampleRate, dk.pcm.totalTime)
	}
	return dk.kind.String()
}

// Kind returns the kind of tape in the deck.
func (dk *Deck) Kind() Kind {
	return dk.kind
}

// Path returns the path of the inserted tape. Empty if the deck is empty.
func (dk *Deck) Path() string {
	return dk.path
}

// Insert the tape in the named file. Any tape already in the deck is ejected
// first. Files ending in .wav or .mp3 are sound tapes and all other files are
// tape images. A tape image that does not exist yet is treated as a blank
// tape and will be created when blocks are saved to it.
func (dk *Deck) Insert(path string) error {
	if err := dk.Eject(); err != nil {
		logger.Log(dk.env, logTag, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".mp3":
		f, err := os.Open(path)
		if err != nil {
			return curated.Errorf(Inserting, err)
		}
		defer f.Close()

		pcm, err := getPCM(dk.env, path, f)
		if err != nil {
			return curated.Errorf(Inserting, err)
		}
		if len(pcm.data) == 0 {
			return curated.Errorf(Inserting, "sound tape is empty")
		}

		dk.pcm = pcm
		dk.idx = 0
		dk.kind = Sound

	default:
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return curated.Errorf(Inserting, err)
		}

		blocks, err := readBlocks(data)
		if err != nil {
			return curated.Errorf(Inserting, err)
		}

		dk.blocks = blocks
		dk.next = 0
		dk.kind = Image
	}

	dk.path = path
	dk.saved = nil

	logger.Logf(dk.env, logTag, "inserted %s", dk)
	dk.notify(notifications.NotifyTapeInserted)

	return nil
}

// Rewind the tape to the beginning.
func (dk *Deck) Rewind() {
	dk.next = 0
	dk.idx = 0
}

// Load returns the next block from a tape image.
func (dk *Deck) Load() ([]uint8, error) {
	switch dk.kind {
	case None:
		return nil, curated.Errorf(NoTape)
	case Sound:
		return nil, curated.Errorf(WrongKind, "block load", dk.kind)
	}

	if dk.next >= len(dk.blocks) {
		dk.notify(notifications.NotifyTapeEnd)
		return nil, curated.Errorf(EndOfTape)
	}

	b := dk.blocks[dk.next]
	dk.next++

	logger.Logf(dk.env, logTag, "loaded block of %d bytes", len(b))
	dk.notify(notifications.NotifyTapeBlockLoaded)

	return b, nil
}

// Save records a block. The block is written out when the tape is ejected.
func (dk *Deck) Save(block []uint8) error {
	if dk.kind == None {
		return curated.Errorf(NoTape)
	}
	if len(block) > maxBlockLen {
		return curated.Errorf("tape: block too long (%d bytes)", len(block))
	}

	b := make([]uint8, len(block))
	copy(b, block)
	dk.saved = append(dk.saved, b)

	logger.Logf(dk.env, logTag, "saved block of %d bytes", len(b))
	dk.notify(notifications.NotifyTapeBlockSaved)

	return nil
}

// LoadInto copies the next block of a tape image into memory at the address.
// At most length bytes are copied. Returns the number of bytes copied.
func (dk *Deck) LoadInto(mem Memory, address uint16, length int) (int, error) {
	b, err := dk.Load()
	if err != nil {
		return 0, err
	}

	n := min(len(b), length)
	if int(address)+n > 0x10000 {
		return 0, curated.Errorf(BadAddress, address)
	}
	for i := 0; i < n; i++ {
		mem.Write(address+uint16(i), b[i])
	}

	return n, nil
}

// SaveFrom records length bytes of memory starting at the address as a new
// block.
func (dk *Deck) SaveFrom(mem Memory, address uint16, length int) error {
	if int(address)+length > 0x10000 {
		return curated.Errorf(BadAddress, address)
	}
	b := make([]uint8, length)
	for i := range b {
		b[i] = mem.Read(address + uint16(i))
	}
	return dk.Save(b)
}

// Ear returns the state of the signal from a sound tape at the current
// position. Always false for other kinds of tape.
func (dk *Deck) Ear() bool {
	if dk.kind != Sound || dk.idx >= len(dk.pcm.data) {
		return false
	}
	return dk.pcm.data[dk.idx] > 0.0
}

// Step advances a sound tape by one sample. Returns false if the end of the
// tape has been reached.
func (dk *Deck) Step() bool {
	if dk.kind != Sound {
		return false
	}
	if dk.idx >= len(dk.pcm.data)-1 {
		return false
	}
	dk.idx++
	return true
}

// SampleRate of a sound tape. Zero for other kinds of tape.
func (dk *Deck) SampleRate() float64 {
	if dk.kind != Sound {
		return 0
	}
	return dk.pcm.sampleRate
}

// Eject the tape. Blocks saved since the tape was inserted are written out.
// It is safe to call Eject() on an empty deck.
func (dk *Deck) Eject() error {
	if dk.kind == None {
		return nil
	}

	err := dk.flush()

	logger.Logf(dk.env, logTag, "ejected %s", filepath.Base(dk.path))

	dk.kind = None
	dk.path = ""
	dk.blocks = nil
	dk.saved = nil
	dk.pcm = pcmData{}
	dk.Rewind()

	dk.notify(notifications.NotifyTapeEjected)

	if err != nil {
		return curated.Errorf(Ejecting, err)
	}
	return nil
}

// the file that saved blocks are written to
func (dk *Deck) savePath() string {
	if dk.kind == Sound {
		return strings.TrimSuffix(dk.path, filepath.Ext(dk.path)) + SavedSuffix
	}
	return dk.path
}

// write saved blocks. for tape images the saved blocks follow the existing
// blocks. for sound tapes any existing saved image is replaced
func (dk *Deck) flush() error {
	if len(dk.saved) == 0 {
		return nil
	}

	var blocks [][]uint8
	if dk.kind == Image {
		blocks = append(blocks, dk.blocks...)
	}
	blocks = append(blocks, dk.saved...)

	pth := dk.savePath()
	f, err := os.Create(pth)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := writeBlocks(w, blocks); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Logf(dk.env, logTag, "wrote %d saved blocks to %s", len(dk.saved), pth)
	return nil
}

func (dk *Deck) notify(notice notifications.Notice) {
	if err := dk.env.Notify(notice); err != nil {
		logger.Log(dk.env, logTag, err)
	}
}
