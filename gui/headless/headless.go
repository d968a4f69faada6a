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

package headless

import (
	"fmt"
	"io"
	"os"

	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/logger"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

const logTag = "headless"

// the controlling terminal
const ttyPath = "/dev/tty"

// maximum number of typed characters waiting to be serviced
const queueLen = 256

// the view of the terminal used by Headless. satisfied by *term.Term
type device interface {
	io.Reader
	Restore() error
	Close() error
}

// Headless has no output and reads the keyboard from the terminal.
type Headless struct {
	typer *keyboard.Typer
	quit  func()

	tty   device
	input chan byte
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The terminal is only read if stdin is a terminal.
func NewHeadless(stdin *os.File, kb *keyboard.Keyboard, quit func()) (*Headless, error) {
	hl := newHeadless(kb, quit)

	if stdin == nil || !xterm.IsTerminal(int(stdin.Fd())) {
		return hl, nil
	}

	tty, err := term.Open(ttyPath, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("headless: %w", err)
	}
	hl.attach(tty)

	return hl, nil
}

func newHeadless(kb *keyboard.Keyboard, quit func()) *Headless {
	return &Headless{
		typer: keyboard.NewTyper(kb),
		quit:  quit,
		input: make(chan byte, queueLen),
	}
}

// attach the terminal and start reading from it
func (hl *Headless) attach(tty device) {
	hl.tty = tty
	hl.read(tty)
}

// read from r in a new goroutine. the goroutine ends when r returns an error
func (hl *Headless) read(r io.Reader) {
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				select {
				case hl.input <- b:
				default:
				}
			}
			if err != nil {
				return
			}
		}
	}()
}

// Refresh implements the gui.Display interface.
func (hl *Headless) Refresh() {
}

// PollEvents implements the gui.Display interface.
func (hl *Headless) PollEvents() {
	for drained := false; !drained; {
		select {
		case b := <-hl.input:
			hl.service(b)
		default:
			drained = true
		}
	}

	hl.typer.Step()
}

func (hl *Headless) service(b byte) {
	switch {
	case b == 0x03:
		hl.quit()
	case b == '\r':
		hl.typer.Push('\n')
	case b == 0x7f:
		hl.typer.Push('\b')
	case b < 0x80:
		hl.typer.Push(rune(b))
	}
}

// Destroy implements the gui.Display interface. The terminal is returned to
// the mode it was in before NewHeadless() was called.
func (hl *Headless) Destroy() {
	hl.typer.Reset()
	if hl.tty == nil {
		return
	}
	if err := hl.tty.Restore(); err != nil {
		logger.Log(logger.Allow, logTag, err)
	}
	if err := hl.tty.Close(); err != nil {
		logger.Log(logger.Allow, logTag, err)
	}
	hl.tty = nil
}
