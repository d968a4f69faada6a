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

package spooler

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/logger"
	"github.com/gopherace/gopherace/notifications"
)

// tag string used in calls to Log().
const logTag = "spooler"

// Spooler types a file into the keyboard.
type Spooler struct {
	env   *environment.Environment
	typer *keyboard.Typer

	// called when the end of the file is reached
	normalSpeed func() error

	path string
	f    *os.File
	rd   *bufio.Reader

	// number of characters read from the file
	count int
}

// NewSpooler is the preferred method of initialisation for the Spooler type.
// The normalSpeed argument can be nil.
func NewSpooler(env *environment.Environment, kb *keyboard.Keyboard, normalSpeed func() error) *Spooler {
	return &Spooler{
		env:         env,
		typer:       keyboard.NewTyper(kb),
		normalSpeed: normalSpeed,
	}
}

// Open attaches the file to the spooler. Any previously attached file is
// closed first.
func (sp *Spooler) Open(path string) error {
	if err := sp.Close(); err != nil {
		logger.Log(sp.env, logTag, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf("spooler: %v", err)
	}

	sp.path = path
	sp.f = f
	sp.rd = bufio.NewReader(f)
	sp.count = 0

	logger.Logf(sp.env, logTag, "spooling from %s", path)
	sp.notify(notifications.NotifySpoolStarted)

	return nil
}

// Path returns the path of the attached file. Empty if no file is attached.
func (sp *Spooler) Path() string {
	return sp.path
}

// Active returns true if a file is attached or if typing is still in
// progress.
func (sp *Spooler) Active() bool {
	return sp.f != nil || sp.typer.Busy()
}

// Poll performs one step of typing. It is intended to be used as the
// tape-poll hook of the interrupt coordinator.
func (sp *Spooler) Poll() {
	if sp.typer.Busy() {
		sp.typer.Step()
		return
	}

	if sp.f == nil {
		return
	}

	r, _, err := sp.rd.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Log(sp.env, logTag, err)
		}
		sp.end()
		return
	}

	sp.count++
	sp.typer.Push(r)
	sp.typer.Step()
}

// end of file has been reached
func (sp *Spooler) end() {
	logger.Logf(sp.env, logTag, "finished spooling %d characters from %s", sp.count, sp.path)

	if err := sp.Close(); err != nil {
		logger.Log(sp.env, logTag, err)
	}

	sp.notify(notifications.NotifySpoolEnded)

	if sp.normalSpeed != nil {
		if err := sp.normalSpeed(); err != nil {
			logger.Log(sp.env, logTag, err)
		}
	}
}

// Close the attached file. Any key held down by the spooler is released. It
// is safe to call Close() more than once.
func (sp *Spooler) Close() error {
	sp.typer.Reset()

	if sp.f == nil {
		return nil
	}

	err := sp.f.Close()
	sp.f = nil
	sp.rd = nil
	sp.path = ""

	if err != nil {
		return curated.Errorf("spooler: %v", err)
	}
	return nil
}

func (sp *Spooler) notify(notice notifications.Notice) {
	if err := sp.env.Notify(notice); err != nil {
		logger.Log(sp.env, logTag, err)
	}
}
