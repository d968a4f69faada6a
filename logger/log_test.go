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

package logger_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/gopherace/gopherace/logger"
	"github.com/gopherace/gopherace/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "pacing", "tick overrun")
	log.Log(logger.Allow, "pacing", "tick overrun")
	log.Log(logger.Allow, "pacing", "tick overrun")
	test.ExpectEquality(t, log.Len(), 1)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "pacing: tick overrun (repeat x3)\n")

	// a different entry breaks the run
	log.Log(logger.Allow, "tape", "ejected")
	log.Log(logger.Allow, "pacing", "tick overrun")
	test.ExpectEquality(t, log.Len(), 3)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "test", "%d", 1)
	log.Logf(logger.Allow, "test", "%d", 2)
	log.Logf(logger.Allow, "test", "%d", 3)
	test.ExpectEquality(t, log.Len(), 2)

	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: 2\ntest: 3\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)

	var w test.CompareWriter
	log.SetEcho(&w)
	log.Log(logger.Allow, "echo", "on")
	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectEquality(t, w.String(), "echo: on\n")
}
