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

package spooler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/preferences"
	"github.com/gopherace/gopherace/notifications"
	"github.com/gopherace/gopherace/spooler"
	"github.com/gopherace/gopherace/test"
)

type notices []notifications.Notice

func (n *notices) Notify(notice notifications.Notice) error {
	*n = append(*n, notice)
	return nil
}

func newEnv(t *testing.T, n *notices) *environment.Environment {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p, n)
	test.DemandSuccess(t, err)
	return env
}

func spoolFile(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.fs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestSpooling(t *testing.T) {
	var n notices
	env := newEnv(t, &n)
	kb := keyboard.NewKeyboard()

	var normal int
	sp := spooler.NewSpooler(env, kb, func() error {
		normal++
		return nil
	})

	fn := spoolFile(t, "aB\n")
	test.DemandSuccess(t, sp.Open(fn))
	test.ExpectEquality(t, sp.Path(), fn)
	test.ExpectSuccess(t, sp.Active())

	expected := []string{"A", "no keys", "SHIFT+B", "no keys", "ENTER", "no keys"}
	for i, e := range expected {
		sp.Poll()
		test.ExpectEquality(t, kb.String(), e, i)
	}
	test.ExpectEquality(t, normal, 0)

	// end of file
	sp.Poll()
	test.ExpectFailure(t, sp.Active())
	test.ExpectEquality(t, sp.Path(), "")
	test.ExpectEquality(t, normal, 1)

	test.DemandEquality(t, len(n), 2)
	test.ExpectEquality(t, n[0], notifications.NotifySpoolStarted)
	test.ExpectEquality(t, n[1], notifications.NotifySpoolEnded)

	// further polls do nothing
	sp.Poll()
	test.ExpectEquality(t, normal, 1)
	test.ExpectEquality(t, len(n), 2)
}

func TestOpenMissing(t *testing.T) {
	var n notices
	sp := spooler.NewSpooler(newEnv(t, &n), keyboard.NewKeyboard(), nil)
	test.ExpectFailure(t, sp.Open(filepath.Join(t.TempDir(), "missing.fs")))
	test.ExpectFailure(t, sp.Active())
	test.ExpectEquality(t, len(n), 0)

	// polling an idle spooler with no hook is harmless
	sp.Poll()
}

func TestClose(t *testing.T) {
	var n notices
	kb := keyboard.NewKeyboard()
	sp := spooler.NewSpooler(newEnv(t, &n), kb, nil)

	test.DemandSuccess(t, sp.Open(spoolFile(t, "words")))
	sp.Poll()
	test.ExpectEquality(t, kb.String(), "W")

	// closing releases the held key. closing twice is the same as once
	test.ExpectSuccess(t, sp.Close())
	test.ExpectEquality(t, kb.String(), "no keys")
	test.ExpectSuccess(t, sp.Close())
	test.ExpectFailure(t, sp.Active())

	// no end notification for a file that is closed early
	test.ExpectEquality(t, len(n), 1)
}

func TestReopen(t *testing.T) {
	var n notices
	kb := keyboard.NewKeyboard()
	sp := spooler.NewSpooler(newEnv(t, &n), kb, nil)

	test.DemandSuccess(t, sp.Open(spoolFile(t, "x")))
	fn := spoolFile(t, "y")
	test.DemandSuccess(t, sp.Open(fn))
	test.ExpectEquality(t, sp.Path(), fn)

	sp.Poll()
	test.ExpectEquality(t, kb.String(), "Y")
}
