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

package environment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/hardware/preferences"
	"github.com/gopherace/gopherace/logger"
	"github.com/gopherace/gopherace/notifications"
	"github.com/gopherace/gopherace/test"
)

type notices []notifications.Notice

func (n *notices) Notify(notice notifications.Notice) error {
	*n = append(*n, notice)
	return nil
}

func TestEnvironment(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)

	var n notices
	env, err := environment.NewEnvironment(environment.MainEmulation, p, &n)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainEmulation())

	test.ExpectSuccess(t, env.Notify(notifications.NotifyTapeInserted))
	test.ExpectEquality(t, len(n), 1)
	test.ExpectEquality(t, n[0], notifications.NotifyTapeInserted)
}

func TestDiscardedNotifications(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.Notify(notifications.NotifySpoolEnded))
}

func TestLoggingPermission(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)

	mainEnv, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("preview", p, nil)
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	log.Log(mainEnv, "env", "main")
	log.Log(other, "env", "other")

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "env: main\n")
}
