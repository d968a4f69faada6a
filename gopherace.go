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

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/gui"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/preferences"
	"github.com/gopherace/gopherace/hardware/video"
	"github.com/gopherace/gopherace/lifecycle"
	"github.com/gopherace/gopherace/logger"
	"github.com/gopherace/gopherace/paths"
	"github.com/gopherace/gopherace/prefs"
	"github.com/gopherace/gopherace/statsview"
	"github.com/gopherace/gopherace/version"
)

const logTag = "gopherace"

// number of log entries written to stderr on exit when the log has not been
// echoed
const tailLength = 20

// #mainthread
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	if v, ok := os.LookupEnv(preferences.EnvironmentVariable); ok {
		prefs.PushCommandLineStack(v)
	}

	if err := paths.MakeResourceDir(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 1
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 1
	}

	// the terminal display draws over anything written to the terminal
	echo := p.DisplayKind.Get().(string) != preferences.DisplayTerminal
	if echo {
		logger.SetEcho(os.Stderr)
	}

	logger.Log(logger.Allow, logTag, version.String())

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, logTag, "unused preferences: %s", unused)
	}

	if p.Statsview.Get().(bool) {
		if statsview.Available() {
			stop := statsview.Launch(os.Stderr)
			defer stop()
		} else {
			logger.Log(logger.Allow, logTag, "statsview not available in this build")
		}
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 1
	}

	m, err := lifecycle.NewManager(env, os.Stderr, newDisplay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		return 1
	}

	status := m.Run(context.Background(), os.Args[1:])

	if echo {
		logger.SetEcho(nil)
	} else {
		logger.Tail(os.Stderr, tailLength)
	}

	return status
}

func newDisplay(kind string, vid *video.Video, kb *keyboard.Keyboard, scale int, quit func()) (lifecycle.Display, error) {
	return gui.NewDisplay(kind, gui.Config{
		Video:    vid,
		Keyboard: kb,
		Scale:    scale,
		Quit:     quit,
	})
}
