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

package lifecycle_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/hardware"
	"github.com/gopherace/gopherace/hardware/cpu"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/memory"
	"github.com/gopherace/gopherace/hardware/preferences"
	"github.com/gopherace/gopherace/hardware/video"
	"github.com/gopherace/gopherace/lifecycle"
	"github.com/gopherace/gopherace/notifications"
	"github.com/gopherace/gopherace/tape"
	"github.com/gopherace/gopherace/test"
)

type display struct {
	refresh int
	poll    int
	destroy int

	quit      func()
	onPoll    func(quit func())
	onDestroy func()
}

func (d *display) Refresh() {
	d.refresh++
}

func (d *display) PollEvents() {
	d.poll++
	if d.onPoll != nil {
		d.onPoll(d.quit)
	}
}

func (d *display) Destroy() {
	d.destroy++
	if d.onDestroy != nil {
		d.onDestroy()
	}
}

func (d *display) factory(_ string, _ *video.Video, _ *keyboard.Keyboard, _ int, quit func()) (lifecycle.Display, error) {
	d.quit = quit
	return d, nil
}

// signal handlers are not installed during tests
func noSignals(_ chan<- os.Signal, _ os.Signal) error {
	return nil
}

func newPreferences(t *testing.T) *preferences.Preferences {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)
	return p
}

func newManager(t *testing.T, p *preferences.Preferences, disp *display, output io.Writer) *lifecycle.Manager {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	test.DemandSuccess(t, err)

	m, err := lifecycle.NewManager(env, output, disp.factory)
	test.DemandSuccess(t, err)
	m.SetSignalInstaller(noSignals)

	return m
}

func TestNoOptions(t *testing.T) {
	var w test.CompareWriter
	disp := &display{}
	m := newManager(t, newPreferences(t), disp, &w)
	defer m.Shutdown()

	test.DemandSuccess(t, m.Startup(nil))
	test.ExpectFailure(t, m.Ace().Pacer.Warp())
	test.ExpectEquality(t, m.Ace().Pacer.TicksPerSecond(), preferences.DefaultTicksPerSecond)
	test.ExpectEquality(t, m.Spooler().Path(), "")
	test.ExpectEquality(t, w.String(), "")

	attr, err := m.Ace().Mem.Attribute(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, attr, memory.ReadOnly)

	test.ExpectEquality(t, m.Ace().Mem.Read(0x2000), uint8(0xff))
	test.ExpectEquality(t, m.Ace().Mem.Read(0xffff), uint8(0xff))
}

func TestWarpSpool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "listing.fs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("1 2 + .\n"), 0o644))

	var w test.CompareWriter
	m := newManager(t, newPreferences(t), &display{}, &w)
	defer m.Shutdown()

	test.DemandSuccess(t, m.Startup([]string{"-S", fn}))
	test.ExpectSuccess(t, m.Ace().Pacer.Warp())
	test.ExpectEquality(t, m.Spooler().Path(), fn)
	test.ExpectEquality(t, w.String(), "")

	// warp mode does not change the tick rate
	test.ExpectEquality(t, m.Ace().Pacer.TicksPerSecond(), preferences.DefaultTicksPerSecond)
}

func TestSpool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "listing.fs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("words\n"), 0o644))

	m := newManager(t, newPreferences(t), &display{}, io.Discard)
	defer m.Shutdown()

	test.DemandSuccess(t, m.Startup([]string{"ignored", "-s", fn}))
	test.ExpectFailure(t, m.Ace().Pacer.Warp())
	test.ExpectEquality(t, m.Spooler().Path(), fn)
}

func TestMissingFilename(t *testing.T) {
	var w test.CompareWriter
	m := newManager(t, newPreferences(t), &display{}, &w)
	defer m.Shutdown()

	test.DemandSuccess(t, m.Startup([]string{"-s"}))
	test.ExpectSuccess(t, w.Compare("Error: Missing filename for -s arg\n"))
	test.ExpectFailure(t, m.Ace().Pacer.Warp())
	test.ExpectEquality(t, m.Spooler().Path(), "")
}

func TestMissingSpoolFile(t *testing.T) {
	var w test.CompareWriter
	m := newManager(t, newPreferences(t), &display{}, &w)
	defer m.Shutdown()

	test.DemandSuccess(t, m.Startup([]string{"-s", filepath.Join(t.TempDir(), "missing")}))
	test.ExpectEquality(t, m.Spooler().Path(), "")
}

func TestShutdownOnce(t *testing.T) {
	disp := &display{}
	m := newManager(t, newPreferences(t), disp, io.Discard)

	test.DemandSuccess(t, m.Startup(nil))
	m.Shutdown()
	test.ExpectEquality(t, disp.destroy, 1)
	test.ExpectFailure(t, m.Spooler().Active())

	m.Shutdown()
	test.ExpectEquality(t, disp.destroy, 1)
	test.ExpectFailure(t, m.Spooler().Active())
}

func TestDisplayFailure(t *testing.T) {
	p := newPreferences(t)
	env, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	test.DemandSuccess(t, err)

	m, err := lifecycle.NewManager(env, io.Discard, func(_ string, _ *video.Video, _ *keyboard.Keyboard, _ int, _ func()) (lifecycle.Display, error) {
		return nil, errors.New("no window")
	})
	test.DemandSuccess(t, err)
	m.SetSignalInstaller(noSignals)

	err = m.Startup(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, lifecycle.StartupFailure))
	test.ExpectEquality(t, err.Error(), "startup: display: no window")

	// nothing after the display was started
	test.ExpectEquality(t, m.Spooler() == nil, true)

	m.Shutdown()
}

func TestSignalFailure(t *testing.T) {
	disp := &display{}
	m := newManager(t, newPreferences(t), disp, io.Discard)
	m.SetSignalInstaller(func(_ chan<- os.Signal, sig os.Signal) error {
		if sig == syscall.SIGQUIT {
			return errors.New("refused")
		}
		return nil
	})

	err := m.Startup(nil)
	test.ExpectSuccess(t, curated.Is(err, lifecycle.StartupFailure))
	test.ExpectEquality(t, err.Error(), "startup: signals: refused")
	test.ExpectEquality(t, m.Deck() == nil, true)

	m.Shutdown()
	test.ExpectEquality(t, disp.destroy, 1)
}

func TestQuit(t *testing.T) {
	disp := &display{
		onPoll: func(quit func()) {
			quit()
		},
	}
	m := newManager(t, newPreferences(t), disp, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	test.ExpectEquality(t, m.Run(ctx, nil), 0)
	test.ExpectEquality(t, disp.poll, 1)
	test.ExpectEquality(t, disp.refresh, 1)
	test.ExpectEquality(t, disp.destroy, 1)
}

func TestFatalSignal(t *testing.T) {
	disp := &display{}
	m := newManager(t, newPreferences(t), disp, io.Discard)
	defer m.Shutdown()

	test.DemandSuccess(t, m.Startup(nil))
	m.Signal(syscall.SIGTERM)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	test.ExpectEquality(t, m.Execute(ctx), 1)
}

type failingCore struct{}

func (failingCore) Run(_ context.Context) error {
	return errors.New("core failure")
}

func TestCoreFailure(t *testing.T) {
	m := newManager(t, newPreferences(t), &display{}, io.Discard)
	m.SetCoreFactory(func(_ *hardware.Ace, _ cpu.Tape, _ cpu.Interrupter) cpu.Core {
		return failingCore{}
	})

	test.ExpectEquality(t, m.Run(context.Background(), nil), 1)
}

func TestMemviz(t *testing.T) {
	dir := t.TempDir()
	p := newPreferences(t)
	test.DemandSuccess(t, p.Memviz.Set(filepath.Join(dir, "ace")))

	m := newManager(t, p, &display{}, io.Discard)
	test.DemandSuccess(t, m.Startup(nil))
	m.Shutdown()

	matches, err := filepath.Glob(filepath.Join(dir, "ace_memviz_*.dot"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(matches), 1)
}

func TestTapePath(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "games.tap")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x03, 0x00, 0x0a, 0x0b, 0x0c}, 0o644))

	p := newPreferences(t)
	test.DemandSuccess(t, p.TapePath.Set(fn))

	m := newManager(t, p, &display{}, io.Discard)
	defer m.Shutdown()

	var deck cpu.Tape
	m.SetCoreFactory(func(ace *hardware.Ace, dk cpu.Tape, irq cpu.Interrupter) cpu.Core {
		deck = dk
		return lifecycle.DefaultCore(ace, dk, irq)
	})

	test.DemandSuccess(t, m.Startup(nil))
	test.ExpectEquality(t, m.Deck().Path(), fn)
	test.ExpectEquality(t, m.Deck().Kind(), tape.Image)

	// the core services the load trap with the deck it was given
	test.DemandEquality(t, deck != nil, true)
	n, err := deck.LoadInto(m.Ace().Mem, 0x4000, 0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, m.Ace().Mem.Read(0x4000), uint8(0x0a))
	test.ExpectEquality(t, m.Ace().Mem.Read(0x4002), uint8(0x0c))
}

func TestUnusableTapePath(t *testing.T) {
	p := newPreferences(t)
	test.DemandSuccess(t, p.TapePath.Set(filepath.Join(t.TempDir(), "missing.wav")))

	m := newManager(t, p, &display{}, io.Discard)
	defer m.Shutdown()

	test.DemandSuccess(t, m.Startup(nil))
	test.ExpectEquality(t, m.Deck().Kind(), tape.None)
	test.ExpectEquality(t, m.Deck().Path(), "")
}

// records notices and display teardown along with whether the spooler was
// still holding its file at the time
type teardown struct {
	m      *lifecycle.Manager
	events []string
}

func (td *teardown) record(event string) {
	spooling := td.m != nil && td.m.Spooler() != nil && td.m.Spooler().Path() != ""
	td.events = append(td.events, fmt.Sprintf("%s spooling=%v", event, spooling))
}

func (td *teardown) Notify(notice notifications.Notice) error {
	td.record(string(notice))
	return nil
}

func TestTeardownOrder(t *testing.T) {
	dir := t.TempDir()

	listing := filepath.Join(dir, "listing.fs")
	test.DemandSuccess(t, os.WriteFile(listing, []byte("words\n"), 0o644))

	img := filepath.Join(dir, "blank.tap")
	p := newPreferences(t)
	test.DemandSuccess(t, p.TapePath.Set(img))

	td := &teardown{}
	env, err := environment.NewEnvironment(environment.MainEmulation, p, td)
	test.DemandSuccess(t, err)

	disp := &display{}
	disp.onDestroy = func() {
		td.record("destroy")
	}

	m, err := lifecycle.NewManager(env, io.Discard, disp.factory)
	test.DemandSuccess(t, err)
	m.SetSignalInstaller(noSignals)
	td.m = m

	test.DemandSuccess(t, m.Startup([]string{"-s", listing}))
	test.DemandSuccess(t, m.Deck().Save([]uint8{0x01, 0x02, 0x03}))

	td.events = nil
	m.Shutdown()
	test.ExpectEquality(t, fmt.Sprint(td.events), "[NotifyTapeEjected spooling=true destroy spooling=false]")

	data, err := os.ReadFile(img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("% 02x", data), "03 00 01 02 03")

	// second teardown does nothing
	m.Shutdown()
	test.ExpectEquality(t, len(td.events), 2)
	test.ExpectEquality(t, disp.destroy, 1)

	data, err = os.ReadFile(img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), 5)
}
