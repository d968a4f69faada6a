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

package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/hardware"
	"github.com/gopherace/gopherace/hardware/cpu"
	"github.com/gopherace/gopherace/hardware/interrupt"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/memory"
	"github.com/gopherace/gopherace/hardware/ports"
	"github.com/gopherace/gopherace/hardware/video"
	"github.com/gopherace/gopherace/logger"
	"github.com/gopherace/gopherace/notifications"
	"github.com/gopherace/gopherace/options"
	"github.com/gopherace/gopherace/paths"
	"github.com/gopherace/gopherace/prefs"
	"github.com/gopherace/gopherace/spooler"
	"github.com/gopherace/gopherace/tape"
)

const logTag = "lifecycle"

// Sentinel error patterns.
const (
	StartupFailure    = "startup: %s: %v"
	QuitRequested     = "lifecycle: quit requested"
	ShutdownRequested = "lifecycle: shutdown requested (%s)"
)

// Display is the view of the display required by the Manager. It is
// satisfied by gui.Display.
type Display interface {
	Refresh()
	PollEvents()
	Destroy()
}

// DisplayFactory creates the display of the named kind. The quit function
// should be called when the user asks to quit.
type DisplayFactory func(kind string, vid *video.Video, kb *keyboard.Keyboard, scale int, quit func()) (Display, error)

// CoreFactory creates the CPU core. The core should call Interrupt() on irq
// for every interrupt. A core that meets one of the tape trap instructions
// should service it with deck.
type CoreFactory func(ace *hardware.Ace, deck cpu.Tape, irq cpu.Interrupter) cpu.Core

// DefaultCore creates a cpu.Halted core. A halted core never meets a tape trap
// so the deck is not used.
func DefaultCore(ace *hardware.Ace, _ cpu.Tape, irq cpu.Interrupter) cpu.Core {
	return cpu.NewHalted(ace.Pacer, irq)
}

// the emulated hardware must satisfy the requirements of a CPU core
var _ cpu.Memory = (*memory.AddressSpace)(nil)
var _ cpu.IO = (*ports.Bus)(nil)
var _ cpu.Tape = (*tape.Deck)(nil)

// Manager owns the emulation and its peripherals.
type Manager struct {
	env    *environment.Environment
	output io.Writer

	newDisplay    DisplayFactory
	newCore       CoreFactory
	installSignal SignalInstaller

	ace     *hardware.Ace
	display Display
	spooler *spooler.Spooler
	deck    *tape.Deck
	watcher *prefs.Watcher
	core    cpu.Core

	sigs chan os.Signal

	// set by the signal goroutine
	shutdown  atomic.Bool
	signalled atomic.Value
	status    atomic.Int32

	// set by the display
	quit atomic.Bool

	teardown sync.Once
}

// NewManager is the preferred method of initialisation for the Manager type.
// Diagnostics about the command line are written to output.
func NewManager(env *environment.Environment, output io.Writer, newDisplay DisplayFactory) (*Manager, error) {
	if newDisplay == nil {
		return nil, curated.Errorf("lifecycle: no display factory")
	}

	ace, err := hardware.NewAce(env)
	if err != nil {
		return nil, curated.Errorf("lifecycle: %v", err)
	}

	return &Manager{
		env:           env,
		output:        output,
		newDisplay:    newDisplay,
		newCore:       DefaultCore,
		installSignal: installSignal,
		ace:           ace,
	}, nil
}

// SetCoreFactory changes how the CPU core is created. Must be called before
// Startup().
func (m *Manager) SetCoreFactory(newCore CoreFactory) {
	m.newCore = newCore
}

// SetSignalInstaller changes how signal handlers are installed. Must be
// called before Startup().
func (m *Manager) SetSignalInstaller(install SignalInstaller) {
	m.installSignal = install
}

// Ace returns the emulated machine.
func (m *Manager) Ace() *hardware.Ace {
	return m.ace
}

// Spooler returns the spooler. Nil until the spooler has been created during
// Startup().
func (m *Manager) Spooler() *spooler.Spooler {
	return m.spooler
}

// Deck returns the tape deck. Nil until the deck has been created during
// Startup().
func (m *Manager) Deck() *tape.Deck {
	return m.deck
}

// Startup performs every startup step in order. The command line arguments
// should not include the program name.
func (m *Manager) Startup(args []string) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{name: "display", fn: m.startDisplay},
		{name: "memory", fn: m.startMemory},
		{name: "ram", fn: m.startRAM},
		{name: "hooks", fn: m.startHooks},
		{name: "signals", fn: m.startSignals},
		{name: "pacing", fn: m.ace.NormalSpeed},
		{name: "options", fn: func() error {
			options.Process(args, m.output, m)
			return nil
		}},
		{name: "tape", fn: m.startTape},
		{name: "keyboard", fn: m.startKeyboard},
		{name: "watcher", fn: m.startWatcher},
		{name: "core", fn: m.startCore},
	}

	for _, s := range steps {
		if err := s.fn(); err != nil {
			return curated.Errorf(StartupFailure, s.name, err)
		}
	}

	logger.Log(m.env, logTag, "startup complete")

	return nil
}

func (m *Manager) startDisplay() error {
	kind := m.env.Prefs.DisplayKind.Get().(string)
	scale := m.env.Prefs.DisplayScale.Get().(int)

	var err error
	m.display, err = m.newDisplay(kind, m.ace.Video, m.ace.Keyboard, scale, m.requestQuit)
	if err != nil {
		return err
	}

	logger.Logf(m.env, logTag, "%s display", kind)
	return nil
}

func (m *Manager) startMemory() error {
	if err := m.ace.LoadFirmware(m.env.Prefs.FirmwarePath.Get().(string)); err != nil {
		return err
	}

	load := uint16(m.env.Prefs.TrapLoad.Get().(int))
	save := uint16(m.env.Prefs.TrapSave.Get().(int))
	return m.ace.Mem.ApplyPatches(tape.Patches(load, save)...)
}

func (m *Manager) startRAM() error {
	m.ace.ClearRAM()
	return nil
}

func (m *Manager) startHooks() error {
	m.spooler = spooler.NewSpooler(m.env, m.ace.Keyboard, m.ace.NormalSpeed)
	m.ace.Coordinator.SetHooks(interrupt.Hooks{
		Refresh:    m.display.Refresh,
		PollEvents: m.display.PollEvents,
		PollTape:   m.spooler.Poll,
	})
	return nil
}

func (m *Manager) startTape() error {
	m.deck = tape.NewDeck(m.env)

	pth := m.env.Prefs.TapePath.Get().(string)
	if pth == "" {
		return nil
	}

	// an unusable tape is not fatal. the deck is left empty
	if err := m.deck.Insert(pth); err != nil {
		logger.Log(m.env, logTag, err)
	}
	return nil
}

func (m *Manager) startKeyboard() error {
	m.ace.Keyboard.Clear()
	return nil
}

func (m *Manager) startWatcher() error {
	if !m.env.Prefs.Watch.Get().(bool) {
		return nil
	}

	var err error
	m.watcher, err = prefs.NewWatcher(m.env.Prefs.Disk())
	return err
}

func (m *Manager) startCore() error {
	m.core = m.newCore(m.ace, m.deck, m)
	if m.core == nil {
		return curated.Errorf("no CPU core")
	}
	return nil
}

// Warp implements the options.Target interface.
func (m *Manager) Warp() {
	m.ace.Warp()
}

// Spool implements the options.Target interface.
func (m *Manager) Spool(path string) error {
	return m.spooler.Open(path)
}

func (m *Manager) requestQuit() {
	m.quit.Store(true)
}

// Interrupt implements the cpu.Interrupter interface. It returns an error
// when the emulation should stop.
func (m *Manager) Interrupt() error {
	if m.shutdown.Load() {
		sig, _ := m.signalled.Load().(string)
		return curated.Errorf(ShutdownRequested, sig)
	}

	m.ace.Coordinator.Interrupt()

	if m.watcher != nil && m.watcher.Changed() {
		m.reload()
	}

	if m.quit.Load() {
		return curated.Errorf(QuitRequested)
	}

	return nil
}

// reload the preferences and apply the values that can change while the
// emulation is running
func (m *Manager) reload() {
	if err := m.env.Prefs.Load(); err != nil {
		logger.Log(m.env, logTag, err)
		return
	}

	if err := m.ace.Coordinator.SetDivisor(m.env.Prefs.TapeDivisor.Get().(int)); err != nil {
		logger.Log(m.env, logTag, err)
	}

	tps := m.env.Prefs.TicksPerSecond.Get().(int)
	if tps != m.ace.Pacer.TicksPerSecond() {
		if err := m.ace.Pacer.Configure(tps); err != nil {
			logger.Log(m.env, logTag, err)
		}
	}

	logger.Log(m.env, logTag, "preferences reloaded")
	if err := m.env.Notify(notifications.NotifyPrefsReloaded); err != nil {
		logger.Log(m.env, logTag, err)
	}
}

// Execute runs the CPU core until it stops and returns the exit status for
// the process. Startup() must have succeeded.
func (m *Manager) Execute(ctx context.Context) int {
	err := m.core.Run(ctx)

	switch {
	case err == nil:
		return 0
	case curated.Is(err, QuitRequested):
		logger.Log(m.env, logTag, err)
		return 0
	case curated.Is(err, ShutdownRequested):
		logger.Log(m.env, logTag, err)
		return int(m.status.Load())
	}

	logger.Log(m.env, logTag, err)
	return 1
}

// Run starts the emulation, runs it to completion and shuts down. Returns the
// exit status for the process.
func (m *Manager) Run(ctx context.Context, args []string) int {
	defer m.Shutdown()

	if err := m.Startup(args); err != nil {
		logger.Log(m.env, logTag, err)
		fmt.Fprintln(m.output, err)
		return 1
	}

	return m.Execute(ctx)
}

// Shutdown releases the peripherals. Only the first call has any effect.
// Errors are logged and otherwise ignored.
func (m *Manager) Shutdown() {
	m.teardown.Do(func() {
		m.dump()

		if m.deck != nil {
			if err := m.deck.Eject(); err != nil {
				logger.Log(m.env, logTag, err)
			}
		}

		if m.spooler != nil {
			if err := m.spooler.Close(); err != nil {
				logger.Log(m.env, logTag, err)
			}
		}

		if m.display != nil {
			m.display.Destroy()
		}

		if m.watcher != nil {
			if err := m.watcher.Close(); err != nil {
				logger.Log(m.env, logTag, err)
			}
		}

		m.stopSignals()
		m.ace.Stop()

		logger.Log(m.env, logTag, "shutdown complete")
	})
}

// the state written by dump()
type snapshot struct {
	Keyboard       *keyboard.Keyboard
	Divisor        int
	TicksPerSecond int
	Measured       float32
	Warp           bool
	Spool          string
	Tape           string
}

func (m *Manager) spoolPath() string {
	if m.spooler == nil {
		return ""
	}
	return m.spooler.Path()
}

func (m *Manager) tapePath() string {
	if m.deck == nil {
		return ""
	}
	return m.deck.Path()
}

// write a memviz graph of the emulator's housekeeping state
func (m *Manager) dump() {
	prefix := m.env.Prefs.Memviz.Get().(string)
	if prefix == "" {
		return
	}

	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename(prefix, "memviz"))
	f, err := os.Create(fn)
	if err != nil {
		logger.Log(m.env, logTag, err)
		return
	}
	defer f.Close()

	memviz.Map(f, &snapshot{
		Keyboard:       m.ace.Keyboard,
		Divisor:        m.ace.Coordinator.Divisor(),
		TicksPerSecond: m.ace.Pacer.TicksPerSecond(),
		Measured:       m.ace.Pacer.Measured(),
		Warp:           m.ace.Pacer.Warp(),
		Spool:          m.spoolPath(),
		Tape:           m.tapePath(),
	})
	logger.Logf(m.env, logTag, "memviz graph written to %s", fn)
}
