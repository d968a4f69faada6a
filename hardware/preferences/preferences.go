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

package preferences

import (
	"fmt"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/hardware/memory/memorymap"
	"github.com/gopherace/gopherace/hardware/pacing"
	"github.com/gopherace/gopherace/paths"
	"github.com/gopherace/gopherace/prefs"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "preferences"

// EnvironmentVariable names the environment variable that can hold a prefs
// string overriding values in the preferences file.
const EnvironmentVariable = "GOPHERACE_PREFS"

// The kinds of display that can be chosen with the display.kind preference.
const (
	DisplaySDL      = "sdl"
	DisplayTerminal = "terminal"
	DisplayHeadless = "headless"
)

// Default values.
const (
	DefaultTicksPerSecond = 50
	DefaultTapeDivisor    = 4
	DefaultTrapLoad       = 0x18a7
	DefaultTrapSave       = 0x1820
	DefaultDisplayKind    = DisplaySDL
	DefaultDisplayScale   = 2
	maxDisplayScale       = 8
)

// Preferences defines and collates all the preference values.
type Preferences struct {
	dsk *prefs.Disk

	// number of pacing ticks per second. must divide 1000 exactly
	TicksPerSecond prefs.Int

	// number of interrupts between each tape poll
	TapeDivisor prefs.Int

	// path to the firmware image. if empty the firmware bank is left empty
	FirmwarePath prefs.String

	// addresses in the firmware of the tape load and save routines
	TrapLoad prefs.Int
	TrapSave prefs.Int

	// tape inserted in the deck at startup. a tape image that does not exist
	// yet is created when the first block is saved
	TapePath prefs.String

	// the kind of display and the scaling of the SDL window
	DisplayKind  prefs.String
	DisplayScale prefs.Int

	// launch the statsview server if it is available
	Statsview prefs.Bool

	// file to write a memviz graph of the emulator to on shutdown
	Memviz prefs.String

	// reload preferences when the preferences file changes
	Watch prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("tps=%s divisor=%s display=%s", p.TicksPerSecond.String(), p.TapeDivisor.String(), p.DisplayKind.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file is in the resource directory.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath("", PrefsFile))
}

// NewPreferencesFromFile creates a Preferences instance stored in the named
// file. Values are set to their defaults and then loaded from the file.
func NewPreferencesFromFile(path string) (*Preferences, error) {
	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	p.TicksPerSecond.SetHookPre(func(v prefs.Value) error {
		return pacing.ValidateRate(v.(int))
	})
	p.TapeDivisor.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("preferences: tape divisor must be positive (%d)", v.(int))
		}
		return nil
	})

	trap := func(v prefs.Value) error {
		// a trap is two bytes and must fit in the firmware bank
		if v.(int) < int(memorymap.OriginFirmware) || v.(int) >= int(memorymap.MemtopFirmware) {
			return curated.Errorf("preferences: tape trap not in firmware (%#04x)", v.(int))
		}
		return nil
	}
	p.TrapLoad.SetHookPre(trap)
	p.TrapSave.SetHookPre(trap)
	p.TrapLoad.SetHex(true)
	p.TrapSave.SetHex(true)

	p.DisplayKind.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case DisplaySDL, DisplayTerminal, DisplayHeadless:
			return nil
		}
		return curated.Errorf("preferences: unknown display kind (%s)", v.(string))
	})
	p.DisplayScale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > maxDisplayScale {
			return curated.Errorf("preferences: display scale out of range (%d)", v.(int))
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	for key, v := range map[string]pref{
		"pacing.ticksPerSecond": &p.TicksPerSecond,
		"pacing.tapeDivisor":    &p.TapeDivisor,
		"firmware.path":         &p.FirmwarePath,
		"tape.trapLoad":         &p.TrapLoad,
		"tape.trapSave":         &p.TrapSave,
		"tape.path":             &p.TapePath,
		"display.kind":          &p.DisplayKind,
		"display.scale":         &p.DisplayScale,
		"debug.statsview":       &p.Statsview,
		"debug.memviz":          &p.Memviz,
		"prefs.watch":           &p.Watch,
	} {
		if err := p.dsk.Add(key, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// the subset of prefs types used by Preferences
type pref interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default values. Preferences
// are not saved.
func (p *Preferences) SetDefaults() error {
	for _, d := range []struct {
		p pref
		v prefs.Value
	}{
		{&p.TicksPerSecond, DefaultTicksPerSecond},
		{&p.TapeDivisor, DefaultTapeDivisor},
		{&p.FirmwarePath, ""},
		{&p.TrapLoad, DefaultTrapLoad},
		{&p.TrapSave, DefaultTrapSave},
		{&p.TapePath, ""},
		{&p.DisplayKind, DefaultDisplayKind},
		{&p.DisplayScale, DefaultDisplayScale},
		{&p.Statsview, false},
		{&p.Memviz, ""},
		{&p.Watch, false},
	} {
		if err := d.p.Set(d.v); err != nil {
			return err
		}
	}
	return nil
}

// Disk returns the underlying prefs.Disk. Useful for creating a
// prefs.Watcher.
func (p *Preferences) Disk() *prefs.Disk {
	return p.dsk
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
