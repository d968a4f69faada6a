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

package hardware

import (
	"os"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/environment"
	"github.com/gopherace/gopherace/hardware/interrupt"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/memory"
	"github.com/gopherace/gopherace/hardware/memory/memorymap"
	"github.com/gopherace/gopherace/hardware/pacing"
	"github.com/gopherace/gopherace/hardware/ports"
	"github.com/gopherace/gopherace/hardware/video"
	"github.com/gopherace/gopherace/logger"
)

// Ace is the main container for the emulated components of the machine.
type Ace struct {
	Env *environment.Environment

	Mem         *memory.AddressSpace
	Keyboard    *keyboard.Keyboard
	Ports       *ports.Bus
	Video       *video.Video
	Pacer       *pacing.Timer
	Coordinator *interrupt.Coordinator
}

// NewAce creates a new Ace and everything associated with the hardware. The
// pacing timer is not armed until NormalSpeed() is called.
func NewAce(env *environment.Environment) (*Ace, error) {
	ace := &Ace{
		Env:      env,
		Mem:      memory.NewAddressSpace(),
		Keyboard: keyboard.NewKeyboard(),
		Pacer:    pacing.NewTimer(),
	}

	ace.Ports = ports.NewBus(ace.Keyboard)
	ace.Video = video.NewVideo(ace.Mem)
	ace.Coordinator = interrupt.NewCoordinator(ace.Pacer)

	if err := ace.Coordinator.SetDivisor(env.Prefs.TapeDivisor.Get().(int)); err != nil {
		return nil, curated.Errorf("ace: %v", err)
	}

	return ace, nil
}

// LoadFirmware loads the firmware image from the named file into bank 0. An
// empty filename leaves the firmware bank untouched.
func (ace *Ace) LoadFirmware(filename string) error {
	if filename == "" {
		logger.Log(ace.Env, "ace", "no firmware image specified")
		return nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("ace: %v", err)
	}
	defer f.Close()

	if err := ace.Mem.LoadFirmware(f); err != nil {
		return curated.Errorf("ace: %v", err)
	}

	logger.Logf(ace.Env, "ace", "firmware loaded from %s", filename)
	return nil
}

// ClearRAM fills all memory above the firmware with the RAM fill value.
func (ace *Ace) ClearRAM() {
	ace.Mem.Fill(memorymap.OriginRAM, memorymap.FillValue)
}

// NormalSpeed arms the pacing timer at the rate in the preferences and turns
// warp mode off.
func (ace *Ace) NormalSpeed() error {
	if err := ace.Pacer.Configure(ace.Env.Prefs.TicksPerSecond.Get().(int)); err != nil {
		return curated.Errorf("ace: %v", err)
	}
	ace.Pacer.SetWarp(false)
	return nil
}

// Warp enables warp mode. The pacing timer is left running.
func (ace *Ace) Warp() {
	ace.Pacer.SetWarp(true)
}

// Stop the pacing timer.
func (ace *Ace) Stop() {
	ace.Pacer.Stop()
}
