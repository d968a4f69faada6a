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

package gui

import (
	"os"

	"github.com/gopherace/gopherace/curated"
	"github.com/gopherace/gopherace/gui/headless"
	"github.com/gopherace/gopherace/gui/sdlace"
	"github.com/gopherace/gopherace/gui/termace"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/preferences"
	"github.com/gopherace/gopherace/hardware/video"
)

// Display is the host side of the emulated screen and keyboard.
type Display interface {
	Refresh()
	PollEvents()
	Destroy()
}

// UnsupportedDisplay is returned by NewDisplay() when the kind of display is
// not recognised.
const UnsupportedDisplay = "gui: unsupported display kind (%s)"

// Config is the information required to create any kind of Display.
type Config struct {
	Video    *video.Video
	Keyboard *keyboard.Keyboard

	// scaling of the SDL window. ignored by other kinds of display
	Scale int

	// called when the user asks to quit
	Quit func()
}

// NewDisplay creates a Display of the named kind. The kind should be one of
// the preferences.Display* values.
func NewDisplay(kind string, cfg Config) (Display, error) {
	if cfg.Quit == nil {
		cfg.Quit = func() {}
	}

	// a nil pointer must not be returned inside a non-nil Display
	switch kind {
	case preferences.DisplaySDL:
		disp, err := sdlace.NewSdlAce(cfg.Video, cfg.Keyboard, cfg.Scale, cfg.Quit)
		if err != nil {
			return nil, err
		}
		return disp, nil
	case preferences.DisplayTerminal:
		disp, err := termace.NewTermAce(cfg.Video, cfg.Keyboard, cfg.Quit)
		if err != nil {
			return nil, err
		}
		return disp, nil
	case preferences.DisplayHeadless:
		disp, err := headless.NewHeadless(os.Stdin, cfg.Keyboard, cfg.Quit)
		if err != nil {
			return nil, err
		}
		return disp, nil
	}

	return nil, curated.Errorf(UnsupportedDisplay, kind)
}
