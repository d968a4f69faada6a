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

package sdlace

import (
	"fmt"

	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/video"
	"github.com/gopherace/gopherace/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const logTag = "sdlace"

// SdlAce is an SDL window showing the ACE screen.
type SdlAce struct {
	vid  *video.Video
	kb   *keyboard.Keyboard
	quit func()

	scr *screen

	// errors from the renderer are logged once
	drawErr bool
}

// NewSdlAce is the preferred method of initialisation for the SdlAce type.
// The window is scale times the size of the ACE screen.
func NewSdlAce(vid *video.Video, kb *keyboard.Keyboard, scale int, quit func()) (*SdlAce, error) {
	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdlace: %w", err)
	}

	ace := &SdlAce{
		vid:  vid,
		kb:   kb,
		quit: quit,
	}

	ace.scr, err = newScreen(scale)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return ace, nil
}

// Refresh implements the gui.Display interface.
func (ace *SdlAce) Refresh() {
	if !ace.vid.Changed() {
		return
	}

	err := ace.scr.draw(ace.vid)
	if err != nil && !ace.drawErr {
		logger.Log(logger.Allow, logTag, err)
		ace.drawErr = true
	}
}

// PollEvents implements the gui.Display interface.
func (ace *SdlAce) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		ace.service(ev)
	}
}

// Destroy implements the gui.Display interface.
func (ace *SdlAce) Destroy() {
	ace.scr.destroy()
	sdl.Quit()
}
