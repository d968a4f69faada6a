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

package termace

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/gopherace/gopherace/hardware/keyboard"
	"github.com/gopherace/gopherace/hardware/video"
)

// maximum number of terminal events waiting to be serviced. further events
// are dropped
const queueLen = 64

// TermAce draws the ACE screen in a terminal.
type TermAce struct {
	vid   *video.Video
	typer *keyboard.Typer
	quit  func()

	scr    tcell.Screen
	events chan tcell.Event

	// draw the screen on the next Refresh() even if video memory is unchanged
	force bool
}

// NewTermAce is the preferred method of initialisation for the TermAce type.
func NewTermAce(vid *video.Video, kb *keyboard.Keyboard, quit func()) (*TermAce, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termace: %w", err)
	}
	return newTermAce(scr, vid, kb, quit)
}

func newTermAce(scr tcell.Screen, vid *video.Video, kb *keyboard.Keyboard, quit func()) (*TermAce, error) {
	err := scr.Init()
	if err != nil {
		return nil, fmt.Errorf("termace: %w", err)
	}
	scr.HideCursor()
	scr.Clear()

	ace := &TermAce{
		vid:    vid,
		typer:  keyboard.NewTyper(kb),
		quit:   quit,
		scr:    scr,
		events: make(chan tcell.Event, queueLen),
		force:  true,
	}

	// PollEvent() blocks so it has a goroutine of its own. it returns nil
	// once the screen has been finalised
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ace.events <- ev:
			default:
			}
		}
	}()

	return ace, nil
}

// Refresh implements the gui.Display interface.
func (ace *TermAce) Refresh() {
	if !ace.vid.Changed() && !ace.force {
		return
	}
	ace.force = false

	for row := 0; row < video.Rows; row++ {
		for col := 0; col < video.Columns; col++ {
			ch, style := cell(ace.vid.Cell(col, row))
			ace.scr.SetContent(col, row, ch, nil, style)
		}
	}

	ace.scr.Show()
}

// cell returns the terminal character and style for the ACE character code.
func cell(code uint8) (rune, tcell.Style) {
	style := tcell.StyleDefault
	if code&0x80 == 0x80 {
		style = style.Reverse(true)
	}

	ch := rune(code & 0x7f)
	switch {
	case ch == 0x60:
		ch = '£'
	case ch == 0x7f:
		ch = '©'
	case ch < 0x20:
		ch = ' '
	}

	return ch, style
}

// PollEvents implements the gui.Display interface.
func (ace *TermAce) PollEvents() {
	for drained := false; !drained; {
		select {
		case ev := <-ace.events:
			ace.service(ev)
		default:
			drained = true
		}
	}

	ace.typer.Step()
}

func (ace *TermAce) service(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		ace.scr.Sync()
		ace.force = true

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ace.quit()
		case tcell.KeyEnter:
			ace.typer.Push('\n')
		case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
			ace.typer.Push('\b')
		case tcell.KeyRune:
			ace.typer.Push(ev.Rune())
		}
	}
}

// Destroy implements the gui.Display interface.
func (ace *TermAce) Destroy() {
	ace.typer.Reset()
	ace.scr.Fini()
}
