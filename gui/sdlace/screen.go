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

	"github.com/gopherace/gopherace/hardware/video"
	"github.com/gopherace/gopherace/version"
	"github.com/veandco/go-sdl2/sdl"
)

// screen colours. the ACE is white on black
var (
	paper = sdl.Color{R: 0, G: 0, B: 0, A: 255}
	ink   = sdl.Color{R: 230, G: 230, B: 230, A: 255}
)

type screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// one rect per lit pixel. reused between frames
	rects []sdl.Rect
}

func newScreen(scale int) (*screen, error) {
	scr := &screen{
		rects: make([]sdl.Rect, 0, video.PixelWidth*video.PixelHeight),
	}

	var err error

	w := int32(video.PixelWidth * scale)
	h := int32(video.PixelHeight * scale)

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdlace: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		return nil, fmt.Errorf("sdlace: %w", err)
	}

	err = scr.renderer.SetScale(float32(scale), float32(scale))
	if err != nil {
		scr.destroy()
		return nil, fmt.Errorf("sdlace: %w", err)
	}

	return scr, nil
}

func (scr *screen) draw(vid *video.Video) error {
	scr.rects = scr.rects[:0]
	for y := 0; y < video.PixelHeight; y++ {
		for x := 0; x < video.PixelWidth; x++ {
			if vid.Pixel(x, y) {
				scr.rects = append(scr.rects, sdl.Rect{X: int32(x), Y: int32(y), W: 1, H: 1})
			}
		}
	}

	err := scr.renderer.SetDrawColor(paper.R, paper.G, paper.B, paper.A)
	if err != nil {
		return err
	}
	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	if len(scr.rects) > 0 {
		err = scr.renderer.SetDrawColor(ink.R, ink.G, ink.B, ink.A)
		if err != nil {
			return err
		}
		err = scr.renderer.FillRects(scr.rects)
		if err != nil {
			return err
		}
	}

	scr.renderer.Present()

	return nil
}

func (scr *screen) destroy() {
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
}
