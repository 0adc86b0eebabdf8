// This file is part of Frameinput.
//
// Frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frameinput.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Service the SDL events and draw one frame of the inspector. Returns false
// if the window has been closed.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if img.prv != nil {
			img.prv.HandleEvent(ev)
		}

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit = true

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				img.quit = true
			}

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE && ev.Keysym.Mod&sdl.KMOD_CTRL != 0 {
				img.quit = true
			}
		}
	}

	if img.quit {
		return false
	}

	img.renderFrame()

	return true
}

func (img *SdlImgui) renderFrame() {
	now := time.Now()
	if !img.lastFrame.IsZero() {
		img.io.SetDeltaTime(float32(now.Sub(img.lastFrame).Seconds()))
	}
	img.lastFrame = now

	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	img.wm.draw()

	// this call only creates the draw data list. rendering to the framebuffer
	// is done by the renderer
	imgui.Render()
	img.rnd.preRender()
	img.rnd.render()
	img.plt.postRender()
}
