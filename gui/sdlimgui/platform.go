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
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/version"
	"github.com/veandco/go-sdl2/sdl"
)

// the frame loop limits the frame rate so buffers are swapped immediately
const syncImmediateUpdate = 0

type platform struct {
	img    *SdlImgui
	window *sdl.Window
	mode   sdl.DisplayMode
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform(img *SdlImgui) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{
		img: img,
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(plt.mode.W)*0.60), int32(float32(plt.mode.H)*0.60),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	glContext, err := plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}
	err = plt.window.GLMakeCurrent(glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	plt.setSwapInterval(syncImmediateUpdate)

	return plt, nil
}

func (plt *platform) setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)
	}
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// windowSize returns the dimension of the window.
func (plt *platform) windowSize() (float32, float32) {
	w, h := plt.window.GetSize()
	return float32(w), float32(h)
}

// framebufferSize returns the dimension of the framebuffer.
func (plt *platform) framebufferSize() (float32, float32) {
	w, h := plt.window.GLGetDrawableSize()
	return float32(w), float32(h)
}

// newFrame marks the begin of a render pass. It forwards all current state to
// imgui.CurrentIO().
func (plt *platform) newFrame() {
	// display size is set every frame to accommodate for window resizing
	w, h := plt.windowSize()
	plt.img.io.SetDisplaySize(imgui.Vec2{X: w, Y: h})

	// the inspector is driven by the same snapshots it is inspecting. if
	// there is no pointer in the store then read the mouse directly
	if plt.img.store != nil && plt.img.store.HasPointer() {
		p := plt.img.store.Pointer()
		plt.img.io.SetMousePosition(imgui.Vec2{X: float32(p.X), Y: float32(p.Y)})
		plt.img.io.SetMouseButtonDown(0, p.IsDown(devices.MouseButtonLeft))
		plt.img.io.SetMouseButtonDown(1, p.IsDown(devices.MouseButtonRight))
		plt.img.io.SetMouseButtonDown(2, p.IsDown(devices.MouseButtonMiddle))
		return
	}

	x, y, state := sdl.GetMouseState()
	plt.img.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		plt.img.io.SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}
