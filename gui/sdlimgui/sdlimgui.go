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
	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/paths"
	"github.com/jetsetilly/frameinput/sdlinput"
	"github.com/jetsetilly/frameinput/snapshots"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "inspector_imgui.ini"

// SdlImgui is an sdl based inspector using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     renderer

	// set by Attach()
	store *snapshots.Store
	prv   *sdlinput.Provider

	// imgui window management
	wm *manager

	// whether vibration commands are sent from the gamepads window
	vibration bool

	// set when the window is closed
	quit bool

	// time of the previous call to renderFrame()
	lastFrame time.Time
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui. SDL
// is initialised by this function and so the sdlinput.Provider should be
// created after it returns.
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui() (*SdlImgui, error) {
	img := &SdlImgui{
		context:   imgui.CreateContext(nil),
		io:        imgui.CurrentIO(),
		vibration: true,
	}

	iniPath, err := paths.ResourcePath(imguiIniFile)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.rnd = newRenderer(img)

	img.plt, err = newPlatform(img)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	err = img.rnd.start()
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.rnd.addFontTexture(img.io.Fonts())

	img.wm = newManager(img)

	return img, nil
}

// Attach the store to be inspected and the provider it is using. The provider
// receives the SDL events collected by the service loop.
func (img *SdlImgui) Attach(store *snapshots.Store, prv *sdlinput.Provider) {
	img.store = store
	img.prv = prv
}

// SetVibration enables or disables the vibration controls.
func (img *SdlImgui) SetVibration(enabled bool) {
	img.vibration = enabled
}

// Destroy implements GuiCreator interface
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy() {
	img.rnd.destroy()
	if err := img.plt.destroy(); err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}
	img.context.Destroy()
}
