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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/frameinput/logger"
)

const winLogID = "Log"

type winLog struct {
	windowManagement
	img *SdlImgui

	// number of entries at the last draw. used to scroll to the end when a
	// new entry is added
	count int
}

func newWinLog(img *SdlImgui) managedWindow {
	return &winLog{
		img: img,
	}
}

func (win *winLog) id() string {
	return winLogID
}

func (win *winLog) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 360}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 400, Y: 230}, imgui.ConditionFirstUseEver)

	open := win.open
	if imgui.BeginV(win.id(), &open, 0) {
		entries := logger.Entries()

		var clipper imgui.ListClipper
		clipper.Begin(len(entries))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				imgui.Text(entries[i].String())
			}
		}

		if len(entries) != win.count {
			imgui.SetScrollHereY(1.0)
			win.count = len(entries)
		}
	}
	imgui.End()
	win.open = open
}
