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

import "github.com/inkyblackness/imgui-go/v4"

// managedWindow is implemented by every inspector window.
type managedWindow interface {
	id() string
	draw()
	isOpen() bool
	setOpen(bool)
}

// windowManagement is embedded in every managedWindow implementation.
type windowManagement struct {
	open bool
}

func (wm *windowManagement) isOpen() bool {
	return wm.open
}

func (wm *windowManagement) setOpen(open bool) {
	wm.open = open
}

type manager struct {
	img *SdlImgui

	// windows in the order they appear in the menu
	windows []managedWindow
}

func newManager(img *SdlImgui) *manager {
	wm := &manager{
		img: img,
	}

	wm.windows = append(wm.windows,
		newWinKeyboard(img),
		newWinGamepads(img),
		newWinLog(img),
	)

	for _, w := range wm.windows {
		w.setOpen(true)
	}

	return wm
}

func (wm *manager) draw() {
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("Windows") {
			for _, w := range wm.windows {
				if imgui.MenuItemV(w.id(), "", w.isOpen(), true) {
					w.setOpen(!w.isOpen())
				}
			}
			imgui.EndMenu()
		}

		if wm.img.store != nil {
			imgui.Text(frameLabel(wm.img.store.Frame()))
		}

		imgui.EndMainMenuBar()
	}

	if wm.img.store == nil {
		return
	}

	for _, w := range wm.windows {
		if w.isOpen() {
			w.draw()
		}
	}
}
