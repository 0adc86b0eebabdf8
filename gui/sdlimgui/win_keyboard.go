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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/frameinput/devices"
)

const winKeyboardID = "Keyboard & Mouse"

type winKeyboard struct {
	windowManagement
	img *SdlImgui
}

func newWinKeyboard(img *SdlImgui) managedWindow {
	return &winKeyboard{
		img: img,
	}
}

func (win *winKeyboard) id() string {
	return winKeyboardID
}

func (win *winKeyboard) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 30}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 400, Y: 320}, imgui.ConditionFirstUseEver)

	open := win.open
	if imgui.BeginV(win.id(), &open, 0) {
		win.drawKeyboard()
		imgui.Spacing()
		win.drawPointer()
	}
	imgui.End()
	win.open = open
}

func (win *winKeyboard) drawKeyboard() {
	store := win.img.store

	imgui.Text("Keyboard")
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Down:      %s", keyList(store.PressedKeys())))
	imgui.Text(fmt.Sprintf("Last down: %s", keyList(store.LastPressedKeys())))

	var pressed []devices.Key
	var released []devices.Key
	for k := devices.KeyNone + 1; k < devices.NumKeys; k++ {
		if store.WasKeyPressed(k) {
			pressed = append(pressed, k)
		} else if store.WasKeyReleased(k) {
			released = append(released, k)
		}
	}
	imgui.Text(fmt.Sprintf("Pressed:   %s", keyList(pressed)))
	imgui.Text(fmt.Sprintf("Released:  %s", keyList(released)))

	shift, ctrl, alt := store.Keyboard().Modifiers()
	imgui.Text(fmt.Sprintf("Shift %v  Ctrl %v  Alt %v", shift, ctrl, alt))
}

func (win *winKeyboard) drawPointer() {
	store := win.img.store

	imgui.Text("Mouse")
	imgui.Separator()
	if !store.HasPointer() {
		imgui.Text("pointer is not being tracked")
		return
	}

	pos := store.MousePosition()
	last := store.LastMousePosition()
	imgui.Text(fmt.Sprintf("Position:  %d, %d (last %d, %d)", pos.X, pos.Y, last.X, last.Y))
	imgui.Text(fmt.Sprintf("Wheel:     %d (delta %+d)", store.ScrollWheel(), store.ScrollDelta()))
	imgui.Text(fmt.Sprintf("Buttons:   %s", mouseButtonList(store.Pointer())))

	if imgui.BeginTableV("mouseButtons", 4, imgui.TableFlagsBorders, imgui.Vec2{}, 0) {
		imgui.TableSetupColumn("Button")
		imgui.TableSetupColumn("Now")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Edge")
		imgui.TableHeadersRow()
		for _, b := range devices.MouseButtons {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(b.String())
			imgui.TableNextColumn()
			imgui.Text(upDown(store.IsMouseDown(b)))
			imgui.TableNextColumn()
			imgui.Text(upDown(store.WasMouseDown(b)))
			imgui.TableNextColumn()
			edge := edgeLabel(store.WasMousePressed(b), store.WasMouseReleased(b))
			if store.CheckMouseClick(b) {
				edge = "click"
			}
			imgui.Text(edge)
		}
		imgui.EndTable()
	}
}

func upDown(down bool) string {
	if down {
		return "down"
	}
	return "up"
}
