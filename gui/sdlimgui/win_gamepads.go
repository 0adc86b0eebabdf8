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
	"github.com/jetsetilly/frameinput/logger"
)

const winGamepadsID = "Gamepads"

type winGamepads struct {
	windowManagement
	img *SdlImgui

	// vibration slider values for each player
	left  [devices.NumSlots]float32
	right [devices.NumSlots]float32
}

func newWinGamepads(img *SdlImgui) managedWindow {
	return &winGamepads{
		img: img,
	}
}

func (win *winGamepads) id() string {
	return winGamepadsID
}

func (win *winGamepads) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 420, Y: 30}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 420, Y: 560}, imgui.ConditionFirstUseEver)

	open := win.open
	if imgui.BeginV(win.id(), &open, 0) {
		store := win.img.store

		m, ok := store.PressedByAnyPlayer(devices.GamepadButtonA, devices.KeySpace)
		imgui.Text(fmt.Sprintf("A or Space pressed by:  %s", matchLabel(m, ok)))
		m, ok = store.ReleasedByAnyPlayer(devices.GamepadButtonA, devices.KeySpace)
		imgui.Text(fmt.Sprintf("A or Space released by: %s", matchLabel(m, ok)))

		for i, p := range devices.Players {
			imgui.Spacing()
			win.drawPlayer(i, p)
		}
	}
	imgui.End()
	win.open = open
}

func (win *winGamepads) drawPlayer(slot int, p devices.Player) {
	store := win.img.store

	label := fmt.Sprintf("Player %s", p)
	if win.img.prv != nil {
		if name := win.img.prv.GamepadName(slot); name != "" {
			label = fmt.Sprintf("%s: %s", label, name)
		}
	}

	if !imgui.CollapsingHeader(label) {
		return
	}

	if !store.IsConnected(p) {
		imgui.Text("not connected")
		return
	}

	g := store.Gamepad(p)
	imgui.Text(fmt.Sprintf("Packet:    %d", g.PacketNumber))
	imgui.Text(fmt.Sprintf("Buttons:   %s", gamepadButtonList(g)))
	imgui.Text(fmt.Sprintf("Last:      %s", gamepadButtonList(store.LastGamepad(p))))

	var pressed, released devices.GamepadButton
	for b := devices.GamepadButtonDPadUp; b <= devices.GamepadButtonRightThumbstickRight; b <<= 1 {
		if store.WasButtonPressed(p, b) {
			pressed |= b
		} else if store.WasButtonReleased(p, b) {
			released |= b
		}
	}
	imgui.Text(fmt.Sprintf("Pressed:   %s", gamepadButtonList(devices.Gamepad{Connected: true, Buttons: pressed})))
	imgui.Text(fmt.Sprintf("Released:  %s", gamepadButtonList(devices.Gamepad{Connected: true, Buttons: released})))

	imgui.Text(fmt.Sprintf("Left:      %s", vecLabel(store.LeftThumb(p))))
	imgui.Text(fmt.Sprintf("Right:     %s", vecLabel(store.RightThumb(p))))
	imgui.Text(fmt.Sprintf("DPad:      %s", dpadLabel(store.DPad(p))))

	imgui.ProgressBarV(store.LeftTrigger(p), imgui.Vec2{X: 150}, fmt.Sprintf("LT %.2f", store.LeftTrigger(p)))
	imgui.SameLine()
	imgui.ProgressBarV(store.RightTrigger(p), imgui.Vec2{X: 150}, fmt.Sprintf("RT %.2f", store.RightTrigger(p)))

	if !win.img.vibration {
		return
	}

	changed := imgui.SliderFloat(fmt.Sprintf("Low##%d", slot), &win.left[slot], 0.0, 1.0)
	changed = imgui.SliderFloat(fmt.Sprintf("High##%d", slot), &win.right[slot], 0.0, 1.0) || changed
	if changed {
		err := store.Vibrate(p, win.left[slot], win.right[slot])
		if err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
	}
	if imgui.Button(fmt.Sprintf("Stop##%d", slot)) {
		win.left[slot] = 0.0
		win.right[slot] = 0.0
		err := store.StopVibration(p)
		if err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
	}
}
