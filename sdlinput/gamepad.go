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

package sdlinput

import (
	"github.com/jetsetilly/frameinput/devices"
	"github.com/veandco/go-sdl2/sdl"
)

// the maximum magnitude of an SDL axis value
const axisMax = 32767.0

// controllerButtons maps SDL game controller buttons to devices.GamepadButton.
// the order of the list is the order in which the buttons are read
var controllerButtons = []struct {
	sdl    sdl.GameControllerButton
	button devices.GamepadButton
}{
	{sdl.CONTROLLER_BUTTON_A, devices.GamepadButtonA},
	{sdl.CONTROLLER_BUTTON_B, devices.GamepadButtonB},
	{sdl.CONTROLLER_BUTTON_X, devices.GamepadButtonX},
	{sdl.CONTROLLER_BUTTON_Y, devices.GamepadButtonY},
	{sdl.CONTROLLER_BUTTON_BACK, devices.GamepadButtonBack},
	{sdl.CONTROLLER_BUTTON_GUIDE, devices.GamepadButtonGuide},
	{sdl.CONTROLLER_BUTTON_START, devices.GamepadButtonStart},
	{sdl.CONTROLLER_BUTTON_LEFTSTICK, devices.GamepadButtonLeftStick},
	{sdl.CONTROLLER_BUTTON_RIGHTSTICK, devices.GamepadButtonRightStick},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, devices.GamepadButtonLeftShoulder},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, devices.GamepadButtonRightShoulder},
	{sdl.CONTROLLER_BUTTON_DPAD_UP, devices.GamepadButtonDPadUp},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, devices.GamepadButtonDPadDown},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, devices.GamepadButtonDPadLeft},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, devices.GamepadButtonDPadRight},
}

// index into the axes array of the raw type
const (
	axisLeftX = iota
	axisLeftY
	axisRightX
	axisRightY
	axisTriggerLeft
	axisTriggerRight
	numAxes
)

var controllerAxes = [numAxes]sdl.GameControllerAxis{
	axisLeftX:        sdl.CONTROLLER_AXIS_LEFTX,
	axisLeftY:        sdl.CONTROLLER_AXIS_LEFTY,
	axisRightX:       sdl.CONTROLLER_AXIS_RIGHTX,
	axisRightY:       sdl.CONTROLLER_AXIS_RIGHTY,
	axisTriggerLeft:  sdl.CONTROLLER_AXIS_TRIGGERLEFT,
	axisTriggerRight: sdl.CONTROLLER_AXIS_TRIGGERRIGHT,
}

// raw is the unprocessed state of a game controller.
type raw struct {
	buttons devices.GamepadButton
	axes    [numAxes]int16
}

func readController(ctrl *sdl.GameController) raw {
	var r raw
	for _, b := range controllerButtons {
		if ctrl.Button(b.sdl) != 0 {
			r.buttons |= b.button
		}
	}
	for i, a := range controllerAxes {
		r.axes[i] = ctrl.Axis(a)
	}
	return r
}

// normaliseAxis returns the axis value in the range -1.0 to 1.0.
func normaliseAxis(v int16) float32 {
	f := float32(v) / axisMax
	if f < -1.0 {
		return -1.0
	}
	return f
}

// normaliseTrigger returns the trigger value in the range 0.0 to 1.0.
func normaliseTrigger(v int16) float32 {
	if v < 0 {
		return 0.0
	}
	return float32(v) / axisMax
}

// deadzone applies the deadzone to a single normalised axis value. values
// outside the deadzone are rescaled so that the full range is still available.
func deadzone(v float32, dz float32) float32 {
	switch {
	case v > dz:
		return (v - dz) / (1.0 - dz)
	case v < -dz:
		return (v + dz) / (1.0 - dz)
	}
	return 0.0
}

// thumbstick returns the thumbstick vector for the raw axis values. SDL
// reports positive Y as down.
func thumbstick(x int16, y int16, dz float32) devices.Vec2 {
	return devices.Vec2{
		X: deadzone(normaliseAxis(x), dz),
		Y: -deadzone(normaliseAxis(y), dz),
	}
}

// directions returns the four thumbstick direction buttons for the vector.
func directions(v devices.Vec2, up, down, left, right devices.GamepadButton) devices.GamepadButton {
	var b devices.GamepadButton
	if v.Y > 0 {
		b |= up
	} else if v.Y < 0 {
		b |= down
	}
	if v.X < 0 {
		b |= left
	} else if v.X > 0 {
		b |= right
	}
	return b
}

// gamepadFromRaw converts raw controller state to a connected devices.Gamepad.
// the packet number is not set.
func gamepadFromRaw(r raw, dz float32, threshold float32) devices.Gamepad {
	g := devices.Gamepad{
		Connected: true,
		Buttons:   r.buttons,
		Thumbsticks: devices.Thumbsticks{
			Left:  thumbstick(r.axes[axisLeftX], r.axes[axisLeftY], dz),
			Right: thumbstick(r.axes[axisRightX], r.axes[axisRightY], dz),
		},
		Triggers: devices.Triggers{
			Left:  normaliseTrigger(r.axes[axisTriggerLeft]),
			Right: normaliseTrigger(r.axes[axisTriggerRight]),
		},
		DPad: devices.DPad{
			Up:    r.buttons&devices.GamepadButtonDPadUp != 0,
			Down:  r.buttons&devices.GamepadButtonDPadDown != 0,
			Left:  r.buttons&devices.GamepadButtonDPadLeft != 0,
			Right: r.buttons&devices.GamepadButtonDPadRight != 0,
		},
	}

	if g.Triggers.Left > threshold {
		g.Buttons |= devices.GamepadButtonLeftTrigger
	}
	if g.Triggers.Right > threshold {
		g.Buttons |= devices.GamepadButtonRightTrigger
	}

	g.Buttons |= directions(g.Thumbsticks.Left,
		devices.GamepadButtonLeftThumbstickUp, devices.GamepadButtonLeftThumbstickDown,
		devices.GamepadButtonLeftThumbstickLeft, devices.GamepadButtonLeftThumbstickRight)
	g.Buttons |= directions(g.Thumbsticks.Right,
		devices.GamepadButtonRightThumbstickUp, devices.GamepadButtonRightThumbstickDown,
		devices.GamepadButtonRightThumbstickLeft, devices.GamepadButtonRightThumbstickRight)

	return g
}

// pad is a game controller assigned to a player slot.
type pad struct {
	ctrl *sdl.GameController
	id   sdl.JoystickID
	name string

	// the most recent state and its packet number
	state  devices.Gamepad
	packet uint32
}

// query reads the controller and increments the packet number if the state
// has changed since the previous query.
func (p *pad) query(dz float32, threshold float32) devices.Gamepad {
	g := gamepadFromRaw(readController(p.ctrl), dz, threshold)
	g.PacketNumber = p.packet
	if g != p.state {
		p.packet++
		g.PacketNumber = p.packet
	}
	p.state = g
	return g
}
