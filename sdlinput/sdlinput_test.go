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
	"testing"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestScancodeTable(t *testing.T) {
	seen := make(map[sdl.Scancode]devices.Key)
	for k := devices.KeyNone + 1; k < devices.NumKeys; k++ {
		sc := scancodes[k]
		test.ExpectInequality(t, sc, sdl.Scancode(sdl.SCANCODE_UNKNOWN), k)
		if o, ok := seen[sc]; ok {
			t.Errorf("%v and %v share a scancode", o, k)
		}
		seen[sc] = k
	}
}

func TestKeyboardFromState(t *testing.T) {
	state := make([]uint8, sdl.NUM_SCANCODES)
	state[sdl.SCANCODE_A] = 1
	state[sdl.SCANCODE_LSHIFT] = 1

	kb := keyboardFromState(state)
	test.ExpectEquality(t, kb.IsDown(devices.KeyA), true)
	test.ExpectEquality(t, kb.IsDown(devices.KeyLeftShift), true)
	test.ExpectEquality(t, kb.IsDown(devices.KeyB), false)
	test.ExpectEquality(t, len(kb.PressedKeys()), 2)

	// a short state array does not panic
	kb = keyboardFromState(state[:2])
	test.ExpectEquality(t, len(kb.PressedKeys()), 0)
}

func TestPointerFromState(t *testing.T) {
	state := sdl.Button(sdl.BUTTON_RIGHT) | sdl.Button(sdl.BUTTON_X2)
	p := pointerFromState(10, 20, state, -3)
	test.ExpectEquality(t, p.X, int32(10))
	test.ExpectEquality(t, p.Y, int32(20))
	test.ExpectEquality(t, p.ScrollWheel, int32(-3))
	test.ExpectEquality(t, p.IsDown(devices.MouseButtonRight), true)
	test.ExpectEquality(t, p.IsDown(devices.MouseButtonX2), true)
	test.ExpectEquality(t, p.IsDown(devices.MouseButtonLeft), false)
	test.ExpectEquality(t, p.IsDown(devices.MouseButtonMiddle), false)
}

func TestWheelDelta(t *testing.T) {
	ev := &sdl.MouseWheelEvent{Y: 2, Direction: sdl.MOUSEWHEEL_NORMAL}
	test.ExpectEquality(t, wheelDelta(ev), int32(2))
	ev.Direction = sdl.MOUSEWHEEL_FLIPPED
	test.ExpectEquality(t, wheelDelta(ev), int32(-2))
}

func TestAxes(t *testing.T) {
	test.ExpectEquality(t, normaliseAxis(0), float32(0.0))
	test.ExpectEquality(t, normaliseAxis(32767), float32(1.0))
	test.ExpectEquality(t, normaliseAxis(-32768), float32(-1.0))

	test.ExpectEquality(t, normaliseTrigger(-100), float32(0.0))
	test.ExpectEquality(t, normaliseTrigger(32767), float32(1.0))

	test.ExpectEquality(t, deadzone(0.2, 0.25), float32(0.0))
	test.ExpectEquality(t, deadzone(-0.2, 0.25), float32(0.0))
	test.ExpectEquality(t, deadzone(1.0, 0.25), float32(1.0))
	test.ExpectEquality(t, deadzone(-1.0, 0.25), float32(-1.0))
	test.ExpectApproximate(t, deadzone(0.625, 0.25), float32(0.5), 0.001)
}

func TestGamepadFromRaw(t *testing.T) {
	var r raw
	r.buttons = devices.GamepadButtonA | devices.GamepadButtonDPadLeft
	r.axes[axisLeftX] = 32767
	r.axes[axisLeftY] = 32767
	r.axes[axisRightX] = 1000
	r.axes[axisTriggerLeft] = 10000
	r.axes[axisTriggerRight] = 30000

	g := gamepadFromRaw(r, 0.2, 0.5)
	test.ExpectEquality(t, g.Connected, true)
	test.ExpectEquality(t, g.IsDown(devices.GamepadButtonA), true)
	test.ExpectEquality(t, g.DPad, devices.DPad{Left: true})

	// positive SDL Y is down
	test.ExpectEquality(t, g.Thumbsticks.Left, devices.Vec2{X: 1.0, Y: -1.0})
	test.ExpectEquality(t, g.IsDown(devices.GamepadButtonLeftThumbstickDown), true)
	test.ExpectEquality(t, g.IsDown(devices.GamepadButtonLeftThumbstickRight), true)
	test.ExpectEquality(t, g.IsDown(devices.GamepadButtonLeftThumbstickUp), false)

	// inside the deadzone
	test.ExpectEquality(t, g.Thumbsticks.Right, devices.Vec2{})
	test.ExpectEquality(t, g.IsDown(devices.GamepadButtonRightThumbstickRight), false)

	test.ExpectEquality(t, g.IsDown(devices.GamepadButtonLeftTrigger), false)
	test.ExpectEquality(t, g.IsDown(devices.GamepadButtonRightTrigger), true)
	test.ExpectApproximate(t, g.Triggers.Right, float32(30000.0/32767.0), 0.001)
}

func TestRumble(t *testing.T) {
	test.ExpectEquality(t, rumble(-1.0), uint16(0))
	test.ExpectEquality(t, rumble(0.0), uint16(0))
	test.ExpectEquality(t, rumble(0.5), uint16(0x7fff))
	test.ExpectEquality(t, rumble(1.0), uint16(0xffff))
	test.ExpectEquality(t, rumble(2.0), uint16(0xffff))
}

func TestInvalidParameters(t *testing.T) {
	_, err := NewProvider(1.0, 0.5)
	test.ExpectFailure(t, err)
	_, err = NewProvider(-0.1, 0.5)
	test.ExpectFailure(t, err)
	_, err = NewProvider(0.2, 1.5)
	test.ExpectFailure(t, err)
}
