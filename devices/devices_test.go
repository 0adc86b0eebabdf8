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

package devices_test

import (
	"testing"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/test"
)

func TestKeyboard(t *testing.T) {
	kb := devices.NewKeyboard(devices.KeyBackslash, devices.KeyA, devices.KeyNone, devices.NumKeys, devices.KeyF12)

	test.ExpectSuccess(t, kb.IsDown(devices.KeyA))
	test.ExpectSuccess(t, kb.IsDown(devices.KeyF12))
	test.ExpectSuccess(t, kb.IsDown(devices.KeyBackslash))
	test.ExpectSuccess(t, kb.IsUp(devices.KeyB))
	test.ExpectFailure(t, kb.IsDown(devices.KeyNone))
	test.ExpectFailure(t, kb.IsDown(devices.NumKeys))
	test.ExpectFailure(t, kb.IsDown(devices.Key(-1)))

	keys := kb.PressedKeys()
	test.DemandEquality(t, len(keys), 3)
	test.ExpectEquality(t, keys[0], devices.KeyA)
	test.ExpectEquality(t, keys[1], devices.KeyF12)
	test.ExpectEquality(t, keys[2], devices.KeyBackslash)

	test.ExpectEquality(t, len(devices.NewKeyboard().PressedKeys()), 0)
}

func TestKeyboardIsValue(t *testing.T) {
	a := devices.NewKeyboard(devices.KeyQ)
	b := a
	test.ExpectEquality(t, a, b)

	b = devices.NewKeyboard(devices.KeyW)
	test.ExpectSuccess(t, a.IsDown(devices.KeyQ))
	test.ExpectFailure(t, a.IsDown(devices.KeyW))
	test.ExpectInequality(t, a, b)
	test.ExpectEquality(t, a, devices.NewKeyboard(devices.KeyQ))
}

func TestModifiers(t *testing.T) {
	shift, control, alt := devices.NewKeyboard(devices.KeyRightShift, devices.KeyLeftAlt).Modifiers()
	test.ExpectSuccess(t, shift)
	test.ExpectFailure(t, control)
	test.ExpectSuccess(t, alt)
}

func TestKeyNames(t *testing.T) {
	test.ExpectEquality(t, devices.KeyA.String(), "A")
	test.ExpectEquality(t, devices.Key9.String(), "9")
	test.ExpectEquality(t, devices.KeyBackslash.String(), "Backslash")
	test.ExpectEquality(t, devices.NumKeys.String(), "Unknown")
	for k := devices.KeyNone; k < devices.NumKeys; k++ {
		test.ExpectInequality(t, k.String(), "", int(k))
	}
}

func TestPointer(t *testing.T) {
	p := devices.NewPointer(5, 6, devices.MouseButtonMiddle, devices.MouseButtonX2, devices.MouseButtonNone)
	test.ExpectSuccess(t, p.IsDown(devices.MouseButtonMiddle))
	test.ExpectSuccess(t, p.IsDown(devices.MouseButtonX2))
	test.ExpectSuccess(t, p.IsUp(devices.MouseButtonLeft))
	test.ExpectFailure(t, p.IsDown(devices.MouseButtonNone))
	test.ExpectEquality(t, p.Point(), devices.Point{X: 5, Y: 6})
	test.ExpectEquality(t, p.Vec2(), devices.Vec2{X: 5, Y: 6})
}

func TestPlayerSlot(t *testing.T) {
	test.ExpectEquality(t, devices.PlayerOne.Slot(), 0)
	test.ExpectEquality(t, devices.PlayerTwo.Slot(), 1)
	test.ExpectEquality(t, devices.PlayerThree.Slot(), 2)
	test.ExpectEquality(t, devices.PlayerFour.Slot(), 3)

	// unrecognised players fall back to slot 3
	test.ExpectEquality(t, devices.Player(0).Slot(), 3)
	test.ExpectEquality(t, devices.Player(5).Slot(), 3)
	test.ExpectEquality(t, devices.Player(-2).Slot(), 3)

	for i, p := range devices.Players {
		test.ExpectEquality(t, p.Slot(), i)
	}
}

func TestGamepad(t *testing.T) {
	g := devices.Gamepad{
		Connected: true,
		Buttons:   devices.GamepadButtonA | devices.GamepadButtonLeftShoulder,
	}
	test.ExpectSuccess(t, g.IsDown(devices.GamepadButtonA))
	test.ExpectSuccess(t, g.IsDown(devices.GamepadButtonLeftShoulder))
	test.ExpectSuccess(t, g.IsUp(devices.GamepadButtonB))
	test.ExpectFailure(t, g.IsDown(devices.GamepadButtonNone))

	g.Connected = false
	test.ExpectFailure(t, g.IsDown(devices.GamepadButtonA))
}

func TestGamepadButtonNames(t *testing.T) {
	test.ExpectEquality(t, devices.GamepadButtonA.String(), "A")
	test.ExpectEquality(t, devices.GamepadButtonNone.String(), "None")
	test.ExpectEquality(t, (devices.GamepadButtonA | devices.GamepadButtonB).String(), "A|B")
}
