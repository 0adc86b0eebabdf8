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
	"testing"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/snapshots"
	"github.com/jetsetilly/frameinput/test"
)

func TestLabels(t *testing.T) {
	test.ExpectEquality(t, frameLabel(0), "seeded")
	test.ExpectEquality(t, frameLabel(12), "frame 12")

	test.ExpectEquality(t, keyList(nil), noneLabel)
	test.ExpectEquality(t, keyList([]devices.Key{devices.KeyA, devices.KeySpace}), "A, Space")

	test.ExpectEquality(t, edgeLabel(true, false), "pressed")
	test.ExpectEquality(t, edgeLabel(false, true), "released")
	test.ExpectEquality(t, edgeLabel(false, false), "")

	p := devices.NewPointer(0, 0, devices.MouseButtonLeft, devices.MouseButtonX1)
	test.ExpectEquality(t, mouseButtonList(p), "Left, X1")
	test.ExpectEquality(t, mouseButtonList(devices.Pointer{}), noneLabel)

	g := devices.Gamepad{Connected: true, Buttons: devices.GamepadButtonA | devices.GamepadButtonB}
	test.ExpectEquality(t, gamepadButtonList(g), "A, B")
	g.Connected = false
	test.ExpectEquality(t, gamepadButtonList(g), noneLabel)

	test.ExpectEquality(t, vecLabel(devices.Vec2{X: 0.5, Y: -1}), "+0.50, -1.00")
	test.ExpectEquality(t, dpadLabel(devices.DPad{Up: true, Left: true}), "Up, Left")
	test.ExpectEquality(t, dpadLabel(devices.DPad{}), noneLabel)

	test.ExpectEquality(t, matchLabel(snapshots.Match{}, false), noneLabel)
	test.ExpectEquality(t, matchLabel(snapshots.Match{Device: snapshots.DeviceKeyboard, Player: devices.PlayerOne}, true), "keyboard")
	test.ExpectEquality(t, matchLabel(snapshots.Match{Device: snapshots.DeviceGamepad, Player: devices.PlayerThree}, true), "gamepad (player Three)")
}
