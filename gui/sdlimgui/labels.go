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
	"strings"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/snapshots"
)

const noneLabel = "-"

func frameLabel(frame int) string {
	if frame == 0 {
		return "seeded"
	}
	return fmt.Sprintf("frame %d", frame)
}

// keyList returns a comma separated list of key names.
func keyList(keys []devices.Key) string {
	if len(keys) == 0 {
		return noneLabel
	}
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = k.String()
	}
	return strings.Join(s, ", ")
}

// edgeLabel describes the transition of a button or key between the previous
// and current frame.
func edgeLabel(pressed bool, released bool) string {
	switch {
	case pressed:
		return "pressed"
	case released:
		return "released"
	}
	return ""
}

// mouseButtonList returns a comma separated list of mouse buttons that are
// down.
func mouseButtonList(p devices.Pointer) string {
	var s []string
	for _, b := range devices.MouseButtons {
		if p.IsDown(b) {
			s = append(s, b.String())
		}
	}
	if len(s) == 0 {
		return noneLabel
	}
	return strings.Join(s, ", ")
}

// gamepadButtonList returns a comma separated list of gamepad buttons that
// are down.
func gamepadButtonList(g devices.Gamepad) string {
	if !g.Connected || g.Buttons == devices.GamepadButtonNone {
		return noneLabel
	}
	return strings.ReplaceAll(g.Buttons.String(), "|", ", ")
}

func vecLabel(v devices.Vec2) string {
	return fmt.Sprintf("%+.2f, %+.2f", v.X, v.Y)
}

func dpadLabel(d devices.DPad) string {
	var s []string
	if d.Up {
		s = append(s, "Up")
	}
	if d.Down {
		s = append(s, "Down")
	}
	if d.Left {
		s = append(s, "Left")
	}
	if d.Right {
		s = append(s, "Right")
	}
	if len(s) == 0 {
		return noneLabel
	}
	return strings.Join(s, ", ")
}

func matchLabel(m snapshots.Match, ok bool) string {
	if !ok {
		return noneLabel
	}
	if m.Device == snapshots.DeviceKeyboard {
		return m.Device.String()
	}
	return fmt.Sprintf("%s (player %s)", m.Device, m.Player)
}
