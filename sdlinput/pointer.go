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

// SDL button numbers are not in the same order as devices.MouseButton.
var mouseButtons = map[devices.MouseButton]uint32{
	devices.MouseButtonLeft:   sdl.BUTTON_LEFT,
	devices.MouseButtonRight:  sdl.BUTTON_RIGHT,
	devices.MouseButtonMiddle: sdl.BUTTON_MIDDLE,
	devices.MouseButtonX1:     sdl.BUTTON_X1,
	devices.MouseButtonX2:     sdl.BUTTON_X2,
}

// pointerFromState converts the values returned by sdl.GetMouseState() to a
// devices.Pointer.
func pointerFromState(x int32, y int32, state uint32, wheel int32) devices.Pointer {
	var down []devices.MouseButton
	for _, b := range devices.MouseButtons {
		if state&sdl.Button(mouseButtons[b]) != 0 {
			down = append(down, b)
		}
	}
	p := devices.NewPointer(x, y, down...)
	p.ScrollWheel = wheel
	return p
}

// wheelDelta returns the vertical movement described by the event. Positive
// values are away from the user regardless of the platform's scroll
// direction setting.
func wheelDelta(ev *sdl.MouseWheelEvent) int32 {
	if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
		return -ev.Y
	}
	return ev.Y
}
