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

package devices

// MouseButton identifies a button on the pointer device.
type MouseButton int

// List of MouseButton values. MouseButtonNone is never down.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
)

// MouseButtons lists every real mouse button.
var MouseButtons = []MouseButton{
	MouseButtonLeft,
	MouseButtonRight,
	MouseButtonMiddle,
	MouseButtonX1,
	MouseButtonX2,
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonX1:
		return "X1"
	case MouseButtonX2:
		return "X2"
	}
	return "None"
}

// Point is an integer screen position.
type Point struct {
	X int32
	Y int32
}

// Pointer is the state of the mouse at one instant.
type Pointer struct {
	X int32
	Y int32

	// cumulative scroll wheel value since the provider was created
	ScrollWheel int32

	// bit n is set if MouseButton n is down
	Buttons uint8
}

// NewPointer returns a Pointer at x, y with the listed buttons down.
func NewPointer(x int32, y int32, buttons ...MouseButton) Pointer {
	p := Pointer{X: x, Y: y}
	for _, b := range buttons {
		if b <= MouseButtonNone || b > MouseButtonX2 {
			continue
		}
		p.Buttons |= 1 << uint(b)
	}
	return p
}

// IsDown returns true if the mouse button is down.
func (p Pointer) IsDown(b MouseButton) bool {
	if b <= MouseButtonNone || b > MouseButtonX2 {
		return false
	}
	return p.Buttons&(1<<uint(b)) != 0
}

// IsUp returns true if the mouse button is not down.
func (p Pointer) IsUp(b MouseButton) bool {
	return !p.IsDown(b)
}

// Point returns the pointer position as a Point.
func (p Pointer) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Vec2 returns the pointer position as a Vec2.
func (p Pointer) Vec2() Vec2 {
	return Vec2{X: float32(p.X), Y: float32(p.Y)}
}
