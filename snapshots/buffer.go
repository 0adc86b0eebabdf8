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

package snapshots

// pressable is implemented by the device types in the devices package.
type pressable[B any] interface {
	IsDown(B) bool
	IsUp(B) bool
}

// buffer is the current and previous state of a single device.
type buffer[T any] struct {
	current  T
	previous T
}

// seed sets both the current and previous state.
func (buf *buffer[T]) seed(v T) {
	buf.current = v
	buf.previous = v
}

// rotate makes the current state the previous state. the current state is
// left unchanged until it is replaced.
func (buf *buffer[T]) rotate() {
	buf.previous = buf.current
}

func isDown[T pressable[B], B any](buf *buffer[T], b B) bool {
	return buf.current.IsDown(b)
}

func isUp[T pressable[B], B any](buf *buffer[T], b B) bool {
	return buf.current.IsUp(b)
}

func wasDown[T pressable[B], B any](buf *buffer[T], b B) bool {
	return buf.previous.IsDown(b)
}

func wasUp[T pressable[B], B any](buf *buffer[T], b B) bool {
	return buf.previous.IsUp(b)
}

// wasPressed is true only on the frame where the button goes from up to down.
func wasPressed[T pressable[B], B any](buf *buffer[T], b B) bool {
	return isDown(buf, b) && wasUp(buf, b)
}

// wasReleased is true only on the frame where the button goes from down to up.
func wasReleased[T pressable[B], B any](buf *buffer[T], b B) bool {
	return isUp(buf, b) && wasDown(buf, b)
}
