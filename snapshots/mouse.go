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

import "github.com/jetsetilly/frameinput/devices"

// the pointer functions return the zero value of the type if the pointer is
// not being tracked.

// Pointer returns the current state of the pointer.
func (s *Store) Pointer() devices.Pointer {
	return s.pointer.current
}

// LastPointer returns the state of the pointer in the previous frame.
func (s *Store) LastPointer() devices.Pointer {
	return s.pointer.previous
}

func (s *Store) IsMouseDown(b devices.MouseButton) bool {
	return isDown(&s.pointer, b)
}

func (s *Store) IsMouseUp(b devices.MouseButton) bool {
	return isUp(&s.pointer, b)
}

func (s *Store) WasMouseDown(b devices.MouseButton) bool {
	return wasDown(&s.pointer, b)
}

func (s *Store) WasMouseUp(b devices.MouseButton) bool {
	return wasUp(&s.pointer, b)
}

// WasMousePressed returns true on the frame the mouse button goes down.
func (s *Store) WasMousePressed(b devices.MouseButton) bool {
	return wasPressed(&s.pointer, b)
}

// WasMouseReleased returns true on the frame the mouse button goes up.
func (s *Store) WasMouseReleased(b devices.MouseButton) bool {
	return wasReleased(&s.pointer, b)
}

// CheckMouseClick returns true if the button has completed a click, ie. it
// was down in the previous frame and is up in this frame. It is the same as
// WasMouseReleased().
func (s *Store) CheckMouseClick(b devices.MouseButton) bool {
	return s.WasMouseReleased(b)
}

// MousePosition returns the current pointer position.
func (s *Store) MousePosition() devices.Point {
	return s.pointer.current.Point()
}

// LastMousePosition returns the pointer position in the previous frame.
func (s *Store) LastMousePosition() devices.Point {
	return s.pointer.previous.Point()
}

// MouseVec2 returns the current pointer position as a vector.
func (s *Store) MouseVec2() devices.Vec2 {
	return s.pointer.current.Vec2()
}

// LastMouseVec2 returns the pointer position in the previous frame as a
// vector.
func (s *Store) LastMouseVec2() devices.Vec2 {
	return s.pointer.previous.Vec2()
}

// ScrollWheel returns the current cumulative scroll wheel value.
func (s *Store) ScrollWheel() int32 {
	return s.pointer.current.ScrollWheel
}

// ScrollDelta returns the change in the scroll wheel value since the
// previous frame.
func (s *Store) ScrollDelta() int32 {
	return s.pointer.current.ScrollWheel - s.pointer.previous.ScrollWheel
}
