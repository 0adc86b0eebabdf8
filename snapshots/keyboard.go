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

// Keyboard returns the current state of the keyboard.
func (s *Store) Keyboard() devices.Keyboard {
	return s.keyboard.current
}

// LastKeyboard returns the state of the keyboard in the previous frame.
func (s *Store) LastKeyboard() devices.Keyboard {
	return s.keyboard.previous
}

func (s *Store) IsKeyDown(k devices.Key) bool {
	return isDown(&s.keyboard, k)
}

func (s *Store) IsKeyUp(k devices.Key) bool {
	return isUp(&s.keyboard, k)
}

func (s *Store) WasKeyDown(k devices.Key) bool {
	return wasDown(&s.keyboard, k)
}

func (s *Store) WasKeyUp(k devices.Key) bool {
	return wasUp(&s.keyboard, k)
}

// WasKeyPressed returns true on the frame the key goes down.
func (s *Store) WasKeyPressed(k devices.Key) bool {
	return wasPressed(&s.keyboard, k)
}

// WasKeyReleased returns true on the frame the key goes up.
func (s *Store) WasKeyReleased(k devices.Key) bool {
	return wasReleased(&s.keyboard, k)
}

// PressedKeys returns the keys that are down in the current frame.
func (s *Store) PressedKeys() []devices.Key {
	return s.keyboard.current.PressedKeys()
}

// LastPressedKeys returns the keys that were down in the previous frame.
func (s *Store) LastPressedKeys() []devices.Key {
	return s.keyboard.previous.PressedKeys()
}
