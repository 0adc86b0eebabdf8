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

// DefaultPlayer is the player used by functions that do not take a Player
// argument.
const DefaultPlayer = devices.PlayerOne

func (s *Store) pad(p devices.Player) *buffer[devices.Gamepad] {
	return &s.gamepads[p.Slot()]
}

// Gamepads returns the current state of all gamepads in slot order.
func (s *Store) Gamepads() [devices.NumSlots]devices.Gamepad {
	var g [devices.NumSlots]devices.Gamepad
	for i := range s.gamepads {
		g[i] = s.gamepads[i].current
	}
	return g
}

// Gamepad returns the current state of the player's gamepad.
func (s *Store) Gamepad(p devices.Player) devices.Gamepad {
	return s.pad(p).current
}

// LastGamepad returns the state of the player's gamepad in the previous
// frame.
func (s *Store) LastGamepad(p devices.Player) devices.Gamepad {
	return s.pad(p).previous
}

// IsConnected returns true if the player's gamepad is connected in the
// current frame.
func (s *Store) IsConnected(p devices.Player) bool {
	return s.pad(p).current.Connected
}

// WasConnected returns true if the player's gamepad was connected in the
// previous frame.
func (s *Store) WasConnected(p devices.Player) bool {
	return s.pad(p).previous.Connected
}

func (s *Store) IsButtonDown(p devices.Player, b devices.GamepadButton) bool {
	return isDown(s.pad(p), b)
}

func (s *Store) IsButtonUp(p devices.Player, b devices.GamepadButton) bool {
	return isUp(s.pad(p), b)
}

func (s *Store) WasButtonDown(p devices.Player, b devices.GamepadButton) bool {
	return wasDown(s.pad(p), b)
}

func (s *Store) WasButtonUp(p devices.Player, b devices.GamepadButton) bool {
	return wasUp(s.pad(p), b)
}

// WasButtonPressed returns true on the frame the button goes down.
func (s *Store) WasButtonPressed(p devices.Player, b devices.GamepadButton) bool {
	return wasPressed(s.pad(p), b)
}

// WasButtonReleased returns true on the frame the button goes up.
func (s *Store) WasButtonReleased(p devices.Player, b devices.GamepadButton) bool {
	return wasReleased(s.pad(p), b)
}

func (s *Store) LeftThumb(p devices.Player) devices.Vec2 {
	return s.pad(p).current.Thumbsticks.Left
}

func (s *Store) RightThumb(p devices.Player) devices.Vec2 {
	return s.pad(p).current.Thumbsticks.Right
}

func (s *Store) LastLeftThumb(p devices.Player) devices.Vec2 {
	return s.pad(p).previous.Thumbsticks.Left
}

func (s *Store) LastRightThumb(p devices.Player) devices.Vec2 {
	return s.pad(p).previous.Thumbsticks.Right
}

func (s *Store) Triggers(p devices.Player) devices.Triggers {
	return s.pad(p).current.Triggers
}

func (s *Store) LastTriggers(p devices.Player) devices.Triggers {
	return s.pad(p).previous.Triggers
}

func (s *Store) LeftTrigger(p devices.Player) float32 {
	return s.pad(p).current.Triggers.Left
}

func (s *Store) RightTrigger(p devices.Player) float32 {
	return s.pad(p).current.Triggers.Right
}

func (s *Store) LastLeftTrigger(p devices.Player) float32 {
	return s.pad(p).previous.Triggers.Left
}

func (s *Store) LastRightTrigger(p devices.Player) float32 {
	return s.pad(p).previous.Triggers.Right
}

func (s *Store) DPad(p devices.Player) devices.DPad {
	return s.pad(p).current.DPad
}

func (s *Store) LastDPad(p devices.Player) devices.DPad {
	return s.pad(p).previous.DPad
}
