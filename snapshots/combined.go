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

// Device identifies the kind of device that matched a combined query.
type Device int

// List of Device values.
const (
	DeviceKeyboard Device = iota
	DevicePointer
	DeviceGamepad
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DevicePointer:
		return "pointer"
	case DeviceGamepad:
		return "gamepad"
	}
	return "unknown"
}

// Match is the result of a successful combined query. Player is the player
// that was being tried when the match was found. For keyboard matches in an
// any player query this is always the first player.
type Match struct {
	Device Device
	Player devices.Player
}

// edge pairs the keyboard and gamepad forms of the same predicate.
type edge struct {
	key    func(s *Store, k devices.Key) bool
	button func(s *Store, p devices.Player, b devices.GamepadButton) bool
}

var pressed = edge{
	key:    (*Store).WasKeyPressed,
	button: (*Store).WasButtonPressed,
}

var released = edge{
	key:    (*Store).WasKeyReleased,
	button: (*Store).WasButtonReleased,
}

// by tries the keyboard and then the player's gamepad.
func (s *Store) by(e edge, p devices.Player, b devices.GamepadButton, k devices.Key) (Match, bool) {
	if e.key(s, k) {
		return Match{Device: DeviceKeyboard, Player: p}, true
	}
	if e.button(s, p, b) {
		return Match{Device: DeviceGamepad, Player: p}, true
	}
	return Match{}, false
}

// byAny tries each player in slot order. the keyboard is tried on behalf of
// the first player before any gamepad is tried.
func (s *Store) byAny(e edge, b devices.GamepadButton, k devices.Key) (Match, bool) {
	for _, p := range devices.Players {
		if m, ok := s.by(e, p, b, k); ok {
			return m, true
		}
	}
	return Match{}, false
}

// PressedBy returns true if the key was pressed on the keyboard or the button
// was pressed on the player's gamepad. The keyboard is checked first.
func (s *Store) PressedBy(p devices.Player, b devices.GamepadButton, k devices.Key) (Match, bool) {
	return s.by(pressed, p, b, k)
}

// ReleasedBy returns true if the key was released on the keyboard or the
// button was released on the player's gamepad. The keyboard is checked first.
func (s *Store) ReleasedBy(p devices.Player, b devices.GamepadButton, k devices.Key) (Match, bool) {
	return s.by(released, p, b, k)
}

// byAnyButton tries the gamepad of each player in slot order.
func (s *Store) byAnyButton(e edge, b devices.GamepadButton) (Match, bool) {
	for _, p := range devices.Players {
		if e.button(s, p, b) {
			return Match{Device: DeviceGamepad, Player: p}, true
		}
	}
	return Match{}, false
}

// PressedByAnyPlayer is like PressedBy() but tries every player in slot
// order. The first match stops the search.
//
// Passing devices.KeyNone ignores the keyboard because KeyNone is never down.
// ButtonPressedByAnyPlayer() says the same thing more clearly.
func (s *Store) PressedByAnyPlayer(b devices.GamepadButton, k devices.Key) (Match, bool) {
	return s.byAny(pressed, b, k)
}

// ReleasedByAnyPlayer is like ReleasedBy() but tries every player in slot
// order. The first match stops the search.
//
// Passing devices.KeyNone ignores the keyboard because KeyNone is never down.
// ButtonReleasedByAnyPlayer() says the same thing more clearly.
func (s *Store) ReleasedByAnyPlayer(b devices.GamepadButton, k devices.Key) (Match, bool) {
	return s.byAny(released, b, k)
}

// ButtonPressedByAnyPlayer returns the first player, in slot order, whose
// gamepad button was pressed this frame. The keyboard is not consulted.
func (s *Store) ButtonPressedByAnyPlayer(b devices.GamepadButton) (Match, bool) {
	return s.byAnyButton(pressed, b)
}

// ButtonReleasedByAnyPlayer returns the first player, in slot order, whose
// gamepad button was released this frame. The keyboard is not consulted.
func (s *Store) ButtonReleasedByAnyPlayer(b devices.GamepadButton) (Match, bool) {
	return s.byAnyButton(released, b)
}
