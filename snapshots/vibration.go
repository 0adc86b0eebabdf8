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

// clamp v to the range 0.0 to 1.0. NaN is treated as 0.0
func clamp(v float32) float32 {
	if !(v >= 0.0) {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// Vibrate sets the speed of the two motors of the player's gamepad. Values
// are clamped to the range 0.0 to 1.0. Any error from the Actuator is
// returned unchanged.
func (s *Store) Vibrate(p devices.Player, left float32, right float32) error {
	if s.actuator == nil {
		return nil
	}
	return s.actuator.SetVibration(p.Slot(), clamp(left), clamp(right))
}

// StopVibration stops both motors of the player's gamepad.
func (s *Store) StopVibration(p devices.Player) error {
	return s.Vibrate(p, 0.0, 0.0)
}
