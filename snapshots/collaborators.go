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

// Provider reports the state of the keyboard and gamepads at the instant it
// is called.
type Provider interface {
	QueryKeyboard() devices.Keyboard

	// slot is in the range 0 to devices.NumSlots-1
	QueryGamepad(slot int) devices.Gamepad
}

// PointerProvider is implemented by a Provider that can also report the
// state of the pointer.
type PointerProvider interface {
	QueryPointer() devices.Pointer
}

// Actuator sets the vibration motors of a gamepad. Intensities are always in
// the range 0.0 to 1.0 when called by the Store.
type Actuator interface {
	SetVibration(slot int, left float32, right float32) error
}
