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

// Devices is the state of every tracked device at one instant.
type Devices struct {
	Keyboard devices.Keyboard
	Pointer  devices.Pointer
	Gamepads [devices.NumSlots]devices.Gamepad
}

// State is a copy of the Store's buffers. Changing a State has no effect on
// the Store.
type State struct {
	Frame      int
	HasPointer bool
	Current    Devices
	Previous   Devices
}

// State returns a copy of the current and previous state of every device.
func (s *Store) State() State {
	st := State{
		Frame:      s.frame,
		HasPointer: s.HasPointer(),
	}

	st.Current.Keyboard = s.keyboard.current
	st.Previous.Keyboard = s.keyboard.previous
	st.Current.Pointer = s.pointer.current
	st.Previous.Pointer = s.pointer.previous
	for i := range s.gamepads {
		st.Current.Gamepads[i] = s.gamepads[i].current
		st.Previous.Gamepads[i] = s.gamepads[i].previous
	}

	return st
}
