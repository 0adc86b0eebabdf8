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

// Package sdlinput reads keyboard, mouse and gamepad state through SDL. The
// Provider type implements the snapshots.Provider, snapshots.PointerProvider
// and snapshots.Actuator interfaces.
//
// SDL events must be pumped regularly for the keyboard and mouse state to be
// current. A program that already runs an SDL event loop should forward
// events to Provider.HandleEvent(). A program that does not can call
// Provider.Pump() once per frame before advancing the snapshot store.
//
// Gamepads are assigned to player slots in the order they are discovered. A
// disconnected gamepad frees its slot, which is then given to the next
// gamepad to be connected.
package sdlinput
