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

// Package devices defines the snapshot values captured from input hardware
// once per frame: the keyboard, the pointer (mouse) and the gamepad.
//
// Every type in the package is a plain value. Copying a value copies the
// whole observable state of the device at the instant it was captured and
// nothing in this module ever changes the fields of a captured value. The
// snapshots package relies on this when it keeps the current and previous
// frame's values side by side.
//
// Each device type answers IsDown() and IsUp() for its own button type:
//
//	Keyboard.IsDown(Key)
//	Pointer.IsDown(MouseButton)
//	Gamepad.IsDown(GamepadButton)
//
// IsUp() is always the logical negation of IsDown(). There is no separately
// stored "up" bit.
//
// Gamepads are addressed by Player. The mapping from Player to a slot index
// is fixed: PlayerOne is slot 0, PlayerTwo slot 1, PlayerThree slot 2 and
// every other value, including PlayerFour and any unrecognised value, is slot
// 3. See the Slot() function.
package devices
