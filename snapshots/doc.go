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

// Package snapshots keeps the current and previous frame's state of the
// keyboard, the pointer and four gamepads, and answers level and edge
// queries about them.
//
// The Store is created with NewStore(). Construction captures the state of
// every device once and uses that capture as both the current and previous
// state. As a result, no edge is reported before the first call to Advance().
//
// Advance() should be called exactly once per frame by the host's frame
// update. It copies the current state of every device to the previous state
// and only then asks the Provider for the new current state of every device.
// FlushInput() is an Advance() that happens outside of the normal frame
// update. It is useful after a modal dialog has closed, so that a key that
// was pressed before the dialog opened does not appear as a new press.
//
// There are four predicates. Every per-key and per-button query is one of
// these four applied to a device and a button:
//
//	IsDown      button is down in the current frame
//	WasDown     button was down in the previous frame
//	WasPressed  IsDown && !WasDown
//	WasReleased !IsDown && WasDown
//
// The Up variants are the logical negation of the Down variants.
//
// Analog values (thumbsticks, triggers, the D-pad, the pointer position) are
// read directly from the current or previous state with no comparison.
//
// The PressedBy*() and ReleasedBy*() functions combine a keyboard key and a
// gamepad button. The keyboard is always tried first and the first matching
// device stops the search.
//
// The pointer is an optional capability. It is tracked only if the Provider
// also implements the PointerProvider interface, the WithPointer() option has
// not disabled it, and the package has not been built with the nopointer
// build tag.
//
// The Store is not safe for concurrent use. All queries and calls to
// Advance() should happen on the same goroutine as the frame update.
package snapshots
