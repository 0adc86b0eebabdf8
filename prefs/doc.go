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

// Package prefs loads the preferences for the module.
//
// Preferences are read from a YAML file and then overridden by environment
// variables. Any value that is not specified in either place keeps the value
// from Defaults(). A missing preferences file is not an error.
//
// The environment variables are:
//
//	FRAMEINPUT_POINTER           track the pointer (bool)
//	FRAMEINPUT_VIBRATION         allow gamepad vibration (bool)
//	FRAMEINPUT_DEADZONE          thumbstick deadzone (0.0 to 1.0)
//	FRAMEINPUT_TRIGGER_THRESHOLD trigger amount that counts as a button press
//	FRAMEINPUT_FPS               frames per second of the frame loop
//	FRAMEINPUT_HOLD_FRAMES       frames a terminal key stays down
//	FRAMEINPUT_STATSVIEW         launch the statsview server (bool)
package prefs
