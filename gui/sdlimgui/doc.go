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

// Package sdlimgui is an inspector for a snapshot store. It uses SDL for the
// window, OpenGL 2.1 for rendering and Dear ImGui for the interface.
//
// The inspector shows the current and previous frame of every device, the
// edges detected by the store and the log. Gamepad vibration can be tested
// from the gamepads window.
//
// All functions MUST be called from the same goroutine as the one that
// created the SdlImgui instance. SDL requires this to be the main thread on
// some platforms.
package sdlimgui
