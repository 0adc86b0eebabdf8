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

// Package terminput is a keyboard provider for a terminal in raw mode. It
// allows the snapshot store to be driven without a window.
//
// A terminal only reports that a key has been typed. It does not report when
// the key is released. Keys are therefore held down for a fixed number of
// queries after they are typed. Key repeat from the terminal will keep the
// key held for as long as the key is physically down, give or take the
// terminal's initial repeat delay.
//
// There is no pointer or gamepad support. All gamepad slots are reported as
// disconnected.
package terminput
