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

// Package logger is the central log for the module. Entries are tagged
// strings. An entry that is identical to the previous entry is not stored
// twice, instead the repeat count of the previous entry is increased.
//
// Log() and Logf() take a Permission argument. Entries are only added if the
// AllowLogging() function of the Permission returns true. The Allow value can
// be used when logging should always happen.
//
// The package level functions write to a central Logger instance. Tests and
// other isolated users can create their own Logger with NewLogger().
package logger
