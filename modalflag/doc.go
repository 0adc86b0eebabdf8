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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each
// mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags for
// the current mode are added before the call to Parse(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SDL", "TERM", "DUMP")
//	prefsFile := md.AddString("prefs", "", "preferences file")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode in
// the list is the default and is selected if the first non-flag argument is
// not one of the sub-modes. Sub-mode names are case insensitive.
//
// Each mode can have flags of its own. Call NewMode() before adding the flags
// for the sub-mode and then call Parse() again. Arguments already consumed
// are not parsed again.
//
// Help is printed automatically when the -help flag is seen. The flags and
// the sub-modes available are listed.
package modalflag
