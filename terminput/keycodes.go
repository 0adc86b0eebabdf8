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

package terminput

import "github.com/jetsetilly/frameinput/devices"

// list of ASCII codes for non-alphanumeric characters
const (
	keyInterrupt      = 3 // end-of-text character
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of codes that can follow keyEsc
const (
	escCursor = '['
	escSS3    = 'O'
)

// list of codes that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorHome     = 'H'
	cursorEnd      = 'F'
)

// escape sequences of the form ESC [ n ~ or ESC [ n ; m ~
var tildeSequences = map[int]devices.Key{
	1:  devices.KeyHome,
	2:  devices.KeyInsert,
	3:  devices.KeyDelete,
	4:  devices.KeyEnd,
	5:  devices.KeyPageUp,
	6:  devices.KeyPageDown,
	7:  devices.KeyHome,
	8:  devices.KeyEnd,
	11: devices.KeyF1,
	12: devices.KeyF2,
	13: devices.KeyF3,
	14: devices.KeyF4,
	15: devices.KeyF5,
	17: devices.KeyF6,
	18: devices.KeyF7,
	19: devices.KeyF8,
	20: devices.KeyF9,
	21: devices.KeyF10,
	23: devices.KeyF11,
	24: devices.KeyF12,
}

// escape sequences of the form ESC [ n or ESC [ 1 ; m n
var cursorSequences = map[byte]devices.Key{
	cursorUp:       devices.KeyUp,
	cursorDown:     devices.KeyDown,
	cursorForward:  devices.KeyRight,
	cursorBackward: devices.KeyLeft,
	cursorHome:     devices.KeyHome,
	cursorEnd:      devices.KeyEnd,
	'P':            devices.KeyF1,
	'Q':            devices.KeyF2,
	'R':            devices.KeyF3,
	'S':            devices.KeyF4,
}

// bits of the modifier parameter, after one has been subtracted
const (
	modShift   = 0x01
	modAlt     = 0x02
	modControl = 0x04
)

// escape sequences of the form ESC O n
var ss3Sequences = map[byte]devices.Key{
	'P': devices.KeyF1,
	'Q': devices.KeyF2,
	'R': devices.KeyF3,
	'S': devices.KeyF4,
	'H': devices.KeyHome,
	'F': devices.KeyEnd,
}

// punctuation that does not need the shift key on a US keyboard
var punctuation = map[byte]devices.Key{
	' ':  devices.KeySpace,
	'-':  devices.KeyMinus,
	'=':  devices.KeyEquals,
	',':  devices.KeyComma,
	'.':  devices.KeyPeriod,
	'/':  devices.KeySlash,
	';':  devices.KeySemicolon,
	'\'': devices.KeyApostrophe,
	'`':  devices.KeyGrave,
	'[':  devices.KeyLeftBracket,
	']':  devices.KeyRightBracket,
	'\\': devices.KeyBackslash,
}

// characters that need the shift key on a US keyboard
var shifted = map[byte]devices.Key{
	'!': devices.Key1,
	'@': devices.Key2,
	'#': devices.Key3,
	'$': devices.Key4,
	'%': devices.Key5,
	'^': devices.Key6,
	'&': devices.Key7,
	'*': devices.Key8,
	'(': devices.Key9,
	')': devices.Key0,
	'_': devices.KeyMinus,
	'+': devices.KeyEquals,
	'<': devices.KeyComma,
	'>': devices.KeyPeriod,
	'?': devices.KeySlash,
	':': devices.KeySemicolon,
	'"': devices.KeyApostrophe,
	'~': devices.KeyGrave,
	'{': devices.KeyLeftBracket,
	'}': devices.KeyRightBracket,
	'|': devices.KeyBackslash,
}
