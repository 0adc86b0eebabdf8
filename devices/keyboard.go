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

package devices

import "math/bits"

// Key identifies a single key on the keyboard.
type Key int

// List of supported keys. KeyNone is never down.
const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt

	KeyMinus
	KeyEquals
	KeyComma
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash

	// not a key. marks the number of keys in the list
	NumKeys
)

var keyNames = [NumKeys]string{
	"None",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Up", "Down", "Left", "Right",
	"Space", "Enter", "Escape", "Tab", "Backspace", "Delete", "Insert",
	"Home", "End", "PageUp", "PageDown",
	"LeftShift", "RightShift", "LeftControl", "RightControl", "LeftAlt", "RightAlt",
	"Minus", "Equals", "Comma", "Period", "Slash", "Semicolon", "Apostrophe",
	"Grave", "LeftBracket", "RightBracket", "Backslash",
}

func (k Key) String() string {
	if k < 0 || k >= NumKeys {
		return "Unknown"
	}
	return keyNames[k]
}

const keyWords = (int(NumKeys) + 63) / 64

// Keyboard is the state of every key at one instant. The zero value has no
// keys down.
type Keyboard struct {
	down [keyWords]uint64
}

// NewKeyboard returns a Keyboard with the listed keys down. KeyNone and out
// of range values are ignored.
func NewKeyboard(keys ...Key) Keyboard {
	var kb Keyboard
	for _, k := range keys {
		if k <= KeyNone || k >= NumKeys {
			continue
		}
		kb.down[k/64] |= 1 << (uint(k) % 64)
	}
	return kb
}

// IsDown returns true if the key is down.
func (kb Keyboard) IsDown(k Key) bool {
	if k <= KeyNone || k >= NumKeys {
		return false
	}
	return kb.down[k/64]&(1<<(uint(k)%64)) != 0
}

// IsUp returns true if the key is not down.
func (kb Keyboard) IsUp(k Key) bool {
	return !kb.IsDown(k)
}

// PressedKeys returns every key that is down, in Key order.
func (kb Keyboard) PressedKeys() []Key {
	var keys []Key
	for w, word := range kb.down {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			keys = append(keys, Key(w*64+b))
			word &= word - 1
		}
	}
	return keys
}

// Modifiers returns the state of the shift, control and alt keys. Either of
// the left or right keys counts.
func (kb Keyboard) Modifiers() (shift bool, control bool, alt bool) {
	shift = kb.IsDown(KeyLeftShift) || kb.IsDown(KeyRightShift)
	control = kb.IsDown(KeyLeftControl) || kb.IsDown(KeyRightControl)
	alt = kb.IsDown(KeyLeftAlt) || kb.IsDown(KeyRightAlt)
	return shift, control, alt
}
