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

package sdlinput

import (
	"github.com/jetsetilly/frameinput/devices"
	"github.com/veandco/go-sdl2/sdl"
)

// scancodes maps devices.Key to the SDL scancode for that key. Physical key
// positions are used, the keyboard layout is ignored.
var scancodes = [devices.NumKeys]sdl.Scancode{
	devices.KeyNone: sdl.SCANCODE_UNKNOWN,

	devices.KeyA: sdl.SCANCODE_A,
	devices.KeyB: sdl.SCANCODE_B,
	devices.KeyC: sdl.SCANCODE_C,
	devices.KeyD: sdl.SCANCODE_D,
	devices.KeyE: sdl.SCANCODE_E,
	devices.KeyF: sdl.SCANCODE_F,
	devices.KeyG: sdl.SCANCODE_G,
	devices.KeyH: sdl.SCANCODE_H,
	devices.KeyI: sdl.SCANCODE_I,
	devices.KeyJ: sdl.SCANCODE_J,
	devices.KeyK: sdl.SCANCODE_K,
	devices.KeyL: sdl.SCANCODE_L,
	devices.KeyM: sdl.SCANCODE_M,
	devices.KeyN: sdl.SCANCODE_N,
	devices.KeyO: sdl.SCANCODE_O,
	devices.KeyP: sdl.SCANCODE_P,
	devices.KeyQ: sdl.SCANCODE_Q,
	devices.KeyR: sdl.SCANCODE_R,
	devices.KeyS: sdl.SCANCODE_S,
	devices.KeyT: sdl.SCANCODE_T,
	devices.KeyU: sdl.SCANCODE_U,
	devices.KeyV: sdl.SCANCODE_V,
	devices.KeyW: sdl.SCANCODE_W,
	devices.KeyX: sdl.SCANCODE_X,
	devices.KeyY: sdl.SCANCODE_Y,
	devices.KeyZ: sdl.SCANCODE_Z,

	devices.Key0: sdl.SCANCODE_0,
	devices.Key1: sdl.SCANCODE_1,
	devices.Key2: sdl.SCANCODE_2,
	devices.Key3: sdl.SCANCODE_3,
	devices.Key4: sdl.SCANCODE_4,
	devices.Key5: sdl.SCANCODE_5,
	devices.Key6: sdl.SCANCODE_6,
	devices.Key7: sdl.SCANCODE_7,
	devices.Key8: sdl.SCANCODE_8,
	devices.Key9: sdl.SCANCODE_9,

	devices.KeyF1:  sdl.SCANCODE_F1,
	devices.KeyF2:  sdl.SCANCODE_F2,
	devices.KeyF3:  sdl.SCANCODE_F3,
	devices.KeyF4:  sdl.SCANCODE_F4,
	devices.KeyF5:  sdl.SCANCODE_F5,
	devices.KeyF6:  sdl.SCANCODE_F6,
	devices.KeyF7:  sdl.SCANCODE_F7,
	devices.KeyF8:  sdl.SCANCODE_F8,
	devices.KeyF9:  sdl.SCANCODE_F9,
	devices.KeyF10: sdl.SCANCODE_F10,
	devices.KeyF11: sdl.SCANCODE_F11,
	devices.KeyF12: sdl.SCANCODE_F12,

	devices.KeyUp:    sdl.SCANCODE_UP,
	devices.KeyDown:  sdl.SCANCODE_DOWN,
	devices.KeyLeft:  sdl.SCANCODE_LEFT,
	devices.KeyRight: sdl.SCANCODE_RIGHT,

	devices.KeySpace:     sdl.SCANCODE_SPACE,
	devices.KeyEnter:     sdl.SCANCODE_RETURN,
	devices.KeyEscape:    sdl.SCANCODE_ESCAPE,
	devices.KeyTab:       sdl.SCANCODE_TAB,
	devices.KeyBackspace: sdl.SCANCODE_BACKSPACE,
	devices.KeyDelete:    sdl.SCANCODE_DELETE,
	devices.KeyInsert:    sdl.SCANCODE_INSERT,
	devices.KeyHome:      sdl.SCANCODE_HOME,
	devices.KeyEnd:       sdl.SCANCODE_END,
	devices.KeyPageUp:    sdl.SCANCODE_PAGEUP,
	devices.KeyPageDown:  sdl.SCANCODE_PAGEDOWN,

	devices.KeyLeftShift:    sdl.SCANCODE_LSHIFT,
	devices.KeyRightShift:   sdl.SCANCODE_RSHIFT,
	devices.KeyLeftControl:  sdl.SCANCODE_LCTRL,
	devices.KeyRightControl: sdl.SCANCODE_RCTRL,
	devices.KeyLeftAlt:      sdl.SCANCODE_LALT,
	devices.KeyRightAlt:     sdl.SCANCODE_RALT,

	devices.KeyMinus:        sdl.SCANCODE_MINUS,
	devices.KeyEquals:       sdl.SCANCODE_EQUALS,
	devices.KeyComma:        sdl.SCANCODE_COMMA,
	devices.KeyPeriod:       sdl.SCANCODE_PERIOD,
	devices.KeySlash:        sdl.SCANCODE_SLASH,
	devices.KeySemicolon:    sdl.SCANCODE_SEMICOLON,
	devices.KeyApostrophe:   sdl.SCANCODE_APOSTROPHE,
	devices.KeyGrave:        sdl.SCANCODE_GRAVE,
	devices.KeyLeftBracket:  sdl.SCANCODE_LEFTBRACKET,
	devices.KeyRightBracket: sdl.SCANCODE_RIGHTBRACKET,
	devices.KeyBackslash:    sdl.SCANCODE_BACKSLASH,
}

// keyboardFromState converts the array returned by sdl.GetKeyboardState()
// to a devices.Keyboard.
func keyboardFromState(state []uint8) devices.Keyboard {
	var down []devices.Key
	for k := devices.KeyNone + 1; k < devices.NumKeys; k++ {
		sc := int(scancodes[k])
		if sc > 0 && sc < len(state) && state[sc] != 0 {
			down = append(down, k)
		}
	}
	return devices.NewKeyboard(down...)
}
