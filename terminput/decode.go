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

// decoded is the result of decoding terminal input.
type decoded struct {
	keys      []devices.Key
	interrupt bool
}

// decode the bytes read from a raw mode terminal. Modifier keys are reported
// alongside the key they modify. Unrecognised bytes are ignored.
//
// An escape sequence split across two reads is decoded as the escape key
// followed by the remainder of the sequence.
func decode(b []byte) decoded {
	var d decoded

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == keyEsc:
			n := escape(b[i+1:], &d)
			i += n

		case c == keyInterrupt:
			d.interrupt = true

		case c == keyCarriageReturn || c == keyLineFeed:
			d.keys = append(d.keys, devices.KeyEnter)

		case c == keyTab:
			d.keys = append(d.keys, devices.KeyTab)

		case c == keyBackspace || c == keyDelete:
			d.keys = append(d.keys, devices.KeyBackspace)

		case c >= 1 && c <= 26:
			d.keys = append(d.keys, devices.KeyLeftControl, devices.KeyA+devices.Key(c-1))

		case c >= 'a' && c <= 'z':
			d.keys = append(d.keys, devices.KeyA+devices.Key(c-'a'))

		case c >= 'A' && c <= 'Z':
			d.keys = append(d.keys, devices.KeyLeftShift, devices.KeyA+devices.Key(c-'A'))

		case c >= '0' && c <= '9':
			d.keys = append(d.keys, devices.Key0+devices.Key(c-'0'))

		default:
			if k, ok := punctuation[c]; ok {
				d.keys = append(d.keys, k)
			} else if k, ok := shifted[c]; ok {
				d.keys = append(d.keys, devices.KeyLeftShift, k)
			}
		}
	}

	return d
}

// escape decodes the bytes following an escape character. returns the
// number of bytes consumed.
func escape(b []byte, d *decoded) int {
	if len(b) < 2 {
		d.keys = append(d.keys, devices.KeyEscape)
		return 0
	}

	switch b[0] {
	case escCursor:
		if n, ok := csi(b[1:], d); ok {
			return n + 1
		}
	case escSS3:
		if k, ok := ss3Sequences[b[1]]; ok {
			d.keys = append(d.keys, k)
			return 2
		}
	}

	d.keys = append(d.keys, devices.KeyEscape)
	return 0
}

// csi decodes a control sequence. the bytes are the parameters and the final
// byte that follow ESC [. returns false if there is no final byte.
//
// complete sequences that do not describe a key are consumed without adding
// to the list of keys.
func csi(b []byte, d *decoded) (int, bool) {
	var params []int
	var v int
	var digits bool

	for i, c := range b {
		switch {
		case c >= '0' && c <= '9':
			v = v*10 + int(c-'0')
			digits = true
		case c == ';':
			params = append(params, v)
			v = 0
			digits = false
		case c >= 0x40 && c <= 0x7e:
			if digits || len(params) > 0 {
				params = append(params, v)
			}
			csiKey(c, params, d)
			return i + 1, true
		default:
			// not part of a control sequence
			return 0, false
		}
	}

	return 0, false
}

// csiKey adds the key described by the final byte and parameters of a
// control sequence, along with any modifier keys.
func csiKey(final byte, params []int, d *decoded) {
	var k devices.Key
	var ok bool

	if final == '~' {
		if len(params) == 0 {
			return
		}
		k, ok = tildeSequences[params[0]]
	} else {
		k, ok = cursorSequences[final]
	}
	if !ok {
		return
	}

	if len(params) > 1 && params[1] > 1 {
		m := params[1] - 1
		if m&modShift == modShift {
			d.keys = append(d.keys, devices.KeyLeftShift)
		}
		if m&modAlt == modAlt {
			d.keys = append(d.keys, devices.KeyLeftAlt)
		}
		if m&modControl == modControl {
			d.keys = append(d.keys, devices.KeyLeftControl)
		}
	}

	d.keys = append(d.keys, k)
}
