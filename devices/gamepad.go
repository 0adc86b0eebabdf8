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

import "strings"

// NumSlots is the number of gamepads that can be tracked at once.
const NumSlots = 4

// Player identifies a player and through that, a gamepad slot.
type Player int

// List of Player values.
const (
	PlayerOne Player = iota + 1
	PlayerTwo
	PlayerThree
	PlayerFour
)

// Players lists the players in slot order.
var Players = [NumSlots]Player{PlayerOne, PlayerTwo, PlayerThree, PlayerFour}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "One"
	case PlayerTwo:
		return "Two"
	case PlayerThree:
		return "Three"
	case PlayerFour:
		return "Four"
	}
	return "Unknown"
}

// Slot returns the gamepad slot for the player.
//
// Any value that is not PlayerOne, PlayerTwo or PlayerThree maps to slot 3.
// This includes values outside the list of Player values. No error is
// raised for an unrecognised player.
func (p Player) Slot() int {
	switch p {
	case PlayerOne:
		return 0
	case PlayerTwo:
		return 1
	case PlayerThree:
		return 2
	}
	return 3
}

// GamepadButton is a single bit in the gamepad button mask. Values can be
// combined when constructing a Gamepad but IsDown() expects a single bit.
type GamepadButton uint32

// List of GamepadButton values.
const (
	GamepadButtonNone GamepadButton = 0

	GamepadButtonDPadUp GamepadButton = 1 << iota
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
	GamepadButtonStart
	GamepadButtonBack
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonGuide
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY

	// triggers past the provider's threshold
	GamepadButtonLeftTrigger
	GamepadButtonRightTrigger

	// thumbsticks pushed past the provider's deadzone
	GamepadButtonLeftThumbstickUp
	GamepadButtonLeftThumbstickDown
	GamepadButtonLeftThumbstickLeft
	GamepadButtonLeftThumbstickRight
	GamepadButtonRightThumbstickUp
	GamepadButtonRightThumbstickDown
	GamepadButtonRightThumbstickLeft
	GamepadButtonRightThumbstickRight
)

var gamepadButtonNames = map[GamepadButton]string{
	GamepadButtonDPadUp:               "DPadUp",
	GamepadButtonDPadDown:             "DPadDown",
	GamepadButtonDPadLeft:             "DPadLeft",
	GamepadButtonDPadRight:            "DPadRight",
	GamepadButtonStart:                "Start",
	GamepadButtonBack:                 "Back",
	GamepadButtonLeftStick:            "LeftStick",
	GamepadButtonRightStick:           "RightStick",
	GamepadButtonLeftShoulder:         "LeftShoulder",
	GamepadButtonRightShoulder:        "RightShoulder",
	GamepadButtonGuide:                "Guide",
	GamepadButtonA:                    "A",
	GamepadButtonB:                    "B",
	GamepadButtonX:                    "X",
	GamepadButtonY:                    "Y",
	GamepadButtonLeftTrigger:          "LeftTrigger",
	GamepadButtonRightTrigger:         "RightTrigger",
	GamepadButtonLeftThumbstickUp:     "LeftThumbstickUp",
	GamepadButtonLeftThumbstickDown:   "LeftThumbstickDown",
	GamepadButtonLeftThumbstickLeft:   "LeftThumbstickLeft",
	GamepadButtonLeftThumbstickRight:  "LeftThumbstickRight",
	GamepadButtonRightThumbstickUp:    "RightThumbstickUp",
	GamepadButtonRightThumbstickDown:  "RightThumbstickDown",
	GamepadButtonRightThumbstickLeft:  "RightThumbstickLeft",
	GamepadButtonRightThumbstickRight: "RightThumbstickRight",
}

func (b GamepadButton) String() string {
	if b == GamepadButtonNone {
		return "None"
	}
	if s, ok := gamepadButtonNames[b]; ok {
		return s
	}

	// combined mask
	var s strings.Builder
	for bit := GamepadButtonDPadUp; bit <= GamepadButtonRightThumbstickRight; bit <<= 1 {
		if b&bit == bit {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(gamepadButtonNames[bit])
		}
	}
	return s.String()
}

// Vec2 is a two component vector. Thumbstick vectors have components in the
// range -1.0 to 1.0 with positive Y being up.
type Vec2 struct {
	X float32
	Y float32
}

// Thumbsticks is the position of both thumbsticks.
type Thumbsticks struct {
	Left  Vec2
	Right Vec2
}

// Triggers is the amount each trigger is pulled, in the range 0.0 to 1.0.
type Triggers struct {
	Left  float32
	Right float32
}

// DPad is the state of the four directions of the directional pad.
type DPad struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Gamepad is the state of a single gamepad at one instant. The zero value is
// a disconnected gamepad with nothing pressed.
type Gamepad struct {
	Connected bool

	// incremented by the provider every time the hardware reports a change.
	// zero if the provider does not support packet numbers
	PacketNumber uint32

	Buttons     GamepadButton
	Thumbsticks Thumbsticks
	Triggers    Triggers
	DPad        DPad
}

// IsDown returns true if the button is down. A disconnected gamepad has no
// buttons down.
func (g Gamepad) IsDown(b GamepadButton) bool {
	if !g.Connected || b == GamepadButtonNone {
		return false
	}
	return g.Buttons&b == b
}

// IsUp returns true if the button is not down.
func (g Gamepad) IsUp(b GamepadButton) bool {
	return !g.IsDown(b)
}
