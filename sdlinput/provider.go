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
	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	InitError        = "sdlinput: %v"
	InvalidParameter = "sdlinput: %s must be between 0.0 and 1.0 (%v)"
	NoGamepad        = "sdlinput: no gamepad for slot %d"
	RumbleError      = "sdlinput: rumble: %v"
)

// rumble continues until it is changed.
const rumbleDuration = 0xffffffff

// Provider implements the snapshots.Provider, snapshots.PointerProvider and
// snapshots.Actuator interfaces using SDL.
type Provider struct {
	deadzone  float32
	threshold float32

	slots [devices.NumSlots]*pad

	// cumulative scroll wheel value. updated by HandleEvent()
	wheel int32
}

// Init initialises the SDL subsystems required by the Provider. It does not
// need to be called if SDL has already been initialised with at least these
// subsystems, as is the case when the inspector window is used.
func Init() error {
	err := sdl.Init(sdl.INIT_EVENTS | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return curated.Errorf(InitError, err)
	}
	return nil
}

// NewProvider is the preferred method of initialisation for the Provider type.
//
// The deadzone is applied to every thumbstick axis and the trigger threshold
// is the amount a trigger must be pulled before it is reported as a button
// press. Both values must be between 0.0 and 1.0 and the deadzone must be
// less than 1.0.
//
// SDL must be initialised before calling this function. Gamepads that are
// already connected are assigned to player slots immediately.
func NewProvider(deadzone float32, triggerThreshold float32) (*Provider, error) {
	if deadzone < 0.0 || deadzone >= 1.0 {
		return nil, curated.Errorf(InvalidParameter, "deadzone", deadzone)
	}
	if triggerThreshold < 0.0 || triggerThreshold > 1.0 {
		return nil, curated.Errorf(InvalidParameter, "trigger threshold", triggerThreshold)
	}

	prv := &Provider{
		deadzone:  deadzone,
		threshold: triggerThreshold,
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		prv.open(i)
	}

	n := 0
	for _, p := range prv.slots {
		if p != nil {
			n++
		}
	}
	if n == 0 {
		logger.Log(logger.Allow, "sdlinput", "no gamepads found")
	}

	return prv, nil
}

// open the game controller at the SDL device index and assign it to the
// first free slot.
func (prv *Provider) open(index int) {
	if !sdl.IsGameController(index) {
		logger.Logf(logger.Allow, "sdlinput", "device %d is not a gamepad", index)
		return
	}

	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil || !ctrl.Attached() {
		logger.Logf(logger.Allow, "sdlinput", "cannot open gamepad %d: %v", index, sdl.GetError())
		return
	}

	id := ctrl.Joystick().InstanceID()

	// an added event is also sent for gamepads connected at start up
	for _, p := range prv.slots {
		if p != nil && p.id == id {
			ctrl.Close()
			return
		}
	}

	for slot, p := range prv.slots {
		if p == nil {
			prv.slots[slot] = &pad{
				ctrl: ctrl,
				id:   id,
				name: ctrl.Name(),
			}
			logger.Logf(logger.Allow, "sdlinput", "gamepad: %s (slot %d)", ctrl.Name(), slot)
			return
		}
	}

	logger.Logf(logger.Allow, "sdlinput", "gamepad: %s (no free slot)", ctrl.Name())
	ctrl.Close()
}

// remove the gamepad with the instance ID.
func (prv *Provider) remove(id sdl.JoystickID) {
	for slot, p := range prv.slots {
		if p != nil && p.id == id {
			logger.Logf(logger.Allow, "sdlinput", "gamepad removed: %s (slot %d)", p.name, slot)
			p.ctrl.Close()
			prv.slots[slot] = nil
			return
		}
	}
}

// HandleEvent updates the Provider with the SDL event. Returns true if the
// event was of interest to the Provider. Events of interest may also be of
// interest to other parts of the program.
func (prv *Provider) HandleEvent(ev sdl.Event) bool {
	switch ev := ev.(type) {
	case *sdl.MouseWheelEvent:
		prv.wheel += wheelDelta(ev)
		return true
	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// for added events, Which is the device index
			prv.open(int(ev.Which))
			return true
		case sdl.CONTROLLERDEVICEREMOVED:
			prv.remove(ev.Which)
			return true
		}
	}
	return false
}

// Pump polls for all outstanding SDL events and forwards them to
// HandleEvent(). Returns false if a quit event was seen.
func (prv *Provider) Pump() bool {
	running := true
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			running = false
		}
		prv.HandleEvent(ev)
	}
	return running
}

// QueryKeyboard implements the snapshots.Provider interface.
func (prv *Provider) QueryKeyboard() devices.Keyboard {
	return keyboardFromState(sdl.GetKeyboardState())
}

// QueryPointer implements the snapshots.PointerProvider interface.
func (prv *Provider) QueryPointer() devices.Pointer {
	x, y, state := sdl.GetMouseState()
	return pointerFromState(x, y, state, prv.wheel)
}

// QueryGamepad implements the snapshots.Provider interface.
func (prv *Provider) QueryGamepad(slot int) devices.Gamepad {
	if slot < 0 || slot >= len(prv.slots) || prv.slots[slot] == nil {
		return devices.Gamepad{}
	}
	return prv.slots[slot].query(prv.deadzone, prv.threshold)
}

// GamepadName returns the name of the gamepad in the slot. Returns the empty
// string if there is no gamepad.
func (prv *Provider) GamepadName(slot int) string {
	if slot < 0 || slot >= len(prv.slots) || prv.slots[slot] == nil {
		return ""
	}
	return prv.slots[slot].name
}

// rumble converts a vibration intensity in the range 0.0 to 1.0 to an SDL
// rumble value.
func rumble(v float32) uint16 {
	if v <= 0.0 {
		return 0
	}
	if v >= 1.0 {
		return 0xffff
	}
	return uint16(v * 0xffff)
}

// SetVibration implements the snapshots.Actuator interface. The left motor is
// the low frequency motor and the right motor is the high frequency motor.
func (prv *Provider) SetVibration(slot int, left float32, right float32) error {
	if slot < 0 || slot >= len(prv.slots) || prv.slots[slot] == nil {
		return curated.Errorf(NoGamepad, slot)
	}
	err := prv.slots[slot].ctrl.Rumble(rumble(left), rumble(right), rumbleDuration)
	if err != nil {
		return curated.Errorf(RumbleError, err)
	}
	return nil
}

// Close all gamepads. SDL itself is not shut down.
func (prv *Provider) Close() {
	for slot, p := range prv.slots {
		if p != nil {
			p.ctrl.Close()
			prv.slots[slot] = nil
		}
	}
}
