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

package snapshots

import (
	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/logger"
)

// Store holds the current and previous frame's state for every tracked
// device.
type Store struct {
	provider Provider
	actuator Actuator

	// nil if the pointer is not being tracked
	pointerProvider PointerProvider

	keyboard buffer[devices.Keyboard]
	pointer  buffer[devices.Pointer]
	gamepads [devices.NumSlots]buffer[devices.Gamepad]

	// number of calls to Advance() since construction
	frame int

	logPerm logger.Permission

	// the pointer is tracked if this is true and the provider supports it.
	// decided once all options have been applied
	withPointer bool
}

// Option changes how a Store is constructed.
type Option func(*Store)

// WithPointer enables or disables pointer tracking. Pointer tracking is
// enabled by default if the Provider implements PointerProvider. Enabling
// the pointer has no effect if the Provider does not implement
// PointerProvider or if the package was built with the nopointer tag.
func WithPointer(enabled bool) Option {
	return func(s *Store) {
		s.withPointer = enabled
	}
}

// WithLogging sets the permission used when the Store logs gamepad
// connections and disconnections. The default is logger.Allow.
func WithLogging(perm logger.Permission) Option {
	return func(s *Store) {
		s.logPerm = perm
	}
}

// NewStore is the preferred method of initialisation for the Store type. The
// actuator can be nil, in which case vibration requests are ignored.
//
// The provider is queried once for every device and the result is used for
// both the current and previous frame.
func NewStore(provider Provider, actuator Actuator, opts ...Option) *Store {
	s := &Store{
		provider:    provider,
		actuator:    actuator,
		logPerm:     logger.Allow,
		withPointer: true,
	}

	for _, o := range opts {
		o(s)
	}

	if pp, ok := provider.(PointerProvider); ok && pointerSupported && s.withPointer {
		s.pointerProvider = pp
	}

	s.keyboard.seed(s.provider.QueryKeyboard())
	if s.pointerProvider != nil {
		s.pointer.seed(s.pointerProvider.QueryPointer())
	}
	for i := range s.gamepads {
		s.gamepads[i].seed(s.provider.QueryGamepad(i))
		if s.gamepads[i].current.Connected {
			logger.Logf(s.logPerm, "snapshots", "gamepad for player %s is connected", devices.Players[i])
		}
	}

	return s
}

// Advance moves every device on by one frame. Called once per frame by the
// host's frame update.
//
// The previous state of every device is set before any device is queried for
// its new state.
func (s *Store) Advance() {
	s.keyboard.rotate()
	s.pointer.rotate()
	for i := range s.gamepads {
		s.gamepads[i].rotate()
	}

	s.keyboard.current = s.provider.QueryKeyboard()
	if s.pointerProvider != nil {
		s.pointer.current = s.pointerProvider.QueryPointer()
	}
	for i := range s.gamepads {
		s.gamepads[i].current = s.provider.QueryGamepad(i)
	}

	s.frame++

	for i := range s.gamepads {
		g := &s.gamepads[i]
		if g.current.Connected != g.previous.Connected {
			if g.current.Connected {
				logger.Logf(s.logPerm, "snapshots", "gamepad for player %s connected", devices.Players[i])
			} else {
				logger.Logf(s.logPerm, "snapshots", "gamepad for player %s disconnected", devices.Players[i])
			}
		}
	}
}

// FlushInput advances every device outside of the normal frame update.
// Any transition that happened before the call will no longer be reported
// as an edge after the next call to Advance().
func (s *Store) FlushInput() {
	s.Advance()
}

// Frame returns the number of times Advance() has been called. A value of
// zero means the Store is still seeded with its construction time state.
func (s *Store) Frame() int {
	return s.frame
}

// HasPointer returns true if the pointer is being tracked.
func (s *Store) HasPointer() bool {
	return s.pointerProvider != nil
}
