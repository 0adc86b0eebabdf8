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

import (
	"io"
	"sync/atomic"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/logger"
)

// the number of keys that can be waiting for the next QueryKeyboard()
const queueLength = 64

// Provider implements the snapshots.Provider interface for a terminal.
type Provider struct {
	holdFrames int

	// keys decoded by the reading goroutine
	keys chan devices.Key

	// remaining number of queries a key will be reported as down
	hold [devices.NumKeys]int

	interrupted atomic.Bool

	// closed when the reading goroutine ends
	done chan bool
}

// NewProvider is the preferred method of initialisation for the Provider type.
// Keys typed are held down for holdFrames calls to QueryKeyboard(). A value
// less than one is treated as one.
//
// The reader is read from a separate goroutine until it returns an error.
// Reads that return no data and no error are retried.
func NewProvider(r io.Reader, holdFrames int) *Provider {
	if holdFrames < 1 {
		holdFrames = 1
	}

	prv := &Provider{
		holdFrames: holdFrames,
		keys:       make(chan devices.Key, queueLength),
		done:       make(chan bool),
	}

	go prv.read(r)

	return prv
}

func (prv *Provider) read(r io.Reader) {
	defer close(prv.done)

	b := make([]byte, 32)
	for {
		n, err := r.Read(b)
		if n > 0 {
			d := decode(b[:n])
			if d.interrupt {
				prv.interrupted.Store(true)
			}
			for _, k := range d.keys {
				select {
				case prv.keys <- k:
				default:
					logger.Logf(logger.Allow, "terminput", "dropped key: %s", k)
				}
			}
		}
		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "terminput", err)
			}
			return
		}
	}
}

// QueryKeyboard implements the snapshots.Provider interface.
func (prv *Provider) QueryKeyboard() devices.Keyboard {
	for drained := false; !drained; {
		select {
		case k := <-prv.keys:
			prv.hold[k] = prv.holdFrames
		default:
			drained = true
		}
	}

	var down []devices.Key
	for k := range prv.hold {
		if prv.hold[k] > 0 {
			down = append(down, devices.Key(k))
			prv.hold[k]--
		}
	}

	return devices.NewKeyboard(down...)
}

// QueryGamepad implements the snapshots.Provider interface. Gamepads are
// never connected.
func (prv *Provider) QueryGamepad(_ int) devices.Gamepad {
	return devices.Gamepad{}
}

// Interrupted returns true if the interrupt key (ctrl-c) has been typed.
func (prv *Provider) Interrupted() bool {
	return prv.interrupted.Load()
}

// Done returns a channel that is closed once the reader has been exhausted.
func (prv *Provider) Done() <-chan bool {
	return prv.done
}
