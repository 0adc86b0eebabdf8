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
	"sync"
	"time"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/pkg/term"
)

// Sentinal error patterns.
const (
	TerminalError = "terminput: %v"
)

// how long a read from the terminal waits before returning with no data. the
// reading goroutine checks for the end of the Provider's life at this rate
const readTimeout = 100 * time.Millisecond

// device is the part of term.Term used by Terminal.
type device interface {
	Read(b []byte) (int, error)
	Restore() error
	Close() error
}

// Terminal is a terminal device in raw mode. It is safe to call Close() while
// another goroutine is reading.
type Terminal struct {
	t device

	// held for the duration of a read from the device. the device is not
	// released until any read in progress has returned
	crit sync.Mutex

	closed    chan bool
	closeOnce sync.Once
	closeErr  error
}

// Open the terminal device at path and put it into raw mode. The path is
// usually "/dev/tty".
func Open(path string) (*Terminal, error) {
	t, err := term.Open(path, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	err = t.SetReadTimeout(readTimeout)
	if err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	return newTerminal(t), nil
}

func newTerminal(t device) *Terminal {
	return &Terminal{
		t:      t,
		closed: make(chan bool),
	}
}

// Read implements the io.Reader interface. A read that times out returns zero
// bytes and no error. Returns io.EOF once the Terminal has been closed.
func (trm *Terminal) Read(b []byte) (int, error) {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	select {
	case <-trm.closed:
		return 0, io.EOF
	default:
	}

	n, err := trm.t.Read(b)
	if err == io.EOF {
		return n, nil
	}
	return n, err
}

// Close restores the terminal to the mode it was in before Open() and
// closes the device. Close waits for a read in progress to time out. Calling
// Close more than once returns the result of the first call.
func (trm *Terminal) Close() error {
	trm.closeOnce.Do(func() {
		close(trm.closed)

		trm.crit.Lock()
		defer trm.crit.Unlock()

		err := trm.t.Restore()
		if err != nil {
			_ = trm.t.Close()
			trm.closeErr = curated.Errorf(TerminalError, err)
			return
		}
		err = trm.t.Close()
		if err != nil {
			trm.closeErr = curated.Errorf(TerminalError, err)
		}
	})
	return trm.closeErr
}
