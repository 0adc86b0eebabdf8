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
	"testing"
	"time"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/test"
)

func expectKeys(t *testing.T, d decoded, keys ...devices.Key) {
	t.Helper()
	if test.ExpectEquality(t, len(d.keys), len(keys)) {
		for i := range keys {
			test.ExpectEquality(t, d.keys[i], keys[i])
		}
	}
}

func TestDecode(t *testing.T) {
	expectKeys(t, decode([]byte("a")), devices.KeyA)
	expectKeys(t, decode([]byte("Z")), devices.KeyLeftShift, devices.KeyZ)
	expectKeys(t, decode([]byte("09")), devices.Key0, devices.Key9)
	expectKeys(t, decode([]byte(" ")), devices.KeySpace)
	expectKeys(t, decode([]byte("?")), devices.KeyLeftShift, devices.KeySlash)
	expectKeys(t, decode([]byte{keyCarriageReturn}), devices.KeyEnter)
	expectKeys(t, decode([]byte{keyTab}), devices.KeyTab)
	expectKeys(t, decode([]byte{keyDelete}), devices.KeyBackspace)
	expectKeys(t, decode([]byte{1}), devices.KeyLeftControl, devices.KeyA)

	// unrecognised
	expectKeys(t, decode([]byte{0, 200}))
}

func TestDecodeEscape(t *testing.T) {
	expectKeys(t, decode([]byte{keyEsc}), devices.KeyEscape)
	expectKeys(t, decode([]byte("\x1b[A\x1b[B\x1b[C\x1b[D")),
		devices.KeyUp, devices.KeyDown, devices.KeyRight, devices.KeyLeft)
	expectKeys(t, decode([]byte("\x1b[3~")), devices.KeyDelete)
	expectKeys(t, decode([]byte("\x1bOP")), devices.KeyF1)
	expectKeys(t, decode([]byte("\x1b[H\x1b[F")), devices.KeyHome, devices.KeyEnd)

	// function keys with two digit numbers
	expectKeys(t, decode([]byte("\x1b[15~")), devices.KeyF5)
	expectKeys(t, decode([]byte("\x1b[17~\x1b[18~\x1b[19~\x1b[20~\x1b[21~\x1b[23~\x1b[24~")),
		devices.KeyF6, devices.KeyF7, devices.KeyF8, devices.KeyF9,
		devices.KeyF10, devices.KeyF11, devices.KeyF12)

	// modified keys
	expectKeys(t, decode([]byte("\x1b[1;5A")), devices.KeyLeftControl, devices.KeyUp)
	expectKeys(t, decode([]byte("\x1b[1;2D")), devices.KeyLeftShift, devices.KeyLeft)
	expectKeys(t, decode([]byte("\x1b[15;3~")), devices.KeyLeftAlt, devices.KeyF5)
	expectKeys(t, decode([]byte("\x1b[1;5P")), devices.KeyLeftControl, devices.KeyF1)

	// complete sequences that are not keys are ignored
	expectKeys(t, decode([]byte("\x1b[99~")))
	expectKeys(t, decode([]byte("\x1b[2J")))
	expectKeys(t, decode([]byte("\x1b[~a")), devices.KeyA)

	// incomplete tilde sequence
	expectKeys(t, decode([]byte("\x1b[3")), devices.KeyEscape, devices.KeyLeftBracket, devices.Key3)

	// escape followed by a normal key
	expectKeys(t, decode([]byte("\x1bxy")), devices.KeyEscape, devices.KeyX, devices.KeyY)
}

func TestDecodeInterrupt(t *testing.T) {
	d := decode([]byte{keyInterrupt})
	test.ExpectEquality(t, d.interrupt, true)
	expectKeys(t, d)
}

// waitFor queries the provider until the key is down or until the timeout
// expires.
func waitFor(t *testing.T, prv *Provider, k devices.Key) devices.Keyboard {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		kb := prv.QueryKeyboard()
		if kb.IsDown(k) {
			return kb
		}
		select {
		case <-timeout:
			t.Fatalf("%s never reported as down", k)
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestProviderHold(t *testing.T) {
	r, w := io.Pipe()
	prv := NewProvider(r, 3)

	_, err := w.Write([]byte("q"))
	test.DemandSuccess(t, err)

	// first query reporting the key counts towards the hold
	waitFor(t, prv, devices.KeyQ)
	test.ExpectEquality(t, prv.QueryKeyboard().IsDown(devices.KeyQ), true)
	test.ExpectEquality(t, prv.QueryKeyboard().IsDown(devices.KeyQ), true)
	test.ExpectEquality(t, prv.QueryKeyboard().IsDown(devices.KeyQ), false)

	test.ExpectEquality(t, prv.QueryGamepad(0).Connected, false)

	w.Close()
	select {
	case <-prv.Done():
	case <-time.After(time.Second):
		t.Errorf("reader did not end")
	}
}

func TestProviderInterrupt(t *testing.T) {
	r, w := io.Pipe()
	prv := NewProvider(r, 1)
	test.ExpectEquality(t, prv.Interrupted(), false)

	_, err := w.Write([]byte{'x', keyInterrupt})
	test.DemandSuccess(t, err)
	waitFor(t, prv, devices.KeyX)
	test.ExpectEquality(t, prv.Interrupted(), true)

	w.Close()
	<-prv.Done()
}

// slowDevice is a device whose reads block until released.
type slowDevice struct {
	reading  chan bool
	release  chan bool
	inRead   atomic.Bool
	restored atomic.Bool

	// set if the device was closed while a read was in progress
	closedInRead atomic.Bool
	closes       atomic.Int32
}

func (dev *slowDevice) Read(b []byte) (int, error) {
	dev.inRead.Store(true)
	defer dev.inRead.Store(false)
	select {
	case dev.reading <- true:
	default:
	}
	<-dev.release
	return 0, nil
}

func (dev *slowDevice) Restore() error {
	dev.restored.Store(true)
	return nil
}

func (dev *slowDevice) Close() error {
	if dev.inRead.Load() {
		dev.closedInRead.Store(true)
	}
	dev.closes.Add(1)
	return nil
}

func TestTerminalClose(t *testing.T) {
	dev := &slowDevice{
		reading: make(chan bool, 1),
		release: make(chan bool),
	}
	trm := newTerminal(dev)
	prv := NewProvider(trm, 1)

	// wait for the reader to be inside a read
	<-dev.reading

	closed := make(chan error)
	go func() {
		closed <- trm.Close()
	}()

	// the device is not released while the read is in progress
	select {
	case <-closed:
		t.Fatalf("close returned during a read")
	case <-time.After(20 * time.Millisecond):
	}
	test.ExpectEquality(t, dev.closes.Load(), int32(0))

	close(dev.release)
	test.ExpectSuccess(t, <-closed)

	select {
	case <-prv.Done():
	case <-time.After(time.Second):
		t.Errorf("reader did not end")
	}

	test.ExpectEquality(t, dev.restored.Load(), true)
	test.ExpectEquality(t, dev.closedInRead.Load(), false)
	test.ExpectEquality(t, dev.closes.Load(), int32(1))

	// closing again is not an error and does not touch the device
	test.ExpectSuccess(t, trm.Close())
	test.ExpectEquality(t, dev.closes.Load(), int32(1))

	n, err := trm.Read(make([]byte, 4))
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, err, io.EOF)
}
