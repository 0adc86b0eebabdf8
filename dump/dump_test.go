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

package dump_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/dump"
	"github.com/jetsetilly/frameinput/snapshots"
	"github.com/jetsetilly/frameinput/test"
)

type provider struct{}

func (provider) QueryKeyboard() devices.Keyboard {
	return devices.NewKeyboard(devices.KeyA)
}

func (provider) QueryGamepad(slot int) devices.Gamepad {
	return devices.Gamepad{Connected: slot == 0, Buttons: devices.GamepadButtonStart}
}

func TestGraph(t *testing.T) {
	store := snapshots.NewStore(provider{}, nil)
	store.Advance()

	w := &test.Writer{}
	err := dump.Graph(w, store)
	test.ExpectSuccess(t, err)

	s := w.String()
	test.ExpectEquality(t, strings.HasPrefix(strings.TrimSpace(s), "digraph"), true)
	test.ExpectEquality(t, strings.Contains(s, "Gamepads"), true)
	test.ExpectEquality(t, strings.Contains(s, "Previous"), true)
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("failed")
}

func TestWriteError(t *testing.T) {
	store := snapshots.NewStore(provider{}, nil)
	err := dump.Graph(failingWriter{}, store)
	test.ExpectEquality(t, curated.Is(err, dump.WriteError), true)

	test.ExpectSuccess(t, dump.Write(failingWriter{}, nil))
}
