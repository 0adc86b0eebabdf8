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

package performance

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/snapshots"
	"github.com/jetsetilly/frameinput/test"
)

type idle struct{}

func (idle) QueryKeyboard() devices.Keyboard {
	return devices.NewKeyboard()
}

func (idle) QueryGamepad(_ int) devices.Gamepad {
	return devices.Gamepad{}
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(60, 120, 2.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, accuracy, 100.0)

	fps, accuracy = CalcFPS(60, 60, 2.0)
	test.ExpectEquality(t, fps, 30.0)
	test.ExpectEquality(t, accuracy, 50.0)

	fps, _ = CalcFPS(60, 60, 0.0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	_, err = ParseProfileString("cpu,disk")
	test.ExpectEquality(t, curated.Is(err, UnknownOption), true)
}

func TestCheck(t *testing.T) {
	leadTime = 10 * time.Millisecond

	store := snapshots.NewStore(idle{}, nil)
	w := &test.Writer{}

	err := Check(w, ProfileNone, store, 0, "20ms")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "uncapped\n"), true)
	test.ExpectInequality(t, store.Frame(), 0)

	err = Check(w, ProfileNone, store, 60, "not a duration")
	test.ExpectEquality(t, curated.Is(err, CheckError), true)
}
