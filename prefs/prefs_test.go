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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/prefs"
	"github.com/jetsetilly/frameinput/test"
)

func TestMissingFile(t *testing.T) {
	p, err := prefs.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, prefs.Defaults())

	p, err = prefs.Load("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, prefs.Defaults())
}

func TestFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs.yaml")
	err := os.WriteFile(pth, []byte("pointer: false\nfps: 30\ndeadzone: 0.5\n"), 0600)
	test.DemandSuccess(t, err)

	p, err := prefs.Load(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Pointer, false)
	test.ExpectEquality(t, p.FPS, 30)
	test.ExpectEquality(t, p.Deadzone, 0.5)

	// unspecified values keep their defaults
	test.ExpectEquality(t, p.HoldFrames, prefs.Defaults().HoldFrames)
	test.ExpectEquality(t, p.Vibration, true)
}

func TestEnvironment(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs.yaml")
	err := os.WriteFile(pth, []byte("fps: 30\n"), 0600)
	test.DemandSuccess(t, err)

	t.Setenv("FRAMEINPUT_FPS", "120")
	t.Setenv("FRAMEINPUT_VIBRATION", "false")

	p, err := prefs.Load(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.FPS, 120)
	test.ExpectEquality(t, p.Vibration, false)
}

func TestInvalid(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs.yaml")

	err := os.WriteFile(pth, []byte("deadzone: 1.5\n"), 0600)
	test.DemandSuccess(t, err)
	_, err = prefs.Load(pth)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))

	err = os.WriteFile(pth, []byte("fps: [1, 2\n"), 0600)
	test.DemandSuccess(t, err)
	_, err = prefs.Load(pth)
	test.ExpectSuccess(t, curated.Is(err, prefs.FileError))

	t.Setenv("FRAMEINPUT_HOLD_FRAMES", "many")
	_, err = prefs.Load("")
	test.ExpectSuccess(t, curated.Is(err, prefs.EnvError))
}

func TestSave(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs.yaml")

	p := prefs.Defaults()
	p.FPS = 50
	p.Statsview = true
	test.DemandSuccess(t, p.Save(pth))

	l, err := prefs.Load(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, p)
}
