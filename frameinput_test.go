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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/prefs"
	"github.com/jetsetilly/frameinput/snapshots"
	"github.com/jetsetilly/frameinput/test"
)

type typed struct {
	frames []devices.Keyboard
	idx    int
}

func (t *typed) QueryKeyboard() devices.Keyboard {
	kb := t.frames[t.idx]
	if t.idx < len(t.frames)-1 {
		t.idx++
	}
	return kb
}

func (t *typed) QueryGamepad(_ int) devices.Gamepad {
	return devices.Gamepad{}
}

func TestEdges(t *testing.T) {
	prv := &typed{frames: []devices.Keyboard{
		devices.NewKeyboard(devices.KeyA),
		devices.NewKeyboard(devices.KeyB),
		devices.NewKeyboard(devices.KeyB),
	}}
	store := snapshots.NewStore(prv, nil)
	test.ExpectEquality(t, edges(store), "")

	store.Advance()
	test.ExpectEquality(t, edges(store), "-A +B")

	store.Advance()
	test.ExpectEquality(t, edges(store), "")
}

func TestLaunchHelp(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, w), 0)
	test.ExpectEquality(t, strings.Contains(w.String(), "available sub-modes: SDL, TERM, DUMP, PERFORMANCE, PREFS"), true)
}

func TestLaunchBadFlag(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-nosuchflag"}, w), 10)
}

func TestLaunchPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.yaml")
	t.Setenv("FRAMEINPUT_FPS", "50")

	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-prefs", path, "prefs"}, w), 0)

	_, err := os.Stat(path)
	test.ExpectSuccess(t, err)

	os.Unsetenv("FRAMEINPUT_FPS")
	p, err := prefs.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.FPS, 50)
}

func TestLaunchPrefsFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	w := &test.Writer{}
	args := []string{"-prefs", path, "prefs", "-deadzone", "0.25", "-pointer=false", "-hold", "3"}
	test.ExpectEquality(t, launch(context.Background(), args, w), 0)

	p, err := prefs.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, p.Deadzone, 0.25, 0.0001)
	test.ExpectEquality(t, p.Pointer, false)
	test.ExpectEquality(t, p.HoldFrames, 3)
	test.ExpectEquality(t, p.FPS, prefs.Defaults().FPS)

	// out of range values are not written
	args = []string{"-prefs", path, "prefs", "-deadzone", "1.5"}
	test.ExpectEquality(t, launch(context.Background(), args, w), 20)

	p, err = prefs.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, p.Deadzone, 0.25, 0.0001)
}

func TestLaunchVersion(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-version"}, w), 0)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "Frameinput "), true)
}
