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
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jetsetilly/frameinput/devices"
	"github.com/jetsetilly/frameinput/dump"
	"github.com/jetsetilly/frameinput/frameloop"
	"github.com/jetsetilly/frameinput/gui/sdlimgui"
	"github.com/jetsetilly/frameinput/logger"
	"github.com/jetsetilly/frameinput/modalflag"
	"github.com/jetsetilly/frameinput/paths"
	"github.com/jetsetilly/frameinput/performance"
	"github.com/jetsetilly/frameinput/prefs"
	"github.com/jetsetilly/frameinput/sdlinput"
	"github.com/jetsetilly/frameinput/snapshots"
	"github.com/jetsetilly/frameinput/statsview"
	"github.com/jetsetilly/frameinput/terminput"
	"github.com/jetsetilly/frameinput/version"
)

const defaultPrefsFile = "prefs.yaml"

// SDL requires that window and event handling happen on the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(launch(ctx, os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// value for the program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("SDL", "TERM", "DUMP", "PERFORMANCE", "PREFS")

	prefsFile := md.AddString("prefs", "", "preferences file")
	log := md.AddBool("log", false, "echo log to stdout")
	showVersion := md.AddBool("version", false, "print version information and exit")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return 0
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *prefsFile == "" {
		*prefsFile, err = paths.ResourcePath(defaultPrefsFile)
		if err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return 10
		}
	}

	pref, err := prefs.Load(*prefsFile)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if (stats != nil && *stats) || pref.Statsview {
		statsview.Launch(output, "")
	}

	switch md.Mode() {
	case "SDL":
		err = inspect(ctx, md, pref)

	case "TERM":
		err = terminal(ctx, md, pref, output)

	case "DUMP":
		err = dumpGraph(ctx, md, pref, output)

	case "PERFORMANCE":
		err = perform(md, pref, output)

	case "PREFS":
		err = savePrefs(md, pref, *prefsFile, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func newStore(prv snapshots.Provider, act snapshots.Actuator, pref prefs.Prefs) *snapshots.Store {
	return snapshots.NewStore(prv, act, snapshots.WithPointer(pref.Pointer))
}

// inspect runs the inspector window until it is closed.
func inspect(ctx context.Context, md *modalflag.Modes, pref prefs.Prefs) error {
	md.NewMode()
	fps := md.AddInt("fps", pref.FPS, "frames per second")
	deadzone := md.AddFloat64("deadzone", float64(pref.Deadzone), "thumbstick deadzone (0.0 to 1.0)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	pref.Deadzone = float32(*deadzone)

	img, err := sdlimgui.NewSdlImgui()
	if err != nil {
		return err
	}
	defer img.Destroy()

	prv, err := sdlinput.NewProvider(pref.Deadzone, pref.TriggerThreshold)
	if err != nil {
		return err
	}
	defer prv.Close()

	var act snapshots.Actuator
	if pref.Vibration {
		act = prv
	}

	store := newStore(prv, act, pref)
	img.Attach(store, prv)
	img.SetVibration(pref.Vibration)

	return frameloop.Run(ctx, store, *fps, func(_ *snapshots.Store) (bool, error) {
		return img.Service(), nil
	})
}

// terminal polls the keyboard of a terminal and prints the edges seen on
// every frame. The terminal is in raw mode so ctrl-c is seen as a key.
func terminal(ctx context.Context, md *modalflag.Modes, pref prefs.Prefs, output io.Writer) error {
	md.NewMode()
	device := md.AddString("device", "/dev/tty", "terminal device")
	hold := md.AddInt("hold", pref.HoldFrames, "number of frames a typed key is held down")
	fps := md.AddInt("fps", pref.FPS, "frames per second")
	timeout := md.AddDuration("timeout", 0, "stop polling after this long. zero polls until ctrl-c")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	trm, err := terminput.Open(*device)
	if err != nil {
		return err
	}

	// the log would be interleaved with the edges
	logger.SetEcho(nil)

	prv := terminput.NewProvider(trm, *hold)

	// closing the terminal ends the provider's reader
	defer func() {
		_ = trm.Close()
		<-prv.Done()
	}()
	store := newStore(prv, nil, pref)

	fmt.Fprint(output, "typed keys are shown as they are pressed and released. ctrl-c to end\r\n")

	return frameloop.Run(ctx, store, *fps, func(s *snapshots.Store) (bool, error) {
		if prv.Interrupted() {
			return false, nil
		}
		if e := edges(s); e != "" {
			fmt.Fprintf(output, "%6d: %s\r\n", s.Frame(), e)
		}
		return true, nil
	})
}

// dumpGraph advances the store for a number of frames and writes the result
// in DOT format. No window is opened so the keyboard and mouse are unlikely
// to report anything. Gamepads are read as normal.
func dumpGraph(ctx context.Context, md *modalflag.Modes, pref prefs.Prefs, output io.Writer) error {
	md.NewMode()
	frames := md.AddInt("frames", 1, "number of frames to advance before the dump")
	md.AdditionalHelp("the optional argument is the file to write to. otherwise the dump is written to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	w := output
	if len(md.RemainingArgs()) > 0 {
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	err = sdlinput.Init()
	if err != nil {
		return err
	}

	prv, err := sdlinput.NewProvider(pref.Deadzone, pref.TriggerThreshold)
	if err != nil {
		return err
	}
	defer prv.Close()

	store := newStore(prv, nil, pref)

	if *frames > 0 {
		err = frameloop.Run(ctx, store, pref.FPS, func(s *snapshots.Store) (bool, error) {
			return prv.Pump() && s.Frame() < *frames, nil
		})
		if err != nil {
			return err
		}
	}

	return dump.Graph(w, store)
}

// perform measures the frame rate of the frame loop with the SDL provider.
func perform(md *modalflag.Modes, pref prefs.Prefs, output io.Writer) error {
	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	uncapped := md.AddBool("uncapped", false, "run the frame loop as quickly as possible")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	err = sdlinput.Init()
	if err != nil {
		return err
	}

	prv, err := sdlinput.NewProvider(pref.Deadzone, pref.TriggerThreshold)
	if err != nil {
		return err
	}
	defer prv.Close()

	fps := pref.FPS
	if *uncapped {
		fps = 0
	}

	return performance.Check(output, prf, newStore(prv, nil, pref), fps, *duration)
}

// savePrefs writes the preferences currently in effect to the preferences
// file, creating the directory if necessary. Flags given to the mode replace
// the corresponding preference before it is written.
func savePrefs(md *modalflag.Modes, pref prefs.Prefs, path string, output io.Writer) error {
	md.NewMode()
	pointer := md.AddBool("pointer", pref.Pointer, "track the pointer")
	vibration := md.AddBool("vibration", pref.Vibration, "allow gamepad vibration")
	deadzone := md.AddFloat64("deadzone", float64(pref.Deadzone), "thumbstick deadzone (0.0 to 1.0)")
	trigger := md.AddFloat64("trigger", float64(pref.TriggerThreshold), "trigger threshold (0.0 to 1.0)")
	fps := md.AddInt("fps", pref.FPS, "frames per second")
	hold := md.AddInt("hold", pref.HoldFrames, "number of frames a typed key is held down")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	md.Visit(func(flag string) {
		switch flag {
		case "pointer":
			pref.Pointer = *pointer
		case "vibration":
			pref.Vibration = *vibration
		case "deadzone":
			pref.Deadzone = float32(*deadzone)
		case "trigger":
			pref.TriggerThreshold = float32(*trigger)
		case "fps":
			pref.FPS = *fps
		case "hold":
			pref.HoldFrames = *hold
		}
	})

	err = os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return err
	}

	err = pref.Save(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "preferences written to %s\n", path)
	return nil
}

// edges describes the keys pressed and released this frame.
func edges(s *snapshots.Store) string {
	var e []string
	for k := devices.KeyNone + 1; k < devices.NumKeys; k++ {
		if s.WasKeyPressed(k) {
			e = append(e, "+"+k.String())
		} else if s.WasKeyReleased(k) {
			e = append(e, "-"+k.String())
		}
	}
	return strings.Join(e, " ")
}
