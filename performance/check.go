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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/frameloop"
	"github.com/jetsetilly/frameinput/snapshots"
)

// Sentinal error patterns.
const (
	CheckError = "performance: %v"
)

// Check the performance of the snapshot store and its provider.
//
// The frame loop will run for the specified duration, after a short lead
// time, and will create a cpu, memory profile, a trace (or a combination of
// those) as defined by the Profile argument. Setting fps to zero will run the
// loop uncapped.
func Check(output io.Writer, profile Profile, store *snapshots.Store, fps int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	var startFrame int
	var endFrame int

	runner := func() error {
		// lead time allows the frame rate to settle down
		ctx, cancel := context.WithTimeout(context.Background(), leadTime)
		defer cancel()
		err := frameloop.Run(ctx, store, fps, nil)
		if err != nil {
			return err
		}

		startFrame = store.Frame()

		ctx, cancel = context.WithTimeout(context.Background(), dur)
		defer cancel()
		err = frameloop.Run(ctx, store, fps, nil)
		if err != nil {
			return err
		}

		endFrame = store.Frame()
		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(CheckError, err)
	}

	numFrames := endFrame - startFrame
	if fps > 0 {
		rate, accuracy := CalcFPS(fps, numFrames, dur.Seconds())
		output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", rate, numFrames, dur.Seconds(), accuracy)))
	} else {
		rate, _ := CalcFPS(1, numFrames, dur.Seconds())
		output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) uncapped\n", rate, numFrames, dur.Seconds())))
	}

	return nil
}

// the amount of time the frame loop runs for before measurement begins
var leadTime = 2 * time.Second
