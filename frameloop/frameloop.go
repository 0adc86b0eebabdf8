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

package frameloop

import (
	"context"

	"github.com/jetsetilly/frameinput/curated"
	"github.com/jetsetilly/frameinput/performance/limiter"
	"github.com/jetsetilly/frameinput/snapshots"
)

// Sentinal error patterns.
const (
	InvalidRate = "frameloop: frames per second cannot be negative (%d)"
	FrameError  = "frameloop: frame %d: %v"
)

// Frame is called once per frame, after the store has been advanced. Return
// false to end the loop.
type Frame func(store *snapshots.Store) (bool, error)

// Run the frame loop until the context is done or until the frame function
// returns false or an error. A nil frame function is allowed.
//
// The loop is limited to fps frames per second. A value of zero runs the
// loop as quickly as possible.
func Run(ctx context.Context, store *snapshots.Store, fps int, frame Frame) error {
	if fps < 0 {
		return curated.Errorf(InvalidRate, fps)
	}

	wait := func() bool {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}

	if fps > 0 {
		lim, err := limiter.NewFPSLimiter(fps)
		if err != nil {
			return curated.Errorf(FrameError, store.Frame(), err)
		}
		defer lim.Close()
		wait = func() bool {
			return lim.Wait(ctx)
		}
	}

	for wait() {
		store.Advance()

		if frame == nil {
			continue
		}

		cont, err := frame(store)
		if err != nil {
			return curated.Errorf(FrameError, store.Frame(), err)
		}
		if !cont {
			return nil
		}
	}

	return nil
}
