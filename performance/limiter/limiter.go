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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for fps.Wait(ctx) {
//		store.Advance()
//	}
package limiter

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/frameinput/curated"
)

// Sentinal error patterns.
const (
	InvalidLimit = "limiter: frames per second must be greater than zero (%d)"
)

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	framesPerSecond atomic.Int64
	secondsPerFrame atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		adjustedSecondPerFrame := time.Duration(lim.secondsPerFrame.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()

			spf := time.Duration(lim.secondsPerFrame.Load())
			adjustedSecondPerFrame -= nt.Sub(t) - spf

			// a long stall in the receiver would otherwise cause a burst of
			// ticks
			if adjustedSecondPerFrame < 0 {
				adjustedSecondPerFrame = 0
			} else if adjustedSecondPerFrame > spf {
				adjustedSecondPerFrame = spf
			}

			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond < 1 {
		return curated.Errorf(InvalidLimit, framesPerSecond)
	}
	lim.framesPerSecond.Store(int64(framesPerSecond))
	lim.secondsPerFrame.Store(int64(time.Second) / int64(framesPerSecond))
	return nil
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() int {
	return int(lim.framesPerSecond.Load())
}

// Wait will block until trigger. Returns false if the context is done before
// the trigger.
func (lim *FpsLimiter) Wait(ctx context.Context) bool {
	select {
	case <-lim.tick:
		return true
	case <-ctx.Done():
		return false
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Close stops the ticker. The FpsLimiter should not be used after Close().
func (lim *FpsLimiter) Close() {
	close(lim.quit)
}
