// firedet - flag likely fire and smoke events in a live camera feed
//  Copyright (C) 2026, the firedet authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package notify

import (
	"log"

	"github.com/juju/ratelimit"
)

// NewThrottledListener wraps base so that alert notifications stop
// going out when alerts are raised too often. A flapping detection in
// front of a flickering light can otherwise flood the event queue with
// near-identical alerts carrying no new information.
func NewThrottledListener(base Listener, conf *Config) *ThrottledListener {
	return NewThrottledListenerWithClock(base, conf, nil)
}

// NewThrottledListenerWithClock is NewThrottledListener with the token
// bucket's clock exposed for tests. A nil clock uses the system clock.
func NewThrottledListenerWithClock(base Listener, conf *Config, clock ratelimit.Clock) *ThrottledListener {
	// The bucket holds one token per alert notification and regains a
	// token every MinRefill.
	refillRate := 1.0 / conf.MinRefill().Seconds()
	bucket := ratelimit.NewBucketWithRateAndClock(refillRate, int64(conf.BucketSize), clock)

	return &ThrottledListener{
		base:   base,
		bucket: bucket,
	}
}

// ThrottledListener forwards alert transitions to a base listener,
// dropping starts once the token bucket runs dry. The AlertEnded that
// pairs with a dropped AlertStarted is swallowed too, so the base
// listener always sees balanced transitions.
type ThrottledListener struct {
	base       Listener
	bucket     *ratelimit.Bucket
	suppressed bool
}

func (l *ThrottledListener) AlertStarted() {
	if l.bucket.TakeAvailable(1) == 0 {
		l.suppressed = true
		log.Print("alert notification throttled")
		return
	}
	l.suppressed = false
	l.base.AlertStarted()
}

func (l *ThrottledListener) AlertEnded() {
	if l.suppressed {
		l.suppressed = false
		return
	}
	l.base.AlertEnded()
}
