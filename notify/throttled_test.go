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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
}

type countingListener struct {
	started int
	ended   int
}

func (l *countingListener) AlertStarted() { l.started++ }
func (l *countingListener) AlertEnded()   { l.ended++ }

func newTestThrottledListener() (*countingListener, *ThrottledListener, *testClock) {
	clock := &testClock{now: time.Now()}
	base := new(countingListener)
	conf := &Config{
		Activate:      true,
		BucketSize:    2,
		MinRefillSecs: 60,
	}
	return base, NewThrottledListenerWithClock(base, conf, clock), clock
}

func TestBurstForwardedUntilBucketEmpty(t *testing.T) {
	base, throttled, _ := newTestThrottledListener()

	throttled.AlertStarted()
	throttled.AlertEnded()
	throttled.AlertStarted()
	throttled.AlertEnded()

	assert.Equal(t, 2, base.started)
	assert.Equal(t, 2, base.ended)

	throttled.AlertStarted()
	throttled.AlertEnded()

	assert.Equal(t, 2, base.started)
	assert.Equal(t, 2, base.ended)
}

func TestSuppressedStartSwallowsMatchingEnd(t *testing.T) {
	base, throttled, _ := newTestThrottledListener()

	throttled.AlertStarted()
	throttled.AlertStarted()
	throttled.AlertStarted() // bucket dry, suppressed

	assert.Equal(t, 2, base.started)

	throttled.AlertEnded()
	assert.Equal(t, 0, base.ended)
}

func TestBucketRefillsOverTime(t *testing.T) {
	base, throttled, clock := newTestThrottledListener()

	throttled.AlertStarted()
	throttled.AlertEnded()
	throttled.AlertStarted()
	throttled.AlertEnded()
	throttled.AlertStarted()
	throttled.AlertEnded()
	assert.Equal(t, 2, base.started)

	clock.Sleep(61 * time.Second)

	throttled.AlertStarted()
	throttled.AlertEnded()
	assert.Equal(t, 3, base.started)
	assert.Equal(t, 3, base.ended)
}
