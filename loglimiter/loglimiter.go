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

package loglimiter

import (
	"fmt"
	"log"
	"time"
)

const maxTrackedMessages = 64

// New returns a new LogLimiter with the configured minimum interval
// between repeats of the same message.
func New(interval time.Duration) *LogLimiter {
	return &LogLimiter{
		interval: interval,
		nowFunc:  time.Now,
		lastSeen: make(map[string]time.Time),
	}
}

// LogLimiter suppresses a log message if the same message was emitted
// within some time interval. Messages are limited independently, so a
// repeating alert line does not let an interleaved warning slip through
// more often than its own interval allows.
type LogLimiter struct {
	interval time.Duration
	nowFunc  func() time.Time
	lastSeen map[string]time.Time
}

func (limiter *LogLimiter) Printf(format string, v ...interface{}) {
	limiter.Print(fmt.Sprintf(format, v...))
}

func (limiter *LogLimiter) Print(s string) {
	now := limiter.nowFunc()
	if last, seen := limiter.lastSeen[s]; seen && now.Sub(last) < limiter.interval {
		return
	}

	log.Print(s)
	if len(limiter.lastSeen) >= maxTrackedMessages {
		limiter.prune(now)
	}
	limiter.lastSeen[s] = now
}

// prune drops entries old enough that they no longer suppress anything.
// If every entry is still current the stalest one is dropped anyway, so
// the map never grows past maxTrackedMessages even when that many
// distinct messages arrive within one interval. The dropped message may
// repeat once before its interval is up, which is the cheaper failure.
func (limiter *LogLimiter) prune(now time.Time) {
	for s, last := range limiter.lastSeen {
		if now.Sub(last) >= limiter.interval {
			delete(limiter.lastSeen, s)
		}
	}
	if len(limiter.lastSeen) < maxTrackedMessages {
		return
	}

	var stalest string
	var stalestAt time.Time
	found := false
	for s, last := range limiter.lastSeen {
		if !found || last.Before(stalestAt) {
			stalest = s
			stalestAt = last
			found = true
		}
	}
	delete(limiter.lastSeen, stalest)
}
