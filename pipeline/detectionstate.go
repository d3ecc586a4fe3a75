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

package pipeline

// DetectionState tracks how many consecutive frames have qualified on
// each signal. The fire and smoke counters run independently; a single
// non-qualifying frame resets its counter to zero.
type DetectionState struct {
	FireFrames  int
	SmokeFrames int
}

func (s *DetectionState) Update(fireFrame, smokeFrame bool) {
	if fireFrame {
		s.FireFrames++
	} else {
		s.FireFrames = 0
	}
	if smokeFrame {
		s.SmokeFrames++
	} else {
		s.SmokeFrames = 0
	}
}

// Alert reports whether both counters have reached triggerFrames. The
// alert is evaluated fresh every frame, never latched: it drops the
// instant either counter resets.
func (s *DetectionState) Alert(triggerFrames int) bool {
	return s.FireFrames >= triggerFrames && s.SmokeFrames >= triggerFrames
}
