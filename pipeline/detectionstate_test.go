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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountersRunIndependently(t *testing.T) {
	var state DetectionState

	state.Update(true, false)
	state.Update(true, false)
	state.Update(true, true)

	assert.Equal(t, 3, state.FireFrames)
	assert.Equal(t, 1, state.SmokeFrames)
}

func TestAlertRequiresBothCounters(t *testing.T) {
	var state DetectionState

	for i := 0; i < 5; i++ {
		state.Update(true, false)
	}
	assert.False(t, state.Alert(3))

	for i := 0; i < 3; i++ {
		state.Update(true, true)
	}
	assert.True(t, state.Alert(3))
}

func TestSingleFailingFrameResetsCounter(t *testing.T) {
	var state DetectionState

	for i := 0; i < 10; i++ {
		state.Update(true, true)
	}
	assert.True(t, state.Alert(3))

	state.Update(false, true)

	assert.Equal(t, 0, state.FireFrames)
	assert.Equal(t, 11, state.SmokeFrames)
	assert.False(t, state.Alert(3))
}

func TestAlertIsNotLatched(t *testing.T) {
	var state DetectionState

	state.Update(true, true)
	state.Update(true, true)
	state.Update(true, true)
	assert.True(t, state.Alert(3))

	state.Update(false, false)
	assert.False(t, state.Alert(3))

	// It takes a full run of qualifying frames to assert again.
	state.Update(true, true)
	assert.False(t, state.Alert(3))
}
