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

func TestGrowthComparisonIsStrict(t *testing.T) {
	assert.False(t, significantGrowth(150, 100, 50))
	assert.True(t, significantGrowth(151, 100, 50))
	assert.False(t, significantGrowth(100, 100, 0))
	assert.True(t, significantGrowth(101, 100, 0))
}

func TestGrowthMonotonicInCurrentArea(t *testing.T) {
	const baseline = 80
	const thresh = 50

	grew := false
	for area := 0; area <= 300; area++ {
		now := significantGrowth(area, baseline, thresh)
		if grew {
			assert.True(t, now, "growth flipped back to false at area %d", area)
		}
		grew = now
	}
	assert.True(t, grew)
}

func TestFireFrameNeedsAreaAndGrowth(t *testing.T) {
	conf := DefaultConfig()

	// Large area but no growth over the baseline.
	assert.False(t, isFireFrame(500, 480, &conf))
	// Growth but area at (not above) the detection threshold.
	assert.False(t, isFireFrame(100, 0, &conf))
	// Both conditions strictly exceeded.
	assert.True(t, isFireFrame(101, 0, &conf))
	assert.True(t, isFireFrame(500, 400, &conf))
}
