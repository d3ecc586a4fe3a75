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
	"gocv.io/x/gocv"
)

const maskSide = 16

// maskWithArea returns a mask with exactly area pixels set.
func maskWithArea(area int) gocv.Mat {
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), maskSide, maskSide, gocv.MatTypeCV8U)
	for i := 0; i < area; i++ {
		mask.SetUCharAt(i/maskSide, i%maskSide, 255)
	}
	return mask
}

func pushMaskWithArea(h *MaskHistory, area int) {
	mask := maskWithArea(area)
	defer mask.Close()
	h.Push(mask, area)
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	history := NewMaskHistory(10)
	defer history.Close()

	for area := 1; area <= 11; area++ {
		pushMaskWithArea(history, area)
		assert.LessOrEqual(t, history.Len(), 10)
	}

	assert.Equal(t, 10, history.Len())
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, history.orderedAreas())
	// The 1st push has been evicted; the baseline is the 2nd.
	assert.Equal(t, 2, history.Baseline())
}

func TestBaselineNeedsTwoEntries(t *testing.T) {
	history := NewMaskHistory(10)
	defer history.Close()

	assert.Equal(t, 0, history.Baseline())

	pushMaskWithArea(history, 50)
	assert.Equal(t, 0, history.Baseline())

	pushMaskWithArea(history, 70)
	assert.Equal(t, 50, history.Baseline())

	pushMaskWithArea(history, 90)
	assert.Equal(t, 50, history.Baseline())
}

func TestPushStoresIndependentSnapshot(t *testing.T) {
	history := NewMaskHistory(4)
	defer history.Close()

	mask := maskWithArea(5)
	defer mask.Close()
	history.Push(mask, 5)
	history.Push(mask, 5)

	// Mutating the source afterwards must not change what was stored.
	mask.SetTo(gocv.NewScalar(255, 0, 0, 0))

	assert.Equal(t, 5, gocv.CountNonZero(history.oldest()))
}
