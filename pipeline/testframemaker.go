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
	"image"

	"gocv.io/x/gocv"
)

const (
	makerRows = 120
	makerCols = 160
)

// TestFrameMaker feeds synthetic frames through a Processor. Fire
// frames carry a bright warm block; smoke frames carry a gray block
// whose intensity alternates between frames so the motion check always
// sees a change.
type TestFrameMaker struct {
	processor *Processor

	// LastResult summarizes the most recently processed frame. Its
	// FireMask has already been closed.
	LastResult Result

	tick int
}

func MakeTestFrameMaker(processor *Processor) *TestFrameMaker {
	return &TestFrameMaker{processor: processor}
}

// AddBackgroundFrames plays n all-dark frames.
func (tfm *TestFrameMaker) AddBackgroundFrames(n int) *TestFrameMaker {
	return tfm.addFrames(n, false, false)
}

// AddEventFrames plays n frames showing both fire and smoke.
func (tfm *TestFrameMaker) AddEventFrames(n int) *TestFrameMaker {
	return tfm.addFrames(n, true, true)
}

func (tfm *TestFrameMaker) AddFireOnlyFrames(n int) *TestFrameMaker {
	return tfm.addFrames(n, true, false)
}

func (tfm *TestFrameMaker) AddSmokeOnlyFrames(n int) *TestFrameMaker {
	return tfm.addFrames(n, false, true)
}

func (tfm *TestFrameMaker) addFrames(n int, fire, smoke bool) *TestFrameMaker {
	for i := 0; i < n; i++ {
		frame := tfm.makeFrame(fire, smoke)
		tfm.LastResult = tfm.processor.Process(frame)
		tfm.LastResult.FireMask.Close()
		frame.Close()
	}
	return tfm
}

func (tfm *TestFrameMaker) makeFrame(fire, smoke bool) gocv.Mat {
	frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), makerRows, makerCols, gocv.MatTypeCV8UC3)
	tfm.tick++

	if smoke {
		// Alternate between two in-band gray levels so consecutive
		// smoke frames always differ by more than the motion threshold.
		gray := float64(120)
		if tfm.tick%2 == 0 {
			gray = 160
		}
		tfm.paint(&frame, image.Rect(10, 10, 70, 70), gray, gray, gray)
	}
	if fire {
		tfm.paint(&frame, image.Rect(90, 10, 130, 50), 200, 230, 255)
	}
	return frame
}

func (tfm *TestFrameMaker) paint(frame *gocv.Mat, rect image.Rectangle, b, g, r float64) {
	block := frame.Region(rect)
	defer block.Close()
	block.SetTo(gocv.NewScalar(b, g, r, 0))
}
