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

package detect

import (
	"image"

	"gocv.io/x/gocv"
)

// NewSmokeDetector returns a detector for smoke-like regions. Close
// must be called when the detector is no longer needed.
func NewSmokeDetector(conf Config) *SmokeDetector {
	k := conf.SmokeKernelSize
	return &SmokeDetector{
		lower:       gocv.NewScalar(conf.SmokeBand.MinHue, conf.SmokeBand.MinSat, conf.SmokeBand.MinVal, 0),
		upper:       gocv.NewScalar(conf.SmokeBand.MaxHue, conf.SmokeBand.MaxSat, conf.SmokeBand.MaxVal, 0),
		deltaThresh: float32(conf.MotionDeltaThresh),
		areaThresh:  conf.SmokeAreaThresh,
		// Smoke regions are diffuse so a larger structuring element is
		// used than for fire.
		kernel: gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(k, k)),
	}
}

// SmokeDetector classifies pixels that changed since the previous frame
// and sit in a low saturation gray color band. It holds no state of its
// own; the caller supplies the previous frame.
type SmokeDetector struct {
	lower       gocv.Scalar
	upper       gocv.Scalar
	deltaThresh float32
	areaThresh  float64
	kernel      gocv.Mat
}

// Detect returns a mask of smoke candidate pixels, the regions whose
// area exceeds the configured threshold, and whether any region
// qualified. The mask is owned by the caller, which must Close it.
//
// On the first cycle there is no previous frame yet; an empty mask and
// a false signal are returned. This is a guard, not a failure.
func (d *SmokeDetector) Detect(frame, prev gocv.Mat) (gocv.Mat, []Region, bool) {
	if frame.Empty() || prev.Empty() {
		return gocv.NewMat(), nil, false
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	prevGray := gocv.NewMat()
	defer prevGray.Close()
	gocv.CvtColor(prev, &prevGray, gocv.ColorBGRToGray)

	motion := gocv.NewMat()
	defer motion.Close()
	gocv.AbsDiff(gray, prevGray, &motion)
	gocv.Threshold(motion, &motion, d.deltaThresh, 255, gocv.ThresholdBinary)

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	grayish := gocv.NewMat()
	defer grayish.Close()
	gocv.InRangeWithScalar(hsv, d.lower, d.upper, &grayish)

	mask := gocv.NewMat()
	gocv.BitwiseAnd(motion, grayish, &mask)

	gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, d.kernel)
	gocv.MorphologyEx(mask, &mask, gocv.MorphClose, d.kernel)

	regions := regionsAbove(mask, d.areaThresh)
	return mask, regions, len(regions) > 0
}

func (d *SmokeDetector) Close() {
	d.kernel.Close()
}
