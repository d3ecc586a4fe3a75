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

// NewFireDetector returns a detector for fire-like regions. Close must
// be called when the detector is no longer needed.
func NewFireDetector(conf Config) *FireDetector {
	k := conf.FireKernelSize
	return &FireDetector{
		lower:      gocv.NewScalar(conf.FireBand.MinHue, conf.FireBand.MinSat, conf.FireBand.MinVal, 0),
		upper:      gocv.NewScalar(conf.FireBand.MaxHue, conf.FireBand.MaxSat, conf.FireBand.MaxVal, 0),
		brightness: float32(conf.FireBrightness),
		kernel:     gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(k, k)),
	}
}

// FireDetector classifies pixels that sit in a bright warm color band
// and are also bright in grayscale. It is stateless: each frame is
// judged on its own.
type FireDetector struct {
	lower      gocv.Scalar
	upper      gocv.Scalar
	brightness float32
	kernel     gocv.Mat
}

// Detect returns a mask of fire candidate pixels and the number of
// pixels set in it. The mask has the same dimensions as frame and is
// owned by the caller, which must Close it.
func (d *FireDetector) Detect(frame gocv.Mat) (gocv.Mat, int) {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	colorMask := gocv.NewMat()
	defer colorMask.Close()
	gocv.InRangeWithScalar(hsv, d.lower, d.upper, &colorMask)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	bright := gocv.NewMat()
	defer bright.Close()
	gocv.Threshold(gray, &bright, d.brightness, 255, gocv.ThresholdBinary)

	mask := gocv.NewMat()
	gocv.BitwiseAnd(colorMask, bright, &mask)

	// Opening removes speckle, closing fills small holes in what remains.
	gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, d.kernel)
	gocv.MorphologyEx(mask, &mask, gocv.MorphClose, d.kernel)

	return mask, gocv.CountNonZero(mask)
}

func (d *FireDetector) Close() {
	d.kernel.Close()
}
