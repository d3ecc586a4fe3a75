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

package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ritikk112/FireDet/pipeline"
)

const (
	// The fire mask is alpha-blended over the frame at a fixed ratio.
	frameWeight = 0.7
	maskWeight  = 0.3

	// keyPollMS bounds the per-frame wait for a quit keypress.
	keyPollMS = 30

	outlineThickness = 2
	bannerText       = "FIRE ALERT!"
)

var (
	smokeOutlineColor = color.RGBA{G: 255}
	bannerColor       = color.RGBA{R: 255}
)

// NewRenderer opens an on-screen window for annotated frames. Close
// must be called to release it.
func NewRenderer(title string) *Renderer {
	return &Renderer{
		window:  gocv.NewWindow(title),
		maskBGR: gocv.NewMat(),
	}
}

type Renderer struct {
	window  *gocv.Window
	maskBGR gocv.Mat
}

// Draw annotates frame in place with the cycle's result, shows it, and
// polls briefly for a keypress. It reports whether the user asked to
// quit. Smoke outlines and the alert banner are drawn before the mask
// blend so they pick up the same tint as the rest of the frame.
func (r *Renderer) Draw(frame *gocv.Mat, result pipeline.Result) bool {
	if len(result.SmokeRegions) > 0 {
		outlines := make([][]image.Point, len(result.SmokeRegions))
		for i, region := range result.SmokeRegions {
			outlines[i] = region.Outline
		}
		contours := gocv.NewPointsVectorFromPoints(outlines)
		for i := 0; i < contours.Size(); i++ {
			gocv.DrawContours(frame, contours, i, smokeOutlineColor, outlineThickness)
		}
		contours.Close()
	}

	if result.Alert {
		gocv.PutText(frame, bannerText, image.Pt(10, 50),
			gocv.FontHersheySimplex, 1, bannerColor, 2)
	}

	gocv.CvtColor(result.FireMask, &r.maskBGR, gocv.ColorGrayToBGR)
	gocv.AddWeighted(*frame, frameWeight, r.maskBGR, maskWeight, 0, frame)

	r.window.IMShow(*frame)
	return r.window.WaitKey(keyPollMS) >= 0
}

func (r *Renderer) Close() error {
	r.maskBGR.Close()
	return r.window.Close()
}
