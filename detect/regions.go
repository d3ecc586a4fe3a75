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

// Region is a connected component of a detection mask. Outline holds
// the boundary points of the component's external contour.
type Region struct {
	Area    float64
	Outline []image.Point
}

// regionsAbove extracts the external connected components of mask and
// returns those with a contour area strictly greater than minArea.
func regionsAbove(mask gocv.Mat, minArea float64) []Region {
	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var regions []Region
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		area := gocv.ContourArea(contour)
		if area > minArea {
			regions = append(regions, Region{
				Area:    area,
				Outline: contour.ToPoints(),
			})
		}
	}
	return regions
}
