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

// significantGrowth reports whether area has grown strictly more than
// thresh over the history baseline.
func significantGrowth(area, baseline, thresh int) bool {
	return area-baseline > thresh
}

// isFireFrame reports whether a frame counts towards the fire signal:
// the fire area must exceed the area threshold and must show
// significant growth over the baseline. Both comparisons are strict.
func isFireFrame(area, baseline int, conf *Config) bool {
	return area > conf.FireAreaThresh && significantGrowth(area, baseline, conf.GrowthThresh)
}
