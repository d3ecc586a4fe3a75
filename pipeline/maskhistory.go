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

import "gocv.io/x/gocv"

// NewMaskHistory returns a history that retains the last size mask
// snapshots. Close must be called to release the ring's storage.
func NewMaskHistory(size int) *MaskHistory {
	slots := make([]gocv.Mat, size)
	for i := range slots {
		slots[i] = gocv.NewMat()
	}
	return &MaskHistory{
		size:  size,
		slots: slots,
		areas: make([]int, size),
	}
}

// MaskHistory keeps snapshots of the most recent fire masks in a fixed
// ring. Slot storage is reused, so a mask handed to Push is copied into
// the ring rather than retained; later mutation of the source mask
// never changes what the history holds.
type MaskHistory struct {
	size  int
	next  int // slot the next Push writes to
	count int
	slots []gocv.Mat
	areas []int
}

// Push stores a snapshot of mask along with its area, evicting the
// oldest entry once the ring is full.
func (h *MaskHistory) Push(mask gocv.Mat, area int) {
	mask.CopyTo(&h.slots[h.next])
	h.areas[h.next] = area
	h.next = (h.next + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Baseline returns the area recorded with the oldest retained mask, or
// 0 when fewer than two entries are held. The oldest retained mask can
// be up to size frames old: fire growth is measured against this lagged
// snapshot, not against the immediately preceding frame.
func (h *MaskHistory) Baseline() int {
	if h.count < 2 {
		return 0
	}
	return h.areas[h.oldestIndex()]
}

// oldest returns the oldest retained mask. The returned Mat is owned by
// the history and will be overwritten by later pushes.
func (h *MaskHistory) oldest() gocv.Mat {
	return h.slots[h.oldestIndex()]
}

// orderedAreas returns the recorded areas ordered oldest to newest.
func (h *MaskHistory) orderedAreas() []int {
	out := make([]int, h.count)
	start := h.oldestIndex()
	for i := range out {
		out[i] = h.areas[(start+i)%h.size]
	}
	return out
}

func (h *MaskHistory) Len() int {
	return h.count
}

func (h *MaskHistory) oldestIndex() int {
	if h.count == h.size {
		return h.next
	}
	return 0
}

func (h *MaskHistory) Close() {
	for i := range h.slots {
		h.slots[i].Close()
	}
}
