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

package capture

import (
	"errors"
	"fmt"
	"log"

	"gocv.io/x/gocv"
)

// maxDeviceIndex bounds the fallback scan over camera device indices.
const maxDeviceIndex = 10

// ErrEndOfStream is returned by Source.Next when the stream has no
// more frames. It signals ordinary termination, not a failure.
var ErrEndOfStream = errors.New("end of stream")

// Source supplies video frames one at a time.
type Source interface {
	// Next reads the next frame into frame, returning ErrEndOfStream
	// once the stream is exhausted.
	Next(frame *gocv.Mat) error
	Close() error
}

// OpenDevice opens the camera at index. If that fails the remaining
// device indices below maxDeviceIndex are tried in order before giving
// up; a flaky built-in webcam should not stop an attached USB camera
// from being used.
func OpenDevice(index int) (Source, error) {
	cam, err := openDevice(index)
	if err == nil {
		return &videoSource{cam: cam}, nil
	}

	for i := 0; i < maxDeviceIndex; i++ {
		if i == index {
			continue
		}
		cam, err = openDevice(i)
		if err == nil {
			log.Printf("camera %d unavailable, using camera %d", index, i)
			return &videoSource{cam: cam}, nil
		}
	}
	return nil, fmt.Errorf("no usable camera found (tried indices 0-%d)", maxDeviceIndex-1)
}

// OpenFile opens a video file as a frame source.
func OpenFile(path string) (Source, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v", path, err)
	}
	return &videoSource{cam: cap}, nil
}

func openDevice(index int) (*gocv.VideoCapture, error) {
	cam, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return nil, err
	}
	if !cam.IsOpened() {
		cam.Close()
		return nil, fmt.Errorf("camera %d did not open", index)
	}
	return cam, nil
}

type videoSource struct {
	cam *gocv.VideoCapture
}

func (s *videoSource) Next(frame *gocv.Mat) error {
	if ok := s.cam.Read(frame); !ok || frame.Empty() {
		return ErrEndOfStream
	}
	return nil
}

func (s *videoSource) Close() error {
	return s.cam.Close()
}
