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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	conf, err := ParseConfig([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, 0, conf.DeviceIndex)
	assert.Equal(t, 10, conf.Pipeline.HistorySize)
	assert.Equal(t, 100, conf.Pipeline.FireAreaThresh)
	assert.Equal(t, 50, conf.Pipeline.GrowthThresh)
	assert.Equal(t, 3, conf.Pipeline.TriggerFrames)
	assert.Equal(t, float64(1000), conf.Detect.SmokeAreaThresh)
	assert.Equal(t, float64(15), conf.Detect.MotionDeltaThresh)
	assert.Equal(t, 5, conf.Detect.FireKernelSize)
	assert.Equal(t, 10, conf.Detect.SmokeKernelSize)
}

func TestAllConfigKeysOverridable(t *testing.T) {
	conf, err := ParseConfig([]byte(`
device-index: 2
window-title: "Test Feed"
detect:
  fire-brightness: 180
  fire-kernel-size: 3
  smoke-kernel-size: 7
  motion-delta-thresh: 20
  smoke-area-thresh: 500
  fire-band:
    min-hue: 5
    min-sat: 60
    min-val: 190
    max-hue: 30
    max-sat: 255
    max-val: 255
pipeline:
  history-size: 20
  fire-area-thresh: 150
  growth-thresh: 80
  trigger-frames: 5
notify:
  activate: true
  bucket-size: 1
  min-refill-secs: 60
`))
	require.NoError(t, err)

	assert.Equal(t, 2, conf.DeviceIndex)
	assert.Equal(t, "Test Feed", conf.WindowTitle)
	assert.Equal(t, float64(180), conf.Detect.FireBrightness)
	assert.Equal(t, 3, conf.Detect.FireKernelSize)
	assert.Equal(t, 7, conf.Detect.SmokeKernelSize)
	assert.Equal(t, float64(20), conf.Detect.MotionDeltaThresh)
	assert.Equal(t, float64(500), conf.Detect.SmokeAreaThresh)
	assert.Equal(t, float64(5), conf.Detect.FireBand.MinHue)
	assert.Equal(t, 20, conf.Pipeline.HistorySize)
	assert.Equal(t, 150, conf.Pipeline.FireAreaThresh)
	assert.Equal(t, 80, conf.Pipeline.GrowthThresh)
	assert.Equal(t, 5, conf.Pipeline.TriggerFrames)
	assert.True(t, conf.Notify.Activate)
	assert.Equal(t, 1, conf.Notify.BucketSize)
	assert.Equal(t, 60, conf.Notify.MinRefillSecs)
}

func TestInvalidConfigRejected(t *testing.T) {
	_, err := ParseConfig([]byte(`
pipeline:
  history-size: 1
`))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`
device-index: -1
`))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`
detect:
  fire-band:
    min-hue: 50
    max-hue: 20
`))
	assert.Error(t, err)
}
