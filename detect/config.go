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
	"errors"
	"fmt"
)

// ColorBand is an inclusive range in HSV space. Hue uses OpenCV's 0-179
// scale, saturation and value use 0-255.
type ColorBand struct {
	MinHue float64 `yaml:"min-hue"`
	MinSat float64 `yaml:"min-sat"`
	MinVal float64 `yaml:"min-val"`
	MaxHue float64 `yaml:"max-hue"`
	MaxSat float64 `yaml:"max-sat"`
	MaxVal float64 `yaml:"max-val"`
}

func (b ColorBand) validate() error {
	if b.MinHue > b.MaxHue || b.MinSat > b.MaxSat || b.MinVal > b.MaxVal {
		return errors.New("color band minimums must not exceed maximums")
	}
	return nil
}

type Config struct {
	FireBand       ColorBand `yaml:"fire-band"`
	FireBrightness float64   `yaml:"fire-brightness"`
	FireKernelSize int       `yaml:"fire-kernel-size"`

	SmokeBand         ColorBand `yaml:"smoke-band"`
	MotionDeltaThresh float64   `yaml:"motion-delta-thresh"`
	SmokeKernelSize   int       `yaml:"smoke-kernel-size"`
	SmokeAreaThresh   float64   `yaml:"smoke-area-thresh"`
}

func DefaultConfig() Config {
	return Config{
		FireBand: ColorBand{
			MinHue: 0, MinSat: 50, MinVal: 200,
			MaxHue: 25, MaxSat: 255, MaxVal: 255,
		},
		FireBrightness: 200,
		FireKernelSize: 5,
		SmokeBand: ColorBand{
			MinHue: 0, MinSat: 0, MinVal: 100,
			MaxHue: 179, MaxSat: 30, MaxVal: 200,
		},
		MotionDeltaThresh: 15,
		SmokeKernelSize:   10,
		SmokeAreaThresh:   1000,
	}
}

func (conf *Config) Validate() error {
	if err := conf.FireBand.validate(); err != nil {
		return fmt.Errorf("fire-band: %v", err)
	}
	if err := conf.SmokeBand.validate(); err != nil {
		return fmt.Errorf("smoke-band: %v", err)
	}
	if conf.FireKernelSize < 1 || conf.SmokeKernelSize < 1 {
		return errors.New("morphology kernel sizes must be at least 1")
	}
	if conf.MotionDeltaThresh < 0 {
		return errors.New("motion-delta-thresh must not be negative")
	}
	if conf.SmokeAreaThresh < 0 {
		return errors.New("smoke-area-thresh must not be negative")
	}
	return nil
}
