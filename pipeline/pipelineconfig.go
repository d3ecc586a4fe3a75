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

import "errors"

type Config struct {
	// HistorySize is the number of fire mask snapshots retained for the
	// growth baseline.
	HistorySize int `yaml:"history-size"`

	// FireAreaThresh is the minimum fire mask area (exclusive) for a
	// frame to count towards an alert.
	FireAreaThresh int `yaml:"fire-area-thresh"`

	// GrowthThresh is the minimum growth (exclusive) of the fire area
	// over the history baseline.
	GrowthThresh int `yaml:"growth-thresh"`

	// TriggerFrames is the number of consecutive qualifying frames
	// needed on both the fire and smoke signals before the alert is
	// asserted.
	TriggerFrames int `yaml:"trigger-frames"`

	Verbose bool `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		HistorySize:    10,
		FireAreaThresh: 100,
		GrowthThresh:   50,
		TriggerFrames:  3,
	}
}

func (conf *Config) Validate() error {
	if conf.HistorySize < 2 {
		return errors.New("history-size must be at least 2")
	}
	if conf.TriggerFrames < 1 {
		return errors.New("trigger-frames must be at least 1")
	}
	if conf.FireAreaThresh < 0 || conf.GrowthThresh < 0 {
		return errors.New("area and growth thresholds must not be negative")
	}
	return nil
}
