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

package notify

import (
	"errors"
	"time"
)

type Config struct {
	// Activate enables posting alert events over D-Bus.
	Activate bool `yaml:"activate"`

	// BucketSize is how many alert events may be posted in a burst
	// before throttling kicks in.
	BucketSize int `yaml:"bucket-size"`

	// MinRefillSecs is how long it takes for one spent alert event to
	// become available again.
	MinRefillSecs int `yaml:"min-refill-secs"`
}

func DefaultConfig() Config {
	return Config{
		Activate:      false,
		BucketSize:    3,
		MinRefillSecs: 300,
	}
}

func (conf *Config) MinRefill() time.Duration {
	return time.Duration(conf.MinRefillSecs) * time.Second
}

func (conf *Config) Validate() error {
	if conf.BucketSize < 1 {
		return errors.New("bucket-size must be at least 1")
	}
	if conf.MinRefillSecs < 1 {
		return errors.New("min-refill-secs must be at least 1")
	}
	return nil
}
