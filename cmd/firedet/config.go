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
	"errors"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/ritikk112/FireDet/detect"
	"github.com/ritikk112/FireDet/notify"
	"github.com/ritikk112/FireDet/pipeline"
)

type Config struct {
	DeviceIndex int    `yaml:"device-index"`
	WindowTitle string `yaml:"window-title"`
	Detect      detect.Config
	Pipeline    pipeline.Config
	Notify      notify.Config
}

func (conf *Config) Validate() error {
	if conf.DeviceIndex < 0 {
		return errors.New("device-index must not be negative")
	}

	if err := conf.Detect.Validate(); err != nil {
		return err
	}

	if err := conf.Pipeline.Validate(); err != nil {
		return err
	}

	return conf.Notify.Validate()
}

var defaultConfig = Config{
	DeviceIndex: 0,
	WindowTitle: "Fire and Smoke Detection",
	Detect:      detect.DefaultConfig(),
	Pipeline:    pipeline.DefaultConfig(),
	Notify:      notify.DefaultConfig(),
}

// ParseConfigFile loads the configuration, falling back to the
// defaults when no file exists at filename.
func ParseConfigFile(filename string) (*Config, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			conf := defaultConfig
			return &conf, conf.Validate()
		}
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	conf := defaultConfig
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
