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
	"encoding/json"
	"errors"

	"github.com/godbus/dbus"
	"github.com/godbus/dbus/introspect"

	"github.com/ritikk112/FireDet/pipeline"
)

const (
	dbusName = "org.firedet.detector"
	dbusPath = "/org/firedet/detector"
)

type service struct {
	processor *pipeline.Processor
}

// startService exports the detector on the system bus. The processor
// must be fully constructed first: method calls arrive on the bus
// connection's own goroutine as soon as the object is exported.
func startService(processor *pipeline.Processor) error {
	conn, err := dbus.SystemBus()
	if err != nil {
		return err
	}
	reply, err := conn.RequestName(dbusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return errors.New("name already taken")
	}

	s := &service{processor: processor}
	conn.Export(s, dbusPath, dbusName)
	conn.Export(genIntrospectable(s), dbusPath, "org.freedesktop.DBus.Introspectable")

	return nil
}

func genIntrospectable(v interface{}) introspect.Introspectable {
	node := &introspect.Node{
		Interfaces: []introspect.Interface{{
			Name:    dbusName,
			Methods: introspect.Methods(v),
		}},
	}
	return introspect.NewIntrospectable(node)
}

// Status returns the current consecutive-frame counters as JSON.
func (s *service) Status() (string, *dbus.Error) {
	state := s.processor.State()
	buf, err := json.Marshal(map[string]int{
		"fire-frames":  state.FireFrames,
		"smoke-frames": state.SmokeFrames,
	})
	if err != nil {
		return "", &dbus.Error{
			Name: dbusName + ".Status",
			Body: []interface{}{err.Error()},
		}
	}
	return string(buf), nil
}
