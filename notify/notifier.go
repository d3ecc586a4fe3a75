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
	"encoding/json"
	"log"
	"time"

	"github.com/godbus/dbus"
)

const (
	eventsDest  = "org.firedet.Events"
	eventsPath  = "/org/firedet/Events"
	queueMethod = "org.firedet.Events.Queue"
)

// Listener is notified of alert transitions. pipeline.AlertListener
// satisfies it.
type Listener interface {
	AlertStarted()
	AlertEnded()
}

// EventNotifier posts alert transitions to the events service over
// D-Bus. Posting failures are logged and dropped so that notification
// trouble never stalls the frame loop.
type EventNotifier struct{}

func (EventNotifier) AlertStarted() {
	postEvent("raised")
}

func (EventNotifier) AlertEnded() {
	postEvent("cleared")
}

func postEvent(status string) {
	ts := time.Now()
	eventDetails := map[string]interface{}{
		"description": map[string]interface{}{
			"type": "fire-smoke-alert",
			"details": map[string]interface{}{
				"status": status,
			},
		},
	}
	detailsJSON, err := json.Marshal(&eventDetails)
	if err != nil {
		log.Printf("Could not post alert event: %s", err)
		return
	}

	conn, err := dbus.SystemBus()
	if err != nil {
		log.Printf("Could not post alert event: %s", err)
		return
	}

	obj := conn.Object(eventsDest, eventsPath)
	call := obj.Call(queueMethod, 0, detailsJSON, ts.UnixNano())
	if call.Err != nil {
		log.Printf("Could not post alert event: %s", call.Err)
	}
}
