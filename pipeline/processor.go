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

import (
	"log"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/ritikk112/FireDet/detect"
	"github.com/ritikk112/FireDet/loglimiter"
)

const minLogInterval = time.Minute

// AlertListener is notified on alert transitions. AlertStarted fires on
// the first frame the alert is asserted, AlertEnded on the first frame
// it is no longer asserted.
type AlertListener interface {
	AlertStarted()
	AlertEnded()
}

// Result is what one processed frame hands to the renderer.
type Result struct {
	// FireMask is the fire candidate mask for the frame. The caller
	// owns it and must Close it once rendered.
	FireMask gocv.Mat
	FireArea int
	Baseline int

	// SmokeRegions are the smoke regions that exceeded the area
	// threshold, for drawing.
	SmokeRegions []detect.Region

	Alert bool
}

func NewProcessor(conf *Config, detectConf *detect.Config, listener AlertListener) *Processor {
	return &Processor{
		conf:     *conf,
		fire:     detect.NewFireDetector(*detectConf),
		smoke:    detect.NewSmokeDetector(*detectConf),
		history:  NewMaskHistory(conf.HistorySize),
		prev:     gocv.NewMat(),
		listener: listener,
		log:      loglimiter.New(minLogInterval),
	}
}

// Processor runs the per-frame detection cycle and carries the state
// between cycles: the previous frame, the mask history and the
// consecutive-frame counters. Process must be called from a single
// goroutine; State may be called from any goroutine (the D-Bus service
// reads it while the frame loop runs).
type Processor struct {
	conf     Config
	fire     *detect.FireDetector
	smoke    *detect.SmokeDetector
	history  *MaskHistory
	prev     gocv.Mat
	alerting bool
	listener AlertListener
	log      *loglimiter.LogLimiter

	mu    sync.Mutex
	state DetectionState
}

// Process runs one detection cycle over frame. State mutations (history
// push, counter update, previous frame swap) happen only after both
// detectors have run, so no partial cycle is ever left applied.
func (p *Processor) Process(frame gocv.Mat) Result {
	fireMask, fireArea := p.fire.Detect(frame)
	smokeMask, smokeRegions, smokeFrame := p.smoke.Detect(frame, p.prev)
	smokeMask.Close()

	p.history.Push(fireMask, fireArea)
	baseline := p.history.Baseline()
	fireFrame := isFireFrame(fireArea, baseline, &p.conf)

	p.mu.Lock()
	p.state.Update(fireFrame, smokeFrame)
	state := p.state
	p.mu.Unlock()
	alert := state.Alert(p.conf.TriggerFrames)

	if p.conf.Verbose && (fireFrame || smokeFrame) {
		log.Printf("fire area %d (baseline %d), smoke regions %d, counters %d/%d",
			fireArea, baseline, len(smokeRegions), state.FireFrames, state.SmokeFrames)
	}

	if alert != p.alerting {
		p.alerting = alert
		if p.listener != nil {
			if alert {
				p.listener.AlertStarted()
			} else {
				p.listener.AlertEnded()
			}
		}
	}
	if alert {
		p.log.Print("alert: fire and smoke detected")
	}

	frame.CopyTo(&p.prev)

	return Result{
		FireMask:     fireMask,
		FireArea:     fireArea,
		Baseline:     baseline,
		SmokeRegions: smokeRegions,
		Alert:        alert,
	}
}

// State returns a copy of the current consecutive-frame counters. It
// is safe to call while another goroutine is in Process.
func (p *Processor) State() DetectionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Processor) Close() {
	p.fire.Close()
	p.smoke.Close()
	p.history.Close()
	p.prev.Close()
}
