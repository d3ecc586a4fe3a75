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
	"log"

	arg "github.com/alexflint/go-arg"
	"github.com/coreos/go-systemd/daemon"
	"gocv.io/x/gocv"

	"github.com/ritikk112/FireDet/capture"
	"github.com/ritikk112/FireDet/notify"
	"github.com/ritikk112/FireDet/pipeline"
	"github.com/ritikk112/FireDet/render"
)

const (
	framesHz = 30 // approx

	frameLogIntervalFirstMin = 15 * framesHz
	frameLogInterval         = 60 * 5 * framesHz

	framesPerSdNotify = 5 * framesHz
)

var version = "<not set>"

type Args struct {
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
	VideoFile  string `arg:"-f,--testfile" help:"run a video file through the detector instead of a live camera"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
	Verbose    bool   `arg:"-v,--verbose" help:"Make logging more verbose"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/firedet.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()

	if !args.Timestamps {
		log.SetFlags(0) // Removes default timestamp flag
	}

	log.Printf("running version: %s", version)
	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}
	conf.Pipeline.Verbose = args.Verbose
	logConfig(conf)

	source, err := openSource(args, conf)
	if err != nil {
		return err
	}
	defer source.Close()

	var listener pipeline.AlertListener
	if conf.Notify.Activate {
		listener = notify.NewThrottledListener(notify.EventNotifier{}, &conf.Notify)
	}

	processor := pipeline.NewProcessor(&conf.Pipeline, &conf.Detect, listener)
	defer processor.Close()

	log.Println("starting d-bus service")
	if err := startService(processor); err != nil {
		log.Printf("d-bus service not available: %v", err)
	}

	renderer := render.NewRenderer(conf.WindowTitle)
	defer renderer.Close()

	daemon.SdNotify(false, "READY=1")

	return runLoop(source, renderer, processor)
}

func openSource(args Args, conf *Config) (capture.Source, error) {
	if args.VideoFile != "" {
		log.Printf("reading frames from %s", args.VideoFile)
		return capture.OpenFile(args.VideoFile)
	}
	log.Print("opening camera")
	return capture.OpenDevice(conf.DeviceIndex)
}

func runLoop(source capture.Source, renderer *render.Renderer, processor *pipeline.Processor) error {
	frame := gocv.NewMat()
	defer frame.Close()

	totalFrames := 0
	for {
		if err := source.Next(&frame); err != nil {
			if err == capture.ErrEndOfStream {
				log.Print("end of video stream")
				return nil
			}
			return err
		}
		totalFrames++

		if totalFrames%frameLogIntervalFirstMin == 0 &&
			totalFrames <= 60*framesHz || totalFrames%frameLogInterval == 0 {
			log.Printf("%d frames processed", totalFrames)
		}
		if totalFrames%framesPerSdNotify == 0 {
			daemon.SdNotify(false, "WATCHDOG=1")
		}

		result := processor.Process(frame)
		quit := renderer.Draw(&frame, result)
		result.FireMask.Close()

		if quit {
			log.Print("quit requested")
			return nil
		}
	}
}

func logConfig(conf *Config) {
	log.Printf("device index: %d", conf.DeviceIndex)
	log.Printf("history size: %d frames", conf.Pipeline.HistorySize)
	log.Printf("fire area threshold: %d, growth threshold: %d",
		conf.Pipeline.FireAreaThresh, conf.Pipeline.GrowthThresh)
	log.Printf("smoke area threshold: %v", conf.Detect.SmokeAreaThresh)
	log.Printf("trigger frames: %d", conf.Pipeline.TriggerFrames)
	if conf.Notify.Activate {
		log.Printf("notify: %+v", conf.Notify)
	}
}
