// cmd/dynexposure/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/tamzrod/dynexposure/internal/config"
	"github.com/tamzrod/dynexposure/internal/cycle"
	"github.com/tamzrod/dynexposure/internal/meter"
	"github.com/tamzrod/dynexposure/internal/status"
	"github.com/tamzrod/dynexposure/internal/uvc"
	"github.com/tamzrod/dynexposure/internal/writer"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (optional)")
	device := flag.String("device", "", "video device node")
	preset := flag.String("preset", "", "metering preset: "+strings.Join(meter.PresetNames(), " | "))
	strict := flag.Bool("strict", false, "skip fields whose transaction failed")
	dryRun := flag.Bool("dry-run", false, "classify only, never touch exposure controls")
	mapXU := flag.Bool("map", false, "register the metering selectors as V4L2 controls first")
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// Flags win over the file, but only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			cfg.Device = *device
		case "preset":
			cfg.Preset = *preset
		case "strict":
			cfg.Classifier.Strict = *strict
		case "map":
			cfg.XU.MapControls = *mapXU
		}
	})

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	// The preset registry lives in meter; check it before touching the device.
	if _, err := meter.Preset(cfg.Preset); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	// --------------------
	// Open device
	// --------------------

	dev, err := uvc.Open(cfg.Device)
	if err != nil {
		log.Fatalf("device open failed: %v", err)
	}
	defer dev.Close()

	// --------------------
	// One pass
	// --------------------

	r, err := cycle.Build(cfg, dev, *dryRun)
	if err != nil {
		dev.Close()
		log.Fatalf("cycle build failed (device=%s): %v", cfg.Device, err)
	}

	snap, err := r.RunOnce()
	if err != nil {
		// The pass completed; the snapshot carries the error code.
		log.Printf("correction failed (run=%s): %v", snap.RunID, err)
	}

	fmt.Println(status.Render(snap))

	// --------------------
	// Optional report
	// --------------------

	plan, ok := writer.BuildPlan(cfg.Report)
	if !ok {
		return
	}

	w, closeWriter, err := writer.Build(plan)
	if err != nil {
		log.Printf("report writer failed (endpoint=%s): %v", plan.Endpoint, err)
		return
	}
	defer closeWriter()

	if err := w.Write(snap); err != nil {
		log.Printf("report write failed (endpoint=%s): %v", plan.Endpoint, err)
	}
}
