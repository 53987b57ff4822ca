package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/brickfall/breakout"
	"github.com/plus3/brickfall/engine"
	"github.com/plus3/brickfall/render"
)

// nullSurface accepts every draw call so rendering cost is part of the measurement.
type nullSurface struct{}

func (nullSurface) FillRect(x, y, w, h float64, c color.Color) {}
func (nullSurface) FillCircle(cx, cy, r float64, c color.Color) {}
func (nullSurface) Text(s string, x, y float64, c color.Color, align render.Align) {}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak test should run for.")
	offset := flag.Float64("offset", 17, "Aim offset of the autopilot relative to the ball center.")
	draw := flag.Bool("draw", true, "Render every tick to a null surface.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	cfg := breakout.DefaultConfig()
	flag.IntVar(&cfg.Lives, "lives", cfg.Lives, "Lives per game.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("Starting soak test...")

	world := engine.NewWorld(cfg)
	scheduler := engine.NewScheduler(world)
	scheduler.Register(&engine.AutopilotSystem{Offset: *offset, Restart: true})
	engine.RegisterGameSystems(scheduler)
	if *draw {
		scheduler.Register(&engine.RenderSystem{Surface: nullSurface{}})
	}

	report := &Report{
		Duration:       *duration,
		Config:         cfg,
		Offset:         *offset,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(1.0 / breakout.FPS)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Metrics = *world.Metrics
	report.Systems = scheduler.GetStats().Systems
	report.Final = world.State
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
