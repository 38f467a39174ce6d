package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pong/internal/config"
	"github.com/plus3/pong/pong"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak run should last.")
	tick := flag.Duration("tick", 0, "Update interval. Zero runs updates back to back with a fixed step.")
	practice := flag.Bool("practice", false, "Play single-player practice instead of two autopilots.")
	seed := flag.Uint64("seed", 1, "Seed for the autopilots' aim error.")
	aimError := flag.Float64("error", 12, "Maximum autopilot aim error in pixels.")
	configPath := flag.String("config", "", "Optional TOML config file for gameplay settings.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	opts := cfg.Options()
	if *practice {
		opts.TwoPlayer = false
	}

	log.Println("Starting pong soak run...")

	world := pong.NewWorld(opts)
	world.Register(&pong.AutopilotSystem{Pilots: []*pong.Autopilot{
		pong.NewAutopilot(pong.Left, *aimError, *seed),
		pong.NewAutopilot(pong.Right, *aimError, *seed),
	}})
	stats := &MatchStats{}
	world.Register(&MatchStatsSystem{Stats: stats})

	report := &Report{
		Duration:  *duration,
		Tick:      *tick,
		TwoPlayer: opts.TwoPlayer,
		Seed:      *seed,
		AimError:  *aimError,
		Match:     stats,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	if *tick > 0 {
		world.Scheduler.Run(ctx, *tick)
	} else {
		report.UpdateTime.Samples = runFixed(ctx, world)
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Scheduler = world.Scheduler.GetStats()
	report.Storage = world.Storage.CollectStats()
	report.Final = world.Match()
	if len(report.Scheduler.Systems) > 0 {
		report.TotalUpdates = report.Scheduler.Systems[0].ExecutionCount
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// runFixed steps the world as fast as possible with a fixed 1/TargetTPS step
// and returns the wall time of every update.
func runFixed(ctx context.Context, world *pong.World) []time.Duration {
	const dt = 1.0 / pong.TargetTPS
	var samples []time.Duration

	for ctx.Err() == nil {
		updateStart := time.Now()
		world.Scheduler.Once(dt)
		samples = append(samples, time.Since(updateStart))
	}
	return samples
}
