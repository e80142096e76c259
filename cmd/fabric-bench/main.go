package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/spacefabric/fabric"
	"github.com/plus3/spacefabric/scene"
	"github.com/plus3/spacefabric/star"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	rows := flag.Int("rows", 200, "Grid row count.")
	columns := flag.Int("columns", 200, "Grid column count.")
	bodies := flag.Int("bodies", 3, "Number of stars placed on the fabric.")
	falloff := flag.Int("falloff", int(fabric.InverseLinear), "Falloff exponent, 1 or 2.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting fabric benchmark...")

	mesh, err := fabric.New(fabric.Options{
		Rows:    *rows,
		Columns: *columns,
		Spacing: 2.0 / float64(max(*rows, *columns)-1),
		Falloff: fabric.Falloff(*falloff),
	})
	if err != nil {
		log.Fatalf("Failed to build fabric: %v", err)
	}

	sc := scene.New(mesh)
	halfW, halfH := mesh.Extent()
	log.Printf("Placing %d stars...\n", *bodies)
	for i := 0; i < *bodies; i++ {
		pos := fabric.Vec2{
			X: (rand.Float64()*2 - 1) * halfW,
			Y: (rand.Float64()*2 - 1) * halfH,
		}
		sc.Add(star.New(pos, 0.05, star.MinMass+rand.Float32()*(star.MaxMass-star.MinMass)))
	}
	sc.Probe = scene.Probe{Enabled: true, Mass: 0.3}

	deform := &scene.DeformSystem{}
	scheduler := scene.NewScheduler(sc)
	scheduler.Register(deform)
	scheduler.Register(&scene.MetricsSystem{})

	report := &Report{
		Duration:       *duration,
		Rows:           *rows,
		Columns:        *columns,
		Bodies:         *bodies,
		Falloff:        fabric.Falloff(*falloff).String(),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running benchmark for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			// Orbit the probe so every frame needs a fresh deformation.
			angle := float64(totalUpdates) * 0.01
			sc.Probe.Position = fabric.Vec2{X: math.Cos(angle) * halfW * 0.5, Y: math.Sin(angle) * halfH * 0.5}

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.Deformations = deform.Updates
	report.Skipped = deform.Skipped
	report.DeepestZ = sc.Metrics.DeepestZ
	report.Systems = scheduler.Stats().Systems
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Fabric Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
