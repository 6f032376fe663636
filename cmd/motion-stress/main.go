package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/motionlab/motion"
	"github.com/plus3/motionlab/motion/scene"
)

const (
	sceneWidth  = 1920
	sceneHeight = 1080
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	emitterCount := flag.Int("emitters", 100, "The number of emitters kept alive in the scene.")
	bodyCount := flag.Int("bodies", 200, "The number of free bodies driven by noise and collisions.")
	patternName := flag.String("pattern", "continuous", "Emission pattern: burst, continuous or wave.")
	particleCount := flag.Int("particles", 200, "The particle cap of each emitter.")
	seed := flag.Uint64("seed", 1, "Seed for all random sampling.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	pattern, err := motion.ParseEmissionPattern(*patternName)
	if err != nil {
		log.Fatalf("Invalid -pattern: %v", err)
	}

	log.Println("Starting motion stress test...")

	// 1. Setup the scene and scheduler
	s := scene.New(motion.NewBounds(sceneWidth, sceneHeight), motion.NewRand(*seed))
	spawner := &emitterSpawner{
		Target:    *emitterCount,
		Pattern:   pattern,
		Particles: *particleCount,
	}
	emitters := &scene.EmitterSystem{DrainInactive: true, AutoPrune: true}

	scheduler := scene.NewScheduler(s)
	scheduler.Register(&scene.NoiseSystem{Strength: 40, Scale: 0.005})
	scheduler.Register(&scene.MoverSystem{})
	scheduler.Register(&scene.BoundsSystem{Restitution: 0.9, Collide: true})
	scheduler.Register(emitters)
	scheduler.Register(spawner)

	// 2. Populate the scene
	log.Printf("Populating scene with %d emitters and %d bodies...\n", *emitterCount, *bodyCount)
	for i := 0; i < *emitterCount; i++ {
		s.AddEmitter(spawner.newEmitter(s))
	}
	for i := 0; i < *bodyCount; i++ {
		s.AddBody(newRandomBody(s))
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Emitters:       *emitterCount,
		Bodies:         *bodyCount,
		Pattern:        pattern.String(),
		Particles:      *particleCount,
		Seed:           *seed,
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
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.PeakParticles = max(report.PeakParticles, s.CollectStats().Particles)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.SimulatedTime = s.Elapsed
	report.Final = s.CollectStats()
	report.EmittersPruned = emitters.Pruned
	report.EmittersSpawned = spawner.Spawned
	report.Systems = scheduler.GetStats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
