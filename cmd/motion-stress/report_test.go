package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/motionlab/motion"
	"github.com/plus3/motionlab/motion/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:       time.Second,
		Emitters:       4,
		Bodies:         2,
		Pattern:        "wave",
		Particles:      25,
		Seed:           9,
		TotalUpdates:   60,
		PeakParticles:  80,
		Final:          scene.Stats{Emitters: 4, ActiveEmitters: 3, Particles: 70},
		GCPauseMetrics: true,
		Systems: []scene.SystemStats{
			{Name: "EmitterSystem", ExecutionCount: 60},
		},
	}
	r.MemStatsEnd.HeapAlloc = 2 * 1024 * 1024

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Motion Stress Test Report")
	assert.Contains(t, out, "- **Emitters:** 4 (wave, 25 particles each)")
	assert.Contains(t, out, "- **Peak Particles:** 80")
	assert.Contains(t, out, "| EmitterSystem | 60 |")
	assert.Contains(t, out, "Heap Alloc:     0.00 (start) -> 2.00 (end) -> delta: 2.00")
	assert.Contains(t, out, "## GC Pause Durations")
}

func TestEmitterSpawnerTopsUpScene(t *testing.T) {
	s := scene.New(motion.NewBounds(sceneWidth, sceneHeight), motion.NewRand(3))
	spawner := &emitterSpawner{Target: 3, Pattern: motion.Burst, Particles: 5}
	s.AddEmitter(spawner.newEmitter(s))

	scheduler := scene.NewScheduler(s)
	scheduler.Register(spawner)
	scheduler.Once(motion.DefaultTimeStep)

	assert.Equal(t, 3, s.EmitterCount())
	assert.Equal(t, 2, spawner.Spawned)

	for _, e := range s.Emitters() {
		assert.Equal(t, motion.Burst, e.Config().Pattern)
		assert.Equal(t, 5, e.Config().ParticleCount)
		assert.True(t, s.Bounds.Contains(e.Position))
	}

	b := newRandomBody(s)
	assert.True(t, s.Bounds.Contains(b.Position))
	assert.Equal(t, 200.0, b.MaxSpeed)
}
