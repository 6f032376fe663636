package scene_test

import (
	"image/color"
	"testing"

	"github.com/plus3/motionlab/motion"
	"github.com/plus3/motionlab/motion/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

type countingSurface struct {
	circles  int
	polygons int
}

func (s *countingSurface) FillCircle(motion.Vector2, float64, color.RGBA) { s.circles++ }
func (s *countingSurface) FillPolygon([]motion.Vector2, color.RGBA)       { s.polygons++ }

func newBurst(count int, r *scene.Scene) *motion.ParticleEmitter {
	cfg := motion.DefaultEmitterConfig()
	cfg.Pattern = motion.Burst
	cfg.ParticleCount = count
	cfg.ParticleLifespan = 60
	cfg.Rand = r.Rand
	return motion.NewEmitter(cfg)
}

func TestId(t *testing.T) {
	id := scene.NewId(scene.KindBody, 7)
	assert.Equal(t, scene.KindBody, id.Kind())
	assert.Equal(t, uint32(7), id.Index())
	assert.Equal(t, "body#7", id.String())
	assert.Equal(t, "Kind(9)", scene.Kind(9).String())
}

func TestSceneRegistry(t *testing.T) {
	s := scene.New(motion.NewBounds(640, 480), motion.NewRand(1))

	e1 := s.AddEmitter(newBurst(3, s))
	b1 := s.AddBody(scene.NewBody(motion.Vec(10, 10), 4, white))
	e2 := s.AddEmitter(newBurst(3, s))

	assert.Equal(t, scene.KindEmitter, e1.Kind())
	assert.Equal(t, scene.KindBody, b1.Kind())
	assert.Equal(t, 2, s.EmitterCount())
	assert.Equal(t, 1, s.BodyCount())

	var order []scene.Id
	for id := range s.Emitters() {
		order = append(order, id)
	}
	assert.Equal(t, []scene.Id{e1, e2}, order)

	_, ok := s.Emitter(b1)
	assert.False(t, ok, "ids of one kind do not resolve as another")

	body, ok := s.Body(b1)
	require.True(t, ok)
	assert.Equal(t, motion.Vec(10, 10), body.Position)

	assert.True(t, s.Remove(e1))
	assert.False(t, s.Remove(e1))
	assert.Equal(t, 1, s.EmitterCount())

	order = order[:0]
	for id := range s.Emitters() {
		order = append(order, id)
	}
	assert.Equal(t, []scene.Id{e2}, order)

	s.Clear()
	assert.Equal(t, 0, s.EmitterCount())
	assert.Equal(t, 0, s.BodyCount())
}

func TestSceneStatsAndDraw(t *testing.T) {
	s := scene.New(motion.NewBounds(640, 480), motion.NewRand(2))
	e := newBurst(5, s)
	s.AddEmitter(e)
	s.AddEmitter(newBurst(2, s))
	s.AddBody(scene.NewBody(motion.Vec(1, 1), 2, white))

	e.Update(motion.DefaultTimeStep)

	stats := s.CollectStats()
	assert.Equal(t, scene.Stats{Emitters: 2, ActiveEmitters: 1, Bodies: 1, Particles: 5, Emitted: 5}, stats)

	surface := &countingSurface{}
	s.Draw(surface)
	assert.Equal(t, 6, surface.circles, "five dot particles and one body")
}

func TestSceneDeterminism(t *testing.T) {
	run := func() motion.Vector2 {
		s := scene.New(motion.NewBounds(200, 200), motion.NewRand(99))
		b := scene.NewBody(motion.Vec(100, 100), 3, white, motion.WithRand(s.Rand), motion.WithMaxSpeed(50))
		s.AddBody(b)

		sched := scene.NewScheduler(s)
		sched.Register(&scene.NoiseSystem{Strength: 30, Scale: 0.01})
		sched.Register(&scene.MoverSystem{})
		sched.Register(&scene.BoundsSystem{Restitution: 0.9})
		for range 120 {
			sched.Once(motion.DefaultTimeStep)
		}
		return b.Position
	}

	assert.Equal(t, run(), run())
}
