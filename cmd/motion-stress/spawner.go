package main

import (
	"math"

	"github.com/plus3/motionlab/motion"
	"github.com/plus3/motionlab/motion/scene"
)

// emitterSpawner tops the scene back up to Target emitters whenever the
// EmitterSystem prunes finished ones.
type emitterSpawner struct {
	Target    int
	Pattern   motion.EmissionPattern
	Particles int
	Spawned   int
}

func (sp *emitterSpawner) Execute(frame *scene.UpdateFrame) {
	s := frame.Scene
	for i := s.EmitterCount(); i < sp.Target; i++ {
		frame.Commands.AddEmitter(sp.newEmitter(s), nil)
		sp.Spawned++
	}
}

func (sp *emitterSpawner) newEmitter(s *scene.Scene) *motion.ParticleEmitter {
	r := s.Rand
	cfg := motion.DefaultEmitterConfig()
	cfg.Position = motion.Vec(r.Float64()*s.Bounds.Width(), r.Float64()*s.Bounds.Height())
	cfg.Pattern = sp.Pattern
	cfg.ParticleCount = sp.Particles
	cfg.EmissionRate = float64(sp.Particles) / 2
	cfg.ParticleLifespan = 60 + r.Float64()*120
	cfg.Lifespan = 600
	cfg.Visual = motion.Shape(r.IntN(4)).Factory()
	cfg.Direction = motion.FromAngle(r.Float64()*2*math.Pi, 1)
	cfg.Gravity = motion.Vec(0, 30)
	cfg.Friction = 0.05
	cfg.Rand = r
	return motion.NewEmitter(cfg)
}

func newRandomBody(s *scene.Scene) *scene.Body {
	r := s.Rand
	return scene.NewBody(
		motion.Vec(r.Float64()*s.Bounds.Width(), r.Float64()*s.Bounds.Height()),
		2+r.Float64()*6,
		motion.DefaultPalette.Sample(r),
		motion.WithVelocity(motion.Random(r, 20+r.Float64()*60)),
		motion.WithMass(0.5+r.Float64()*2),
		motion.WithMaxSpeed(200),
		motion.WithRand(r),
	)
}
