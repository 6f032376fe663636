package motion_test

import (
	"image/color"
	"testing"

	"github.com/plus3/motionlab/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParticle(lifespan float64, opts ...motion.MoverOption) *motion.Particle {
	state := motion.ParticleState{
		Position: motion.Vec(1, 1),
		Velocity: motion.Vec(4, 0),
		Lifespan: lifespan,
		Attrs:    motion.VisualAttrs{Size: 5, Color: color.RGBA{10, 20, 30, 255}},
	}
	return motion.NewParticle(state, motion.NewShapeVisual(motion.ShapeDot), opts...)
}

func TestParticleLifecycle(t *testing.T) {
	p := newTestParticle(60)

	assert.Equal(t, 60.0, p.Lifespan)
	assert.Equal(t, 60.0, p.MaxLifespan)
	assert.Equal(t, 1.0, p.Alpha())
	assert.Equal(t, 0.0, p.Age())
	assert.False(t, p.IsDead())

	// A quarter second is 15 frames at the 60 Hz reference rate.
	for i := 0; i < 3; i++ {
		p.Update(0.25)
	}
	assert.Equal(t, 15.0, p.Lifespan)
	assert.Equal(t, 0.25, p.Alpha())
	assert.Equal(t, 0.75, p.Age())
	assert.False(t, p.IsDead())
	assert.Equal(t, motion.Vec(4, 1), p.Position)

	p.Update(0.25)
	assert.True(t, p.IsDead())
	assert.Equal(t, 0.0, p.Lifespan)
	assert.Equal(t, 0.0, p.Alpha())

	p.Update(0.25)
	assert.Equal(t, 0.0, p.Lifespan, "lifespan does not go negative")
}

func TestParticleDiesOnLastFrame(t *testing.T) {
	p := newTestParticle(60)

	for call := 1; call <= 59; call++ {
		p.Update(1.0 / 60)
		require.False(t, p.IsDead(), "call %d", call)
	}

	p.Update(1.0 / 60)
	assert.True(t, p.IsDead())
	p.Update(1.0 / 60)
	assert.True(t, p.IsDead())
}

func TestParticleDefaultLifespan(t *testing.T) {
	p := newTestParticle(0)
	assert.Equal(t, float64(motion.DefaultParticleLifespan), p.MaxLifespan)
	assert.Equal(t, p.MaxLifespan, p.Lifespan)
}

func TestParticleReset(t *testing.T) {
	p := newTestParticle(30, motion.WithFriction(0.25), motion.WithMass(3))
	for !p.IsDead() {
		p.Update(0.5)
	}

	p.Reset(motion.ParticleState{
		Position: motion.Vec(9, 9),
		Velocity: motion.Vec(0, -1),
		Attrs:    motion.VisualAttrs{Size: 2, Color: color.RGBA{1, 1, 1, 255}},
	})

	assert.False(t, p.IsDead())
	assert.Equal(t, 30.0, p.Lifespan, "non-positive state lifespan keeps the previous maximum")
	assert.Equal(t, motion.Vec(9, 9), p.Position)
	assert.Equal(t, motion.Vec(0, -1), p.Velocity)
	assert.Equal(t, 0.25, p.Friction)
	assert.Equal(t, 3.0, p.Mass)

	v, ok := p.Visual.(*motion.ShapeVisual)
	require.True(t, ok)
	assert.Equal(t, 2.0, v.Size)
}

func TestParticleDraw(t *testing.T) {
	p := newTestParticle(60)
	p.Update(0.5)

	s := &recordingSurface{}
	p.Draw(s)
	require.Len(t, s.calls, 1)
	assert.Equal(t, p.Position, s.calls[0].center)
	assert.Equal(t, 5.0, s.calls[0].radius)
	assert.Equal(t, uint8(127), s.calls[0].color.A)

	for !p.IsDead() {
		p.Update(0.5)
	}
	s.calls = nil
	p.Draw(s)
	assert.Empty(t, s.calls)

	p.Visual = nil
	p.Reset(motion.ParticleState{Lifespan: 10})
	assert.NotPanics(t, func() { p.Draw(s) })
}
