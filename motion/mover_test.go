package motion_test

import (
	"math"
	"testing"

	"github.com/plus3/motionlab/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoverDefaults(t *testing.T) {
	m := motion.NewMover(motion.Vec(1, 2), motion.WithRand(motion.NewRand(1)))

	assert.Equal(t, motion.Vec(1, 2), m.Position)
	assert.Equal(t, 1.0, m.Mass)
	assert.True(t, math.IsInf(m.MaxSpeed, 1))
	assert.Equal(t, 0.0, m.Friction)
	assert.GreaterOrEqual(t, m.NoiseOffset.X, 0.0)
	assert.Less(t, m.NoiseOffset.X, 1000.0)
}

func TestMoverPanicsOnNonPositiveMass(t *testing.T) {
	assert.Panics(t, func() {
		motion.NewMover(motion.Zero(), motion.WithMass(0))
	})
}

func TestMoverUpdate(t *testing.T) {
	t.Run("constant velocity advances position exactly", func(t *testing.T) {
		m := motion.NewMover(motion.Vec(5, 5), motion.WithVelocity(motion.Vec(10, 0)))
		m.Update(1)

		assert.Equal(t, motion.Vec(15, 5), m.Position)
		assert.Equal(t, motion.Vec(10, 0), m.Velocity)
	})

	t.Run("acceleration is applied before position and then cleared", func(t *testing.T) {
		m := motion.NewMover(motion.Zero())
		m.ApplyForce(motion.Vec(2, 0))
		m.Update(0.5)

		assert.Equal(t, motion.Vec(1, 0), m.Velocity)
		assert.Equal(t, motion.Vec(0.5, 0), m.Position)
		assert.Equal(t, motion.Zero(), m.Acceleration)
		assert.Equal(t, motion.Vec(2, 0), m.LastAcceleration())

		m.Update(0.5)
		assert.Equal(t, motion.Vec(1, 0), m.Velocity, "forces must not persist across ticks")
	})

	t.Run("friction decelerates continuously", func(t *testing.T) {
		m := motion.NewMover(motion.Zero(),
			motion.WithVelocity(motion.Vec(10, 0)),
			motion.WithFriction(0.5),
		)
		m.Update(1)

		assert.Equal(t, motion.Vec(5, 0), m.Velocity)
		assert.Equal(t, motion.Vec(5, 0), m.Position)
	})

	t.Run("max speed is never exceeded", func(t *testing.T) {
		const maxSpeed = 7.5
		r := motion.NewRand(5)
		m := motion.NewMover(motion.Zero(), motion.WithMaxSpeed(maxSpeed))

		for i := 0; i < 500; i++ {
			m.ApplyForce(motion.Random(r, r.Float64()*500))
			m.Update(motion.DefaultTimeStep * (1 + r.Float64()*3))
			require.LessOrEqual(t, m.Velocity.Magnitude(), maxSpeed+1e-9)
		}
	})
}

func TestMoverForces(t *testing.T) {
	t.Run("force is divided by mass and accumulates", func(t *testing.T) {
		m := motion.NewMover(motion.Zero(), motion.WithMass(2))
		m.ApplyForce(motion.Vec(4, 0))
		m.ApplyForce(motion.Vec(0, -2))

		assert.Equal(t, motion.Vec(2, -1), m.Acceleration)
	})

	t.Run("gravity is independent of mass", func(t *testing.T) {
		light := motion.NewMover(motion.Zero(), motion.WithMass(1))
		heavy := motion.NewMover(motion.Zero(), motion.WithMass(50))
		g := motion.Vec(0, 9.8)

		light.ApplyGravity(g)
		heavy.ApplyGravity(g)

		assert.True(t, light.Acceleration.Equals(g, eps))
		assert.True(t, heavy.Acceleration.Equals(g, eps))
	})
}

func TestMoverSteering(t *testing.T) {
	t.Run("seek", func(t *testing.T) {
		m := motion.NewMover(motion.Zero(), motion.WithMaxSpeed(5))
		m.Seek(motion.Vec(10, 0), 100)
		assert.True(t, m.Acceleration.Equals(motion.Vec(5, 0), eps))
	})

	t.Run("seek force is clamped", func(t *testing.T) {
		m := motion.NewMover(motion.Zero(), motion.WithMaxSpeed(5))
		m.Seek(motion.Vec(0, 10), 1)
		assert.True(t, m.Acceleration.Equals(motion.Vec(0, 1), eps))
	})

	t.Run("flee", func(t *testing.T) {
		m := motion.NewMover(motion.Zero(), motion.WithMaxSpeed(5), motion.WithVelocity(motion.Vec(1, 0)))
		m.Flee(motion.Vec(10, 0), 100)
		assert.True(t, m.Acceleration.Equals(motion.Vec(-6, 0), eps))
	})

	t.Run("seek without speed cap stays finite", func(t *testing.T) {
		m := motion.NewMover(motion.Zero())
		m.Seek(motion.Vec(0, 3), 100)
		assert.True(t, m.Acceleration.Equals(motion.Vec(0, 3), eps))
	})
}

func TestMoverAttract(t *testing.T) {
	const (
		strength    = 100.0
		minDistance = 10.0
		maxDistance = 100.0
	)

	pair := func(distance float64) (*motion.Mover, *motion.Mover) {
		a := motion.NewMover(motion.Zero(), motion.WithMass(2))
		b := motion.NewMover(motion.Vec(distance, 0), motion.WithMass(3))
		return a, b
	}

	t.Run("inverse square", func(t *testing.T) {
		a, b := pair(20)
		f := a.AttractionForce(b, strength, minDistance, maxDistance)
		assert.True(t, f.Equals(motion.Vec(strength*2*3/400, 0), eps))
	})

	t.Run("close bodies are clamped to min distance", func(t *testing.T) {
		near, nearOther := pair(1e-6)
		atMin, atMinOther := pair(minDistance)

		fNear := near.AttractionForce(nearOther, strength, minDistance, maxDistance)
		fMin := atMin.AttractionForce(atMinOther, strength, minDistance, maxDistance)

		assert.False(t, math.IsNaN(fNear.X) || math.IsInf(fNear.X, 0))
		assert.InDelta(t, fMin.Magnitude(), fNear.Magnitude(), eps)
	})

	t.Run("coincident bodies do nothing", func(t *testing.T) {
		a, b := pair(0)
		a.Attract(b, strength, minDistance, maxDistance)
		assert.Equal(t, motion.Zero(), a.Acceleration)
	})

	t.Run("out of range does nothing", func(t *testing.T) {
		a, b := pair(maxDistance + 1)
		a.Attract(b, strength, minDistance, maxDistance)
		assert.Equal(t, motion.Zero(), a.Acceleration)
	})

	t.Run("attract applies force over mass", func(t *testing.T) {
		a, b := pair(20)
		a.Attract(b, strength, minDistance, maxDistance)
		assert.True(t, a.Acceleration.Equals(motion.Vec(strength*3/400, 0), eps))
	})
}

func TestMoverNoiseForce(t *testing.T) {
	field := motion.NewNoiseField()

	t.Run("nil field is a no-op", func(t *testing.T) {
		m := motion.NewMover(motion.Vec(3.3, 4.4))
		m.ApplyNoiseForce(nil, 1, 0.01, 0)
		assert.Equal(t, motion.Zero(), m.Acceleration)
	})

	t.Run("same phase gives same force", func(t *testing.T) {
		a := motion.NewMover(motion.Vec(120, 80), motion.WithNoiseOffset(motion.Vec(17.3, 401.9)))
		b := motion.NewMover(motion.Vec(120, 80), motion.WithNoiseOffset(motion.Vec(17.3, 401.9)))
		a.ApplyNoiseForce(field, 2, 0.05, 3)
		b.ApplyNoiseForce(field, 2, 0.05, 3)
		assert.Equal(t, a.Acceleration, b.Acceleration)
	})

	t.Run("different phases diverge", func(t *testing.T) {
		a := motion.NewMover(motion.Vec(120, 80), motion.WithNoiseOffset(motion.Vec(17.3, 401.9)))
		b := motion.NewMover(motion.Vec(120, 80), motion.WithNoiseOffset(motion.Vec(733.1, 52.6)))
		a.ApplyNoiseForce(field, 2, 0.05, 3)
		b.ApplyNoiseForce(field, 2, 0.05, 3)
		assert.NotEqual(t, a.Acceleration, b.Acceleration)
	})

	t.Run("force is bounded by strength", func(t *testing.T) {
		m := motion.NewMover(motion.Vec(50, 50), motion.WithRand(motion.NewRand(3)))
		m.ApplyNoiseForce(field, 4, 0.01, 10)
		assert.LessOrEqual(t, math.Abs(m.Acceleration.X), 4.0+eps)
		assert.LessOrEqual(t, math.Abs(m.Acceleration.Y), 4.0+eps)
	})
}

func TestMoverUtilities(t *testing.T) {
	m := motion.NewMover(motion.Zero(), motion.WithMass(2), motion.WithVelocity(motion.Vec(3, 4)))

	assert.InDelta(t, 25.0, m.KineticEnergy(), eps)
	assert.Equal(t, motion.Vec(6, 8), m.Momentum())

	m.SetSpeed(10)
	assert.True(t, m.Velocity.Equals(motion.Vec(6, 8), eps))

	c := m.Clone()
	c.Position = motion.Vec(100, 100)
	assert.Equal(t, motion.Zero(), m.Position)
	assert.Equal(t, m.NoiseOffset, c.NoiseOffset)

	m.ApplyForce(motion.Vec(1, 1))
	m.Halt()
	assert.Equal(t, motion.Zero(), m.Velocity)
	assert.Equal(t, motion.Zero(), m.Acceleration)
}
