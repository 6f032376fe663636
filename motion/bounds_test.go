package motion_test

import (
	"testing"

	"github.com/plus3/motionlab/motion"
	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	b := motion.NewBounds(100, 50)

	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 50.0, b.Height())
	assert.True(t, b.Contains(motion.Vec(0, 0)))
	assert.True(t, b.Contains(motion.Vec(100, 50)))
	assert.False(t, b.Contains(motion.Vec(100.1, 10)))
}

func TestBounceOffBounds(t *testing.T) {
	b := motion.NewBounds(100, 100)

	tests := []struct {
		name    string
		pos     motion.Vector2
		vel     motion.Vector2
		wantPos motion.Vector2
		wantVel motion.Vector2
		bounced bool
	}{
		{"inside", motion.Vec(50, 50), motion.Vec(-10, 3), motion.Vec(50, 50), motion.Vec(-10, 3), false},
		{"left edge", motion.Vec(-1, 50), motion.Vec(-10, 3), motion.Vec(2, 50), motion.Vec(5, 3), true},
		{"right edge", motion.Vec(99, 50), motion.Vec(10, 3), motion.Vec(98, 50), motion.Vec(-5, 3), true},
		{"top edge", motion.Vec(50, 1), motion.Vec(4, -8), motion.Vec(50, 2), motion.Vec(4, 4), true},
		{"corner", motion.Vec(101, 101), motion.Vec(2, 2), motion.Vec(98, 98), motion.Vec(-1, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := motion.NewMover(tt.pos, motion.WithVelocity(tt.vel))
			bounced := m.BounceOffBounds(b, 2, 0.5)

			assert.Equal(t, tt.bounced, bounced)
			assert.Equal(t, tt.wantPos, m.Position)
			assert.Equal(t, tt.wantVel, m.Velocity)
		})
	}
}

func TestWrapAroundBounds(t *testing.T) {
	b := motion.NewBounds(100, 100)

	m := motion.NewMover(motion.Vec(106, 50))
	m.WrapAroundBounds(b, 5)
	assert.Equal(t, motion.Vec(-5, 50), m.Position)

	m = motion.NewMover(motion.Vec(50, -6))
	m.WrapAroundBounds(b, 5)
	assert.Equal(t, motion.Vec(50, 105), m.Position)

	m = motion.NewMover(motion.Vec(104, 50))
	m.WrapAroundBounds(b, 5)
	assert.Equal(t, motion.Vec(104, 50), m.Position, "partially visible bodies stay put")
}

func TestCollideWith(t *testing.T) {
	t.Run("elastic head-on swap", func(t *testing.T) {
		a := motion.NewMover(motion.Vec(0, 0), motion.WithVelocity(motion.Vec(1, 0)))
		b := motion.NewMover(motion.Vec(3, 0), motion.WithVelocity(motion.Vec(-1, 0)))

		assert.True(t, a.IsCollidingWith(b, 2, 2))
		a.CollideWith(b, 2, 2, 1)

		assert.True(t, a.Position.Equals(motion.Vec(-0.5, 0), eps))
		assert.True(t, b.Position.Equals(motion.Vec(3.5, 0), eps))
		assert.True(t, a.Velocity.Equals(motion.Vec(-1, 0), eps))
		assert.True(t, b.Velocity.Equals(motion.Vec(1, 0), eps))
		assert.False(t, a.IsCollidingWith(b, 2, 2))
	})

	t.Run("momentum is conserved", func(t *testing.T) {
		a := motion.NewMover(motion.Vec(0, 0), motion.WithMass(3), motion.WithVelocity(motion.Vec(2, 1)))
		b := motion.NewMover(motion.Vec(2, 1), motion.WithMass(1), motion.WithVelocity(motion.Vec(-1, 0)))
		before := a.Momentum().Add(b.Momentum())

		a.CollideWith(b, 2, 2, 0.7)

		assert.True(t, before.Equals(a.Momentum().Add(b.Momentum()), eps))
	})

	t.Run("separating bodies keep their velocity", func(t *testing.T) {
		a := motion.NewMover(motion.Vec(0, 0), motion.WithVelocity(motion.Vec(-1, 0)))
		b := motion.NewMover(motion.Vec(3, 0), motion.WithVelocity(motion.Vec(1, 0)))
		a.CollideWith(b, 2, 2, 1)

		assert.Equal(t, motion.Vec(-1, 0), a.Velocity)
		assert.Equal(t, motion.Vec(1, 0), b.Velocity)
	})

	t.Run("coincident centres are left alone", func(t *testing.T) {
		a := motion.NewMover(motion.Vec(5, 5), motion.WithVelocity(motion.Vec(1, 0)))
		b := motion.NewMover(motion.Vec(5, 5))
		a.CollideWith(b, 2, 2, 1)

		assert.Equal(t, motion.Vec(5, 5), a.Position)
		assert.Equal(t, motion.Vec(1, 0), a.Velocity)
	})
}
