package motion

import (
	"math"
	"math/rand/v2"
)

// DefaultTimeStep is the tick length of the 60 Hz reference frame.
const DefaultTimeStep = 1.0 / 60

// Mover is a point body integrated with semi-implicit Euler. Forces
// accumulate into Acceleration and are cleared at the end of every Update,
// so they must be reapplied each tick.
type Mover struct {
	Position     Vector2
	Velocity     Vector2
	Acceleration Vector2

	// Mass must be positive.
	Mass float64
	// MaxSpeed caps the velocity magnitude; +Inf disables the cap.
	MaxSpeed float64
	// Friction is a drag coefficient in [0, 1].
	Friction float64

	// NoiseOffset shifts this mover's noise samples so movers sharing a
	// NoiseField do not move in lockstep.
	NoiseOffset Vector2

	lastAcceleration Vector2
}

// MoverOption configures a Mover built by NewMover.
type MoverOption func(*moverOptions)

type moverOptions struct {
	velocity     Vector2
	acceleration Vector2
	mass         float64
	maxSpeed     float64
	friction     float64
	noiseOffset  *Vector2
	rng          *rand.Rand
}

// WithVelocity sets the initial velocity.
func WithVelocity(v Vector2) MoverOption {
	return func(o *moverOptions) { o.velocity = v }
}

// WithAcceleration sets the acceleration applied by the first Update.
func WithAcceleration(a Vector2) MoverOption {
	return func(o *moverOptions) { o.acceleration = a }
}

// WithMass sets the mass forces are divided by. It must be positive.
func WithMass(mass float64) MoverOption {
	return func(o *moverOptions) { o.mass = mass }
}

// WithMaxSpeed caps the speed after each Update.
func WithMaxSpeed(maxSpeed float64) MoverOption {
	return func(o *moverOptions) { o.maxSpeed = maxSpeed }
}

// WithFriction sets the fraction of velocity lost per Update, in [0, 1].
func WithFriction(friction float64) MoverOption {
	return func(o *moverOptions) { o.friction = friction }
}

// WithNoiseOffset fixes the noise phase instead of sampling it.
func WithNoiseOffset(offset Vector2) MoverOption {
	return func(o *moverOptions) { o.noiseOffset = &offset }
}

// WithRand supplies the generator used to sample the noise phase.
func WithRand(r *rand.Rand) MoverOption {
	return func(o *moverOptions) { o.rng = r }
}

// NewMover creates a mover at position with mass 1, no speed cap and no
// friction unless overridden by opts.
func NewMover(position Vector2, opts ...MoverOption) *Mover {
	m := &Mover{}
	m.init(position, opts)
	return m
}

func (m *Mover) init(position Vector2, opts []MoverOption) {
	o := moverOptions{
		mass:     1,
		maxSpeed: math.Inf(1),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.mass <= 0 {
		panic("motion: mover mass must be positive")
	}

	m.Position = position
	m.Velocity = o.velocity
	m.Acceleration = o.acceleration
	m.Mass = o.mass
	m.MaxSpeed = o.maxSpeed
	m.Friction = o.friction
	m.lastAcceleration = Vector2{}

	switch {
	case o.noiseOffset != nil:
		m.NoiseOffset = *o.noiseOffset
	default:
		rng := o.rng
		if rng == nil {
			rng = newEntropyRand()
		}
		m.NoiseOffset = Vector2{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}
}

// Update advances the mover by dt seconds.
func (m *Mover) Update(dt float64) {
	m.Velocity = m.Velocity.Add(m.Acceleration.Scale(dt))

	if m.Friction > 0 {
		drag := m.Velocity.Scale(-m.Friction)
		m.Velocity = m.Velocity.Add(drag.Scale(dt))
	}

	if !math.IsInf(m.MaxSpeed, 1) {
		m.Velocity = m.Velocity.Limit(m.MaxSpeed)
	}

	m.Position = m.Position.Add(m.Velocity.Scale(dt))
	m.lastAcceleration = m.Acceleration
	m.Acceleration = Vector2{}
}

// LastAcceleration returns the acceleration consumed by the previous Update.
func (m *Mover) LastAcceleration() Vector2 {
	return m.lastAcceleration
}

// ApplyForce accumulates force / Mass into Acceleration.
func (m *Mover) ApplyForce(force Vector2) {
	m.Acceleration = m.Acceleration.Add(force.Scale(1 / m.Mass))
}

// ApplyGravity applies g scaled by mass, so every mover falls at rate g.
func (m *Mover) ApplyGravity(g Vector2) {
	m.ApplyForce(g.Scale(m.Mass))
}

// Seek steers toward target with a force no larger than maxForce.
func (m *Mover) Seek(target Vector2, maxForce float64) {
	m.ApplyForce(m.steer(target.Sub(m.Position), maxForce))
}

// Flee steers away from target with a force no larger than maxForce.
func (m *Mover) Flee(target Vector2, maxForce float64) {
	m.ApplyForce(m.steer(m.Position.Sub(target), maxForce))
}

func (m *Mover) steer(offset Vector2, maxForce float64) Vector2 {
	var desired Vector2
	if math.IsInf(m.MaxSpeed, 1) {
		// Without a speed cap the desired velocity covers the offset in one second.
		desired = offset
	} else {
		desired = offset.Normalize().Scale(m.MaxSpeed)
	}
	return desired.Sub(m.Velocity).Limit(maxForce)
}

// AttractionForce returns the inverse-square pull of other on m. The
// distance is clamped to minDistance from below; beyond maxDistance, or
// when both bodies share a position, the force is zero.
func (m *Mover) AttractionForce(other *Mover, strength, minDistance, maxDistance float64) Vector2 {
	offset := other.Position.Sub(m.Position)
	distance := offset.Magnitude()
	if distance > maxDistance || offset.IsZero() {
		return Vector2{}
	}

	clamped := math.Max(distance, minDistance)
	if clamped == 0 {
		return Vector2{}
	}
	magnitude := strength * m.Mass * other.Mass / (clamped * clamped)
	return offset.Normalize().Scale(magnitude)
}

// Attract applies AttractionForce toward other.
func (m *Mover) Attract(other *Mover, strength, minDistance, maxDistance float64) {
	m.ApplyForce(m.AttractionForce(other, strength, minDistance, maxDistance))
}

// ApplyNoiseForce pushes the mover along a low-frequency force sampled from
// field. The y axis samples a phase-shifted row so the axes decorrelate.
// A nil field applies nothing.
func (m *Mover) ApplyNoiseForce(field *NoiseField, strength, scale, time float64) {
	if field == nil {
		return
	}

	t := time * scale * 0.5
	nx := field.Octave2D((m.Position.X+m.NoiseOffset.X)*scale, t, 4, 0.5, 1)
	ny := field.Octave2D((m.Position.Y+m.NoiseOffset.Y)*scale, t+1000, 4, 0.5, 1)

	m.ApplyForce(Vector2{X: nx, Y: ny}.Scale(strength))
}

// KineticEnergy returns ½·m·|v|².
func (m *Mover) KineticEnergy() float64 {
	return 0.5 * m.Mass * m.Velocity.MagnitudeSq()
}

// Momentum returns m·v.
func (m *Mover) Momentum() Vector2 {
	return m.Velocity.Scale(m.Mass)
}

// SetSpeed rescales the velocity to speed, keeping its heading.
func (m *Mover) SetSpeed(speed float64) {
	m.Velocity = m.Velocity.SetMagnitude(speed)
}

// Halt zeroes velocity and pending acceleration.
func (m *Mover) Halt() {
	m.Velocity = Vector2{}
	m.Acceleration = Vector2{}
}

// Clone returns an independent copy, noise phase included.
func (m *Mover) Clone() *Mover {
	c := *m
	return &c
}
