package motion

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
)

// EmissionPattern selects how an emitter schedules particle creation.
type EmissionPattern uint8

const (
	// Continuous emits EmissionRate particles per second until the quota is met.
	Continuous EmissionPattern = iota
	// Burst emits the whole quota on the first update.
	Burst
	// Wave emits batches of up to waveSize particles once per wavePeriod.
	Wave
)

func (p EmissionPattern) String() string {
	switch p {
	case Continuous:
		return "continuous"
	case Burst:
		return "burst"
	case Wave:
		return "wave"
	}
	return fmt.Sprintf("EmissionPattern(%d)", uint8(p))
}

// ParseEmissionPattern maps a pattern name to its EmissionPattern.
func ParseEmissionPattern(name string) (EmissionPattern, error) {
	for _, p := range []EmissionPattern{Continuous, Burst, Wave} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown emission pattern %q", name)
}

const (
	wavePeriod = 1.0
	waveSize   = 10
)

// EmitterConfig is the construction contract of a ParticleEmitter. Start
// from DefaultEmitterConfig and override fields; NewEmitter uses the values
// as given, so a zero Direction selects per-axis velocity sampling.
type EmitterConfig struct {
	Position Vector2

	// ParticleCount caps the live population and is the emission quota.
	ParticleCount int
	// EmissionRate is in particles per second (Continuous only).
	EmissionRate float64
	// Lifespan is the emitter's own time-to-live in 60 Hz units; +Inf or
	// a non-positive value disables it.
	Lifespan float64
	// ParticleLifespan is assigned as given to every created or recycled
	// particle. Zero or less makes particles die on their first update.
	ParticleLifespan float64

	Visual            VisualFactory
	VelocityRange     VectorRange
	AccelerationRange VectorRange
	Colors            Palette
	SizeRange         Range

	Pattern EmissionPattern
	// Spread is the cone width in radians around Direction.
	Spread    float64
	Direction Vector2

	Gravity  Vector2
	Friction float64

	// Rand drives all sampling. nil means a randomly seeded generator.
	Rand *rand.Rand
}

// DefaultEmitterConfig returns the documented defaults.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		ParticleCount:    50,
		EmissionRate:     10,
		Lifespan:         math.Inf(1),
		ParticleLifespan: 120,
		Visual:           ShapeDot.Factory(),
		VelocityRange: VectorRange{
			Min: Vec(-50, -50),
			Max: Vec(50, 50),
		},
		Colors:    DefaultPalette,
		SizeRange: Range{Min: 2, Max: 8},
		Pattern:   Continuous,
		Spread:    math.Pi / 4,
		Direction: Up(),
	}
}

// ParticleEmitter creates particles on a schedule and recycles dead ones in
// place whenever the live population is below ParticleCount. A dead particle
// is only dropped when the population is at the cap, so an emitter keeps
// recycling after its quota is met until Stop is called.
type ParticleEmitter struct {
	Position    Vector2
	Lifespan    float64
	MaxLifespan float64

	config    EmitterConfig
	particles []*Particle
	rng       *rand.Rand
	active    bool
	draining  bool

	emissionTimer    float64
	particlesEmitted int
}

// NewEmitter creates an active emitter from cfg.
func NewEmitter(cfg EmitterConfig) *ParticleEmitter {
	if cfg.Lifespan <= 0 {
		cfg.Lifespan = math.Inf(1)
	}
	if cfg.Visual == nil {
		cfg.Visual = ShapeDot.Factory()
	}
	if cfg.ParticleCount < 0 {
		cfg.ParticleCount = 0
	}

	rng := cfg.Rand
	if rng == nil {
		rng = newEntropyRand()
	}
	cfg.Rand = rng

	return &ParticleEmitter{
		Position:    cfg.Position,
		Lifespan:    cfg.Lifespan,
		MaxLifespan: cfg.Lifespan,
		config:      cfg,
		particles:   make([]*Particle, 0, cfg.ParticleCount),
		rng:         rng,
		active:      true,
	}
}

// Update advances the emitter and every live particle by dt seconds.
func (e *ParticleEmitter) Update(dt float64) {
	if !math.IsInf(e.MaxLifespan, 1) {
		e.Lifespan -= dt * ticksPerSecond
		if e.Lifespan <= 0 {
			e.Lifespan = 0
			e.active = false
		}
	}

	if e.active {
		e.emit(dt)
	}

	gravity := e.config.Gravity
	for i := len(e.particles) - 1; i >= 0; i-- {
		p := e.particles[i]

		if !gravity.IsZero() {
			p.ApplyGravity(gravity)
		}
		p.Update(dt)

		if !p.IsDead() {
			continue
		}
		if !e.draining && len(e.particles) < e.config.ParticleCount {
			e.recycle(p)
			continue
		}
		e.particles = append(e.particles[:i], e.particles[i+1:]...)
	}
}

func (e *ParticleEmitter) emit(dt float64) {
	switch e.config.Pattern {
	case Burst:
		e.emitBurst()
	case Continuous:
		e.emitContinuous(dt)
	case Wave:
		e.emitWave(dt)
	}
}

func (e *ParticleEmitter) emitBurst() {
	if e.particlesEmitted != 0 {
		return
	}
	for i := 0; i < e.config.ParticleCount; i++ {
		e.createParticle()
	}
	e.particlesEmitted = e.config.ParticleCount
	e.active = false
}

func (e *ParticleEmitter) emitContinuous(dt float64) {
	e.emissionTimer += dt

	if e.config.EmissionRate > 0 {
		interval := 1 / e.config.EmissionRate
		for e.emissionTimer >= interval && e.particlesEmitted < e.config.ParticleCount {
			e.createParticle()
			e.particlesEmitted++
			e.emissionTimer -= interval
		}
	}

	if e.particlesEmitted >= e.config.ParticleCount {
		e.active = false
	}
}

func (e *ParticleEmitter) emitWave(dt float64) {
	e.emissionTimer += dt
	if e.emissionTimer < wavePeriod {
		return
	}

	n := min(waveSize, e.config.ParticleCount-e.particlesEmitted)
	for i := 0; i < n; i++ {
		e.createParticle()
		e.particlesEmitted++
	}
	e.emissionTimer = 0

	if e.particlesEmitted >= e.config.ParticleCount {
		e.active = false
	}
}

// sample draws the state of a new or recycled particle.
func (e *ParticleEmitter) sample() ParticleState {
	return ParticleState{
		Position:     e.Position,
		Velocity:     e.sampleVelocity(),
		Acceleration: e.config.AccelerationRange.Sample(e.rng),
		Lifespan:     e.config.ParticleLifespan,
		Attrs: VisualAttrs{
			Color: e.config.Colors.Sample(e.rng),
			Size:  e.config.SizeRange.Sample(e.rng),
		},
	}
}

func (e *ParticleEmitter) sampleVelocity() Vector2 {
	dir := e.config.Direction
	if dir.IsZero() {
		return e.config.VelocityRange.Sample(e.rng)
	}

	angle := dir.Angle() + (e.rng.Float64()-0.5)*e.config.Spread
	speed := Lerp(
		e.config.VelocityRange.Min.Magnitude(),
		e.config.VelocityRange.Max.Magnitude(),
		e.rng.Float64(),
	)
	return FromAngle(angle, speed)
}

func (e *ParticleEmitter) createParticle() {
	state := e.sample()
	visual := e.config.Visual(state.Attrs)
	if visual == nil {
		panic("motion: visual factory returned nil")
	}

	p := NewParticle(state, visual,
		WithFriction(e.config.Friction),
		WithRand(e.rng),
	)
	p.setLifespan(state.Lifespan)
	e.particles = append(e.particles, p)
}

// recycle revives a dead particle in place with freshly sampled state.
func (e *ParticleEmitter) recycle(p *Particle) {
	state := e.sample()
	p.Reset(state)
	p.setLifespan(state.Lifespan)
	p.Friction = e.config.Friction
}

// Draw renders every live particle onto s.
func (e *ParticleEmitter) Draw(s Surface) {
	for _, p := range e.particles {
		p.Draw(s)
	}
}

// Reset clears all particles and restarts emission and the emitter lifespan.
func (e *ParticleEmitter) Reset() {
	e.particles = e.particles[:0]
	e.active = true
	e.draining = false
	e.Lifespan = e.MaxLifespan
	e.emissionTimer = 0
	e.particlesEmitted = 0
}

// Stop ends emission and recycling. Live particles play out and the
// emitter finishes once they are gone. Reset or a new emission count
// restarts it.
func (e *ParticleEmitter) Stop() {
	e.active = false
	e.draining = true
}

// IsDraining reports whether Stop was called since the last restart.
func (e *ParticleEmitter) IsDraining() bool {
	return e.draining
}

// ParticleCount returns the number of tracked particles.
func (e *ParticleEmitter) ParticleCount() int {
	return len(e.particles)
}

// Particles iterates the tracked particles. Callers must not mutate
// physics state while rendering.
func (e *ParticleEmitter) Particles() iter.Seq[*Particle] {
	return func(yield func(*Particle) bool) {
		for _, p := range e.particles {
			if !yield(p) {
				return
			}
		}
	}
}

// ParticlesEmitted returns how many particles count against the quota.
func (e *ParticleEmitter) ParticlesEmitted() int {
	return e.particlesEmitted
}

// IsActive reports whether the emitter is still creating particles.
func (e *ParticleEmitter) IsActive() bool {
	return e.active
}

// IsFinished reports that the emitter stopped emitting and all its
// particles are gone.
func (e *ParticleEmitter) IsFinished() bool {
	return !e.active && len(e.particles) == 0
}

// Config returns a copy of the current configuration.
func (e *ParticleEmitter) Config() EmitterConfig {
	return e.config
}

// SetPosition moves the point new and recycled particles spawn at.
func (e *ParticleEmitter) SetPosition(position Vector2) {
	e.Position = position
	e.config.Position = position
}

// SetEmissionCount changes the quota. A changed count restarts emission;
// a Burst emitter bursts immediately.
func (e *ParticleEmitter) SetEmissionCount(count int) {
	count = max(count, 0)
	old := e.config.ParticleCount
	e.config.ParticleCount = count
	if old == count {
		return
	}

	e.particlesEmitted = 0
	e.active = true
	e.draining = false
	if e.config.Pattern == Burst {
		e.emitBurst()
	}
}

// SetEmissionRate sets the Continuous rate in particles per second.
func (e *ParticleEmitter) SetEmissionRate(rate float64) {
	e.config.EmissionRate = rate
}

// SetVelocityRange sets the range initial velocities are sampled from.
func (e *ParticleEmitter) SetVelocityRange(r VectorRange) {
	e.config.VelocityRange = r
}

// SetAccelerationRange sets the per-axis range of initial accelerations.
func (e *ParticleEmitter) SetAccelerationRange(r VectorRange) {
	e.config.AccelerationRange = r
}

// SetSpread sets the cone width in radians.
func (e *ParticleEmitter) SetSpread(spread float64) {
	e.config.Spread = spread
}

// SetDirection sets the cone axis. A zero direction samples velocity per axis.
func (e *ParticleEmitter) SetDirection(direction Vector2) {
	e.config.Direction = direction
}

// SetGravity sets the acceleration applied to every live particle each update.
func (e *ParticleEmitter) SetGravity(gravity Vector2) {
	e.config.Gravity = gravity
}

// SetFriction sets the friction given to new and recycled particles.
func (e *ParticleEmitter) SetFriction(friction float64) {
	e.config.Friction = friction
}

// SetColors sets the palette particle colours are drawn from.
func (e *ParticleEmitter) SetColors(colors Palette) {
	e.config.Colors = colors
}

// SetSizeRange sets the range particle sizes are drawn from.
func (e *ParticleEmitter) SetSizeRange(r Range) {
	e.config.SizeRange = r
}

// SetParticleLifespan sets the lifespan given to new and recycled particles.
func (e *ParticleEmitter) SetParticleLifespan(lifespan float64) {
	e.config.ParticleLifespan = lifespan
}

// SetVisual changes the factory used for newly created particles. Existing
// particles keep their visuals, including through recycling.
func (e *ParticleEmitter) SetVisual(factory VisualFactory) {
	if factory == nil {
		return
	}
	e.config.Visual = factory
}
