package motion

// DefaultParticleLifespan is one second at the 60 Hz reference rate.
const DefaultParticleLifespan = 60

// ticksPerSecond converts dt in seconds to lifespan units.
const ticksPerSecond = 60

// Particle is a Mover with a bounded lifespan and a pluggable Visual.
// Lifespan counts down in 60 Hz frame units regardless of the real dt.
type Particle struct {
	Mover

	Lifespan    float64
	MaxLifespan float64
	Visual      Visual

	dead bool
}

// ParticleState is the per-emission state handed to NewParticle and Reset.
// A non-positive Lifespan keeps the particle's current MaxLifespan.
type ParticleState struct {
	Position     Vector2
	Velocity     Vector2
	Acceleration Vector2
	Lifespan     float64
	Attrs        VisualAttrs
}

// NewParticle creates a live particle. opts configure the embedded Mover;
// velocity and acceleration come from state.
func NewParticle(state ParticleState, visual Visual, opts ...MoverOption) *Particle {
	p := &Particle{
		Visual:      visual,
		MaxLifespan: DefaultParticleLifespan,
	}
	p.Mover.init(state.Position, opts)
	p.Reset(state)
	return p
}

// Update integrates the particle and ages it by dt*60 frame units.
func (p *Particle) Update(dt float64) {
	p.Mover.Update(dt)

	p.Lifespan -= dt * ticksPerSecond
	if p.Lifespan <= 0 {
		p.Lifespan = 0
		p.dead = true
	}
}

// IsDead reports whether the lifespan has run out since the last Reset.
func (p *Particle) IsDead() bool {
	return p.dead
}

// Age is 0 at birth and 1 at death.
func (p *Particle) Age() float64 {
	if p.MaxLifespan <= 0 {
		return 1
	}
	return 1 - p.Lifespan/p.MaxLifespan
}

// Alpha is the fade factor for rendering, 1 at birth and 0 at death.
func (p *Particle) Alpha() float64 {
	if p.MaxLifespan <= 0 {
		return 0
	}
	return max(0, p.Lifespan/p.MaxLifespan)
}

// Reset revives the particle with new kinematic, lifetime and visual state.
// Mass, Friction and MaxSpeed are left as they are.
func (p *Particle) Reset(state ParticleState) {
	p.Position = state.Position
	p.Velocity = state.Velocity
	p.Acceleration = state.Acceleration

	if state.Lifespan > 0 {
		p.MaxLifespan = state.Lifespan
	}
	p.Lifespan = p.MaxLifespan
	p.dead = false

	if p.Visual != nil {
		p.Visual.Reset(state.Attrs)
	}
}

// setLifespan assigns both lifespans as given, clamped at 0.
func (p *Particle) setLifespan(lifespan float64) {
	lifespan = max(lifespan, 0)
	p.MaxLifespan = lifespan
	p.Lifespan = lifespan
}

// Draw renders the particle through its visual.
func (p *Particle) Draw(s Surface) {
	if p.Visual == nil || p.dead {
		return
	}
	p.Visual.Draw(s, p.Position, p.Alpha())
}
