package scene

import "github.com/plus3/motionlab/motion"

// EmitterSystem advances every emitter in the scene.
type EmitterSystem struct {
	// DrainInactive stops emitters once they stop emitting, so their
	// particles play out instead of being recycled.
	DrainInactive bool
	// AutoPrune removes emitters at the end of the frame once they are finished.
	AutoPrune bool
	// Pruned counts emitters removed so far.
	Pruned int
}

func (s *EmitterSystem) Execute(frame *UpdateFrame) {
	for id, e := range frame.Scene.Emitters() {
		e.Update(frame.DeltaTime)
		if s.DrainInactive && !e.IsActive() && !e.IsDraining() {
			e.Stop()
		}
		if s.AutoPrune && e.IsFinished() {
			frame.Commands.Remove(id)
			s.Pruned++
		}
	}
}

// NoiseSystem pushes every body along the scene's noise field, sampled at
// the frame's scene time.
type NoiseSystem struct {
	Strength float64
	Scale    float64
}

func (s *NoiseSystem) Execute(frame *UpdateFrame) {
	for _, b := range frame.Scene.Bodies() {
		b.ApplyNoiseForce(frame.Scene.Noise, s.Strength, s.Scale, frame.Elapsed)
	}
}

// AttractorSystem pulls every body toward a fixed mass.
type AttractorSystem struct {
	Attractor   *motion.Mover
	Strength    float64
	MinDistance float64
	MaxDistance float64
}

func (s *AttractorSystem) Execute(frame *UpdateFrame) {
	if s.Attractor == nil {
		return
	}
	for _, b := range frame.Scene.Bodies() {
		b.Attract(s.Attractor, s.Strength, s.MinDistance, s.MaxDistance)
	}
}

// GravitySystem applies a constant acceleration to every body.
type GravitySystem struct {
	Gravity motion.Vector2
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	if s.Gravity.IsZero() {
		return
	}
	for _, b := range frame.Scene.Bodies() {
		b.ApplyGravity(s.Gravity)
	}
}

// MoverSystem integrates every body. Force systems must be registered
// before it.
type MoverSystem struct{}

func (s *MoverSystem) Execute(frame *UpdateFrame) {
	for _, b := range frame.Scene.Bodies() {
		b.Update(frame.DeltaTime)
	}
}

// EdgeMode selects how BoundsSystem treats bodies reaching the scene edge.
type EdgeMode uint8

const (
	EdgeBounce EdgeMode = iota
	EdgeWrap
)

// BoundsSystem keeps bodies inside the scene bounds and optionally resolves
// body-body collisions.
type BoundsSystem struct {
	Mode        EdgeMode
	Restitution float64
	Collide     bool
	// Bounces counts edge hits since the system was created.
	Bounces int

	scratch []*Body
}

func (s *BoundsSystem) Execute(frame *UpdateFrame) {
	bounds := frame.Scene.Bounds

	s.scratch = s.scratch[:0]
	for _, b := range frame.Scene.Bodies() {
		switch s.Mode {
		case EdgeWrap:
			b.WrapAroundBounds(bounds, b.Radius)
		default:
			if b.BounceOffBounds(bounds, b.Radius, s.Restitution) {
				s.Bounces++
			}
		}
		s.scratch = append(s.scratch, b)
	}

	if !s.Collide {
		return
	}
	for i, a := range s.scratch {
		for _, b := range s.scratch[i+1:] {
			a.CollideWith(b.Mover, a.Radius, b.Radius, s.Restitution)
		}
	}
}
