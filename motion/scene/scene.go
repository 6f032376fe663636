// Package scene runs emitters and free bodies together under a frame
// scheduler, buffering structural changes until the end of each tick.
package scene

import (
	"image/color"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/motionlab/motion"
)

// Body is a free mover tracked by a Scene and drawn as a filled circle.
type Body struct {
	*motion.Mover
	Radius float64
	Color  color.RGBA
}

// NewBody creates a body at position. opts configure the mover.
func NewBody(position motion.Vector2, radius float64, c color.RGBA, opts ...motion.MoverOption) *Body {
	return &Body{
		Mover:  motion.NewMover(position, opts...),
		Radius: radius,
		Color:  c,
	}
}

// Stats is a snapshot of a scene's population.
type Stats struct {
	Emitters       int
	ActiveEmitters int
	Bodies         int
	Particles      int
	Emitted        int
}

// Scene owns emitters and bodies, a shared noise field and the generator
// new objects should sample from. Objects are iterated in insertion order.
type Scene struct {
	Bounds motion.Bounds
	Noise  *motion.NoiseField
	Rand   *rand.Rand

	// Elapsed is the simulated time in seconds, advanced by the Scheduler.
	Elapsed float64

	emitters *intmap.Map[Id, *motion.ParticleEmitter]
	bodies   *intmap.Map[Id, *Body]
	order    []Id
	next     uint32
}

// New creates an empty scene. The noise field is seeded from r, so two
// scenes built with equally seeded generators evolve identically. A nil r
// uses a randomly seeded generator.
func New(bounds motion.Bounds, r *rand.Rand) *Scene {
	if r == nil {
		r = motion.NewRand(rand.Uint64())
	}
	return &Scene{
		Bounds:   bounds,
		Noise:    motion.NewSeededNoiseField(r.Uint32()),
		Rand:     r,
		emitters: intmap.New[Id, *motion.ParticleEmitter](16),
		bodies:   intmap.New[Id, *Body](16),
	}
}

func (s *Scene) nextId(kind Kind) Id {
	s.next++
	return NewId(kind, s.next)
}

// AddEmitter registers e and returns its id. Do not call while iterating;
// systems should go through Commands instead.
func (s *Scene) AddEmitter(e *motion.ParticleEmitter) Id {
	id := s.nextId(KindEmitter)
	s.emitters.Put(id, e)
	s.order = append(s.order, id)
	return id
}

// AddBody registers b and returns its id.
func (s *Scene) AddBody(b *Body) Id {
	id := s.nextId(KindBody)
	s.bodies.Put(id, b)
	s.order = append(s.order, id)
	return id
}

// Remove drops the object with the given id. It reports whether anything
// was removed.
func (s *Scene) Remove(id Id) bool {
	var removed bool
	switch id.Kind() {
	case KindEmitter:
		removed = s.emitters.Del(id)
	case KindBody:
		removed = s.bodies.Del(id)
	}
	if removed {
		if i := slices.Index(s.order, id); i >= 0 {
			s.order = slices.Delete(s.order, i, i+1)
		}
	}
	return removed
}

// Clear removes every object. Elapsed time is kept.
func (s *Scene) Clear() {
	s.emitters.Clear()
	s.bodies.Clear()
	s.order = s.order[:0]
}

// Emitter looks up an emitter by id.
func (s *Scene) Emitter(id Id) (*motion.ParticleEmitter, bool) {
	return s.emitters.Get(id)
}

// Body looks up a body by id.
func (s *Scene) Body(id Id) (*Body, bool) {
	return s.bodies.Get(id)
}

// Emitters iterates emitters in insertion order.
func (s *Scene) Emitters() iter.Seq2[Id, *motion.ParticleEmitter] {
	return func(yield func(Id, *motion.ParticleEmitter) bool) {
		for _, id := range s.order {
			if id.Kind() != KindEmitter {
				continue
			}
			e, ok := s.emitters.Get(id)
			if !ok {
				continue
			}
			if !yield(id, e) {
				return
			}
		}
	}
}

// Bodies iterates bodies in insertion order.
func (s *Scene) Bodies() iter.Seq2[Id, *Body] {
	return func(yield func(Id, *Body) bool) {
		for _, id := range s.order {
			if id.Kind() != KindBody {
				continue
			}
			b, ok := s.bodies.Get(id)
			if !ok {
				continue
			}
			if !yield(id, b) {
				return
			}
		}
	}
}

// EmitterCount and BodyCount report the registry sizes.
func (s *Scene) EmitterCount() int { return s.emitters.Len() }
func (s *Scene) BodyCount() int    { return s.bodies.Len() }

// CollectStats counts the scene's population.
func (s *Scene) CollectStats() Stats {
	stats := Stats{
		Emitters: s.emitters.Len(),
		Bodies:   s.bodies.Len(),
	}
	s.emitters.ForEach(func(_ Id, e *motion.ParticleEmitter) bool {
		if e.IsActive() {
			stats.ActiveEmitters++
		}
		stats.Particles += e.ParticleCount()
		stats.Emitted += e.ParticlesEmitted()
		return true
	})
	return stats
}

// Draw renders every emitter's particles and then every body.
func (s *Scene) Draw(surface motion.Surface) {
	for _, e := range s.Emitters() {
		e.Draw(surface)
	}
	for _, b := range s.Bodies() {
		surface.FillCircle(b.Position, b.Radius, b.Color)
	}
}
