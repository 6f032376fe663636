package scene

import "github.com/plus3/motionlab/motion"

// Commands buffers structural changes to a Scene until the end of a frame,
// so systems can add and remove objects while iterating.
type Commands struct {
	emitters []emitterCommand
	bodies   []bodyCommand
	removes  []Id
	defers   []func()
}

type emitterCommand struct {
	emitter *motion.ParticleEmitter
	onAdd   func(Id)
}

type bodyCommand struct {
	body  *Body
	onAdd func(Id)
}

func newCommands() *Commands {
	return &Commands{}
}

// AddEmitter queues an emitter for insertion. onAdd, if non-nil, receives
// the assigned id during Flush.
func (c *Commands) AddEmitter(e *motion.ParticleEmitter, onAdd func(Id)) {
	c.emitters = append(c.emitters, emitterCommand{emitter: e, onAdd: onAdd})
}

// AddBody queues a body for insertion.
func (c *Commands) AddBody(b *Body, onAdd func(Id)) {
	c.bodies = append(c.bodies, bodyCommand{body: b, onAdd: onAdd})
}

// Remove queues a removal.
func (c *Commands) Remove(id Id) {
	c.removes = append(c.removes, id)
}

// Defer queues a function to run after all structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.emitters) + len(c.bodies) + len(c.removes) + len(c.defers)
}

// Flush applies all commands to the scene, resetting the buffer state.
// Removals run before insertions and deferred functions run last.
func (c *Commands) Flush(s *Scene) {
	for _, id := range c.removes {
		s.Remove(id)
	}

	for _, cmd := range c.emitters {
		id := s.AddEmitter(cmd.emitter)
		if cmd.onAdd != nil {
			cmd.onAdd(id)
		}
	}

	for _, cmd := range c.bodies {
		id := s.AddBody(cmd.body)
		if cmd.onAdd != nil {
			cmd.onAdd(id)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.emitters)
	clear(c.bodies)
	clear(c.defers)
	c.emitters = c.emitters[:0]
	c.bodies = c.bodies[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
