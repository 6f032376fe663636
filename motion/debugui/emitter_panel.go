package debugui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/motionlab/motion"
)

// emitterControls mirrors the tunable part of an EmitterConfig in the
// float32/int32 types the widgets edit.
type emitterControls struct {
	count        int32
	rate         float32
	lifespan     float32
	directional  bool
	directionDeg float32
	spreadDeg    float32
	velocityMin  [2]float32
	velocityMax  [2]float32
	gravity      [2]float32
	friction     float32
	sizeMin      float32
	sizeMax      float32
}

func controlsFromConfig(cfg motion.EmitterConfig) emitterControls {
	c := emitterControls{
		count:       int32(cfg.ParticleCount),
		rate:        float32(cfg.EmissionRate),
		lifespan:    float32(cfg.ParticleLifespan),
		directional: !cfg.Direction.IsZero(),
		spreadDeg:   float32(motion.RadToDeg(cfg.Spread)),
		velocityMin: [2]float32{float32(cfg.VelocityRange.Min.X), float32(cfg.VelocityRange.Min.Y)},
		velocityMax: [2]float32{float32(cfg.VelocityRange.Max.X), float32(cfg.VelocityRange.Max.Y)},
		gravity:     [2]float32{float32(cfg.Gravity.X), float32(cfg.Gravity.Y)},
		friction:    float32(cfg.Friction),
		sizeMin:     float32(cfg.SizeRange.Min),
		sizeMax:     float32(cfg.SizeRange.Max),
	}
	if c.directional {
		c.directionDeg = float32(motion.RadToDeg(cfg.Direction.Angle()))
	}
	return c
}

// apply pushes the controls into e through its setters. The count is only
// applied when it changed, since changing it restarts emission.
func (c emitterControls) apply(e *motion.ParticleEmitter) {
	cfg := e.Config()
	if int(c.count) != cfg.ParticleCount {
		e.SetEmissionCount(int(c.count))
	}

	e.SetEmissionRate(float64(c.rate))
	e.SetParticleLifespan(float64(c.lifespan))

	if c.directional {
		e.SetDirection(motion.FromAngle(motion.DegToRad(float64(c.directionDeg)), 1))
	} else {
		e.SetDirection(motion.Zero())
	}
	e.SetSpread(motion.DegToRad(float64(c.spreadDeg)))

	e.SetVelocityRange(motion.VectorRange{
		Min: motion.Vec(float64(c.velocityMin[0]), float64(c.velocityMin[1])),
		Max: motion.Vec(float64(c.velocityMax[0]), float64(c.velocityMax[1])),
	})
	e.SetGravity(motion.Vec(float64(c.gravity[0]), float64(c.gravity[1])))
	e.SetFriction(motion.Clamp(float64(c.friction), 0, 1))
	e.SetSizeRange(motion.Range{
		Min: float64(min(c.sizeMin, c.sizeMax)),
		Max: float64(max(c.sizeMin, c.sizeMax)),
	})
}

// EmitterPanel is a window that tunes one emitter between ticks.
type EmitterPanel struct {
	Title   string
	emitter *motion.ParticleEmitter
	state   emitterControls
}

// NewEmitterPanel returns a panel editing e.
func NewEmitterPanel(title string, e *motion.ParticleEmitter) *EmitterPanel {
	return &EmitterPanel{
		Title:   title,
		emitter: e,
		state:   controlsFromConfig(e.Config()),
	}
}

// Emitter returns the emitter being tuned.
func (p *EmitterPanel) Emitter() *motion.ParticleEmitter {
	return p.emitter
}

// SetEmitter retargets the panel and reloads its controls.
func (p *EmitterPanel) SetEmitter(e *motion.ParticleEmitter) {
	p.emitter = e
	p.state = controlsFromConfig(e.Config())
}

// Render draws the panel and applies edits to the emitter through its setters.
func (p *EmitterPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 460), imgui.CondOnce)

	if !imgui.BeginV(p.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	if p.emitter == nil {
		imgui.Text("No emitter selected")
		imgui.End()
		return
	}

	e := p.emitter
	cfg := e.Config()
	imgui.Text(fmt.Sprintf("Pattern: %s", cfg.Pattern))
	imgui.Text(fmt.Sprintf("Particles: %d / %d", e.ParticleCount(), cfg.ParticleCount))
	imgui.Text(fmt.Sprintf("Emitted: %d", e.ParticlesEmitted()))
	if math.IsInf(e.MaxLifespan, 1) {
		imgui.Text("Lifespan: unlimited")
	} else {
		imgui.ProgressBarV(float32(e.Lifespan/e.MaxLifespan), imgui.NewVec2(-1, 0), fmt.Sprintf("%.0f", e.Lifespan))
	}
	if e.IsActive() {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "EMITTING")
	} else {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "IDLE")
	}

	imgui.Separator()

	s := &p.state
	changed := false
	changed = inputInt("Count", &s.count) || changed
	changed = inputFloat("Rate (/s)", &s.rate) || changed
	changed = inputFloat("Particle Life", &s.lifespan) || changed
	changed = imgui.Checkbox("Directional", &s.directional) || changed
	if s.directional {
		changed = inputFloat("Direction (deg)", &s.directionDeg) || changed
		changed = inputFloat("Spread (deg)", &s.spreadDeg) || changed
	}

	if imgui.TreeNodeStr("Velocity") {
		changed = inputFloat("Min X", &s.velocityMin[0]) || changed
		changed = inputFloat("Min Y", &s.velocityMin[1]) || changed
		changed = inputFloat("Max X", &s.velocityMax[0]) || changed
		changed = inputFloat("Max Y", &s.velocityMax[1]) || changed
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Forces") {
		changed = inputFloat("Gravity X", &s.gravity[0]) || changed
		changed = inputFloat("Gravity Y", &s.gravity[1]) || changed
		changed = inputFloat("Friction", &s.friction) || changed
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Appearance") {
		changed = inputFloat("Size Min", &s.sizeMin) || changed
		changed = inputFloat("Size Max", &s.sizeMax) || changed
		for i, shape := range []motion.Shape{motion.ShapeDot, motion.ShapeSquare, motion.ShapeTriangle, motion.ShapeStar} {
			if i > 0 {
				imgui.SameLine()
			}
			if imgui.Button(shape.String()) {
				e.SetVisual(shape.Factory())
			}
		}
		imgui.TreePop()
	}

	if changed {
		s.apply(e)
	}

	imgui.Separator()
	if imgui.Button("Reset") {
		e.Reset()
	}
	imgui.SameLine()
	if imgui.Button("Reload") {
		p.state = controlsFromConfig(e.Config())
	}

	imgui.End()
}

func inputInt(label string, v *int32) bool {
	imgui.SetNextItemWidth(150)
	return imgui.InputInt(label, v)
}

func inputFloat(label string, v *float32) bool {
	imgui.SetNextItemWidth(150)
	return imgui.InputFloat(label, v)
}
