package motion

import (
	"math"
	"math/rand/v2"
)

// NewFireworks returns a one-shot burst of falling stars.
func NewFireworks(position Vector2, r *rand.Rand) *ParticleEmitter {
	cfg := DefaultEmitterConfig()
	cfg.Position = position
	cfg.ParticleCount = 30
	cfg.Pattern = Burst
	cfg.Visual = ShapeStar.Factory()
	cfg.VelocityRange = VectorRange{Min: Vec(-100, -150), Max: Vec(100, -50)}
	cfg.Colors = MustPalette("#ff6b6b", "#ffa726", "#ffeb3b", "#4caf50", "#2196f3")
	cfg.SizeRange = Range{Min: 4, Max: 10}
	cfg.ParticleLifespan = 180
	cfg.Gravity = Vec(0, 50)
	cfg.Friction = 0.02
	cfg.Rand = r
	return NewEmitter(cfg)
}

// NewSmoke returns a slow grey plume.
func NewSmoke(position Vector2, r *rand.Rand) *ParticleEmitter {
	cfg := DefaultEmitterConfig()
	cfg.Position = position
	cfg.ParticleCount = 20
	cfg.EmissionRate = 5
	cfg.Pattern = Continuous
	cfg.Visual = ShapeDot.Factory()
	cfg.VelocityRange = VectorRange{Min: Vec(-20, -30), Max: Vec(20, -10)}
	cfg.Colors = MustPalette("#666666", "#888888", "#aaaaaa")
	cfg.SizeRange = Range{Min: 3, Max: 8}
	cfg.ParticleLifespan = 240
	cfg.Friction = 0.01
	cfg.Rand = r
	return NewEmitter(cfg)
}

// NewMagic returns an upward cone of triangles.
func NewMagic(position Vector2, r *rand.Rand) *ParticleEmitter {
	cfg := DefaultEmitterConfig()
	cfg.Position = position
	cfg.ParticleCount = 40
	cfg.EmissionRate = 15
	cfg.Pattern = Continuous
	cfg.Visual = ShapeTriangle.Factory()
	cfg.Direction = Up()
	cfg.Spread = math.Pi / 3
	cfg.VelocityRange = VectorRange{Min: Vec(0, 30), Max: Vec(0, 80)}
	cfg.Colors = MustPalette("#9c27b0", "#e91e63", "#3f51b5", "#00bcd4")
	cfg.SizeRange = Range{Min: 2, Max: 6}
	cfg.ParticleLifespan = 150
	cfg.Rand = r
	return NewEmitter(cfg)
}
