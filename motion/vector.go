// Package motion provides 2D vector math, force-driven movers and pooled
// particle emitters for frame-driven simulations.
package motion

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Epsilon is the magnitude below which a vector is treated as zero length.
const Epsilon = 1e-12

// Vector2 is an immutable 2D vector. Every method returns a new value.
type Vector2 struct {
	X, Y float64
}

// Vec is a convenience constructor for Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vector2 { return Vector2{} }

// Up returns the screen-space up direction (negative Y).
func Up() Vector2 { return Vector2{X: 0, Y: -1} }

// Down returns the screen-space down direction (positive Y).
func Down() Vector2 { return Vector2{X: 0, Y: 1} }

// Left returns the unit vector pointing to negative X.
func Left() Vector2 { return Vector2{X: -1, Y: 0} }

// Right returns the unit vector pointing to positive X.
func Right() Vector2 { return Vector2{X: 1, Y: 0} }

// FromAngle returns a vector of the given length pointing at angle radians
// measured from the positive X axis.
func FromAngle(angle, length float64) Vector2 {
	return Vector2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// RandomUnit returns a unit vector with a uniformly sampled heading.
func RandomUnit(r *rand.Rand) Vector2 {
	return FromAngle(r.Float64()*2*math.Pi, 1)
}

// Random returns a vector of the given length with a uniformly sampled heading.
func Random(r *rand.Rand, length float64) Vector2 {
	return FromAngle(r.Float64()*2*math.Pi, length)
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s. Division by zero yields the zero vector.
func (v Vector2) Div(s float64) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagnitudeSq returns the squared length of v.
func (v Vector2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v has (near-)zero length.
func (v Vector2) Normalize() Vector2 {
	mag := v.Magnitude()
	if mag < Epsilon {
		return Vector2{}
	}
	return Vector2{X: v.X / mag, Y: v.Y / mag}
}

// SetMagnitude returns v rescaled to length m. Zero stays zero.
func (v Vector2) SetMagnitude(m float64) Vector2 {
	return v.Normalize().Scale(m)
}

// Limit returns v rescaled to max if its length exceeds max, otherwise v.
func (v Vector2) Limit(max float64) Vector2 {
	magSq := v.MagnitudeSq()
	if magSq <= max*max {
		return v
	}
	return v.SetMagnitude(max)
}

// ClampMagnitude keeps the length of v within [min, max], preserving direction.
func (v Vector2) ClampMagnitude(min, max float64) Vector2 {
	mag := v.Magnitude()
	switch {
	case mag < Epsilon:
		return Vector2{}
	case mag < min:
		return v.Scale(min / mag)
	case mag > max:
		return v.Scale(max / mag)
	}
	return v
}

// Clamp clamps each component of v between the matching components of min and max.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{X: Clamp(v.X, min.X, max.X), Y: Clamp(v.Y, min.Y, max.Y)}
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product of v and w.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Distance returns the distance between the points v and w.
func (v Vector2) Distance(w Vector2) float64 {
	return v.Sub(w).Magnitude()
}

// DistanceSq returns the squared distance between the points v and w.
func (v Vector2) DistanceSq(w Vector2) float64 {
	return v.Sub(w).MagnitudeSq()
}

// Angle returns the heading of v in radians from the positive X axis.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the unsigned angle between v and w in [0, π].
// Returns 0 when either vector has zero length.
func (v Vector2) AngleTo(w Vector2) float64 {
	mags := v.Magnitude() * w.Magnitude()
	if mags == 0 {
		return 0
	}
	return math.Acos(Clamp(v.Dot(w)/mags, -1, 1))
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns v rotated by 90 degrees.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Reflect returns v reflected off a surface with the given normal.
// The normal does not need to be unit length; a zero normal leaves v unchanged.
//
//	r = v - 2 (v·n) n
func (v Vector2) Reflect(normal Vector2) Vector2 {
	n := normal.Normalize()
	if n.IsZero() {
		return v
	}
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// ProjectOnto returns the projection of v onto target. Projecting onto the
// zero vector yields the zero vector.
func (v Vector2) ProjectOnto(target Vector2) Vector2 {
	magSq := target.MagnitudeSq()
	if magSq < Epsilon*Epsilon {
		return Vector2{}
	}
	return target.Scale(v.Dot(target) / magSq)
}

// Reject returns the component of v perpendicular to target.
func (v Vector2) Reject(target Vector2) Vector2 {
	return v.Sub(v.ProjectOnto(target))
}

// Lerp linearly interpolates from v to w by t.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{
		X: Lerp(v.X, w.X, t),
		Y: Lerp(v.Y, w.Y, t),
	}
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equals reports whether v and w differ by less than epsilon on each axis.
func (v Vector2) Equals(w Vector2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", v.X, v.Y)
}
