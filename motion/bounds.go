package motion

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Min, Max Vector2
}

// NewBounds returns the rectangle [0, width] x [0, height].
func NewBounds(width, height float64) Bounds {
	return Bounds{Max: Vector2{X: width, Y: height}}
}

// Width and Height are the extents of the box.
func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// BounceOffBounds keeps a body of the given radius inside b, reflecting and
// damping the velocity component that crossed an edge. Returns true if any
// edge was hit.
func (m *Mover) BounceOffBounds(b Bounds, radius, restitution float64) bool {
	pos := m.Position
	vel := m.Velocity
	bounced := false

	switch {
	case pos.X-radius < b.Min.X:
		pos = Vector2{X: b.Min.X + radius, Y: pos.Y}
		vel = Vector2{X: -vel.X * restitution, Y: vel.Y}
		bounced = true
	case pos.X+radius > b.Max.X:
		pos = Vector2{X: b.Max.X - radius, Y: pos.Y}
		vel = Vector2{X: -vel.X * restitution, Y: vel.Y}
		bounced = true
	}

	switch {
	case pos.Y-radius < b.Min.Y:
		pos = Vector2{X: pos.X, Y: b.Min.Y + radius}
		vel = Vector2{X: vel.X, Y: -vel.Y * restitution}
		bounced = true
	case pos.Y+radius > b.Max.Y:
		pos = Vector2{X: pos.X, Y: b.Max.Y - radius}
		vel = Vector2{X: vel.X, Y: -vel.Y * restitution}
		bounced = true
	}

	m.Position = pos
	m.Velocity = vel
	return bounced
}

// WrapAroundBounds teleports a body that fully left b to the opposite edge.
func (m *Mover) WrapAroundBounds(b Bounds, radius float64) {
	x, y := m.Position.X, m.Position.Y

	switch {
	case x > b.Max.X+radius:
		x = b.Min.X - radius
	case x < b.Min.X-radius:
		x = b.Max.X + radius
	}

	switch {
	case y > b.Max.Y+radius:
		y = b.Min.Y - radius
	case y < b.Min.Y-radius:
		y = b.Max.Y + radius
	}

	m.Position = Vector2{X: x, Y: y}
}

// IsCollidingWith reports whether two circles of the given radii overlap.
func (m *Mover) IsCollidingWith(other *Mover, radius, otherRadius float64) bool {
	return m.Position.Distance(other.Position) < radius+otherRadius
}

// CollideWith separates two overlapping circles and exchanges an impulse
// along the contact normal. Bodies already moving apart are only separated.
func (m *Mover) CollideWith(other *Mover, radius, otherRadius, restitution float64) {
	if !m.IsCollidingWith(other, radius, otherRadius) {
		return
	}

	offset := m.Position.Sub(other.Position)
	normal := offset.Normalize()
	if normal.IsZero() {
		// Coincident centres have no contact normal.
		return
	}

	overlap := radius + otherRadius - offset.Magnitude()
	separation := normal.Scale(overlap / 2)
	m.Position = m.Position.Add(separation)
	other.Position = other.Position.Sub(separation)

	velAlongNormal := m.Velocity.Sub(other.Velocity).Dot(normal)
	if velAlongNormal > 0 {
		return
	}

	invMass := 1 / m.Mass
	otherInvMass := 1 / other.Mass
	j := -(1 + restitution) * velAlongNormal / (invMass + otherInvMass)
	impulse := normal.Scale(j)

	m.Velocity = m.Velocity.Add(impulse.Scale(invMass))
	other.Velocity = other.Velocity.Sub(impulse.Scale(otherInvMass))
}
