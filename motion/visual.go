package motion

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Surface is implemented by renderers. The motion package never draws on
// its own; visuals describe geometry through these calls.
type Surface interface {
	FillCircle(center Vector2, radius float64, c color.RGBA)
	FillPolygon(points []Vector2, c color.RGBA)
}

// VisualAttrs are the attributes an emitter samples for each particle.
type VisualAttrs struct {
	Size  float64
	Color color.RGBA
}

// Visual is the pluggable appearance of a particle.
type Visual interface {
	// Reset replaces the visual attributes when a particle is recycled.
	Reset(attrs VisualAttrs)
	// Draw renders the visual centred on position with the given fade.
	Draw(s Surface, position Vector2, alpha float64)
}

// VisualFactory builds the visual for a newly created particle.
type VisualFactory func(attrs VisualAttrs) Visual

type Shape uint8

const (
	ShapeDot Shape = iota
	ShapeSquare
	ShapeTriangle
	ShapeStar
)

var shapeNames = [...]string{
	ShapeDot:      "dot",
	ShapeSquare:   "square",
	ShapeTriangle: "triangle",
	ShapeStar:     "star",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseShape maps a shape name to its Shape.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown particle shape %q", name)
}

// DefaultAttrs returns the size and colour a shape uses when none is given.
func (s Shape) DefaultAttrs() VisualAttrs {
	switch s {
	case ShapeSquare:
		return VisualAttrs{Size: 6, Color: color.RGBA{0x4e, 0xcd, 0xc4, 0xff}}
	case ShapeTriangle:
		return VisualAttrs{Size: 6, Color: color.RGBA{0x45, 0xb7, 0xd1, 0xff}}
	case ShapeStar:
		return VisualAttrs{Size: 8, Color: color.RGBA{0xff, 0xa7, 0x26, 0xff}}
	default:
		return VisualAttrs{Size: 3, Color: color.RGBA{0xff, 0x6b, 0x6b, 0xff}}
	}
}

// Factory returns a VisualFactory producing ShapeVisuals of this shape.
func (s Shape) Factory() VisualFactory {
	return func(attrs VisualAttrs) Visual {
		return &ShapeVisual{Shape: s, Size: attrs.Size, Color: attrs.Color}
	}
}

// ShapeVisual is the built-in visual. For dots Size is the radius; for
// squares and triangles it is the side length; for stars the outer radius.
type ShapeVisual struct {
	Shape Shape
	Size  float64
	Color color.RGBA
}

// NewShapeVisual returns a visual with the shape's default attributes.
func NewShapeVisual(shape Shape) *ShapeVisual {
	attrs := shape.DefaultAttrs()
	return &ShapeVisual{Shape: shape, Size: attrs.Size, Color: attrs.Color}
}

func (v *ShapeVisual) Reset(attrs VisualAttrs) {
	v.Size = attrs.Size
	v.Color = attrs.Color
}

const (
	starSpikes     = 5
	starInnerRatio = 0.4
)

// Points returns the polygon outline centred on center. Dots have no
// outline and return nil.
func (v *ShapeVisual) Points(center Vector2) []Vector2 {
	half := v.Size / 2

	switch v.Shape {
	case ShapeSquare:
		return []Vector2{
			center.Add(Vec(-half, -half)),
			center.Add(Vec(half, -half)),
			center.Add(Vec(half, half)),
			center.Add(Vec(-half, half)),
		}
	case ShapeTriangle:
		return []Vector2{
			center.Add(Vec(0, -half)),
			center.Add(Vec(-half, half)),
			center.Add(Vec(half, half)),
		}
	case ShapeStar:
		points := make([]Vector2, 0, starSpikes*2)
		for i := 0; i < starSpikes*2; i++ {
			radius := v.Size
			if i%2 == 1 {
				radius = v.Size * starInnerRatio
			}
			angle := float64(i) * math.Pi / starSpikes
			points = append(points, center.Add(FromAngle(angle, radius)))
		}
		return points
	}
	return nil
}

func (v *ShapeVisual) Draw(s Surface, position Vector2, alpha float64) {
	c := FadeColor(v.Color, alpha)
	if c.A == 0 {
		return
	}
	if v.Shape == ShapeDot {
		s.FillCircle(position, v.Size, c)
		return
	}
	s.FillPolygon(v.Points(position), c)
}
