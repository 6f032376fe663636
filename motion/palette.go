package motion

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a pool of colours sampled uniformly.
type Palette []color.RGBA

// DefaultPalette is the pool used when an emitter is not given colours.
var DefaultPalette = MustPalette("#ff6b6b", "#4ecdc4", "#45b7d1", "#ffa726", "#9c27b0")

// ParsePalette builds a palette from "#rrggbb" or "#rgb" strings.
func ParsePalette(hexes ...string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("parse palette colour %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return p, nil
}

// MustPalette is ParsePalette that panics on malformed input.
func MustPalette(hexes ...string) Palette {
	p, err := ParsePalette(hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Sample returns a uniformly chosen colour, or opaque white for an empty palette.
func (p Palette) Sample(r *rand.Rand) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return p[r.IntN(len(p))]
}

// Blend treats the palette as an evenly spaced gradient and returns the
// colour at t in [0, 1], interpolated in Lab space.
func (p Palette) Blend(t float64) color.RGBA {
	switch len(p) {
	case 0:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case 1:
		return p[0]
	}

	pos := Clamp(t, 0, 1) * float64(len(p)-1)
	i := min(int(pos), len(p)-2)
	a, _ := colorful.MakeColor(p[i])
	b, _ := colorful.MakeColor(p[i+1])

	r, g, bl := a.BlendLab(b, pos-float64(i)).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// Hex returns the palette as "#rrggbb" strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = HexColor(c)
	}
	return out
}

// HexColor formats an opaque colour as "#rrggbb".
func HexColor(c color.RGBA) string {
	cc, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	return cc.Hex()
}

// FadeColor scales a premultiplied colour by alpha in [0, 1].
func FadeColor(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
