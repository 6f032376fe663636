package motion

import "math"

var defaultPermutation = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142,
	8, 99, 37, 240, 21, 10, 23, 190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117,
	35, 11, 32, 57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71,
	134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41,
	55, 46, 245, 40, 244, 102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89,
	18, 169, 200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226,
	250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182,
	189, 28, 42, 223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43,
	172, 9, 129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97,
	228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239,
	107, 49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// NoiseField is a 2D Perlin noise generator. It is immutable after
// construction, so one field can be sampled by any number of movers.
type NoiseField struct {
	p [512]int
}

// NewNoiseField returns a field built from the reference permutation table.
func NewNoiseField() *NoiseField {
	perm := defaultPermutation
	return newNoiseField(perm)
}

// NewSeededNoiseField returns a field whose permutation table is shuffled
// deterministically from seed.
func NewSeededNoiseField(seed uint32) *NoiseField {
	perm := defaultPermutation

	// 32-bit LCG (Numerical Recipes constants), wraps naturally.
	state := seed
	next := func() float64 {
		state = state*1664525 + 1013904223
		return float64(state) / 4294967296
	}

	for i := len(perm) - 1; i > 0; i-- {
		j := int(next() * float64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}

	return newNoiseField(perm)
}

func newNoiseField(perm [256]uint8) *NoiseField {
	f := &NoiseField{}
	for i := range f.p {
		f.p[i] = int(perm[i&255])
	}
	return f
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func grad(hash int, x, y float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise2D returns coherent noise at (x, y), roughly in [-1, 1].
// Integer lattice points always sample to 0.
func (f *NoiseField) Noise2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255

	x -= fx
	y -= fy

	u := fade(x)
	v := fade(y)

	a := f.p[xi] + yi
	aa := f.p[a]
	ab := f.p[a+1]
	b := f.p[xi+1] + yi
	ba := f.p[b]
	bb := f.p[b+1]

	return Lerp(
		Lerp(grad(f.p[aa], x, y), grad(f.p[ba], x-1, y), u),
		Lerp(grad(f.p[ab], x, y-1), grad(f.p[bb], x-1, y-1), u),
		v,
	)
}

// Octave2D sums octaves of Noise2D, doubling frequency and multiplying
// amplitude by persistence on each layer. The result is normalized by the
// total amplitude so it stays within the single-octave range.
func (f *NoiseField) Octave2D(x, y float64, octaves int, persistence, scale float64) float64 {
	if octaves < 1 {
		return 0
	}

	var value, maxValue float64
	amplitude := 1.0
	frequency := scale

	for i := 0; i < octaves; i++ {
		value += f.Noise2D(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxValue == 0 {
		return 0
	}
	return value / maxValue
}
