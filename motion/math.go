package motion

import "math"

// Lerp linearly interpolates between start and end by t.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// Map re-maps value from the range [fromMin, fromMax] to [toMin, toMax].
// A degenerate source range maps everything to toMin.
func Map(value, fromMin, fromMax, toMin, toMax float64) float64 {
	span := fromMax - fromMin
	if span == 0 {
		return toMin
	}
	return toMin + (value-fromMin)/span*(toMax-toMin)
}

// Approximately reports whether a and b differ by less than epsilon.
func Approximately(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}
