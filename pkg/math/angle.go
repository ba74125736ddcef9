package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// sincosDegrees returns sin and cos of an angle in degrees.
// The angle is reduced modulo 360 first so that long-running rotations
// keep full precision.
func sincosDegrees(deg float64) (s, c float32) {
	r := math.Mod(deg, 360)
	sn, cs := math.Sincos(Radians(r))
	return float32(sn), float32(cs)
}
