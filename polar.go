package bluenoise

import "math"

// PolarToCartesian converts a radius and len(angles) hyperspherical angles
// into a Cartesian offset with len(angles)+1 coordinates:
//
//	c[i]    = radius * sin(a[0]) * ... * sin(a[i-1]) * cos(a[i])   for i < len(angles)
//	c[last] = radius * sin(a[0]) * ... * sin(a[len(angles)-1])
//
// With no angles the result is the one-dimensional offset {radius}.
// Drawing every angle uniformly from [0, 2π) does not give uniformly
// distributed directions above two dimensions.
func PolarToCartesian(radius float64, angles []float64) []float64 {
	return PolarToCartesianTo(make([]float64, len(angles)+1), radius, angles)
}

// PolarToCartesianTo is PolarToCartesian writing into dst, which must have
// length len(angles)+1. It returns dst.
func PolarToCartesianTo(dst []float64, radius float64, angles []float64) []float64 {
	if len(dst) != len(angles)+1 {
		panic("bluenoise: PolarToCartesianTo dst length mismatch")
	}
	prod := radius
	for i, a := range angles {
		sin, cos := math.Sincos(a)
		dst[i] = prod * cos
		prod *= sin
	}
	dst[len(angles)] = prod
	return dst
}
