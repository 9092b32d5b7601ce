package bluenoise

import "math"

// Distance returns the Euclidean (L2) distance between a and b.
func Distance(a, b []float64) float64 {
	return math.Sqrt(sqDist(a, b))
}

// sqDist returns the squared Euclidean distance between a and b.
// Grid checks compare against MinDistance² and skip the sqrt.
func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
