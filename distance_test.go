package bluenoise

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"3-4-5", []float64{0, 0}, []float64{3, 4}, 5},
		{"1D", []float64{-2}, []float64{5}, 7},
		{"4D unit diagonal", []float64{0, 0, 0, 0}, []float64{1, 1, 1, 1}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.want) > floatTol {
				t.Errorf("Distance = %g, want %g", got, tc.want)
			}
			if got := sqDist(tc.a, tc.b); math.Abs(got-tc.want*tc.want) > floatTol {
				t.Errorf("sqDist = %g, want %g", got, tc.want*tc.want)
			}
			if got := floats.Distance(tc.a, tc.b, 2); math.Abs(got-Distance(tc.a, tc.b)) > floatTol {
				t.Errorf("Distance disagrees with floats.Distance: %g vs %g", Distance(tc.a, tc.b), got)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := []float64{1.5, -2, 7}
	b := []float64{0.25, 3, -1}
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance(a, b) = %g, Distance(b, a) = %g", Distance(a, b), Distance(b, a))
	}
}
