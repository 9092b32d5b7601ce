package bluenoise

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the nearest-neighbour spacing of a sample set.
// For a well-filled set MinNearest is at least MinDistance and
// MaxNearest stays below 2*MinDistance.
type Stats struct {
	Count       int
	MinNearest  float64
	MaxNearest  float64
	MeanNearest float64
}

// Analyze computes nearest-neighbour distances for every point using a
// KD-tree. Sets with fewer than two points have zero-valued distances.
func Analyze(points [][]float64) Stats {
	n := len(points)
	s := Stats{Count: n}
	if n < 2 {
		return s
	}

	// kdtree.New reorders the slice it is given, not the points.
	pts := make(kdtree.Points, n)
	for i, p := range points {
		pts[i] = kdtree.Point(p)
	}
	tree := kdtree.New(pts, false)

	nearest := make([]float64, n)
	for i, p := range points {
		// The closest match is p itself at distance 0.
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, kdtree.Point(p))
		var d float64
		for _, c := range keep.Heap {
			d = math.Max(d, c.Dist)
		}
		nearest[i] = math.Sqrt(d) // Point.Distance is squared
	}

	s.MinNearest = floats.Min(nearest)
	s.MaxNearest = floats.Max(nearest)
	s.MeanNearest = stat.Mean(nearest, nil)
	return s
}

// Verify checks that every point lies inside extents and that no two
// points are closer than minDistance. It replays the points through a
// fresh grid, so it runs in roughly linear time.
func Verify(points [][]float64, extents []float64, minDistance float64) error {
	grid, err := NewGrid(extents, minDistance)
	if err != nil {
		return err
	}
	store := NewSampleStore(grid.Dims())
	for i, p := range points {
		if _, err := grid.Insert(p, store); err != nil {
			if errors.Is(err, ErrDistanceViolation) {
				j := closest(store, p)
				return fmt.Errorf("bluenoise: point %d %v is %g from point %d: %w",
					i, p, Distance(p, points[j]), j, err)
			}
			return fmt.Errorf("bluenoise: point %d %v: %w", i, p, err)
		}
	}
	return nil
}

// closest returns the index of the stored point nearest to p.
func closest(store *SampleStore, p []float64) int {
	best, bestD := 0, math.Inf(1)
	for id := 1; id <= store.Len(); id++ {
		if d := sqDist(p, store.At(id)); d < bestD {
			best, bestD = id-1, d
		}
	}
	return best
}

// ToR2 converts a two-dimensional sample set to gonum vectors.
func ToR2(points [][]float64) ([]r2.Vec, error) {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("bluenoise: point %d has %d dims, want 2", i, len(p))
		}
		out[i] = r2.Vec{X: p[0], Y: p[1]}
	}
	return out, nil
}

// ToR3 converts a three-dimensional sample set to gonum vectors.
func ToR3(points [][]float64) ([]r3.Vec, error) {
	out := make([]r3.Vec, len(points))
	for i, p := range points {
		if len(p) != 3 {
			return nil, fmt.Errorf("bluenoise: point %d has %d dims, want 3", i, len(p))
		}
		out[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return out, nil
}
