// Package bluenoise generates blue noise: point sets in an n-dimensional
// box where no two points are closer than a minimum distance while the
// box stays evenly covered, with no large empty gaps.
//
// It implements Fast Poisson-Disk Sampling (Bridson, "Fast Poisson Disk
// Sampling in Arbitrary Dimensions", SIGGRAPH 2007) for any number of
// dimensions. The number of extents passed in determines the dimension.
//
// Basic usage:
//
//	points, err := bluenoise.Generate([]float64{128, 128}, 8, 30)
//	// points[i] is a 2D sample in [0, 128) x [0, 128)
//
// Samples can also be pulled lazily, which is useful when only a prefix of
// the sequence is needed:
//
//	gen, err := bluenoise.NewGenerator([]float64{20, 20, 20}, 3, 30)
//	first := gen.Take(100)
//
// For reproducible output, pass a seed or a random source through Config:
//
//	cfg := bluenoise.DefaultConfig()
//	cfg.Extents = []float64{35, 9}
//	cfg.MinDistance = 4
//	cfg.Seed = 42
//	points, err := bluenoise.GenerateConfig(cfg)
//
// # Geometry
//
// Points are produced in generation order. Every point lies in
// [0, extent) on each axis, every pair is at least MinDistance apart, and
// every point after the first lies within 2*MinDistance of an earlier one.
// Candidate directions for dimensions above two follow the plain
// hyperspherical parametrization and are not uniformly distributed over
// the sphere.
package bluenoise
