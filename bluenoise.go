package bluenoise

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
)

// Config controls blue noise generation.
// Start with [DefaultConfig] and set Extents and MinDistance.
type Config struct {
	// Extents is the size of the domain on each axis; samples lie in
	// [0, Extents[a]). Its length is the dimension. Every extent must be
	// finite and > 0. Required.
	Extents []float64

	// MinDistance is the minimum Euclidean distance between any two
	// samples. Must be finite and > 0. Required.
	MinDistance float64

	// KAbort is how many rejected candidates an active sample tolerates
	// before it is dropped. Larger values fill the domain more tightly at
	// the cost of more rejections. 0 produces exactly one sample.
	// Must be >= 0. Default: 30.
	KAbort int

	// Seed seeds a private PCG stream when Source is nil. 0 seeds from
	// the runtime's random source, so output differs between runs.
	Seed uint64

	// Source, when set, is the random stream used for every draw. It is
	// used by a single generator and must not be shared with concurrently
	// running generators.
	Source rand.Source
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{KAbort: 30}
}

// validateConfig checks the fields the grid does not.
func validateConfig(cfg *Config) error {
	if cfg.KAbort < 0 {
		return fmt.Errorf("bluenoise: %w, got %d", ErrInvalidKAbort, cfg.KAbort)
	}
	return nil
}

// Generate produces a complete blue noise set over the given extents and
// returns the samples in generation order. kAbort is the number of
// attempts per active sample; 30 is a good default.
func Generate(extents []float64, minDistance float64, kAbort int) ([][]float64, error) {
	return GenerateConfig(Config{Extents: extents, MinDistance: minDistance, KAbort: kAbort})
}

// NewGenerator returns a lazy generator over the given extents. Samples
// are produced only as they are pulled.
func NewGenerator(extents []float64, minDistance float64, kAbort int) (*Generator, error) {
	return NewGeneratorConfig(Config{Extents: extents, MinDistance: minDistance, KAbort: kAbort})
}

// GenerateConfig is Generate driven by a Config.
func GenerateConfig(cfg Config) ([][]float64, error) {
	g, err := NewGeneratorConfig(cfg)
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := g.Next(); !ok {
			break
		}
	}
	return g.Samples(), nil
}

// NewGeneratorConfig is NewGenerator driven by a Config. It returns an
// error, and no generator, if the config is invalid.
func NewGeneratorConfig(cfg Config) (*Generator, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return newGenerator(cfg)
}

// GenerateMany produces n independent sets with the same domain, spread
// over numWorkers goroutines. Set i uses its own PCG stream seeded with
// cfg.Seed+i (or a random seed when cfg.Seed is 0), so results for a
// fixed seed do not depend on numWorkers. cfg.Source must be nil since a
// single stream cannot serve several generators at once. numWorkers <= 0
// means runtime.NumCPU().
func GenerateMany(cfg Config, n, numWorkers int) ([][][]float64, error) {
	if cfg.Source != nil {
		return nil, errors.New("bluenoise: GenerateMany needs a nil Source; seeds are derived from Seed")
	}
	if n < 0 {
		return nil, fmt.Errorf("bluenoise: set count must be >= 0, got %d", n)
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Build every generator up front so construction errors surface
	// before any work starts.
	gens := make([]*Generator, n)
	for i := range gens {
		c := cfg
		if cfg.Seed != 0 {
			c.Seed = cfg.Seed + uint64(i)
		}
		g, err := NewGeneratorConfig(c)
		if err != nil {
			return nil, err
		}
		gens[i] = g
	}

	result := make([][][]float64, n)
	if numWorkers == 1 || n <= 1 {
		for i, g := range gens {
			result[i] = drain(g)
		}
		return result, nil
	}

	// Each worker owns a contiguous range of sets; no writes overlap.
	var wg sync.WaitGroup
	setsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * setsPerWorker
		end := min(start+setsPerWorker, n)
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				result[i] = drain(gens[i])
			}
		}(start, end)
	}

	wg.Wait()
	return result, nil
}

func drain(g *Generator) [][]float64 {
	for {
		if _, ok := g.Next(); !ok {
			return g.Samples()
		}
	}
}
