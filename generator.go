package bluenoise

import (
	"iter"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces blue noise samples one at a time by dart throwing
// around an active list. It owns its grid, sample store and random
// stream; nothing is shared with other generators.
//
// Each pull either spawns a neighbour of the active sample under the
// cursor or, after KAbort rejected candidates, drops that sample and
// moves on. Successful parents and their children are queued in a second
// list that replaces the active list once the cursor reaches its end.
// Generation ends when that swap yields an empty list.
//
// A Generator is not restartable and not safe for concurrent use.
type Generator struct {
	grid   *Grid
	store  *SampleStore
	kAbort int

	src    rand.Source
	radius distuv.Uniform // [MinDistance, 2*MinDistance)
	angle  distuv.Uniform // [0, 2π)

	active     []int // sample ids being drained
	nextActive []int // ids eligible for the next round
	cursor     int

	started bool
	done    bool

	// scratch reused across candidates
	angles    []float64
	offset    []float64
	candidate []float64
}

func newGenerator(cfg Config) (*Generator, error) {
	grid, err := NewGrid(cfg.Extents, cfg.MinDistance)
	if err != nil {
		return nil, err
	}
	dims := grid.Dims()
	src := cfg.Source
	if src == nil {
		src = newSource(cfg.Seed)
	}
	return &Generator{
		grid:      grid,
		store:     NewSampleStore(dims),
		kAbort:    cfg.KAbort,
		src:       src,
		radius:    distuv.Uniform{Min: cfg.MinDistance, Max: 2 * cfg.MinDistance, Src: src},
		angle:     distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src},
		angles:    make([]float64, dims-1),
		offset:    make([]float64, dims),
		candidate: make([]float64, dims),
	}, nil
}

// newSource returns a private PCG stream. A zero seed draws the stream's
// seed from the runtime's random source.
func newSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

// Next returns the next sample, or nil and false once generation has
// ended. The returned slice is a copy owned by the caller.
func (g *Generator) Next() ([]float64, bool) {
	if g.done {
		return nil, false
	}
	if !g.started {
		g.started = true
		id := g.seed()
		g.active = append(g.active, id)
		return g.sample(id), true
	}

	for {
		if g.cursor >= len(g.active) {
			g.active, g.nextActive = g.nextActive, g.active[:0]
			g.cursor = 0
			if len(g.active) == 0 {
				g.done = true
				g.nextActive = nil
				return nil, false
			}
		}

		parent := g.active[g.cursor]
		g.cursor++
		if id, ok := g.spawn(parent); ok {
			g.nextActive = append(g.nextActive, parent, id)
			return g.sample(id), true
		}
		// parent exhausted its retries and is not queued again
	}
}

// seed places the first sample uniformly in the domain.
func (g *Generator) seed() int {
	for a, e := range g.grid.extents {
		x := distuv.Uniform{Min: 0, Max: e, Src: g.src}.Rand()
		if x >= e {
			x = math.Nextafter(e, 0)
		}
		g.candidate[a] = x
	}
	id, err := g.grid.Insert(g.candidate, g.store)
	if err != nil {
		// The grid is empty and the point is in bounds.
		panic("bluenoise: initial sample rejected: " + err.Error())
	}
	return id
}

// spawn throws up to kAbort candidates in the annulus
// [MinDistance, 2*MinDistance) around parent and returns the id of the
// first one the grid accepts.
func (g *Generator) spawn(parent int) (int, bool) {
	p := g.store.At(parent)
	for range g.kAbort {
		r := g.radius.Rand()
		for j := range g.angles {
			g.angles[j] = g.angle.Rand()
		}
		PolarToCartesianTo(g.offset, r, g.angles)
		floats.AddTo(g.candidate, p, g.offset)
		if id, err := g.grid.Insert(g.candidate, g.store); err == nil {
			return id, true
		}
	}
	return 0, false
}

func (g *Generator) sample(id int) []float64 {
	p := make([]float64, g.store.Dims())
	copy(p, g.store.At(id))
	return p
}

// All returns an iterator over the remaining samples. Stopping early
// leaves the generator positioned after the last sample yielded.
func (g *Generator) All() iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for {
			p, ok := g.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Take pulls at most n further samples. It returns fewer when generation
// ends first.
func (g *Generator) Take(n int) [][]float64 {
	out := make([][]float64, 0, max(n, 0))
	for len(out) < n {
		p, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// Samples returns a copy of every sample produced so far, in order.
func (g *Generator) Samples() [][]float64 { return g.store.Points() }

// Len returns the number of samples produced so far.
func (g *Generator) Len() int { return g.store.Len() }

// Done reports whether the generator has ended.
func (g *Generator) Done() bool { return g.done }

// Dims returns the dimensionality of the samples.
func (g *Generator) Dims() int { return g.grid.Dims() }
