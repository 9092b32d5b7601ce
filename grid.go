package bluenoise

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// Construction errors. Every error returned while building a grid or a
// generator wraps one of these.
var (
	ErrInvalidMinDistance = errors.New("min distance must be finite and > 0")
	ErrEmptyDomain        = errors.New("domain has no extents")
	ErrInvalidExtent      = errors.New("extent must be finite and > 0")
	ErrGridTooLarge       = errors.New("background grid cell count overflows int")
	ErrInvalidKAbort      = errors.New("k abort must be >= 0")
)

// Insert rejections. These are expected during generation and never
// leave the generator.
var (
	ErrOutOfBounds       = errors.New("candidate outside domain")
	ErrDistanceViolation = errors.New("candidate too close to an existing sample")
)

// largeGridCells is the cell count above which NewGrid logs a warning.
const largeGridCells = 1 << 24

// Grid is the background acceleration grid: a uniform spatial hash over
// the domain whose cells are small enough (MinDistance/sqrt(D) on a side)
// that each can hold at most one sample. A bounded window of cells around
// a candidate then contains every sample that could conflict with it.
//
// Cells are stored flat; a D-dimensional cell index maps to a linear
// index through a mixed-radix stride table:
//   - strides[0] = 1
//   - strides[a] = strides[a-1] * cellCount[a-1]
type Grid struct {
	extents     []float64
	minDistance float64
	minDistSq   float64
	cellSize    float64
	cellOffset  int   // window half-width in cells, per axis
	cellCount   []int // cells per axis
	strides     []int
	cells       []int // sample id per cell, 0 = empty

	// scratch reused across Insert calls
	own, lo, hi []int
	counter     *BoxCounter
}

// NewGrid builds an empty grid over [0, extents[0]) x ... x
// [0, extents[D-1]) for samples at least minDistance apart.
func NewGrid(extents []float64, minDistance float64) (*Grid, error) {
	if !(minDistance > 0) || math.IsInf(minDistance, 1) {
		return nil, fmt.Errorf("bluenoise: %w, got %g", ErrInvalidMinDistance, minDistance)
	}
	dims := len(extents)
	if dims == 0 {
		return nil, fmt.Errorf("bluenoise: %w", ErrEmptyDomain)
	}
	for a, e := range extents {
		if !(e > 0) || math.IsInf(e, 1) {
			return nil, fmt.Errorf("bluenoise: %w, axis %d is %g", ErrInvalidExtent, a, e)
		}
	}

	cellSize := minDistance / math.Sqrt(float64(dims))
	cellCount := make([]int, dims)
	strides := make([]int, dims)
	total := 1
	for a, e := range extents {
		c := math.Ceil(e / cellSize)
		if c >= math.MaxInt {
			return nil, fmt.Errorf("bluenoise: %w, axis %d needs %g cells", ErrGridTooLarge, a, c)
		}
		cellCount[a] = int(c)
		strides[a] = total
		if total > math.MaxInt/cellCount[a] {
			return nil, fmt.Errorf("bluenoise: %w (cell size %g)", ErrGridTooLarge, cellSize)
		}
		total *= cellCount[a]
	}
	if total > largeGridCells {
		log.Printf("bluenoise: background grid has %d cells (%d dims, cell size %g); memory use is proportional", total, dims, cellSize)
	}

	extentsCopy := make([]float64, dims)
	copy(extentsCopy, extents)

	g := &Grid{
		extents:     extentsCopy,
		minDistance: minDistance,
		minDistSq:   minDistance * minDistance,
		cellSize:    cellSize,
		cellOffset:  int(math.Ceil(minDistance / cellSize)),
		cellCount:   cellCount,
		strides:     strides,
		cells:       make([]int, total),
		own:         make([]int, dims),
		lo:          make([]int, dims),
		hi:          make([]int, dims),
	}
	g.counter = NewBoxCounter(g.lo, g.hi)
	return g, nil
}

// Dims returns the dimensionality of the domain.
func (g *Grid) Dims() int { return len(g.extents) }

// Extents returns the size of the domain on each axis.
func (g *Grid) Extents() []float64 { return g.extents }

// MinDistance returns the minimum separation enforced by Insert.
func (g *Grid) MinDistance() float64 { return g.minDistance }

// CellSize returns the side length of a grid cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// CellCount returns the number of cells along each axis.
func (g *Grid) CellCount() []int { return g.cellCount }

// NumCells returns the total number of cells.
func (g *Grid) NumCells() int { return len(g.cells) }

// linearIndex flattens a cell multi-index through the stride table.
func (g *Grid) linearIndex(cell []int) int {
	idx := 0
	for a, c := range cell {
		if c < 0 || c >= g.cellCount[a] {
			panic("bluenoise: cell index out of range")
		}
		idx += c * g.strides[a]
	}
	return idx
}

// contains reports whether p lies in [0, extent) on every axis.
// NaN coordinates fail both comparisons and are rejected.
func (g *Grid) contains(p []float64) bool {
	if len(p) != len(g.extents) {
		return false
	}
	for a, x := range p {
		if !(x >= 0 && x < g.extents[a]) {
			return false
		}
	}
	return true
}

// Insert adds candidate to store if it lies inside the domain and no
// stored sample is closer than MinDistance. It returns the new sample id,
// or ErrOutOfBounds / ErrDistanceViolation. Neither the grid nor the store
// changes on rejection.
func (g *Grid) Insert(candidate []float64, store *SampleStore) (int, error) {
	if !g.contains(candidate) {
		return 0, ErrOutOfBounds
	}

	for a, x := range candidate {
		c := int(x / g.cellSize)
		// x < extent, but the division can still round up to cellCount.
		if c >= g.cellCount[a] {
			c = g.cellCount[a] - 1
		}
		g.own[a] = c
		g.lo[a] = max(0, c-g.cellOffset)
		g.hi[a] = min(g.cellCount[a]-1, c+g.cellOffset)
	}
	home := g.linearIndex(g.own)

	g.counter.Reset(g.lo, g.hi)
	for ok := true; ok; ok = g.counter.Next() {
		id := g.cells[g.linearIndex(g.counter.Index())]
		if id == 0 {
			continue
		}
		if sqDist(candidate, store.At(id)) < g.minDistSq {
			return 0, ErrDistanceViolation
		}
	}

	if g.cells[home] != 0 {
		// Unreachable while cellSize <= MinDistance/sqrt(D): the owner
		// would have been within MinDistance.
		panic("bluenoise: grid cell already occupied")
	}
	id := store.append(candidate)
	g.cells[home] = id
	return id, nil
}

// At returns the sample id stored in the cell with the given multi-index,
// or 0 if the cell is empty.
func (g *Grid) At(cell []int) int {
	return g.cells[g.linearIndex(cell)]
}
