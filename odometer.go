package bluenoise

// BoxCounter walks every integer multi-index in the closed box
// [min, max] like an odometer: axis 0 advances fastest, and an axis that
// passes its max resets to its min and carries into the next axis.
//
// The counter starts positioned at min:
//
//	bc := NewBoxCounter(lo, hi)
//	for ok := true; ok; ok = bc.Next() {
//		visit(bc.Index())
//	}
type BoxCounter struct {
	min, max []int
	idx      []int
}

// NewBoxCounter returns a counter over the box [min, max]. Both corners
// are inclusive. Panics if the corners differ in length or any axis has
// min > max.
func NewBoxCounter(min, max []int) *BoxCounter {
	if len(min) != len(max) {
		panic("bluenoise: BoxCounter corners differ in dimension")
	}
	for a := range min {
		if min[a] > max[a] {
			panic("bluenoise: BoxCounter min exceeds max")
		}
	}
	idx := make([]int, len(min))
	copy(idx, min)
	return &BoxCounter{min: min, max: max, idx: idx}
}

// Index returns the current multi-index. The slice is reused by Next.
func (c *BoxCounter) Index() []int { return c.idx }

// Next advances to the following index and reports whether one exists.
// After the last index (max) it returns false and leaves Index at max.
func (c *BoxCounter) Next() bool {
	for a := range c.idx {
		if c.idx[a] < c.max[a] {
			c.idx[a]++
			return true
		}
		c.idx[a] = c.min[a]
	}
	// Every axis wrapped: the box is exhausted.
	copy(c.idx, c.max)
	return false
}

// Reset repositions the counter at a new box, reusing its storage.
// The corners must have the counter's dimensionality.
func (c *BoxCounter) Reset(min, max []int) {
	c.min, c.max = min, max
	copy(c.idx, min)
}

// Size returns the number of indices in the box.
func (c *BoxCounter) Size() int {
	n := 1
	for a := range c.min {
		n *= c.max[a] - c.min[a] + 1
	}
	return n
}
