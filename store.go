package bluenoise

// SampleStore is the append-only sequence of accepted samples. Points are
// stored flat in row-major order; the sample at index i has id i+1, and
// id 0 is reserved for "no sample" in the grid.
type SampleStore struct {
	data []float64 // flat row-major point data (n * dims)
	dims int
}

// NewSampleStore creates an empty store for points of dimensionality dims.
func NewSampleStore(dims int) *SampleStore {
	return &SampleStore{dims: dims}
}

// Len returns the number of stored samples, which is also the highest id.
func (s *SampleStore) Len() int {
	if s.dims == 0 {
		return 0
	}
	return len(s.data) / s.dims
}

// Dims returns the dimensionality of each sample.
func (s *SampleStore) Dims() int { return s.dims }

// At returns the sample with the given 1-based id. The returned slice
// aliases the store and must not be modified. Panics if id is out of range.
func (s *SampleStore) At(id int) []float64 {
	if id < 1 || id > s.Len() {
		panic("bluenoise: sample id out of range")
	}
	off := (id - 1) * s.dims
	return s.data[off : off+s.dims : off+s.dims]
}

// append copies p into the store and returns its id.
func (s *SampleStore) append(p []float64) int {
	s.data = append(s.data, p...)
	return s.Len()
}

// Points returns a copy of every stored sample in id order.
func (s *SampleStore) Points() [][]float64 {
	n := s.Len()
	out := make([][]float64, n)
	flat := make([]float64, len(s.data))
	copy(flat, s.data)
	for i := range out {
		out[i] = flat[i*s.dims : (i+1)*s.dims : (i+1)*s.dims]
	}
	return out
}
