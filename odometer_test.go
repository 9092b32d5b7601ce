package bluenoise

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func collectBox(c *BoxCounter) [][]int {
	var out [][]int
	for ok := true; ok; ok = c.Next() {
		out = append(out, append([]int(nil), c.Index()...))
	}
	return out
}

func TestBoxCounter_Order2D(t *testing.T) {
	c := NewBoxCounter([]int{1, 5}, []int{3, 6})
	want := [][]int{
		{1, 5}, {2, 5}, {3, 5},
		{1, 6}, {2, 6}, {3, 6},
	}
	if diff := cmp.Diff(want, collectBox(c)); diff != "" {
		t.Errorf("odometer order mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxCounter_VisitsEveryIndexOnce(t *testing.T) {
	lo := []int{0, 2, 1, 3}
	hi := []int{2, 4, 1, 5}
	c := NewBoxCounter(lo, hi)
	assert.Equal(t, 3*3*1*3, c.Size())

	got := collectBox(c)
	assert.Len(t, got, c.Size())

	seen := make(map[[4]int]bool)
	for _, idx := range got {
		var k [4]int
		copy(k[:], idx)
		if seen[k] {
			t.Errorf("index %v visited twice", idx)
		}
		seen[k] = true
		for a := range idx {
			if idx[a] < lo[a] || idx[a] > hi[a] {
				t.Errorf("index %v outside box", idx)
			}
		}
	}
	assert.Equal(t, lo, got[0])
	assert.Equal(t, hi, got[len(got)-1])
}

func TestBoxCounter_SingleCell(t *testing.T) {
	c := NewBoxCounter([]int{4, 4, 4}, []int{4, 4, 4})
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, []int{4, 4, 4}, c.Index())
	assert.False(t, c.Next())
	assert.Equal(t, []int{4, 4, 4}, c.Index())
}

func TestBoxCounter_ExhaustedStaysAtMax(t *testing.T) {
	c := NewBoxCounter([]int{0, 0}, []int{1, 1})
	collectBox(c)
	assert.False(t, c.Next())
	assert.Equal(t, []int{1, 1}, c.Index())
}

func TestBoxCounter_Reset(t *testing.T) {
	c := NewBoxCounter([]int{0, 0}, []int{1, 1})
	collectBox(c)

	c.Reset([]int{5, 5}, []int{6, 5})
	want := [][]int{{5, 5}, {6, 5}}
	if diff := cmp.Diff(want, collectBox(c)); diff != "" {
		t.Errorf("after Reset (-want +got):\n%s", diff)
	}
}

func TestBoxCounter_InvalidCorners(t *testing.T) {
	assert.Panics(t, func() { NewBoxCounter([]int{0}, []int{1, 1}) })
	assert.Panics(t, func() { NewBoxCounter([]int{2, 0}, []int{1, 1}) })
}
