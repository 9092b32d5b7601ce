package bluenoise

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 30, cfg.KAbort)
	assert.Nil(t, cfg.Extents)
	assert.Nil(t, cfg.Source)

	// Extents and MinDistance are required.
	_, err := GenerateConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidMinDistance)
	cfg.MinDistance = 1
	_, err = GenerateConfig(cfg)
	assert.ErrorIs(t, err, ErrEmptyDomain)
}

func TestGenerate_CornerDomain(t *testing.T) {
	points, err := Generate([]float64{35, 9}, 4, 30)
	require.NoError(t, err)
	checkBlueNoise(t, points, []float64{35, 9}, 4)
	assert.NoError(t, Verify(points, []float64{35, 9}, 4))
}

func TestGenerateMany_IndependentOfWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extents = []float64{20, 20}
	cfg.MinDistance = 2
	cfg.Seed = 1000

	serial, err := GenerateMany(cfg, 6, 1)
	require.NoError(t, err)
	require.Len(t, serial, 6)

	for _, workers := range []int{2, 4, 16, 0} {
		parallel, err := GenerateMany(cfg, 6, workers)
		require.NoError(t, err)
		if diff := cmp.Diff(serial, parallel); diff != "" {
			t.Errorf("workers=%d differs from serial (-serial +parallel):\n%s", workers, diff)
		}
	}

	for i, set := range serial {
		checkBlueNoise(t, set, cfg.Extents, cfg.MinDistance)

		c := cfg
		c.Seed = cfg.Seed + uint64(i)
		want, err := GenerateConfig(c)
		require.NoError(t, err)
		assert.Equal(t, want, set, "set %d", i)
	}
	assert.NotEqual(t, serial[0], serial[1])
}

func TestGenerateMany_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extents = []float64{20, 20}
	cfg.MinDistance = 2

	cfg.Source = rand.NewPCG(1, 1)
	_, err := GenerateMany(cfg, 2, 2)
	assert.Error(t, err)
	cfg.Source = nil

	_, err = GenerateMany(cfg, -1, 2)
	assert.Error(t, err)

	cfg.MinDistance = 0
	_, err = GenerateMany(cfg, 3, 2)
	assert.ErrorIs(t, err, ErrInvalidMinDistance)
}

func TestGenerateMany_Empty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extents = []float64{5}
	cfg.MinDistance = 1
	sets, err := GenerateMany(cfg, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, sets)
}
