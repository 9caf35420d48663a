package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.Less(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestUnitVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UnitVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))

	// Check normalization
	for _, vec := range v {
		var sum float64
		for _, val := range vec {
			sum += val * val
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformVectors(1, 10)
	rng.Reset()
	v2 := rng.UniformVectors(1, 10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestExactTopK(t *testing.T) {
	vectors := [][]float64{{1, 0}, {0, 1}, {0.9, 0.1}, {2, 0}}

	hits := ExactTopK([]float64{1, 0}, vectors, 3)
	require.Len(t, hits, 3)
	// The epsilon favours longer vectors by a hair.
	assert.Equal(t, 3, hits[0].Index)
	assert.Equal(t, 0, hits[1].Index)
	assert.Equal(t, 2, hits[2].Index)

	assert.Empty(t, ExactTopK([]float64{1, 0}, vectors, 0))
	assert.Len(t, ExactTopK([]float64{1, 0}, vectors, 10), 4)
	assert.Panics(t, func() { ExactTopK([]float64{1}, vectors, 1) })
}
