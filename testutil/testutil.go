package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// FillGaussian fills dst with standard normal values.
func (r *RNG) FillGaussian(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Each vector gets its own backing array so stores can retain them.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	vectors := make([][]float64, num)
	for i := range num {
		vectors[i] = make([]float64, dimensions)
		r.FillUniform(vectors[i])
	}
	return vectors
}

// UnitVectors generates random vectors of length 1 pointing in uniformly
// distributed directions.
func (r *RNG) UnitVectors(num int, dimensions int) [][]float64 {
	vectors := make([][]float64, num)
	for i := range num {
		vectors[i] = r.UnitVector(dimensions)
	}
	return vectors
}

// UnitVector generates a single random unit vector.
func (r *RNG) UnitVector(dimensions int) []float64 {
	vec := make([]float64, dimensions)
	for {
		r.FillGaussian(vec)

		var sum float64
		for _, v := range vec {
			sum += v * v
		}
		if sum == 0 {
			continue
		}

		inv := 1 / math.Sqrt(sum)
		for i := range vec {
			vec[i] *= inv
		}
		return vec
	}
}

// Hit is a reference search result.
type Hit struct {
	Index      int
	Similarity float64
}

// ExactTopK ranks every vector by cosine similarity to query, best first,
// keeping insertion order among equal scores. It panics on a length mismatch.
func ExactTopK(query []float64, vectors [][]float64, k int) []Hit {
	hits := make([]Hit, len(vectors))
	for i, v := range vectors {
		if len(v) != len(query) {
			panic("testutil: dimension mismatch")
		}
		var dot, qq, vv float64
		for j := range v {
			dot += query[j] * v[j]
			qq += query[j] * query[j]
			vv += v[j] * v[j]
		}
		hits[i] = Hit{Index: i, Similarity: dot / (math.Sqrt(qq)*math.Sqrt(vv) + 1e-10)}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Similarity > hits[b].Similarity
	})

	if k < len(hits) {
		hits = hits[:max(k, 0)]
	}
	return hits
}
