package distance

import (
	"fmt"
	"math"
)

// Epsilon is added to the denominator of CosineSimilarity to avoid a
// division by zero when either vector has zero length.
const Epsilon = 1e-10

// ErrDimensionMismatch is returned when two vectors of different lengths are combined.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Dot calculates the dot product of two vectors.
// Returns *ErrDimensionMismatch if the lengths differ.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Norm returns the Euclidean (L2) norm of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// CosineSimilarity returns dot(a, b) / (‖a‖₂·‖b‖₂ + Epsilon).
func CosineSimilarity(a, b []float64) (float64, error) {
	return CosineSimilarityWithNorm(a, Norm(a), b)
}

// CosineSimilarityWithNorm is CosineSimilarity with a precomputed norm for a.
// Search uses it to compute the query norm once per scan.
func CosineSimilarityWithNorm(a []float64, normA float64, b []float64) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	return dot / (normA*Norm(b) + Epsilon), nil
}
