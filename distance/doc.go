// Package distance provides the vector math used by the store's similarity search.
//
// All functions operate on float64 slices and never modify their inputs.
//
// # Cosine Similarity
//
// CosineSimilarity follows the smoothed form
//
//	dot(a, b) / (‖a‖₂ · ‖b‖₂ + Epsilon)
//
// so a zero vector on either side yields a similarity of 0 rather than NaN.
// Scores are not clamped to [-1, 1].
//
// # Usage
//
//	sim, err := distance.CosineSimilarity(query, vec)
//	dot, err := distance.Dot(a, b)
//	n := distance.Norm(v)
package distance
