// Package testutil provides testing utilities for vecstore.
//
// This package is intended for use in tests, benchmarks and examples only.
// It provides helpers for generating random embeddings and computing a
// reference cosine ranking.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float64, 128)
//	rng.FillUniform(vec)      // uniform [0, 1)
//	rng.FillGaussian(vec)     // standard normal
//
// # Reference Ranking
//
//	want := testutil.ExactTopK(query, vectors, k)
package testutil
