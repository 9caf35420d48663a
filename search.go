package vecstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/hupe1980/vecstore/distance"
	"github.com/hupe1980/vecstore/metadata"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of vectors scored by one worker.
const minChunk = 1024

// Result is a single search hit.
type Result struct {
	Text       string
	Metadata   metadata.Document
	Similarity float64
}

type candidate struct {
	index int
	score float64
}

// Search returns the k items most similar to query by cosine similarity,
// best first. Items with equal scores keep their insertion order.
//
// An empty store or k <= 0 yields an empty result. If query and a stored
// vector differ in length, Search returns *ErrDimensionMismatch and no
// results.
func (s *Store) Search(query []float64, k int) (results []Result, err error) {
	start := time.Now()
	defer func() {
		s.opts.logger.LogSearch(context.Background(), k, len(results), err)
		s.opts.metricsCollector.RecordSearch(k, len(results), time.Since(start), err)
	}()

	if len(s.vectors) == 0 || k <= 0 {
		return []Result{}, nil
	}

	candidates, err := s.score(query)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	n := min(k, len(candidates))
	results = make([]Result, n)
	for i, c := range candidates[:n] {
		results[i] = Result{
			Text:       s.texts[c.index],
			Metadata:   s.metadata[c.index].Clone(),
			Similarity: c.score,
		}
	}
	return results, nil
}

// score computes the similarity of query to every stored vector.
//
// With more than one worker the scan is split into contiguous chunks. The
// error of the lowest chunk wins so the result matches a sequential scan.
func (s *Store) score(query []float64) ([]candidate, error) {
	qNorm := distance.Norm(query)
	candidates := make([]candidate, len(s.vectors))

	scan := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			score, err := distance.CosineSimilarityWithNorm(query, qNorm, s.vectors[i])
			if err != nil {
				return err
			}
			candidates[i] = candidate{index: i, score: score}
		}
		return nil
	}

	workers := min(s.opts.searchWorkers, len(s.vectors)/minChunk)
	if workers <= 1 {
		if err := scan(0, len(s.vectors)); err != nil {
			return nil, err
		}
		return candidates, nil
	}

	chunk := (len(s.vectors) + workers - 1) / workers
	errs := make([]error, workers)

	var g errgroup.Group
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(s.vectors))
		g.Go(func() error {
			errs[w] = scan(lo, hi)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}
