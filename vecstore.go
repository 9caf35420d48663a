package vecstore

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/hupe1980/vecstore/metadata"
)

const (
	// DefaultK is the conventional number of results for Search.
	DefaultK = 5

	// DefaultPath is used by Save and Load when the path is empty.
	DefaultPath = "data/embeddings.parquet"
)

// Item is one stored entry.
type Item struct {
	Text      string
	Embedding []float64
	Metadata  metadata.Document
}

// Store is an append-only collection of embedded text items.
//
// The three sequences are index-aligned: position i in each belongs to the
// same item.
type Store struct {
	vectors  [][]float64
	texts    []string
	metadata []metadata.Document

	opts options
}

// New creates an empty store.
func New(optFns ...Option) *Store {
	return &Store{
		opts: applyOptions(optFns),
	}
}

// Add appends an item.
//
// The embedding and metadata are copied. A nil document is stored as an
// empty one. The embedding is not validated.
func (s *Store) Add(text string, embedding []float64, md metadata.Document) {
	start := time.Now()

	s.vectors = append(s.vectors, slices.Clone(nonNilVector(embedding)))
	s.texts = append(s.texts, text)
	s.metadata = append(s.metadata, md.Clone())

	s.opts.logger.LogAdd(context.Background(), len(s.texts)-1, len(embedding))
	s.opts.metricsCollector.RecordAdd(time.Since(start))
}

// AddAny is like Add but takes loosely typed metadata, converted with
// metadata.DocumentFromAny. The store is not modified if conversion fails.
func (s *Store) AddAny(text string, embedding []float64, md map[string]any) error {
	doc, err := metadata.DocumentFromAny(md)
	if err != nil {
		return err
	}
	s.Add(text, embedding, doc)
	return nil
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	return len(s.texts)
}

// All iterates the stored items in insertion order.
//
// The yielded items share memory with the store and must not be modified.
func (s *Store) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i := range s.texts {
			item := Item{
				Text:      s.texts[i],
				Embedding: s.vectors[i],
				Metadata:  s.metadata[i],
			}
			if !yield(i, item) {
				return
			}
		}
	}
}

func nonNilVector(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}
	return v
}
