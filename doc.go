// Package vecstore provides a small embedded vector store for Go.
//
// A Store keeps text items together with pre-computed embeddings and
// arbitrary metadata. It answers exact nearest-neighbour queries by cosine
// similarity (a linear scan over every item) and persists its full state to
// a single Parquet file.
//
// # Quick Start
//
//	s := vecstore.New()
//	s.Add("cat", []float64{1, 0, 0}, metadata.Document{"animal": metadata.Bool(true)})
//	s.Add("dog", []float64{0, 1, 0}, nil)
//
//	results, err := s.Search([]float64{0.9, 0.1, 0}, vecstore.DefaultK)
//	if err != nil {
//		return err
//	}
//	for _, r := range results {
//		fmt.Println(r.Text, r.Similarity)
//	}
//
// # Persistence
//
// Save writes a Parquet file with three columns, in order:
//
//	vectors   list<double>   the embedding of each item
//	texts     string         the item text
//	metadata  json           the item metadata document
//
// Save replaces the target file atomically (temp file + rename) and never
// creates missing parent directories. Load validates the layout, decodes
// every row and only then replaces the in-memory state, so a failed Load
// leaves the store unchanged.
//
//	if err := s.Save(""); err != nil { // "" means DefaultPath
//		return err
//	}
//	restored := vecstore.New()
//	if err := restored.Load(vecstore.DefaultPath); err != nil {
//		return err
//	}
//
// The same file can be kept in any blobstore.BlobStore (local directory,
// memory, S3 or MinIO) with SaveBlob and LoadBlob:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("embeddings/"))
//	err := s.SaveBlob(ctx, store, "embeddings.parquet")
//
// # Similarity
//
// The score of an item is dot(q, v) / (|q|·|v| + 1e-10). Zero vectors score
// 0 instead of NaN. Scores are not clamped to [-1, 1]. Vector lengths are
// not validated on Add; a query whose length differs from a stored vector
// makes Search return *ErrDimensionMismatch.
//
// # Concurrency
//
// A Store is not safe for concurrent mutation. Callers must serialize
// Add/Load against every other call.
package vecstore
