package vecstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/vecstore/blobstore"
	"github.com/hupe1980/vecstore/columnar"
	"github.com/hupe1980/vecstore/persistence"
)

// Save writes the store to a Parquet file at path, replacing any existing
// file. An empty path means DefaultPath.
//
// Parent directories are not created.
func (s *Store) Save(path string) (err error) {
	if path == "" {
		path = DefaultPath
	}

	start := time.Now()
	defer func() {
		s.opts.logger.LogSave(context.Background(), path, s.Len(), err)
		s.opts.metricsCollector.RecordSave(s.Len(), time.Since(start), err)
	}()

	return persistence.SaveToFile(path, s.Encode)
}

// Load replaces the store contents with the Parquet file at path.
// An empty path means DefaultPath.
//
// On error the store is left unchanged.
func (s *Store) Load(path string) (err error) {
	if path == "" {
		path = DefaultPath
	}

	start := time.Now()
	defer func() {
		s.opts.logger.LogLoad(context.Background(), path, s.Len(), err)
		s.opts.metricsCollector.RecordLoad(s.Len(), time.Since(start), err)
	}()

	return persistence.LoadFromFile(path, s.Decode)
}

// Encode writes the store as a Parquet file to w.
func (s *Store) Encode(w io.Writer) error {
	t := &columnar.Table{
		Vectors:  s.vectors,
		Texts:    s.texts,
		Metadata: s.metadata,
	}
	return columnar.Write(w, t, columnar.WriterOptions{
		Codec:       s.opts.codec,
		Compression: s.opts.compression,
	})
}

// Decode replaces the store contents with the Parquet file read from r.
//
// On error the store is left unchanged.
func (s *Store) Decode(r io.ReaderAt, size int64) error {
	t, err := columnar.Read(r, size)
	if err != nil {
		return err
	}
	s.vectors = t.Vectors
	s.texts = t.Texts
	s.metadata = t.Metadata
	return nil
}

// SaveBlob writes the store as a Parquet file named name to bs.
func (s *Store) SaveBlob(ctx context.Context, bs blobstore.BlobStore, name string) (err error) {
	start := time.Now()
	defer func() {
		s.opts.logger.LogSave(ctx, name, s.Len(), err)
		s.opts.metricsCollector.RecordSave(s.Len(), time.Since(start), err)
	}()

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err
	}
	if err := bs.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("put blob %q: %w", name, err)
	}
	return nil
}

// LoadBlob replaces the store contents with the Parquet blob name from bs.
//
// On error the store is left unchanged.
func (s *Store) LoadBlob(ctx context.Context, bs blobstore.BlobStore, name string) (err error) {
	start := time.Now()
	defer func() {
		s.opts.logger.LogLoad(ctx, name, s.Len(), err)
		s.opts.metricsCollector.RecordLoad(s.Len(), time.Since(start), err)
	}()

	blob, err := bs.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open blob %q: %w", name, err)
	}
	defer func() {
		_ = blob.Close()
	}()

	return s.Decode(blobstore.ReaderAt(ctx, blob), blob.Size())
}
