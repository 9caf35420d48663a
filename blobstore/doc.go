// Package blobstore provides the storage abstraction behind Store.SaveBlob and
// Store.LoadBlob.
//
// A saved store is a single immutable blob (a Parquet file). BlobStore
// implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, reads via mmap, atomic writes
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Blob.ReadAt takes a context so remote implementations can issue
// cancellable range requests; use ReaderAt to bind a context and obtain an
// io.ReaderAt.
package blobstore
