// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("vectors/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = vs.SaveBlob(ctx, store, "embeddings.parquet")
//
// # Features
//
//   - Range reads, so only the Parquet footer and pages are fetched
//   - Multipart uploads for large files (feature/s3/manager)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
