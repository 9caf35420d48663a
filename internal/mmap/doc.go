// Package mmap provides read-only memory-mapped file access.
//
// # Usage
//
//	m, err := mmap.Open("data/embeddings.parquet")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	n, err := m.ReadAt(buf, off)
//
// Mapping implements io.ReaderAt, so a mapped file can be handed directly to
// decoders that need random access plus a size.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// Callers must not retain slices returned by Bytes after Close.
package mmap
