// Package persistence provides crash-safe file helpers used by Save and Load.
//
// SaveToFile writes through a temp file in the target directory and renames
// it over the target, so readers never observe a half-written file. The
// target directory must already exist.
//
// LoadFromFile maps the file read-only and hands it to the caller as an
// io.ReaderAt plus size, which is what columnar decoders need.
package persistence
