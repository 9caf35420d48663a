package persistence

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/vecstore/internal/mmap"
)

// SaveToFile atomically replaces filename with the bytes produced by writeFunc.
//
// Intermediate directories are not created; if the parent directory is
// missing the *fs.PathError from creating the temp file is returned.
func SaveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	// Write to a temp file in the same directory to ensure rename is atomic.
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	// Match typical file permissions (best-effort).
	_ = tmp.Chmod(0o644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}

// LoadFromFile maps filename read-only and passes it to readFunc.
//
// The mapping is released before LoadFromFile returns, so readFunc must not
// retain slices that alias the reader's memory.
func LoadFromFile(filename string, readFunc func(r io.ReaderAt, size int64) error) error {
	m, err := mmap.Open(filename)
	if err != nil {
		return err
	}
	defer m.Close()

	_ = m.Advise(mmap.AccessSequential)

	return readFunc(m, m.Size())
}
