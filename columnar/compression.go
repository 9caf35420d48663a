package columnar

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
)

// Compression selects the page compression of a written file.
type Compression uint8

const (
	// CompressionZstd uses Zstandard (klauspost/compress).
	CompressionZstd Compression = iota
	// CompressionSnappy uses Snappy.
	CompressionSnappy
	// CompressionLZ4 uses raw LZ4 (pierrec/lz4).
	CompressionLZ4
	// CompressionGzip uses gzip.
	CompressionGzip
	// CompressionNone writes uncompressed pages.
	CompressionNone
)

func (c Compression) String() string {
	switch c {
	case CompressionZstd:
		return "zstd"
	case CompressionSnappy:
		return "snappy"
	case CompressionLZ4:
		return "lz4"
	case CompressionGzip:
		return "gzip"
	case CompressionNone:
		return "none"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

func (c Compression) codec() compress.Codec {
	switch c {
	case CompressionSnappy:
		return &parquet.Snappy
	case CompressionLZ4:
		return &parquet.Lz4Raw
	case CompressionGzip:
		return &parquet.Gzip
	case CompressionNone:
		return &parquet.Uncompressed
	default:
		return &parquet.Zstd
	}
}
