package columnar

import (
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/vecstore/codec"
	"github.com/hupe1980/vecstore/metadata"
	"github.com/parquet-go/parquet-go"
)

// Column names, in file order.
const (
	ColumnVectors  = "vectors"
	ColumnTexts    = "texts"
	ColumnMetadata = "metadata"
)

// CodecKey is the key/value metadata entry naming the metadata codec.
const CodecKey = "vecstore.codec"

var columns = []string{ColumnVectors, ColumnTexts, ColumnMetadata}

// ErrInvalidFile is matched (via errors.Is) by every structural error Read returns.
var ErrInvalidFile = errors.New("columnar: invalid file")

// ErrSchemaMismatch is returned when a file does not have the expected
// three-column layout.
type ErrSchemaMismatch struct {
	Column string
	Reason string
}

func (e *ErrSchemaMismatch) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("columnar: schema mismatch: %s", e.Reason)
	}
	return fmt.Sprintf("columnar: schema mismatch in column %q: %s", e.Column, e.Reason)
}

func (e *ErrSchemaMismatch) Unwrap() error { return ErrInvalidFile }

// ErrCorruptRow is returned when a row cannot be decoded.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrCorruptRow struct {
	Row    int
	Column string
	cause  error
}

func (e *ErrCorruptRow) Error() string {
	return fmt.Sprintf("columnar: corrupt row %d in column %q: %v", e.Row, e.Column, e.cause)
}

func (e *ErrCorruptRow) Unwrap() error { return e.cause }

// Is reports ErrInvalidFile as a match so callers can test the category.
func (e *ErrCorruptRow) Is(target error) bool { return target == ErrInvalidFile }

// Row is the on-disk shape of one item.
type Row struct {
	Vectors  []float64 `parquet:"vectors,list"`
	Texts    string    `parquet:"texts"`
	Metadata []byte    `parquet:"metadata,json"`
}

// Table is the in-memory, column-oriented form of a store.
type Table struct {
	Vectors  [][]float64
	Texts    []string
	Metadata []metadata.Document
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Texts) }

func (t *Table) validate() error {
	if len(t.Vectors) != len(t.Texts) || len(t.Metadata) != len(t.Texts) {
		return fmt.Errorf("columnar: misaligned table: %d vectors, %d texts, %d metadata",
			len(t.Vectors), len(t.Texts), len(t.Metadata))
	}
	return nil
}

// WriterOptions configures Write.
type WriterOptions struct {
	// Codec encodes the metadata column. Defaults to codec.Default.
	Codec codec.Codec
	// Compression is the page compression. Defaults to CompressionZstd.
	Compression Compression
}

// Write encodes t as a single Parquet file to w.
func Write(w io.Writer, t *Table, opts WriterOptions) error {
	if err := t.validate(); err != nil {
		return err
	}

	c := opts.Codec
	if c == nil {
		c = codec.Default
	}

	rows := make([]Row, t.Len())
	for i := range rows {
		doc := t.Metadata[i]
		if doc == nil {
			doc = metadata.Document{}
		}
		b, err := c.Marshal(doc)
		if err != nil {
			return fmt.Errorf("columnar: encode metadata of row %d: %w", i, err)
		}
		rows[i] = Row{
			Vectors:  t.Vectors[i],
			Texts:    t.Texts[i],
			Metadata: b,
		}
	}

	return parquet.Write(w, rows,
		parquet.Compression(opts.Compression.codec()),
		parquet.KeyValueMetadata(CodecKey, c.Name()),
	)
}

// Read decodes a file written by Write.
func Read(r io.ReaderAt, size int64) (*Table, error) {
	f, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if err := validateSchema(f.Schema()); err != nil {
		return nil, err
	}

	c := codec.Default
	if name, ok := f.Lookup(CodecKey); ok {
		known, found := codec.ByName(name)
		if !found {
			return nil, &ErrSchemaMismatch{Column: ColumnMetadata, Reason: fmt.Sprintf("unknown codec %q", name)}
		}
		c = known
	}

	rows, err := parquet.Read[Row](r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: read rows: %w", ErrInvalidFile, err)
	}
	if int64(len(rows)) != f.NumRows() {
		return nil, fmt.Errorf("%w: expected %d rows, read %d", ErrInvalidFile, f.NumRows(), len(rows))
	}

	t := &Table{
		Vectors:  make([][]float64, len(rows)),
		Texts:    make([]string, len(rows)),
		Metadata: make([]metadata.Document, len(rows)),
	}
	for i := range rows {
		var doc metadata.Document
		if err := c.Unmarshal(rows[i].Metadata, &doc); err != nil {
			return nil, &ErrCorruptRow{Row: i, Column: ColumnMetadata, cause: err}
		}
		if doc == nil {
			doc = metadata.Document{}
		}

		vec := rows[i].Vectors
		if vec == nil {
			vec = []float64{}
		}

		t.Vectors[i] = vec
		t.Texts[i] = rows[i].Texts
		t.Metadata[i] = doc
	}

	return t, nil
}

func validateSchema(schema *parquet.Schema) error {
	fields := schema.Fields()

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	if len(fields) != len(columns) {
		return &ErrSchemaMismatch{Reason: fmt.Sprintf("expected columns %v, got %v", columns, names)}
	}
	for i := range columns {
		if names[i] != columns[i] {
			return &ErrSchemaMismatch{Reason: fmt.Sprintf("expected columns %v, got %v", columns, names)}
		}
	}

	leaf, repeated := descend(fields[0])
	if leaf == nil || !repeated || leaf.Type().Kind() != parquet.Double {
		return &ErrSchemaMismatch{Column: ColumnVectors, Reason: "expected list of double"}
	}

	for _, f := range fields[1:] {
		if !f.Leaf() || f.Repeated() || f.Type().Kind() != parquet.ByteArray {
			return &ErrSchemaMismatch{Column: f.Name(), Reason: "expected byte array"}
		}
	}

	return nil
}

// descend follows single-child groups down to a leaf, reporting whether any
// node on the way is repeated. Returns nil if a group has more than one child.
func descend(n parquet.Node) (parquet.Node, bool) {
	repeated := false
	for {
		repeated = repeated || n.Repeated()
		if n.Leaf() {
			return n, repeated
		}
		fields := n.Fields()
		if len(fields) != 1 {
			return nil, repeated
		}
		n = fields[0]
	}
}
