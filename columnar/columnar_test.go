package columnar

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hupe1980/vecstore/codec"
	"github.com/hupe1980/vecstore/metadata"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Vectors: [][]float64{{1, 0}, {0, 1}, {0.9, 0.1}},
		Texts:   []string{"cat", "dog", ""},
		Metadata: []metadata.Document{
			{"kind": metadata.String("animal"), "legs": metadata.Int(4)},
			{},
			{"nested": metadata.Map(metadata.Document{"score": metadata.Float(0.5)})},
		},
	}
}

func encode(t *testing.T, tbl *Table, opts WriterOptions) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl, opts))
	return bytes.NewReader(buf.Bytes())
}

func encodeRows[T any](t *testing.T, rows []T, options ...parquet.WriterOption) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, parquet.Write(&buf, rows, options...))
	return bytes.NewReader(buf.Bytes())
}

func assertTablesEqual(t *testing.T, want, got *Table) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	for i := range want.Texts {
		assert.InDeltaSlice(t, want.Vectors[i], got.Vectors[i], 1e-12, "row %d", i)
		assert.Equal(t, want.Texts[i], got.Texts[i], "row %d", i)
		assert.True(t, want.Metadata[i].Equal(got.Metadata[i]), "row %d", i)
	}
}

func TestRoundTrip(t *testing.T) {
	want := sampleTable()
	r := encode(t, want, WriterOptions{})

	got, err := Read(r, r.Size())
	require.NoError(t, err)
	assertTablesEqual(t, want, got)
}

func TestRoundTrip_Compression(t *testing.T) {
	for _, c := range []Compression{CompressionZstd, CompressionSnappy, CompressionLZ4, CompressionGzip, CompressionNone} {
		t.Run(c.String(), func(t *testing.T) {
			want := sampleTable()
			r := encode(t, want, WriterOptions{Compression: c})

			got, err := Read(r, r.Size())
			require.NoError(t, err)
			assertTablesEqual(t, want, got)
		})
	}
}

func TestRoundTrip_Codec(t *testing.T) {
	want := sampleTable()
	r := encode(t, want, WriterOptions{Codec: codec.JSON{}})

	f, err := parquet.OpenFile(r, r.Size())
	require.NoError(t, err)
	name, ok := f.Lookup(CodecKey)
	require.True(t, ok)
	assert.Equal(t, "json", name)

	got, err := Read(r, r.Size())
	require.NoError(t, err)
	assertTablesEqual(t, want, got)
}

func TestRoundTrip_Empty(t *testing.T) {
	r := encode(t, &Table{}, WriterOptions{})

	got, err := Read(r, r.Size())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestRoundTrip_EmptyVectorAndNilMetadata(t *testing.T) {
	r := encode(t, &Table{
		Vectors:  [][]float64{nil},
		Texts:    []string{"x"},
		Metadata: []metadata.Document{nil},
	}, WriterOptions{})

	got, err := Read(r, r.Size())
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.NotNil(t, got.Vectors[0])
	assert.Empty(t, got.Vectors[0])
	assert.NotNil(t, got.Metadata[0])
	assert.Empty(t, got.Metadata[0])
}

func TestRoundTrip_ColumnOrder(t *testing.T) {
	r := encode(t, sampleTable(), WriterOptions{})

	f, err := parquet.OpenFile(r, r.Size())
	require.NoError(t, err)

	var names []string
	for _, field := range f.Schema().Fields() {
		names = append(names, field.Name())
	}
	assert.Equal(t, []string{"vectors", "texts", "metadata"}, names)
	assert.Equal(t, int64(3), f.NumRows())
}

func TestWrite_Misaligned(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &Table{
		Vectors:  [][]float64{{1}},
		Texts:    []string{"a", "b"},
		Metadata: []metadata.Document{{}},
	}, WriterOptions{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRead_NotParquet(t *testing.T) {
	r := bytes.NewReader([]byte("definitely not a parquet file"))
	_, err := Read(r, r.Size())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestRead_SchemaMismatch(t *testing.T) {
	type missingColumns struct {
		Texts string `parquet:"texts"`
	}
	type wrongOrder struct {
		Texts    string    `parquet:"texts"`
		Vectors  []float64 `parquet:"vectors,list"`
		Metadata []byte    `parquet:"metadata,json"`
	}
	type wrongVectorType struct {
		Vectors  []int64 `parquet:"vectors,list"`
		Texts    string  `parquet:"texts"`
		Metadata []byte  `parquet:"metadata,json"`
	}
	type scalarVector struct {
		Vectors  float64 `parquet:"vectors"`
		Texts    string  `parquet:"texts"`
		Metadata []byte  `parquet:"metadata,json"`
	}
	type wrongTextType struct {
		Vectors  []float64 `parquet:"vectors,list"`
		Texts    int64     `parquet:"texts"`
		Metadata []byte    `parquet:"metadata,json"`
	}
	type extraColumn struct {
		Vectors  []float64 `parquet:"vectors,list"`
		Texts    string    `parquet:"texts"`
		Metadata []byte    `parquet:"metadata,json"`
		Extra    int64     `parquet:"extra"`
	}

	tests := []struct {
		name   string
		r      *bytes.Reader
		column string
	}{
		{"MissingColumns", encodeRows(t, []missingColumns{{Texts: "a"}}), ""},
		{"WrongOrder", encodeRows(t, []wrongOrder{{Texts: "a", Vectors: []float64{1}, Metadata: []byte("{}")}}), ""},
		{"WrongVectorType", encodeRows(t, []wrongVectorType{{Vectors: []int64{1}, Texts: "a", Metadata: []byte("{}")}}), ColumnVectors},
		{"ScalarVector", encodeRows(t, []scalarVector{{Vectors: 1, Texts: "a", Metadata: []byte("{}")}}), ColumnVectors},
		{"WrongTextType", encodeRows(t, []wrongTextType{{Vectors: []float64{1}, Texts: 1, Metadata: []byte("{}")}}), ColumnTexts},
		{"ExtraColumn", encodeRows(t, []extraColumn{{Vectors: []float64{1}, Texts: "a", Metadata: []byte("{}")}}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.r, tt.r.Size())
			require.Error(t, err)

			var sm *ErrSchemaMismatch
			require.ErrorAs(t, err, &sm)
			assert.Equal(t, tt.column, sm.Column)
			assert.ErrorIs(t, err, ErrInvalidFile)
		})
	}
}

func TestRead_UnknownCodec(t *testing.T) {
	r := encodeRows(t, []Row{{Vectors: []float64{1}, Texts: "a", Metadata: []byte("{}")}},
		parquet.KeyValueMetadata(CodecKey, "msgpack"))

	_, err := Read(r, r.Size())
	var sm *ErrSchemaMismatch
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, ColumnMetadata, sm.Column)
	assert.Contains(t, err.Error(), "msgpack")
}

func TestRead_MissingCodecKeyUsesDefault(t *testing.T) {
	r := encodeRows(t, []Row{{Vectors: []float64{1, 2}, Texts: "a", Metadata: []byte(`{"n":{"k":2,"i":5}}`)}})

	got, err := Read(r, r.Size())
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Equal(t, metadata.Int(5), got.Metadata[0]["n"])
}

func TestRead_CorruptMetadata(t *testing.T) {
	r := encodeRows(t, []Row{
		{Vectors: []float64{1}, Texts: "ok", Metadata: []byte("{}")},
		{Vectors: []float64{1}, Texts: "bad", Metadata: []byte("not json")},
	})

	_, err := Read(r, r.Size())
	require.Error(t, err)

	var cr *ErrCorruptRow
	require.ErrorAs(t, err, &cr)
	assert.Equal(t, 1, cr.Row)
	assert.Equal(t, ColumnMetadata, cr.Column)
	assert.ErrorIs(t, err, ErrInvalidFile)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "Unknown(42)", Compression(42).String())
}
