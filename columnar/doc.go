// Package columnar encodes a store's three parallel sequences as a Parquet table.
//
// # File Layout
//
// A file holds exactly three columns, in this order:
//
//	vectors   LIST<DOUBLE>        the embedding of each item
//	texts     BYTE_ARRAY (STRING) the text of each item
//	metadata  BYTE_ARRAY (JSON)   the encoded metadata.Document of each item
//
// Row i across all columns is item i in insertion order. The key/value
// metadata entry "vecstore.codec" names the codec used for the metadata
// column.
//
// Read validates this layout before decoding any row and reports a
// *ErrSchemaMismatch for anything else; it never returns a partially
// decoded table.
package columnar
