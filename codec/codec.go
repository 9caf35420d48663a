// Package codec centralizes the encoding of metadata documents.
//
// The metadata column of a saved store holds one encoded document per row.
// The codec name is recorded in the file so a reader can tell which encoder
// produced it; all built-in codecs emit the same JSON form.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
