package metadata

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
//
// NOTE: Kind numbers are written to saved files as the "k" field; never
// renumber or reuse them.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindArray represents an array value.
	KindArray
	// KindMap represents a nested document.
	KindMap
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is a tagged metadata value: exactly one payload field is meaningful,
// selected by Kind.
//
// NOTE: The JSON form is what gets written to the metadata column; keep it stable.
type Value struct {
	Kind Kind                  `json:"k"`
	I64  int64                 `json:"i,omitempty"`
	F64  float64               `json:"f,omitempty"`
	s    unique.Handle[string] `json:"-"` // Private interned string
	B    bool                  `json:"b,omitempty"`
	A    []Value               `json:"a,omitempty"`
	M    Document              `json:"m,omitempty"`
}

// StringValue returns the string value if Kind is KindString, otherwise empty string.
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// MarshalJSON implements json.Marshaler.
//
// Non-finite floats are written as "fs" ("+Inf", "-Inf" or "NaN") since
// JSON numbers cannot hold them.
func (v Value) MarshalJSON() ([]byte, error) {
	type Alias Value
	aux := &struct {
		S  string `json:"s,omitempty"`
		FS string `json:"fs,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(&v),
	}
	switch v.Kind {
	case KindString:
		aux.S = v.s.Value()
	case KindFloat:
		if math.IsInf(v.F64, 0) || math.IsNaN(v.F64) {
			aux.FS = strconv.FormatFloat(v.F64, 'g', -1, 64)
			aux.Alias = &Alias{Kind: KindFloat}
		}
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Unknown kinds are rejected so corrupt data is never silently coerced.
func (v *Value) UnmarshalJSON(data []byte) error {
	type Alias Value
	aux := &struct {
		S  string `json:"s,omitempty"`
		FS string `json:"fs,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(v),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v.Kind {
	case KindNull, KindInt, KindBool, KindArray, KindMap:
	case KindString:
		v.s = unique.Make(aux.S)
	case KindFloat:
		if aux.FS != "" {
			f, err := strconv.ParseFloat(aux.FS, 64)
			if err != nil {
				return fmt.Errorf("metadata: invalid float %q: %w", aux.FS, err)
			}
			v.F64 = f
		}
	default:
		return fmt.Errorf("metadata: unknown value kind %d", v.Kind)
	}
	return nil
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// AsMap returns the nested document if Kind is KindMap.
func (v Value) AsMap() (Document, bool) {
	if v.Kind != KindMap {
		return nil, false
	}
	return v.M, true
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// Map returns a nested document Value.
func Map(v Document) Value { return Value{Kind: KindMap, M: v} }

// Equal reports whether v and o hold the same kind and payload.
//
// Empty and nil arrays/maps compare equal, as do NaN floats.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull, KindInvalid:
		return true
	case KindInt:
		return v.I64 == o.I64
	case KindFloat:
		return v.F64 == o.F64 || (math.IsNaN(v.F64) && math.IsNaN(o.F64))
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.B == o.B
	case KindArray:
		if len(v.A) != len(o.A) {
			return false
		}
		for i := range v.A {
			if !v.A[i].Equal(o.A[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.M.Equal(o.M)
	default:
		return false
	}
}

// Any converts the value to a plain Go value
// (nil, int64, float64, string, bool, []any or map[string]any).
func (v Value) Any() any {
	switch v.Kind {
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindString:
		return v.s.Value()
	case KindBool:
		return v.B
	case KindArray:
		out := make([]any, len(v.A))
		for i := range v.A {
			out[i] = v.A[i].Any()
		}
		return out
	case KindMap:
		return v.M.ToAny()
	default:
		return nil
	}
}

// clone creates a deep copy of a Value, including nested arrays and maps.
func (v Value) clone() Value {
	switch {
	case v.Kind == KindArray && len(v.A) > 0:
		arrayCopy := make([]Value, len(v.A))
		for i := range v.A {
			arrayCopy[i] = v.A[i].clone()
		}
		return Value{Kind: KindArray, A: arrayCopy}
	case v.Kind == KindMap && len(v.M) > 0:
		return Value{Kind: KindMap, M: v.M.Clone()}
	default:
		return v
	}
}

// Document is an open-ended metadata mapping.
type Document map[string]Value

// Clone creates a deep copy of the document.
//
// A nil document clones to an empty, non-nil document.
func (d Document) Clone() Document {
	clone := make(Document, len(d))
	for k, v := range d {
		clone[k] = v.clone()
	}
	return clone
}

// Equal reports whether both documents hold the same keys with equal values.
// A nil document equals an empty one.
func (d Document) Equal(o Document) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// ToAny converts the document to a map[string]any of plain Go values.
func (d Document) ToAny() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v.Any()
	}
	return out
}
