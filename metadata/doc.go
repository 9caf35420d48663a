// Package metadata provides the typed, open-ended metadata attached to stored items.
//
// # Metadata Types
//
// A Value is a tagged variant. It can hold:
//
//   - Null: metadata.Null()
//   - String: metadata.String("tech")
//   - Int: metadata.Int(2024)
//   - Float: metadata.Float(3.14)
//   - Bool: metadata.Bool(true)
//   - Array: metadata.Array([]metadata.Value{...})
//   - Map: metadata.Map(metadata.Document{...})
//
// Example:
//
//	meta := metadata.Document{
//	    "category": metadata.String("tech"),
//	    "year":     metadata.Int(2024),
//	    "author": metadata.Map(metadata.Document{
//	        "name": metadata.String("Ada"),
//	    }),
//	}
//
// Loosely typed input (for example decoded JSON) is converted with
// DocumentFromAny; Document.ToAny converts back.
//
// # Persistence
//
// Values marshal to a compact tagged JSON form ({"k":<kind>, ...}) so that
// integers, floats and strings survive a round trip with their kind intact.
package metadata
