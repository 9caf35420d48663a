package vecstore

import (
	"github.com/hupe1980/vecstore/columnar"
	"github.com/hupe1980/vecstore/distance"
)

// ErrDimensionMismatch is returned by Search when the query and a stored
// vector differ in length. It comes straight from distance.Dot.
type ErrDimensionMismatch = distance.ErrDimensionMismatch

// ErrSchemaMismatch is returned by Load when the file does not have the
// vectors/texts/metadata layout written by Save.
type ErrSchemaMismatch = columnar.ErrSchemaMismatch

// ErrCorruptRow is returned by Load when a row's metadata cannot be decoded.
type ErrCorruptRow = columnar.ErrCorruptRow

// ErrInvalidFile is matched by every structural error returned from Load.
var ErrInvalidFile = columnar.ErrInvalidFile
