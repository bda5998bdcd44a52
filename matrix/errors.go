// Package matrix: sentinel error set. All public operations return these
// sentinels (possibly wrapped with context via %w); tests match them with
// errors.Is. No public operation panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive row count (or non-positive
	// column count where columns are required).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. HStack over matrices with differing row counts or FromCols with
	// ragged columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
