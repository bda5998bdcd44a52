// Package schema: sentinel error set. Tests match these via errors.Is;
// context is added with %w wrapping at detection sites.

package schema

import "errors"

var (
	// ErrUnknownColumn is returned when a formula references a column the
	// table (or the supplied Schema) does not carry. Detected at
	// extraction, before any resolution proceeds.
	ErrUnknownColumn = errors.New("schema: unknown column")

	// ErrSchemaMismatch is returned when an already-resolved term's type
	// disagrees with the schema being applied (e.g. a formerly continuous
	// column is discrete in the new table).
	ErrSchemaMismatch = errors.New("schema: column type mismatch")

	// ErrAmbiguousCoding is returned when a categorical variable has fewer
	// than two observed levels; no contrast basis exists for it.
	ErrAmbiguousCoding = errors.New("schema: categorical variable has fewer than 2 levels")

	// ErrDuplicateTerm is returned when two structurally identical resolved
	// terms would generate colinear columns.
	ErrDuplicateTerm = errors.New("schema: duplicate term")

	// ErrNilFormula is returned when Apply or Extract receives a nil formula.
	ErrNilFormula = errors.New("schema: nil formula")
)
