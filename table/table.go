// Package table: the Table/Column contracts and their sentinel errors.

package table

import "errors"

// Sentinel errors for the table package.
var (
	// ErrUnknownColumn is returned when a referenced column name is absent.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrLengthMismatch is returned when a column's length disagrees with
	// the table's row count.
	ErrLengthMismatch = errors.New("table: column length mismatch")

	// ErrNotNumeric is returned by Column.Float on a value that cannot be
	// represented as float64.
	ErrNotNumeric = errors.New("table: value is not numeric")

	// ErrRowOutOfRange is returned for a row index outside [0, Len).
	ErrRowOutOfRange = errors.New("table: row index out of range")
)

// ColKind tags a column's element type.
type ColKind int

const (
	// Numeric columns hold float64-representable values.
	Numeric ColKind = iota
	// Discrete columns hold categorical values identified by string.
	Discrete
)

// String implements fmt.Stringer for diagnostics.
func (k ColKind) String() string {
	if k == Numeric {
		return "numeric"
	}

	return "discrete"
}

// Column is read-only access to one table column.
type Column interface {
	// Kind returns the element type tag.
	Kind() ColKind
	// Len returns the number of rows.
	Len() int
	// Float returns row i as float64; ErrNotNumeric for discrete values
	// that do not parse, ErrRowOutOfRange for bad indices.
	Float(i int) (float64, error)
	// Value returns row i's canonical string form (level identity for
	// discrete columns); ErrRowOutOfRange for bad indices.
	Value(i int) (string, error)
}

// Table is the read-only columnar data contract the pipeline consumes.
type Table interface {
	// Len returns the row count.
	Len() int
	// Names returns the column names in a stable order.
	Names() []string
	// Column returns the named column or ErrUnknownColumn.
	Column(name string) (Column, error)
}
