// Package table: MemTable, the in-memory Table implementation.

package table

import (
	"fmt"
	"strconv"
)

// MemTable is an in-memory columnar table. Columns are added with Floats
// and Strings; the first column added fixes the row count. The zero
// MemTable via NewMemTable is empty and ready to use.
//
// The builder methods return the receiver for chaining and record the
// first length error encountered; Err surfaces it. Reads never observe a
// partially-added column.
type MemTable struct {
	names []string
	cols  map[string]Column
	rows  int
	err   error
}

// NewMemTable creates an empty in-memory table.
func NewMemTable() *MemTable {
	return &MemTable{cols: make(map[string]Column)}
}

// Floats adds a numeric column. The first column added fixes the table's
// row count; later mismatching lengths record ErrLengthMismatch.
func (m *MemTable) Floats(name string, vals []float64) *MemTable {
	c := floatCol(append([]float64(nil), vals...))

	return m.add(name, c, len(vals))
}

// Strings adds a discrete column.
func (m *MemTable) Strings(name string, vals []string) *MemTable {
	c := stringCol(append([]string(nil), vals...))

	return m.add(name, c, len(vals))
}

// add registers a column under name, enforcing the shared row count.
func (m *MemTable) add(name string, c Column, n int) *MemTable {
	if m.err != nil {
		return m
	}
	if len(m.names) == 0 {
		m.rows = n
	} else if n != m.rows {
		m.err = fmt.Errorf("column %q has %d rows, table has %d: %w", name, n, m.rows, ErrLengthMismatch)

		return m
	}
	if _, dup := m.cols[name]; !dup {
		m.names = append(m.names, name)
	}
	m.cols[name] = c

	return m
}

// Err returns the first builder error, if any.
func (m *MemTable) Err() error { return m.err }

// Len implements Table.
func (m *MemTable) Len() int { return m.rows }

// Names implements Table; the order is insertion order.
func (m *MemTable) Names() []string { return append([]string(nil), m.names...) }

// Column implements Table.
func (m *MemTable) Column(name string) (Column, error) {
	c, ok := m.cols[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}

	return c, nil
}

// Compile-time conformance.
var _ Table = (*MemTable)(nil)

// ---------- concrete columns ----------

// floatCol is a Numeric column backed by a float64 slice.
type floatCol []float64

func (c floatCol) Kind() ColKind { return Numeric }
func (c floatCol) Len() int      { return len(c) }

func (c floatCol) Float(i int) (float64, error) {
	if i < 0 || i >= len(c) {
		return 0, fmt.Errorf("row %d of %d: %w", i, len(c), ErrRowOutOfRange)
	}

	return c[i], nil
}

func (c floatCol) Value(i int) (string, error) {
	if i < 0 || i >= len(c) {
		return "", fmt.Errorf("row %d of %d: %w", i, len(c), ErrRowOutOfRange)
	}

	return strconv.FormatFloat(c[i], 'g', -1, 64), nil
}

// stringCol is a Discrete column backed by a string slice.
type stringCol []string

func (c stringCol) Kind() ColKind { return Discrete }
func (c stringCol) Len() int      { return len(c) }

// Float attempts a numeric read of a discrete value; callers hit this
// only when arithmetic is forced onto a discrete column.
func (c stringCol) Float(i int) (float64, error) {
	if i < 0 || i >= len(c) {
		return 0, fmt.Errorf("row %d of %d: %w", i, len(c), ErrRowOutOfRange)
	}
	v, err := strconv.ParseFloat(c[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", c[i], ErrNotNumeric)
	}

	return v, nil
}

func (c stringCol) Value(i int) (string, error) {
	if i < 0 || i >= len(c) {
		return "", fmt.Errorf("row %d of %d: %w", i, len(c), ErrRowOutOfRange)
	}

	return c[i], nil
}
