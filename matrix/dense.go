// Package matrix: Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep deterministic behavior: fixed loop orders, no map iteration.
//   - Support assembly from generated column blocks (FromCols, HStack).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); c may be zero (empty model side).
//   - data is a flat buffer of length r*c in row-major order.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Stage 1 (Validate): rows > 0 and cols > 0, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the initialized Dense.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromCols assembles a Dense from column slices. rows must be positive;
// an empty column list yields a legal rows×0 matrix (an empty model
// side). Every column must have exactly rows entries.
// Complexity: O(r·c).
func FromCols(rows int, cols ...[]float64) (*Dense, error) {
	if rows <= 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(cols)
	m := &Dense{r: rows, c: c, data: make([]float64, rows*c)}
	for j, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("column %d has %d rows, want %d: %w", j, len(col), rows, ErrDimensionMismatch)
		}
		for i, v := range col {
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// HStack concatenates matrices left to right. All operands must share the
// same row count; nil operands are rejected with ErrNilMatrix.
// Complexity: O(r·Σc).
func HStack(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, ErrNilMatrix
	}
	rows, total := 0, 0
	for _, m := range ms {
		if m == nil {
			return nil, ErrNilMatrix
		}
		if rows == 0 {
			rows = m.r
		} else if m.r != rows {
			return nil, fmt.Errorf("row counts %d vs %d: %w", rows, m.r, ErrDimensionMismatch)
		}
		total += m.c
	}
	if rows <= 0 {
		return nil, ErrInvalidDimensions
	}
	out := &Dense{r: rows, c: total, data: make([]float64, rows*total)}
	off := 0
	for _, m := range ms {
		for i := 0; i < m.r; i++ {
			copy(out.data[i*total+off:i*total+off+m.c], m.data[i*m.c:(i+1)*m.c])
		}
		off += m.c
	}

	return out, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// Equal reports elementwise equality of two matrices (exact float64
// comparison: generation is deterministic, so equal inputs must reproduce
// bit-identical outputs).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
