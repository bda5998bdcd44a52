package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formula/matrix"
)

// TestNewDense verifies allocation and dimension validation.
func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "fresh matrix is zero")

	_, err = matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromCols verifies column assembly, including the legal rows×0 case
// for an empty model side.
func TestFromCols(t *testing.T) {
	m, err := matrix.FromCols(3, []float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	empty, err := matrix.FromCols(4)
	require.NoError(t, err)
	assert.Equal(t, 4, empty.Rows())
	assert.Equal(t, 0, empty.Cols())

	_, err = matrix.FromCols(0, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromCols(3, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestHStack verifies left-to-right concatenation and its guards.
func TestHStack(t *testing.T) {
	a, err := matrix.FromCols(2, []float64{1, 2})
	require.NoError(t, err)
	b, err := matrix.FromCols(2, []float64{3, 4}, []float64{5, 6})
	require.NoError(t, err)

	m, err := matrix.HStack(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Cols())
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, row)

	short, err := matrix.FromCols(3, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = matrix.HStack(a, short)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.HStack()
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.HStack(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAtSet verifies element access and the range guard.
func TestAtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 7))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestColRow verifies that Col and Row return copies.
func TestColRow(t *testing.T) {
	m, err := matrix.FromCols(2, []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, col)
	col[0] = 99
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "Col must return a copy")

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, row)
	row[0] = 99
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "Row must return a copy")

	_, err = m.Col(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneEqual verifies deep copies and exact equality semantics.
func TestCloneEqual(t *testing.T) {
	m, err := matrix.FromCols(2, []float64{1, 2})
	require.NoError(t, err)

	clone := m.Clone()
	assert.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 5))
	assert.False(t, m.Equal(clone), "mutating the clone must not affect the original")

	other, err := matrix.FromCols(2, []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.False(t, m.Equal(other), "shape mismatch is never equal")

	var nilM *matrix.Dense
	assert.True(t, nilM.Equal(nil))
	assert.False(t, m.Equal(nil))
}

// TestString verifies the debugging representation.
func TestString(t *testing.T) {
	m, err := matrix.FromCols(2, []float64{1, 2}, []float64{3.5, 4})
	require.NoError(t, err)

	assert.Equal(t, "[1, 3.5]\n[2, 4]\n", m.String())
}
