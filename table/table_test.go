package table_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formula/table"
)

// TestMemTable_Basics verifies column registration, kinds and access.
func TestMemTable_Basics(t *testing.T) {
	tbl := table.NewMemTable().
		Floats("x", []float64{1, 2, 3}).
		Strings("c", []string{"d", "e", "d"})
	require.NoError(t, tbl.Err())

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"x", "c"}, tbl.Names())

	x, err := tbl.Column("x")
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, x.Kind())
	v, err := x.Float(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	c, err := tbl.Column("c")
	require.NoError(t, err)
	assert.Equal(t, table.Discrete, c.Kind())
	s, err := c.Value(2)
	require.NoError(t, err)
	assert.Equal(t, "d", s)
}

// TestMemTable_Errors verifies the sentinel surface: unknown columns,
// length mismatches, bad rows, non-numeric reads.
func TestMemTable_Errors(t *testing.T) {
	tbl := table.NewMemTable().Floats("x", []float64{1, 2})

	_, err := tbl.Column("z")
	assert.ErrorIs(t, err, table.ErrUnknownColumn)

	bad := table.NewMemTable().
		Floats("x", []float64{1, 2}).
		Strings("c", []string{"only one"})
	assert.ErrorIs(t, bad.Err(), table.ErrLengthMismatch)

	x, err := tbl.Column("x")
	require.NoError(t, err)
	_, err = x.Float(5)
	assert.ErrorIs(t, err, table.ErrRowOutOfRange)
	_, err = x.Value(-1)
	assert.ErrorIs(t, err, table.ErrRowOutOfRange)

	str := table.NewMemTable().Strings("c", []string{"abc"})
	c, err := str.Column("c")
	require.NoError(t, err)
	_, err = c.Float(0)
	assert.ErrorIs(t, err, table.ErrNotNumeric)
}

// TestMemTable_Immutability verifies that the table copies input slices.
func TestMemTable_Immutability(t *testing.T) {
	vals := []float64{1, 2}
	tbl := table.NewMemTable().Floats("x", vals)
	vals[0] = 99

	x, err := tbl.Column("x")
	require.NoError(t, err)
	v, err := x.Float(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the caller's slice must not change the table")
}

// TestReadCSV_Sniffing verifies numeric sniffing: fully numeric columns
// become Numeric, anything else Discrete.
func TestReadCSV_Sniffing(t *testing.T) {
	src := "x,c,mixed\n1,d,1\n2.5,e,z\n3,d,2\n"

	tbl, err := table.ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"x", "c", "mixed"}, tbl.Names())

	x, err := tbl.Column("x")
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, x.Kind())
	v, err := x.Float(1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	c, err := tbl.Column("c")
	require.NoError(t, err)
	assert.Equal(t, table.Discrete, c.Kind())

	mixed, err := tbl.Column("mixed")
	require.NoError(t, err)
	assert.Equal(t, table.Discrete, mixed.Kind(), "one non-numeric cell makes the column discrete")
}

// TestReadCSV_Empty verifies the empty-input sentinel.
func TestReadCSV_Empty(t *testing.T) {
	_, err := table.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, table.ErrEmptyCSV)
}
