// Package table: CSV ingestion with numeric sniffing.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrEmptyCSV is returned when the input has no header row.
var ErrEmptyCSV = errors.New("table: empty csv input")

// ReadCSV ingests a CSV stream into a MemTable. The first record is the
// header; every later record is one row. Column kinds are sniffed: a
// column is Numeric iff every cell parses as a float64, Discrete
// otherwise. Sniffing is deterministic for a given input, so the same
// file always yields the same schema.
// Complexity: O(rows·cols).
func ReadCSV(r io.Reader) (*MemTable, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: csv read: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCSV
	}
	header := records[0]
	body := records[1:]

	tbl := NewMemTable()
	for j, name := range header {
		cells := make([]string, len(body))
		for i, rec := range body {
			cells[i] = rec[j] // csv.Reader guarantees rectangular records
		}
		if vals, ok := sniffFloats(cells); ok {
			tbl.Floats(name, vals)
		} else {
			tbl.Strings(name, cells)
		}
	}
	if tbl.Err() != nil {
		return nil, tbl.Err()
	}

	return tbl, nil
}

// sniffFloats parses all cells as float64, reporting whether the column
// is fully numeric. An empty column sniffs as discrete so that its level
// identity (the empty set) is preserved rather than invented.
func sniffFloats(cells []string) ([]float64, bool) {
	if len(cells) == 0 {
		return nil, false
	}
	vals := make([]float64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}

	return vals, true
}
