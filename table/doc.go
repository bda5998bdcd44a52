// Package table defines the columnar-table collaborator the formula
// pipeline reads from: named columns, a numeric/discrete type tag per
// column, and per-row value access. The core never mutates a table.
//
// 🚀 What does the pipeline need from data?
//
//	Exactly three capabilities:
//	  • a row count
//	  • a stable column name set
//	  • per column: a type tag (Numeric or Discrete) plus row access
//
// ✨ Provided implementations:
//   - MemTable — an in-memory table built from float64 and string slices;
//     the workhorse for programmatic use and tests
//   - ReadCSV  — CSV ingestion with numeric sniffing: a column is Numeric
//     iff every cell parses as a float, Discrete otherwise
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/formula/table"
//
//	tbl := table.NewMemTable().
//	  Floats("x", []float64{1, 2, 3}).
//	  Strings("c", []string{"d", "e", "d"})
//
//	col, err := tbl.Column("c")   // Kind()==Discrete, Value(1)=="e"
//
// Missing-value representation and row-oriented/streaming access are the
// data provider's concern, outside this package's contract.
package table
