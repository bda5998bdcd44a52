// Package matrix provides the dense, row-major float64 matrix that
// carries generated model columns.
//
// 🚀 What is matrix?
//
//	A minimal, deterministic linear container:
//	  • Dense — row-major storage with the explicit index formula i*cols+j
//	  • safe accessors — At/Set return sentinel errors, never panic
//	  • column builders — FromCols / HStack assemble matrices from the
//	    column blocks model generation produces
//
// ✨ Guarantees:
//   - Fixed memory layout for given (rows, cols); no randomness anywhere
//   - Public surface returns sentinel errors (errors.Is-matchable) on
//     user errors; panics are reserved for programmer errors
//   - Zero-column matrices are legal (an empty predictor side is a valid
//     model), zero-row matrices are not
//
// ⚙️ Usage:
//
//	m, err := matrix.FromCols(3, []float64{1, 1, 1}, []float64{2, 4, 8})
//	v, err := m.At(1, 1) // 4
//
// Complexity quicksheet: FromCols/HStack O(r·c); At/Set/Col O(1)/O(r);
// Clone O(r·c).
package matrix
