// Package modelcols walks a fully resolved term tree and generates dense
// numeric columns with stable, human-readable names — the model matrix.
//
// 🚀 Column generation rules, per resolved term type:
//   - intercept        — one column, every entry 1.0, named "(Intercept)"
//   - Continuous       — one column, source values cast to float64
//   - Categorical      — k' contrast-coded columns, one row of the coding
//     basis per observed level, named "var: level"
//   - Function         — one column, the callee evaluated elementwise
//     row by row over scalar arguments
//   - Interaction      — the row-wise Kronecker product of the factor
//     blocks, last factor varying fastest, names joined with " & "
//
// ✨ Guarantees:
//   - Column order and names always match the matrix exactly, one name
//     per generated column
//   - Generation is deterministic: the same resolved formula and table
//     reproduce bit-identical matrices
//   - Schema drift surfaces as sentinel errors (ErrLevelNotFound for an
//     unseen categorical value, ErrTypeCoercion for a non-numeric cell),
//     never as silent recovery
//
// ⚙️ Usage:
//
//	f, _ := parse.Formula("y ~ 1 + a + c")
//	sch, _ := schema.Extract(tbl, f)
//	rf, _ := schema.Apply(f, sch, nil)
//	res, err := modelcols.Build(rf, tbl, nil) // nil ⇒ DefaultFuncs()
//	// res.X, res.XNames, res.Y, res.YNames
//
// Function arguments are arithmetic subtrees: inside a call, + means
// addition and &/* mean multiplication, and every argument must reduce to
// a single column (a categorical argument is ErrFunctionArity). The
// reserved wrapper protect(x) is the elementwise identity; its argument
// subtree was shielded from formula-operator reinterpretation upstream.
//
// Concurrency: resolved terms share no mutable state, so embedders may
// generate independent term blocks in parallel against a read-only table;
// this package itself stays single-threaded and synchronous.
package modelcols
