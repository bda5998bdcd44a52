// Package formula turns symbolic model formulas into concrete numeric
// model matrices, resolved against the schema of a real tabular data set.
//
// 🚀 What is formula?
//
//	A deterministic, pure-Go pipeline that brings together:
//		• Term algebra: +, & (interaction) and * (main effects + interactions)
//		• Normalization: distribution, flattening and deduplication of terms
//		• Schema extraction: continuous vs. categorical classification
//		• Schema resolution: typed terms with contrast coding & rank promotion
//		• Contrast schemes: treatment (default), sum, Helmert, full dummy
//		• Matrix generation: dense float64 columns with stable names
//
// ✨ Why choose formula?
//
//   - Deterministic – the same formula and table always produce the same
//     matrix, bit for bit, with identical column names
//   - Rock-solid guarantees – sentinel errors at every stage, no panics
//     on user input, immutable term trees
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – open contrast-scheme registry and pluggable
//     elementwise function maps
//
// Under the hood, everything is organized under focused subpackages:
//
//	term/      — Term data model, combination algebra & normalizer
//	parse/     — small-grammar parser: "y ~ 1 + a*b + log(x)"
//	table/     — columnar table contract, in-memory tables, CSV ingestion
//	schema/    — schema extraction & resolution (apply-schema)
//	contrast/  — contrast coding schemes & registry
//	matrix/    — row-major dense float64 matrices
//	modelcols/ — model-matrix generation & column naming
//
// Quick pipeline sketch:
//
//	"y ~ a*b"  →  parse  →  normalize  →  extract  →  resolve  →  modelcols
//	                     (a + b + a&b)   (a: cont,    (typed      (numeric
//	                                      b: categ)    terms)      columns)
//
// Dive into each package's doc.go and example_test.go for runnable
// walkthroughs of every stage.
//
//	go get github.com/katalvlaran/formula
package formula
