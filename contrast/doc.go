// Package contrast maps a categorical variable's observed levels to a
// numeric basis matrix — the "contrast coding" consumed by model-matrix
// generation.
//
// 🚀 What is a contrast scheme?
//
//	A pure function from an ordered level sequence of length k to a k×k'
//	real matrix, where k' = k−1 for reduced-rank codings (safe next to an
//	intercept or a present main effect) and k' = k for full-rank codings
//	(cell-means style, used when rank promotion demands estimability).
//
// ✨ Built-in schemes:
//   - treatment — dummy coding, the default: base level = first observed
//     level, one indicator column per remaining level
//   - sum       — deviation coding: base level row is all −1
//   - helmert   — each column contrasts a level with the mean of the
//     levels before it
//   - full      — full dummy: one indicator per level, always full rank
//
// Every scheme answers full-rank requests with the k×k identity (one
// indicator column per level); the schemes differ only in their
// reduced-rank bases.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/formula/contrast"
//
//	coding, err := contrast.Default().Code([]string{"d", "e", "f"}, false)
//	// coding.Names == ["e", "f"]
//	// coding.Rows  == [[0 0] [1 0] [0 1]]   (base level "d" is all-zero)
//
// The registry is open: implement Scheme, call Register, and the resolver
// picks the new scheme up through per-variable overrides without any
// change to resolution logic.
//
// Determinism: a scheme must be a pure function of its level sequence;
// the same levels always produce the same matrix, bit for bit.
package contrast
