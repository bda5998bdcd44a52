// Package schema classifies the variables a formula references against a
// concrete table (extraction) and rewrites the formula's untyped terms
// into fully-typed ones (resolution, the apply-schema step).
//
// 🚀 What happens here?
//
//	Two passes over pure data:
//	  • Extract — scan the table once per referenced variable: numeric
//	    columns become Continuous entries (with sample mean/stdev),
//	    discrete columns become Categorical entries carrying the observed
//	    level sequence in first-occurrence order
//	  • Apply — rewrite every Variable into a Continuous or Categorical
//	    leaf, pick a contrast scheme per categorical variable (caller
//	    override first, treatment coding by default), and decide
//	    reduced vs. full rank via the formula-global promotion rule
//
// ✨ Rank promotion (the estimability rule):
//   - a standalone categorical term is reduced rank next to an intercept;
//     without one, the first such term is promoted to full rank
//   - inside an interaction, a categorical factor whose main effect is
//     present in the formula stays reduced rank; a factor with no main
//     effect is promoted to full rank
//
// Promotion needs the whole term list, so Apply resolves in two passes:
// first it collects the set of present main effects, then it rewrites
// every term with that context available.
//
// ⚙️ Usage:
//
//	sch, err := schema.Extract(tbl, f)
//	resolved, err := schema.Apply(f, sch, nil)
//	// resolved.Resolved() == true; every Variable replaced
//
// Determinism: extraction order, level order and resolution output are
// pure functions of (formula, table); resolving twice yields identical
// typed trees and, downstream, bit-identical matrices.
package schema
