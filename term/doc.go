// Package term defines the symbolic data model of a model formula and the
// combination algebra over it: sums (+), interactions (&) and the
// main-effects-plus-interactions star operator (*), together with the
// normalizer that rewrites raw combinator trees into canonical, flat,
// deduplicated formulas.
//
// 🚀 What is a term?
//
//	A term is one symbolic element of a formula:
//	  • Constant    — the intercept markers 0 and 1
//	  • Variable    — an untyped reference to a table column
//	  • Function    — an elementwise transformation, e.g. log(x)
//	  • Interaction — the product of two or more factors, e.g. a & b
//	  • Continuous / Categorical — typed leaves produced by schema resolution
//	  • Sum / And / Star / Tilde — transient combinators, eliminated by
//	    Normalize before any caller observes them
//
// ✨ Key guarantees:
//   - Terms are immutable: every combinator returns a new value and never
//     mutates its operands
//   - Equality is structural, not identity: a + a deduplicates to a, and
//     a&b equals b&a (interactions compare as sets)
//   - Normalization is canonical and idempotent: distribution of & over +,
//     flattening of nested sums/interactions, and first-occurrence
//     deduplication always terminate in the same stable order
//   - Intercept presence is formula-level state, never a free-floating
//     term, so duplicate or conflicting intercepts cannot arise
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/formula/term"
//
//	a, b := term.Var("a"), term.Var("b")
//	rhs := term.CombineStar(a, b)          // a + b + a&b
//	f, err := term.NewFormula(term.Var("y"), rhs)
//	// f.RHS == [a, b, a&b], f.HasIntercept() == true (implicit)
//
// The rewrite rules are exactly:
//
//	(a + b) & c  ⇒  a&c + b&c        (distribution, both sides)
//	(a & b) & c  ⇒  a&b&c            (associative flattening)
//	a + a        ⇒  a                (structural deduplication)
//	a * b        ⇒  a + b + a&b      (power-set expansion, main effects first)
//
// Performance: normalization is a single bottom-up pass; for a formula
// with n leaves and star width w it is O(n·2^w) terms in the worst case
// (the power set the star operator denotes).
package term
