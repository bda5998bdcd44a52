// Package term: combination algebra.
// This file implements the three pure combination operators and the
// shared rewrite engine behind them:
//   - CombineSum: flatten nested sums, deduplicate by structural key
//   - CombineAnd: associative interaction, distributes over sums
//   - CombineStar: power-set expansion into main effects + interactions
//
// All operators return new terms and never mutate operands. Structural
// misuse (constants inside interactions, nested ~) is NOT detected here:
// validation is Normalize's job, so the operators stay total functions.

package term

// CombineSum returns a + b: nested sums are flattened and duplicate
// summands (by structural key) collapse to their first occurrence.
// Complexity: O(n) over the total summand count.
func CombineSum(a, b Term) Term {
	left, right := summandsOf(rewrite(a)), summandsOf(rewrite(b))
	parts := make([]Term, 0, len(left)+len(right))
	parts = append(parts, left...)
	parts = append(parts, right...)

	return sumOf(dedupTerms(parts))
}

// CombineAnd returns a & b: the explicit interaction operator. It is
// associative (nested interactions flatten) and distributes over sums on
// both sides: (a+b)&c == a&c + b&c. Duplicate factors within one
// interaction collapse, so a&a == a.
// Complexity: O(|a|·|b|) over summand counts.
func CombineAnd(a, b Term) Term {
	return andPair(rewrite(a), rewrite(b))
}

// CombineStar returns a * b: main effects plus all interactions. For
// operands t1..tn (nested stars flatten) the result is the sum over the
// non-empty power set of {t1..tn}, each subset combined by &, ordered by
// increasing interaction order with ties broken by first appearance.
// Complexity: O(2^n) subsets.
func CombineStar(a, b Term) Term {
	return expandStar(append(starPartsOf(a), starPartsOf(b)...))
}

// ---------- rewrite engine (shared with Normalize) ----------

// rewrite reduces every transient combinator below t, returning either a
// single non-combinator term or a flat *Sum of non-combinator terms.
// Function arguments are deliberately left untouched: operators inside a
// call keep their arithmetic meaning. Tilde nodes are also left in place
// for Normalize's validation pass to reject.
func rewrite(t Term) Term {
	switch n := t.(type) {
	case *Sum:
		out := make([]Term, 0, len(n.Parts))
		for _, p := range n.Parts {
			out = append(out, summandsOf(rewrite(p))...)
		}

		return sumOf(dedupTerms(out))

	case *And:
		if len(n.Parts) == 0 {
			return n
		}
		acc := rewrite(n.Parts[0])
		for _, p := range n.Parts[1:] {
			acc = andPair(acc, rewrite(p))
		}

		return acc

	case *Star:
		parts := make([]Term, 0, len(n.Parts))
		for _, p := range n.Parts {
			parts = append(parts, starPartsOf(p)...)
		}

		return expandStar(parts)

	case *Interaction:
		// Programmatic trees may nest combinators inside factors; fold the
		// factors through andPair so distribution and flattening apply.
		if len(n.Factors) == 0 {
			return n
		}
		acc := rewrite(n.Factors[0])
		for _, f := range n.Factors[1:] {
			acc = andPair(acc, rewrite(f))
		}

		return acc

	default:
		return t
	}
}

// starPartsOf flattens nested raw Star nodes into a single operand list,
// rewriting each operand on the way.
func starPartsOf(t Term) []Term {
	if s, ok := t.(*Star); ok {
		out := make([]Term, 0, len(s.Parts))
		for _, p := range s.Parts {
			out = append(out, starPartsOf(p)...)
		}

		return out
	}

	return []Term{rewrite(t)}
}

// summandsOf views t as a list of summands: a *Sum yields its parts,
// anything else yields itself.
func summandsOf(t Term) []Term {
	if s, ok := t.(*Sum); ok {
		return s.Parts
	}

	return []Term{t}
}

// factorsOf views t as a list of interaction factors.
func factorsOf(t Term) []Term {
	if ix, ok := t.(*Interaction); ok {
		return ix.Factors
	}

	return []Term{t}
}

// sumOf wraps a summand list back into a term: one element stays bare.
func sumOf(ts []Term) Term {
	if len(ts) == 1 {
		return ts[0]
	}

	return &Sum{Parts: ts}
}

// dedupTerms removes structural duplicates, preserving first occurrence.
func dedupTerms(ts []Term) []Term {
	seen := make(map[string]struct{}, len(ts))
	out := make([]Term, 0, len(ts))
	for _, t := range ts {
		k := t.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}

	return out
}

// andPair combines two rewritten terms with &, distributing over sums
// first (the central rewrite rule), then flattening into interactions.
func andPair(a, b Term) Term {
	sa, sb := summandsOf(a), summandsOf(b)
	if len(sa) == 1 && len(sb) == 1 {
		return interact(sa[0], sb[0])
	}
	out := make([]Term, 0, len(sa)*len(sb))
	for _, x := range sa {
		for _, y := range sb {
			out = append(out, interact(x, y))
		}
	}

	return sumOf(dedupTerms(out))
}

// interact builds the flattened interaction of two non-sum terms:
// factor lists concatenate (associativity) and duplicate factors collapse.
// A single surviving factor is returned bare, preserving the invariant
// that interactions carry at least two factors.
func interact(a, b Term) Term {
	fa, fb := factorsOf(a), factorsOf(b)
	raw := make([]Term, 0, len(fa)+len(fb))
	raw = append(raw, fa...)
	raw = append(raw, fb...)
	seen := make(map[string]struct{}, len(raw))
	factors := make([]Term, 0, len(raw))
	for _, f := range raw {
		k := f.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		factors = append(factors, f)
	}
	if len(factors) == 1 {
		return factors[0]
	}

	return &Interaction{Factors: factors}
}

// expandStar performs the power-set expansion of the star operator over
// already-rewritten operands: subsets are emitted by increasing size
// (main effects first, then pairwise, …), ties broken by operand order.
func expandStar(parts []Term) Term {
	n := len(parts)
	if n == 0 {
		return &Sum{}
	}
	if n == 1 {
		return parts[0]
	}
	out := make([]Term, 0, 1<<n)
	idx := make([]int, 0, n)
	for size := 1; size <= n; size++ {
		idx = idx[:0]
		combinations(n, size, idx, func(chosen []int) {
			acc := parts[chosen[0]]
			for _, i := range chosen[1:] {
				acc = andPair(acc, parts[i])
			}
			out = append(out, summandsOf(acc)...)
		})
	}

	return sumOf(dedupTerms(out))
}

// combinations enumerates all size-k index subsets of [0,n) in
// lexicographic order, invoking visit for each.
func combinations(n, k int, prefix []int, visit func([]int)) {
	start := 0
	if len(prefix) > 0 {
		start = prefix[len(prefix)-1] + 1
	}
	if len(prefix) == k {
		visit(prefix)

		return
	}
	for i := start; i <= n-(k-len(prefix)); i++ {
		combinations(n, k, append(prefix, i), visit)
	}
}
