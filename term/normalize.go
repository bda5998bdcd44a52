// Package term: normalizer and the Formula container.
// Normalize consumes a raw combinator tree (from the parser or from
// programmatic construction) and produces a Formula whose sides are flat,
// deduplicated, order-stable sequences of non-combinator terms, with
// intercept presence lifted into formula-level state.

package term

import "fmt"

// InterceptState records how intercept presence was established for a
// formula. It is formula-level state rather than a free-floating term, so
// duplicate or conflicting intercept terms cannot arise.
type InterceptState int

const (
	// InterceptImplicit: no explicit 0/1 summand appeared; the intercept is
	// present by default.
	InterceptImplicit InterceptState = iota
	// InterceptExplicit: a 1 summand requested the intercept explicitly.
	InterceptExplicit
	// InterceptOmitted: a 0 summand suppressed the intercept.
	InterceptOmitted
)

// Formula is the top-level container separating responses from
// predictors. After Normalize, LHS and RHS contain no combinators and no
// constants; after schema resolution, no Variable remains either.
type Formula struct {
	// LHS holds the response terms (empty for a one-sided formula).
	LHS []Term
	// RHS holds the predictor terms in canonical order.
	RHS []Term
	// Intercept records intercept presence; see HasIntercept.
	Intercept InterceptState
}

// HasIntercept reports whether the model matrix carries an intercept
// column (implicit or explicit 1; suppressed only by an explicit 0).
func (f *Formula) HasIntercept() bool { return f.Intercept != InterceptOmitted }

// Resolved reports whether every variable reference in the formula has
// been replaced by a typed Continuous/Categorical leaf.
func (f *Formula) Resolved() bool {
	for _, side := range [][]Term{f.LHS, f.RHS} {
		for _, t := range side {
			if hasVariable(t) {
				return false
			}
		}
	}

	return true
}

// String renders the formula in source-like notation, for diagnostics.
func (f *Formula) String() string {
	rhs := ""
	switch f.Intercept {
	case InterceptExplicit:
		rhs = "1"
	case InterceptOmitted:
		rhs = "0"
	}
	for _, t := range f.RHS {
		if rhs != "" {
			rhs += " + "
		}
		rhs += t.Name()
	}
	if rhs == "" {
		rhs = "1"
	}
	lhs := ""
	for i, t := range f.LHS {
		if i > 0 {
			lhs += " + "
		}
		lhs += t.Name()
	}
	if lhs == "" {
		return rhs
	}

	return lhs + " ~ " + rhs
}

// hasVariable walks a term (including interaction factors and function
// arguments) looking for an unresolved Variable.
func hasVariable(t Term) bool {
	switch n := t.(type) {
	case Variable:
		return true
	case *Function:
		for _, a := range n.Args {
			if hasVariable(a) {
				return true
			}
		}
	case *Interaction:
		for _, f := range n.Factors {
			if hasVariable(f) {
				return true
			}
		}
	case *Sum:
		for _, p := range n.Parts {
			if hasVariable(p) {
				return true
			}
		}
	case *And:
		for _, p := range n.Parts {
			if hasVariable(p) {
				return true
			}
		}
	case *Star:
		for _, p := range n.Parts {
			if hasVariable(p) {
				return true
			}
		}
	}

	return false
}

// Normalize rewrites a raw expression tree into a canonical Formula:
// distribution of & over +, flattening of nested combinators, power-set
// expansion of *, structural deduplication, and extraction of 0/1
// summands into InterceptState.
//
// Errors:
//   - ErrNilTerm            — raw is nil
//   - ErrMalformedFormula   — ~ below the top level, constants anywhere
//     other than as direct RHS summands, constants outside {0,1}, or
//     conflicting 0 and 1 summands
//
// Normalization is idempotent: normalizing an already-normalized tree
// returns an equal Formula.
func Normalize(raw Term) (*Formula, error) {
	if raw == nil {
		return nil, ErrNilTerm
	}
	if til, ok := raw.(*Tilde); ok {
		return buildFormula(til.LHS, til.RHS)
	}

	return buildFormula(nil, raw)
}

// NewFormula is the programmatic construction path: lhs may be nil for a
// one-sided formula, rhs is any term built via the Combine operators (or
// raw combinators). Validation matches Normalize exactly, so both paths
// share one error surface.
func NewFormula(lhs, rhs Term) (*Formula, error) {
	if rhs == nil {
		return nil, ErrNilTerm
	}

	return buildFormula(lhs, rhs)
}

// buildFormula normalizes both sides and assembles the Formula.
func buildFormula(lhs, rhs Term) (*Formula, error) {
	rhsTerms, state, err := normalizeSide(rhs, true)
	if err != nil {
		return nil, err
	}
	f := &Formula{RHS: rhsTerms, Intercept: state}
	if lhs != nil {
		lhsTerms, _, err := normalizeSide(lhs, false)
		if err != nil {
			return nil, err
		}
		f.LHS = lhsTerms
	}

	return f, nil
}

// normalizeSide rewrites one side of a formula to its flat summand list.
// allowConstants permits 0/1 summands (right-hand side only); they are
// stripped into the returned InterceptState.
func normalizeSide(t Term, allowConstants bool) ([]Term, InterceptState, error) {
	flat := summandsOf(rewrite(t))
	state := InterceptImplicit
	seenZero, seenOne := false, false
	out := make([]Term, 0, len(flat))
	for _, s := range flat {
		if c, ok := s.(Constant); ok {
			if !allowConstants {
				return nil, state, fmt.Errorf("constant %d on response side: %w", c.Value, ErrMalformedFormula)
			}
			switch c.Value {
			case 0:
				seenZero = true
			case 1:
				seenOne = true
			default:
				return nil, state, fmt.Errorf("constant %d is not an intercept marker: %w", c.Value, ErrMalformedFormula)
			}

			continue
		}
		if err := validateSummand(s); err != nil {
			return nil, state, err
		}
		out = append(out, s)
	}
	if seenZero && seenOne {
		return nil, state, fmt.Errorf("both 0 and 1 as summands: %w", ErrMalformedFormula)
	}
	if seenZero {
		state = InterceptOmitted
	} else if seenOne {
		state = InterceptExplicit
	}

	return dedupTerms(out), state, nil
}

// validateSummand enforces the structural constraints on one normalized
// summand: no ~ anywhere below the top level, no constants below the
// summand position (function arguments excepted: constants there are
// arithmetic literals, not intercept markers), and interaction factors
// that are themselves plain terms.
func validateSummand(t Term) error {
	switch n := t.(type) {
	case *Tilde:
		return fmt.Errorf("~ below top level: %w", ErrMalformedFormula)
	case Constant:
		return fmt.Errorf("constant %d outside summand position: %w", n.Value, ErrMalformedFormula)
	case *Interaction:
		if len(n.Factors) < 2 {
			return fmt.Errorf("interaction with %d factor(s): %w", len(n.Factors), ErrMalformedFormula)
		}
		for _, f := range n.Factors {
			if err := validateSummand(f); err != nil {
				return err
			}
		}
	case *Function:
		// Arguments are arithmetic subtrees: only ~ is forbidden inside.
		for _, a := range n.Args {
			if err := rejectTilde(a); err != nil {
				return err
			}
		}
	case *Sum, *And, *Star:
		// Unreachable for rewritten trees; guard against hand-built input.
		return fmt.Errorf("unflattened combinator %T: %w", t, ErrMalformedFormula)
	}

	return nil
}

// rejectTilde walks an arithmetic subtree (a function argument) and
// rejects any embedded ~ separator.
func rejectTilde(t Term) error {
	switch n := t.(type) {
	case *Tilde:
		return fmt.Errorf("~ inside function argument: %w", ErrMalformedFormula)
	case *Function:
		for _, a := range n.Args {
			if err := rejectTilde(a); err != nil {
				return err
			}
		}
	case *Interaction:
		for _, f := range n.Factors {
			if err := rejectTilde(f); err != nil {
				return err
			}
		}
	case *Sum:
		for _, p := range n.Parts {
			if err := rejectTilde(p); err != nil {
				return err
			}
		}
	case *And:
		for _, p := range n.Parts {
			if err := rejectTilde(p); err != nil {
				return err
			}
		}
	case *Star:
		for _, p := range n.Parts {
			if err := rejectTilde(p); err != nil {
				return err
			}
		}
	}

	return nil
}
