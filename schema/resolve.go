// Package schema: resolution — the apply-schema step. Rewrites every
// untyped term into a typed one, binding categorical variables to a
// contrast coding whose rank is decided by the formula-global promotion
// rule. Resolution is total: the output contains no Variable, or Apply
// fails.

package schema

import (
	"fmt"

	"github.com/katalvlaran/formula/contrast"
	"github.com/katalvlaran/formula/term"
)

// Options configures resolution.
type Options struct {
	// Contrasts maps a variable name to a scheme override, consulted
	// before the default (treatment) scheme.
	Contrasts map[string]contrast.Scheme
}

// Apply resolves a normalized formula against a schema and returns a new
// formula; f itself is never mutated. Typed leaves are built once per
// variable and shared by every occurrence in the tree, interactions
// included.
//
// Resolution proceeds in two passes: (a) collect the set of main effects
// present on the predictor side, (b) rewrite every term with that context
// available, so rank promotion can be decided formula-globally.
//
// Errors: ErrNilFormula, ErrUnknownColumn (stale schema),
// ErrAmbiguousCoding (<2 levels), ErrSchemaMismatch (type drift on an
// already-resolved term), ErrDuplicateTerm, plus contrast scheme errors.
func Apply(f *term.Formula, sch Schema, opts *Options) (*term.Formula, error) {
	if f == nil {
		return nil, ErrNilFormula
	}
	if opts == nil {
		opts = &Options{}
	}
	r := &resolver{
		sch:      sch,
		opts:     opts,
		mainKeys: make(map[string]struct{}, len(f.RHS)),
		resolved: make(map[string]term.Term),
	}
	// Pass (a): the promotion rule needs to know, formula-globally, which
	// main effects are present.
	for _, t := range f.RHS {
		if t.Kind() != term.KindInteraction {
			r.mainKeys[term.Key(t)] = struct{}{}
		}
	}
	// Intercept-equivalent state: an intercept column, or the first
	// full-rank categorical main effect, spans the ones vector.
	r.interceptLike = f.HasIntercept()

	out := &term.Formula{Intercept: f.Intercept}
	seen := make(map[string]struct{}, len(f.RHS))
	for _, t := range f.RHS {
		rt, err := r.resolveMain(t)
		if err != nil {
			return nil, err
		}
		k := term.Key(rt)
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%s: %w", rt.Name(), ErrDuplicateTerm)
		}
		seen[k] = struct{}{}
		out.RHS = append(out.RHS, rt)
	}
	for _, t := range f.LHS {
		// Responses never sit next to the model intercept; a categorical
		// response gets full-rank indicator columns.
		rt, err := r.resolveWithRank(t, true)
		if err != nil {
			return nil, err
		}
		out.LHS = append(out.LHS, rt)
	}

	return out, nil
}

// resolver carries the formula-global context of one Apply call.
type resolver struct {
	sch           Schema
	opts          *Options
	mainKeys      map[string]struct{} // keys of main effects present on the RHS
	resolved      map[string]term.Term
	interceptLike bool // an intercept-spanning block has been emitted
}

// resolveMain resolves a top-level predictor term.
func (r *resolver) resolveMain(t term.Term) (term.Term, error) {
	switch n := t.(type) {
	case term.Variable, *term.Continuous, *term.Categorical:
		// Standalone categorical: reduced rank next to an intercept-like
		// block; promoted to full rank otherwise (cell-means duality).
		full := !r.interceptLike
		rt, err := r.resolveLeaf(t, full)
		if err != nil {
			return nil, err
		}
		if ct, ok := rt.(*term.Categorical); ok && ct.Coding.FullRank {
			r.interceptLike = true
		}

		return rt, nil

	case *term.Function:
		return r.resolveFunction(n)

	case *term.Interaction:
		return r.resolveInteraction(n)

	default:
		// Constants are stripped by Normalize; combinators never reach a
		// normalized formula. Resolve leaves defensively for bare trees.
		return r.resolveWithRank(t, false)
	}
}

// resolveWithRank resolves any term with an explicit rank choice for
// categorical leaves (used for responses and nested positions).
func (r *resolver) resolveWithRank(t term.Term, full bool) (term.Term, error) {
	switch n := t.(type) {
	case term.Variable, *term.Continuous, *term.Categorical:
		return r.resolveLeaf(t, full)
	case *term.Function:
		return r.resolveFunction(n)
	case *term.Interaction:
		return r.resolveInteraction(n)
	case *term.Sum:
		// Arithmetic subtree inside a function argument.
		parts, err := r.resolveList(n.Parts)
		if err != nil {
			return nil, err
		}

		return &term.Sum{Parts: parts}, nil
	case *term.And:
		parts, err := r.resolveList(n.Parts)
		if err != nil {
			return nil, err
		}

		return &term.And{Parts: parts}, nil
	case *term.Star:
		parts, err := r.resolveList(n.Parts)
		if err != nil {
			return nil, err
		}

		return &term.Star{Parts: parts}, nil
	default:
		return t, nil
	}
}

// resolveList maps resolveWithRank over an argument list.
func (r *resolver) resolveList(ts []term.Term) ([]term.Term, error) {
	out := make([]term.Term, len(ts))
	for i, t := range ts {
		rt, err := r.resolveWithRank(t, false)
		if err != nil {
			return nil, err
		}
		out[i] = rt
	}

	return out, nil
}

// resolveFunction resolves the arguments of a function term; the callee
// stays opaque. This covers the reserved no-op wrapper too: its argument
// subtree is resolved but never re-normalized.
func (r *resolver) resolveFunction(f *term.Function) (term.Term, error) {
	args, err := r.resolveList(f.Args)
	if err != nil {
		return nil, err
	}

	return &term.Function{Callee: f.Callee, Args: args, Source: f.Source}, nil
}

// resolveInteraction resolves each factor independently, applying the
// promotion rule per categorical factor: a factor whose main effect is
// present in the formula keeps reduced rank, one without a main effect is
// promoted to full rank to preserve estimability.
func (r *resolver) resolveInteraction(ix *term.Interaction) (term.Term, error) {
	factors := make([]term.Term, len(ix.Factors))
	for i, fac := range ix.Factors {
		_, mainPresent := r.mainKeys[term.Key(fac)]
		rt, err := r.resolveWithRank(fac, !mainPresent)
		if err != nil {
			return nil, err
		}
		factors[i] = rt
	}

	return &term.Interaction{Factors: factors}, nil
}

// resolveLeaf resolves one variable reference, reusing the shared typed
// leaf when the same variable resolves twice with the same rank.
func (r *resolver) resolveLeaf(t term.Term, full bool) (term.Term, error) {
	switch n := t.(type) {
	case term.Variable:
		return r.typedLeaf(n.VarName, full)

	case *term.Continuous:
		entry, ok := r.sch[n.VarName]
		if !ok {
			return nil, fmt.Errorf("column %q: %w", n.VarName, ErrUnknownColumn)
		}
		if entry.Kind != Continuous {
			return nil, fmt.Errorf("column %q resolved continuous, schema says %s: %w", n.VarName, entry.Kind, ErrSchemaMismatch)
		}

		return n, nil

	case *term.Categorical:
		entry, ok := r.sch[n.VarName]
		if !ok {
			return nil, fmt.Errorf("column %q: %w", n.VarName, ErrUnknownColumn)
		}
		if entry.Kind != Categorical {
			return nil, fmt.Errorf("column %q resolved categorical, schema says %s: %w", n.VarName, entry.Kind, ErrSchemaMismatch)
		}

		return n, nil

	default:
		return t, nil
	}
}

// typedLeaf builds (or reuses) the typed leaf for one variable name.
// Leaves are cached per (name, rank), so every occurrence of a variable
// across the tree shares one immutable value.
func (r *resolver) typedLeaf(name string, full bool) (term.Term, error) {
	cacheKey := name
	if full {
		cacheKey += "\x00full"
	}
	if t, ok := r.resolved[cacheKey]; ok {
		return t, nil
	}
	entry, ok := r.sch[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}

	var out term.Term
	switch entry.Kind {
	case Continuous:
		out = &term.Continuous{VarName: name, Mean: entry.Mean, Stdev: entry.Stdev}

	case Categorical:
		if len(entry.Levels) < 2 {
			return nil, fmt.Errorf("column %q has %d level(s): %w", name, len(entry.Levels), ErrAmbiguousCoding)
		}
		scheme := contrast.Default()
		if s, ok := r.opts.Contrasts[name]; ok && s != nil {
			scheme = s
		}
		coding, err := scheme.Code(entry.Levels, full)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		out = &term.Categorical{
			VarName: name,
			Levels:  append([]string(nil), entry.Levels...),
			Coding:  coding,
		}
	}
	r.resolved[cacheKey] = out

	return out, nil
}
