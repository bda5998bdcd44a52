// Package schema: extraction — classify referenced variables by
// inspecting the table, computing the minimal sufficient statistics each
// classification needs (moments for numeric, level order for discrete).

package schema

import (
	"fmt"
	"math"

	"github.com/katalvlaran/formula/table"
	"github.com/katalvlaran/formula/term"
)

// Kind classifies one variable.
type Kind int

const (
	// Continuous variables generate one numeric column each.
	Continuous Kind = iota
	// Categorical variables generate contrast-coded column blocks.
	Categorical
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	if k == Continuous {
		return "continuous"
	}

	return "categorical"
}

// Entry is the schema record for one variable.
type Entry struct {
	// Kind is the classification.
	Kind Kind
	// Levels holds the distinct observed values in first-occurrence order
	// (categorical only). Fixed at extraction; immutable thereafter.
	Levels []string
	// Mean and Stdev are the sample moments (continuous only; Stdev uses
	// the n−1 denominator and is 0 for fewer than two rows).
	Mean  float64
	Stdev float64
}

// Schema maps variable names to their entries.
type Schema map[string]Entry

// Extract scans tbl for every variable the formula references (directly,
// as an interaction factor, or inside a function argument) and classifies
// it. Unreferenced columns are ignored. Variables are visited in first-
// reference order, so extraction is deterministic for a given formula.
//
// Errors: ErrNilFormula; ErrUnknownColumn when a referenced name is
// absent from the table.
// Complexity: O(referenced columns · rows).
func Extract(tbl table.Table, f *term.Formula) (Schema, error) {
	if f == nil {
		return nil, ErrNilFormula
	}
	all := make([]term.Term, 0, len(f.LHS)+len(f.RHS))
	all = append(all, f.LHS...)
	all = append(all, f.RHS...)

	return ExtractTerms(tbl, all...)
}

// ExtractTerms is Extract for a bare term list (programmatic callers).
func ExtractTerms(tbl table.Table, ts ...term.Term) (Schema, error) {
	names := referencedVars(ts)
	sch := make(Schema, len(names))
	for _, name := range names {
		col, err := tbl.Column(name)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
		}
		entry, err := classify(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		sch[name] = entry
	}

	return sch, nil
}

// classify builds the Entry for one column: moments for numeric columns,
// first-occurrence level order for discrete ones.
func classify(col table.Column) (Entry, error) {
	n := col.Len()
	if col.Kind() == table.Numeric {
		var sum float64
		for i := 0; i < n; i++ {
			v, err := col.Float(i)
			if err != nil {
				return Entry{}, err
			}
			sum += v
		}
		mean := 0.0
		if n > 0 {
			mean = sum / float64(n)
		}
		var ss float64
		for i := 0; i < n; i++ {
			v, _ := col.Float(i)
			d := v - mean
			ss += d * d
		}
		stdev := 0.0
		if n > 1 {
			stdev = math.Sqrt(ss / float64(n-1))
		}

		return Entry{Kind: Continuous, Mean: mean, Stdev: stdev}, nil
	}

	seen := make(map[string]struct{}, n)
	levels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v, err := col.Value(i)
		if err != nil {
			return Entry{}, err
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		levels = append(levels, v)
	}

	return Entry{Kind: Categorical, Levels: levels}, nil
}

// referencedVars walks terms in order and collects distinct variable
// names in first-reference order. Already-resolved leaves contribute
// their names too, so re-resolution can detect type drift.
func referencedVars(ts []term.Term) []string {
	seen := make(map[string]struct{})
	var names []string
	visit := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	var walk func(t term.Term)
	walk = func(t term.Term) {
		switch n := t.(type) {
		case term.Variable:
			visit(n.VarName)
		case *term.Continuous:
			visit(n.VarName)
		case *term.Categorical:
			visit(n.VarName)
		case *term.Function:
			for _, a := range n.Args {
				walk(a)
			}
		case *term.Interaction:
			for _, f := range n.Factors {
				walk(f)
			}
		case *term.Sum:
			for _, p := range n.Parts {
				walk(p)
			}
		case *term.And:
			for _, p := range n.Parts {
				walk(p)
			}
		case *term.Star:
			for _, p := range n.Parts {
				walk(p)
			}
		case *term.Tilde:
			walk(n.LHS)
			walk(n.RHS)
		}
	}
	for _, t := range ts {
		walk(t)
	}

	return names
}
