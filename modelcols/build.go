// Package modelcols: column generation. One generator walks a resolved
// term tree and emits float64 column blocks plus their names; Build
// assembles them into response and predictor matrices.

package modelcols

import (
	"fmt"

	"github.com/katalvlaran/formula/matrix"
	"github.com/katalvlaran/formula/table"
	"github.com/katalvlaran/formula/term"
)

// InterceptName labels the intercept column.
const InterceptName = "(Intercept)"

// Result carries the generated matrices and their column names. Names
// always match the matrices exactly: one name per column, same order.
// Y is nil for a one-sided formula.
type Result struct {
	Y      *matrix.Dense
	YNames []string
	X      *matrix.Dense
	XNames []string
}

// Build generates the response and predictor matrices for a fully
// resolved formula. fns extends or replaces the elementwise function
// registry; nil means DefaultFuncs().
//
// Errors: ErrNilInput, ErrUnresolvedTerm, ErrTypeCoercion,
// ErrLevelNotFound, ErrFunctionArity, ErrUnknownFunction, plus table and
// matrix sentinels for structural problems.
// Complexity: O(rows · total generated columns).
func Build(f *term.Formula, tbl table.Table, fns FuncMap) (*Result, error) {
	if f == nil || tbl == nil {
		return nil, ErrNilInput
	}
	if !f.Resolved() {
		return nil, fmt.Errorf("formula %q: %w", f.String(), ErrUnresolvedTerm)
	}
	g := newGenerator(tbl, fns)

	xCols := make([][]float64, 0, len(f.RHS)+1)
	xNames := make([]string, 0, len(f.RHS)+1)
	if f.HasIntercept() {
		xCols = append(xCols, onesColumn(tbl.Len()))
		xNames = append(xNames, InterceptName)
	}
	for _, t := range f.RHS {
		cols, names, err := g.termCols(t)
		if err != nil {
			return nil, err
		}
		xCols = append(xCols, cols...)
		xNames = append(xNames, names...)
	}
	x, err := matrix.FromCols(tbl.Len(), xCols...)
	if err != nil {
		return nil, err
	}

	res := &Result{X: x, XNames: xNames}
	if len(f.LHS) > 0 {
		yCols := make([][]float64, 0, len(f.LHS))
		yNames := make([]string, 0, len(f.LHS))
		for _, t := range f.LHS {
			cols, names, err := g.termCols(t)
			if err != nil {
				return nil, err
			}
			yCols = append(yCols, cols...)
			yNames = append(yNames, names...)
		}
		y, err := matrix.FromCols(tbl.Len(), yCols...)
		if err != nil {
			return nil, err
		}
		res.Y, res.YNames = y, yNames
	}

	return res, nil
}

// BuildTerm generates the column block of one resolved term (a Sum of
// resolved terms yields the concatenation of its summand blocks, which
// is what the algebra's distribution law promises).
func BuildTerm(t term.Term, tbl table.Table, fns FuncMap) (*matrix.Dense, []string, error) {
	if t == nil || tbl == nil {
		return nil, nil, ErrNilInput
	}
	g := newGenerator(tbl, fns)
	cols, names, err := g.termCols(t)
	if err != nil {
		return nil, nil, err
	}
	m, err := matrix.FromCols(tbl.Len(), cols...)
	if err != nil {
		return nil, nil, err
	}

	return m, names, nil
}

// onesColumn is the intercept block.
func onesColumn(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = 1
	}

	return col
}

// generator caches column handles and level indices for one build pass.
type generator struct {
	tbl      table.Table
	fns      FuncMap
	cols     map[string]table.Column
	levelIdx map[string]map[string]int
}

func newGenerator(tbl table.Table, fns FuncMap) *generator {
	if fns == nil {
		fns = DefaultFuncs()
	}

	return &generator{
		tbl:      tbl,
		fns:      fns,
		cols:     make(map[string]table.Column),
		levelIdx: make(map[string]map[string]int),
	}
}

// column resolves and caches a table column handle.
func (g *generator) column(name string) (table.Column, error) {
	if c, ok := g.cols[name]; ok {
		return c, nil
	}
	c, err := g.tbl.Column(name)
	if err != nil {
		return nil, err
	}
	g.cols[name] = c

	return c, nil
}

// termCols generates the column block and names for one resolved term.
func (g *generator) termCols(t term.Term) ([][]float64, []string, error) {
	switch n := t.(type) {
	case term.Constant:
		col := make([]float64, g.tbl.Len())
		name := "0"
		if n.Value == 1 {
			for i := range col {
				col[i] = 1
			}
			name = InterceptName
		}

		return [][]float64{col}, []string{name}, nil

	case *term.Continuous:
		col, err := g.continuousCol(n)
		if err != nil {
			return nil, nil, err
		}

		return [][]float64{col}, []string{n.Name()}, nil

	case *term.Categorical:
		return g.categoricalCols(n)

	case *term.Function:
		col, err := g.functionCol(n)
		if err != nil {
			return nil, nil, err
		}

		return [][]float64{col}, []string{n.Name()}, nil

	case *term.Interaction:
		return g.interactionCols(n)

	case *term.Sum:
		var cols [][]float64
		var names []string
		for _, p := range n.Parts {
			pc, pn, err := g.termCols(p)
			if err != nil {
				return nil, nil, err
			}
			cols = append(cols, pc...)
			names = append(names, pn...)
		}

		return cols, names, nil

	case term.Variable:
		return nil, nil, fmt.Errorf("variable %q: %w", n.VarName, ErrUnresolvedTerm)

	default:
		return nil, nil, fmt.Errorf("%T: %w", t, ErrUnresolvedTerm)
	}
}

// continuousCol copies and casts one numeric source column.
func (g *generator) continuousCol(ct *term.Continuous) ([]float64, error) {
	col, err := g.column(ct.VarName)
	if err != nil {
		return nil, err
	}
	out := make([]float64, g.tbl.Len())
	for i := range out {
		v, err := col.Float(i)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", ct.VarName, i, ErrTypeCoercion)
		}
		out[i] = v
	}

	return out, nil
}

// categoricalCols broadcasts each row's coding-basis row into k' columns.
func (g *generator) categoricalCols(ct *term.Categorical) ([][]float64, []string, error) {
	col, err := g.column(ct.VarName)
	if err != nil {
		return nil, nil, err
	}
	idx, ok := g.levelIdx[ct.VarName]
	if !ok {
		idx = make(map[string]int, len(ct.Levels))
		for i, lvl := range ct.Levels {
			idx[lvl] = i
		}
		g.levelIdx[ct.VarName] = idx
	}
	k := ct.Coding.Cols()
	n := g.tbl.Len()
	cols := make([][]float64, k)
	for j := range cols {
		cols[j] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		v, err := col.Value(i)
		if err != nil {
			return nil, nil, fmt.Errorf("column %q row %d: %w", ct.VarName, i, ErrTypeCoercion)
		}
		li, ok := idx[v]
		if !ok {
			return nil, nil, fmt.Errorf("column %q row %d value %q: %w", ct.VarName, i, v, ErrLevelNotFound)
		}
		for j := 0; j < k; j++ {
			cols[j][i] = ct.Coding.Rows[li][j]
		}
	}
	names := make([]string, k)
	for j, lvl := range ct.Coding.Names {
		names[j] = ct.VarName + ": " + lvl
	}

	return cols, names, nil
}

// functionCol evaluates a function term elementwise, row by row.
func (g *generator) functionCol(ft *term.Function) ([]float64, error) {
	n := g.tbl.Len()
	out := make([]float64, n)
	args := make([]float64, len(ft.Args))
	for i := 0; i < n; i++ {
		for j, a := range ft.Args {
			v, err := g.evalScalar(a, i)
			if err != nil {
				return nil, fmt.Errorf("%s argument %d: %w", ft.Name(), j+1, err)
			}
			args[j] = v
		}
		v, err := g.applyFunc(ft, args)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// applyFunc dispatches a callee over evaluated scalar arguments. The
// reserved protect wrapper is the identity and needs no registry entry.
func (g *generator) applyFunc(ft *term.Function, args []float64) (float64, error) {
	if ft.Callee == ProtectCallee {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s takes 1 argument, got %d: %w", ProtectCallee, len(args), ErrFunctionArity)
		}

		return args[0], nil
	}
	fn, ok := g.fns[ft.Callee]
	if !ok {
		return 0, fmt.Errorf("%q: %w", ft.Callee, ErrUnknownFunction)
	}

	return fn(args...)
}

// evalScalar evaluates an arithmetic argument subtree at one row. Inside
// a call, + is addition and &/* are multiplication; a categorical leaf
// has no single-column value and is an arity violation.
func (g *generator) evalScalar(t term.Term, row int) (float64, error) {
	switch n := t.(type) {
	case term.Constant:
		return float64(n.Value), nil

	case *term.Continuous:
		col, err := g.column(n.VarName)
		if err != nil {
			return 0, err
		}
		v, err := col.Float(row)
		if err != nil {
			return 0, fmt.Errorf("column %q row %d: %w", n.VarName, row, ErrTypeCoercion)
		}

		return v, nil

	case *term.Categorical:
		return 0, fmt.Errorf("categorical %q is multi-column: %w", n.VarName, ErrFunctionArity)

	case *term.Function:
		args := make([]float64, len(n.Args))
		for j, a := range n.Args {
			v, err := g.evalScalar(a, row)
			if err != nil {
				return 0, err
			}
			args[j] = v
		}

		return g.applyFunc(n, args)

	case *term.Interaction:
		return g.evalProduct(n.Factors, row)

	case *term.And:
		return g.evalProduct(n.Parts, row)

	case *term.Star:
		return g.evalProduct(n.Parts, row)

	case *term.Sum:
		var sum float64
		for _, p := range n.Parts {
			v, err := g.evalScalar(p, row)
			if err != nil {
				return 0, err
			}
			sum += v
		}

		return sum, nil

	case term.Variable:
		return 0, fmt.Errorf("variable %q: %w", n.VarName, ErrUnresolvedTerm)

	default:
		return 0, fmt.Errorf("%T: %w", t, ErrUnresolvedTerm)
	}
}

// evalProduct multiplies the scalar values of a term list at one row.
func (g *generator) evalProduct(ts []term.Term, row int) (float64, error) {
	prod := 1.0
	for _, t := range ts {
		v, err := g.evalScalar(t, row)
		if err != nil {
			return 0, err
		}
		prod *= v
	}

	return prod, nil
}

// interactionCols forms the row-wise Kronecker product of the factor
// blocks, in declared factor order, with the last factor varying fastest.
func (g *generator) interactionCols(ix *term.Interaction) ([][]float64, []string, error) {
	nf := len(ix.Factors)
	blocks := make([][][]float64, nf)
	names := make([][]string, nf)
	total := 1
	for i, f := range ix.Factors {
		cols, ns, err := g.termCols(f)
		if err != nil {
			return nil, nil, err
		}
		blocks[i], names[i] = cols, ns
		total *= len(cols)
	}
	rows := g.tbl.Len()
	outCols := make([][]float64, 0, total)
	outNames := make([]string, 0, total)
	pick := make([]int, nf)
	for flat := 0; flat < total; flat++ {
		// Decompose flat into per-factor column choices, last factor fastest.
		rem := flat
		for i := nf - 1; i >= 0; i-- {
			w := len(blocks[i])
			pick[i] = rem % w
			rem /= w
		}
		col := make([]float64, rows)
		for r := 0; r < rows; r++ {
			v := 1.0
			for i := 0; i < nf; i++ {
				v *= blocks[i][pick[i]][r]
			}
			col[r] = v
		}
		name := names[0][pick[0]]
		for i := 1; i < nf; i++ {
			name += " & " + names[i][pick[i]]
		}
		outCols = append(outCols, col)
		outNames = append(outNames, name)
	}

	return outCols, outNames, nil
}
