package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formula/term"
)

// rhsNames extracts the predictor names of a formula, in order.
func rhsNames(f *term.Formula) []string {
	names := make([]string, len(f.RHS))
	for i, t := range f.RHS {
		names[i] = t.Name()
	}

	return names
}

// TestNormalize_BareSum verifies the basic flatten + dedup path and the
// implicit intercept default.
func TestNormalize_BareSum(t *testing.T) {
	a, b := term.Var("a"), term.Var("b")

	f, err := term.Normalize(&term.Sum{Parts: []term.Term{a, b, a}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rhsNames(f))
	assert.Equal(t, term.InterceptImplicit, f.Intercept)
	assert.True(t, f.HasIntercept())
	assert.Empty(t, f.LHS, "one-sided formula has no response")
}

// TestNormalize_TildeSplit verifies response/predictor separation.
func TestNormalize_TildeSplit(t *testing.T) {
	raw := &term.Tilde{LHS: term.Var("y"), RHS: term.Var("x")}

	f, err := term.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, f.LHS, 1)
	assert.Equal(t, "y", f.LHS[0].Name())
	assert.Equal(t, []string{"x"}, rhsNames(f))
}

// TestNormalize_MultiResponse verifies that a sum on the response side
// produces a tuple of responses.
func TestNormalize_MultiResponse(t *testing.T) {
	raw := &term.Tilde{
		LHS: &term.Sum{Parts: []term.Term{term.Var("y1"), term.Var("y2")}},
		RHS: term.Var("x"),
	}

	f, err := term.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, f.LHS, 2)
	assert.Equal(t, "y1", f.LHS[0].Name())
	assert.Equal(t, "y2", f.LHS[1].Name())
}

// TestNormalize_InterceptStates verifies 1/0 summand handling: explicit,
// omitted, and the conflict rejection.
func TestNormalize_InterceptStates(t *testing.T) {
	x := term.Var("x")

	f, err := term.Normalize(&term.Sum{Parts: []term.Term{term.One(), x}})
	require.NoError(t, err)
	assert.Equal(t, term.InterceptExplicit, f.Intercept)
	assert.True(t, f.HasIntercept())
	assert.Equal(t, []string{"x"}, rhsNames(f), "constants must be lifted out of the term list")

	f, err = term.Normalize(&term.Sum{Parts: []term.Term{term.Zero(), x}})
	require.NoError(t, err)
	assert.Equal(t, term.InterceptOmitted, f.Intercept)
	assert.False(t, f.HasIntercept())

	_, err = term.Normalize(&term.Sum{Parts: []term.Term{term.Zero(), term.One(), x}})
	assert.ErrorIs(t, err, term.ErrMalformedFormula, "0 and 1 together must be rejected")
}

// TestNormalize_Idempotent verifies that normalizing an already-normalized
// right-hand side returns it unchanged (same keys, same order).
func TestNormalize_Idempotent(t *testing.T) {
	raw := &term.Star{Parts: []term.Term{term.Var("a"), term.Var("b"), term.Var("c")}}
	f1, err := term.Normalize(raw)
	require.NoError(t, err)

	f2, err := term.Normalize(&term.Sum{Parts: f1.RHS})
	require.NoError(t, err)
	require.Len(t, f2.RHS, len(f1.RHS))
	for i := range f1.RHS {
		assert.True(t, term.Equal(f1.RHS[i], f2.RHS[i]), "term %d changed across renormalization", i)
	}
}

// TestNormalize_StarCardinality verifies the 7-term expansion of a*b*c.
func TestNormalize_StarCardinality(t *testing.T) {
	raw := &term.Star{Parts: []term.Term{term.Var("a"), term.Var("b"), term.Var("c")}}

	f, err := term.Normalize(raw)
	require.NoError(t, err)
	assert.Len(t, f.RHS, 7, "3 mains + 3 pairs + 1 triple")
}

// TestNormalize_NestedTilde verifies that a ~ anywhere below the top level
// is rejected as malformed, not as a parse problem.
func TestNormalize_NestedTilde(t *testing.T) {
	inner := &term.Tilde{LHS: term.Var("a"), RHS: term.Var("b")}

	_, err := term.Normalize(&term.Tilde{LHS: term.Var("y"), RHS: inner})
	assert.ErrorIs(t, err, term.ErrMalformedFormula)

	_, err = term.Normalize(&term.Sum{Parts: []term.Term{inner, term.Var("c")}})
	assert.ErrorIs(t, err, term.ErrMalformedFormula)
}

// TestNormalize_ConstantPlacement verifies that 0/1 are legal only as
// direct summands: inside an interaction they are malformed, on the
// response side they are malformed, and other integers are rejected.
func TestNormalize_ConstantPlacement(t *testing.T) {
	x := term.Var("x")

	_, err := term.Normalize(&term.And{Parts: []term.Term{term.One(), x}})
	assert.ErrorIs(t, err, term.ErrMalformedFormula, "1 & x must be rejected")

	_, err = term.Normalize(&term.Tilde{LHS: term.One(), RHS: x})
	assert.ErrorIs(t, err, term.ErrMalformedFormula, "constant response must be rejected")

	_, err = term.Normalize(term.Constant{Value: 2})
	assert.ErrorIs(t, err, term.ErrMalformedFormula, "2 is not an intercept marker")
}

// TestNormalize_FunctionArgsUntouched verifies that operators inside a
// function call keep their arithmetic meaning: log(a+b) stays one term
// with its sum argument intact.
func TestNormalize_FunctionArgsUntouched(t *testing.T) {
	call := term.Fn("log", &term.Sum{Parts: []term.Term{term.Var("a"), term.Var("b")}})

	f, err := term.Normalize(&term.Sum{Parts: []term.Term{call, term.Var("c")}})
	require.NoError(t, err)
	require.Len(t, f.RHS, 2)
	fn, ok := f.RHS[0].(*term.Function)
	require.True(t, ok)
	require.Len(t, fn.Args, 1)
	assert.Equal(t, term.KindSum, fn.Args[0].Kind(), "sum argument must not be redistributed")
}

// TestNormalize_NilTerm verifies the nil guard.
func TestNormalize_NilTerm(t *testing.T) {
	_, err := term.Normalize(nil)
	assert.ErrorIs(t, err, term.ErrNilTerm)
}

// TestNewFormula_ProgrammaticPath verifies that the programmatic
// construction API shares Normalize's semantics.
func TestNewFormula_ProgrammaticPath(t *testing.T) {
	a, b := term.Var("a"), term.Var("b")

	f, err := term.NewFormula(term.Var("y"), term.CombineStar(a, b))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a & b"}, rhsNames(f))
	require.Len(t, f.LHS, 1)

	_, err = term.NewFormula(nil, nil)
	assert.ErrorIs(t, err, term.ErrNilTerm)
}

// TestFormula_String renders a few representative formulas.
func TestFormula_String(t *testing.T) {
	f, err := term.NewFormula(term.Var("y"), term.CombineSum(term.One(), term.Var("x")))
	require.NoError(t, err)
	assert.Equal(t, "y ~ 1 + x", f.String())

	f, err = term.NewFormula(nil, term.CombineSum(term.Zero(), term.Var("x")))
	require.NoError(t, err)
	assert.Equal(t, "0 + x", f.String())
}
