package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formula/term"
)

// TestCombineSum_FlattenDedup verifies that nested sums flatten and that
// duplicate summands collapse to their first occurrence.
func TestCombineSum_FlattenDedup(t *testing.T) {
	a, b, c := term.Var("a"), term.Var("b"), term.Var("c")

	s := term.CombineSum(term.CombineSum(a, b), term.CombineSum(b, c))
	sum, ok := s.(*term.Sum)
	require.True(t, ok, "flattened sum expected")
	require.Len(t, sum.Parts, 3, "a+b+b+c must dedup to three summands")
	assert.Equal(t, "a", sum.Parts[0].Name())
	assert.Equal(t, "b", sum.Parts[1].Name())
	assert.Equal(t, "c", sum.Parts[2].Name())
}

// TestCombineSum_SelfDedup verifies a + a == a (single bare term, not a Sum).
func TestCombineSum_SelfDedup(t *testing.T) {
	a := term.Var("a")

	s := term.CombineSum(a, a)
	assert.True(t, term.Equal(s, a), "a + a must collapse to a")
	assert.Equal(t, term.KindVariable, s.Kind(), "collapsed sum must unwrap to the bare term")
}

// TestCombineAnd_Distribution verifies the central rewrite rule:
// (a + b) & c == a&c + b&c, in that order.
func TestCombineAnd_Distribution(t *testing.T) {
	a, b, c := term.Var("a"), term.Var("b"), term.Var("c")

	got := term.CombineAnd(term.CombineSum(a, b), c)
	sum, ok := got.(*term.Sum)
	require.True(t, ok, "distribution must produce a sum")
	require.Len(t, sum.Parts, 2)
	assert.Equal(t, "a & c", sum.Parts[0].Name())
	assert.Equal(t, "b & c", sum.Parts[1].Name())

	// Symmetric case: c & (a+b) == c&a + c&b.
	got = term.CombineAnd(c, term.CombineSum(a, b))
	sum, ok = got.(*term.Sum)
	require.True(t, ok)
	require.Len(t, sum.Parts, 2)
	assert.Equal(t, "c & a", sum.Parts[0].Name())
	assert.Equal(t, "c & b", sum.Parts[1].Name())
}

// TestCombineAnd_AssociativeFlatten verifies that (a&b)&c flattens into a
// single three-factor interaction rather than nesting.
func TestCombineAnd_AssociativeFlatten(t *testing.T) {
	a, b, c := term.Var("a"), term.Var("b"), term.Var("c")

	got := term.CombineAnd(term.CombineAnd(a, b), c)
	ix, ok := got.(*term.Interaction)
	require.True(t, ok)
	require.Len(t, ix.Factors, 3, "nested interactions must flatten")
	assert.Equal(t, "a & b & c", ix.Name())
}

// TestCombineAnd_FactorDedup verifies that duplicate factors collapse:
// a & a == a, and (a&b) & a == a&b.
func TestCombineAnd_FactorDedup(t *testing.T) {
	a, b := term.Var("a"), term.Var("b")

	assert.True(t, term.Equal(term.CombineAnd(a, a), a), "a & a must collapse to a")

	got := term.CombineAnd(term.CombineAnd(a, b), a)
	ix, ok := got.(*term.Interaction)
	require.True(t, ok)
	assert.Len(t, ix.Factors, 2, "repeated factor must not duplicate")
}

// TestCombineAnd_OrderInsensitiveEquality verifies a&b == b&a structurally
// while factor order is preserved for generation.
func TestCombineAnd_OrderInsensitiveEquality(t *testing.T) {
	a, b := term.Var("a"), term.Var("b")

	ab := term.CombineAnd(a, b)
	ba := term.CombineAnd(b, a)
	assert.True(t, term.Equal(ab, ba), "interaction equality must ignore factor order")
	assert.Equal(t, "a & b", ab.Name())
	assert.Equal(t, "b & a", ba.Name(), "name must preserve declared factor order")
}

// TestCombineStar_Expansion verifies a * b == a + b + a&b in that order.
func TestCombineStar_Expansion(t *testing.T) {
	a, b := term.Var("a"), term.Var("b")

	got := term.CombineStar(a, b)
	sum, ok := got.(*term.Sum)
	require.True(t, ok)
	require.Len(t, sum.Parts, 3)
	assert.Equal(t, "a", sum.Parts[0].Name())
	assert.Equal(t, "b", sum.Parts[1].Name())
	assert.Equal(t, "a & b", sum.Parts[2].Name())
}

// TestCombineStar_ThreeWay verifies the power-set cardinality and the
// main-effects-first ordering for a*b*c: 3 mains, 3 pairs, 1 triple.
func TestCombineStar_ThreeWay(t *testing.T) {
	a, b, c := term.Var("a"), term.Var("b"), term.Var("c")

	got := term.CombineStar(term.CombineStar(a, b), c)
	sum, ok := got.(*term.Sum)
	require.True(t, ok)
	require.Len(t, sum.Parts, 7, "a*b*c must expand to 7 terms")

	names := make([]string, len(sum.Parts))
	for i, p := range sum.Parts {
		names[i] = p.Name()
	}
	assert.Equal(t, []string{"a", "b", "a & b", "c", "a & c", "b & c", "a & b & c"}, names)
}

// TestCombineStar_WithSumOperand verifies distribution through star:
// (a+b) * c == a + b + c + a&c + b&c.
func TestCombineStar_WithSumOperand(t *testing.T) {
	a, b, c := term.Var("a"), term.Var("b"), term.Var("c")

	got := term.CombineStar(term.CombineSum(a, b), c)
	sum, ok := got.(*term.Sum)
	require.True(t, ok)

	names := make([]string, len(sum.Parts))
	for i, p := range sum.Parts {
		names[i] = p.Name()
	}
	assert.Equal(t, []string{"a", "b", "c", "a & c", "b & c"}, names)
}

// TestCombine_NeverMutates verifies operand immutability: combining terms
// must not change the inputs.
func TestCombine_NeverMutates(t *testing.T) {
	a, b := term.Var("a"), term.Var("b")
	ab := term.CombineAnd(a, b).(*term.Interaction)

	_ = term.CombineAnd(ab, term.Var("c"))
	assert.Len(t, ab.Factors, 2, "three-way combine must not grow the original interaction")

	s := term.CombineSum(a, b).(*term.Sum)
	_ = term.CombineSum(s, term.Var("c"))
	assert.Len(t, s.Parts, 2, "sum combine must not grow the original sum")
}
