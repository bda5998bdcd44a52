// Package term: the Term tagged union.
// This file defines the closed set of term variants, structural keys used
// for equality/deduplication, and human-readable term names. Terms are
// immutable after construction; all algebra lives in algebra.go.

package term

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/formula/contrast"
)

// Kind discriminates the closed set of Term variants.
type Kind int

const (
	// KindConstant marks the intercept markers 0 and 1.
	KindConstant Kind = iota
	// KindVariable marks an untyped reference to a table column.
	KindVariable
	// KindFunction marks an elementwise transformation call.
	KindFunction
	// KindInteraction marks a product of two or more factors.
	KindInteraction
	// KindSum is the transient + combinator (eliminated by Normalize).
	KindSum
	// KindAnd is the transient & combinator (eliminated by Normalize).
	KindAnd
	// KindStar is the transient * combinator (eliminated by Normalize).
	KindStar
	// KindTilde is the transient ~ separator (eliminated by Normalize).
	KindTilde
	// KindContinuous marks a resolved numeric leaf.
	KindContinuous
	// KindCategorical marks a resolved categorical leaf bound to a coding.
	KindCategorical
)

// Term is the closed interface over all formula term variants.
// The unexported key method seals the set: only this package can add
// variants, so consumers may switch exhaustively on Kind.
type Term interface {
	// Kind returns the variant discriminator.
	Kind() Kind
	// Name returns the human-readable label used in column naming.
	Name() string
	// key returns the structural-identity key; see Key.
	key() string
}

// Key returns the structural-identity key of t. Two terms denote the same
// symbolic quantity iff their keys are equal; interactions compare as sets
// (factor order is ignored), and a resolved Continuous/Categorical carries
// the same key as the Variable it replaced.
func Key(t Term) string { return t.key() }

// Equal reports structural equality of two terms.
func Equal(a, b Term) bool { return a.key() == b.key() }

// ---------- leaf variants ----------

// Constant is the intercept marker: Value must be 0 or 1.
// It is valid only as a direct summand of a formula's right-hand side;
// Normalize rejects it anywhere else with ErrMalformedFormula.
type Constant struct {
	Value int
}

// One returns the intercept-present marker.
func One() Constant { return Constant{Value: 1} }

// Zero returns the intercept-absent marker.
func Zero() Constant { return Constant{Value: 0} }

func (c Constant) Kind() Kind   { return KindConstant }
func (c Constant) Name() string { return strconv.Itoa(c.Value) }
func (c Constant) key() string  { return "const:" + strconv.Itoa(c.Value) }

// Variable is an untyped reference to a table column. Schema resolution
// replaces every Variable with a Continuous or Categorical leaf.
type Variable struct {
	VarName string
}

// Var constructs a Variable reference for the given column name.
func Var(name string) Variable { return Variable{VarName: name} }

func (v Variable) Kind() Kind   { return KindVariable }
func (v Variable) Name() string { return v.VarName }
func (v Variable) key() string  { return "v:" + v.VarName }

// Continuous is a resolved numeric leaf. Mean and Stdev are the sample
// moments observed at schema-extraction time; they are informational and
// do not affect column generation.
type Continuous struct {
	VarName string
	Mean    float64
	Stdev   float64
}

func (c *Continuous) Kind() Kind   { return KindContinuous }
func (c *Continuous) Name() string { return c.VarName }
func (c *Continuous) key() string  { return "v:" + c.VarName }

// Categorical is a resolved categorical leaf: the observed level sequence
// (first-occurrence order, fixed at resolution time) plus the materialized
// contrast coding. Levels and Coding are immutable after resolution;
// regenerating columns from the same resolved term reproduces them bit
// for bit.
type Categorical struct {
	VarName string
	Levels  []string
	Coding  contrast.Coding
}

func (c *Categorical) Kind() Kind   { return KindCategorical }
func (c *Categorical) Name() string { return c.VarName }
func (c *Categorical) key() string  { return "v:" + c.VarName }

// ---------- composite variants ----------

// Function is an elementwise transformation call. The algebra treats it as
// opaque: Normalize never rewrites inside Args (operators inside a call
// keep their arithmetic meaning), and resolution only substitutes typed
// leaves for the Variables the arguments reference. Source, when set,
// preserves the original call text for naming.
type Function struct {
	Callee string
	Args   []Term
	Source string
}

// Fn constructs a Function term for programmatic callers.
func Fn(callee string, args ...Term) *Function {
	return &Function{Callee: callee, Args: args}
}

func (f *Function) Kind() Kind { return KindFunction }

func (f *Function) Name() string {
	if f.Source != "" {
		return f.Source
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.Name()
	}

	return f.Callee + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Function) key() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.key()
	}

	return "fn:" + f.Callee + "(" + strings.Join(parts, ",") + ")"
}

// Interaction is the product of two or more unique factors. Factor order
// is preserved for column generation but ignored by structural equality:
// a&b and b&a carry the same key and deduplicate to the first occurrence.
type Interaction struct {
	Factors []Term
}

func (ix *Interaction) Kind() Kind { return KindInteraction }

// Name joins factor names with the interaction separator in factor order.
func (ix *Interaction) Name() string {
	parts := make([]string, len(ix.Factors))
	for i, f := range ix.Factors {
		parts[i] = f.Name()
	}

	return strings.Join(parts, " & ")
}

func (ix *Interaction) key() string {
	parts := make([]string, len(ix.Factors))
	for i, f := range ix.Factors {
		parts[i] = f.key()
	}
	// Order-insensitive identity: interactions compare as factor sets.
	sort.Strings(parts)

	return "ix:{" + strings.Join(parts, "&") + "}"
}

// ---------- transient combinators ----------
// Sum, And, Star and Tilde exist only inside raw parsed trees and are
// consumed by Normalize before any caller observes a Formula.

// Sum is the raw + combinator over two or more parts.
type Sum struct {
	Parts []Term
}

func (s *Sum) Kind() Kind { return KindSum }

func (s *Sum) Name() string {
	parts := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = p.Name()
	}

	return strings.Join(parts, " + ")
}

func (s *Sum) key() string {
	parts := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = p.key()
	}

	return "sum(" + strings.Join(parts, ",") + ")"
}

// And is the raw & combinator over two or more parts.
type And struct {
	Parts []Term
}

func (a *And) Kind() Kind { return KindAnd }

func (a *And) Name() string {
	parts := make([]string, len(a.Parts))
	for i, p := range a.Parts {
		parts[i] = p.Name()
	}

	return strings.Join(parts, " & ")
}

func (a *And) key() string {
	parts := make([]string, len(a.Parts))
	for i, p := range a.Parts {
		parts[i] = p.key()
	}

	return "and(" + strings.Join(parts, ",") + ")"
}

// Star is the raw * combinator over two or more parts.
type Star struct {
	Parts []Term
}

func (s *Star) Kind() Kind { return KindStar }

func (s *Star) Name() string {
	parts := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = p.Name()
	}

	return strings.Join(parts, " * ")
}

func (s *Star) key() string {
	parts := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = p.key()
	}

	return "star(" + strings.Join(parts, ",") + ")"
}

// Tilde is the raw ~ separator. It is legal only at the top of a raw tree;
// Normalize rejects it anywhere else with ErrMalformedFormula.
type Tilde struct {
	LHS Term
	RHS Term
}

func (t *Tilde) Kind() Kind   { return KindTilde }
func (t *Tilde) Name() string { return t.LHS.Name() + " ~ " + t.RHS.Name() }
func (t *Tilde) key() string  { return "tilde(" + t.LHS.key() + "," + t.RHS.key() + ")" }

// Compile-time conformance of every variant to Term.
var (
	_ Term = Constant{}
	_ Term = Variable{}
	_ Term = (*Continuous)(nil)
	_ Term = (*Categorical)(nil)
	_ Term = (*Function)(nil)
	_ Term = (*Interaction)(nil)
	_ Term = (*Sum)(nil)
	_ Term = (*And)(nil)
	_ Term = (*Star)(nil)
	_ Term = (*Tilde)(nil)
)
