package term_test

import (
	"fmt"

	"github.com/katalvlaran/formula/term"
)

// ExampleCombineStar demonstrates the star operator's expansion into
// main effects plus all interactions, main effects first.
func ExampleCombineStar() {
	a, b := term.Var("a"), term.Var("b")

	fmt.Println(term.CombineStar(a, b).Name())
	// Output:
	// a + b + a & b
}

// ExampleNormalize demonstrates distribution of & over +, flattening and
// deduplication in one pass.
func ExampleNormalize() {
	raw := &term.Sum{Parts: []term.Term{
		term.Var("a"),
		&term.And{Parts: []term.Term{
			&term.Sum{Parts: []term.Term{term.Var("a"), term.Var("b")}},
			term.Var("c"),
		}},
	}}

	f, err := term.Normalize(raw)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, t := range f.RHS {
		fmt.Println(t.Name())
	}
	// Output:
	// a
	// a & c
	// b & c
}
