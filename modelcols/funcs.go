// Package modelcols: the elementwise function registry. Functions are
// opaque scalar transformations; the pipeline only requires determinism.

package modelcols

import (
	"fmt"
	"math"
)

// ProtectCallee is the reserved no-op wrapper: protect(x) is the
// elementwise identity, and its argument subtree is exempt from
// formula-operator reinterpretation (the normalizer leaves it alone).
const ProtectCallee = "protect"

// Func is an elementwise numeric function applied row by row.
type Func func(args ...float64) (float64, error)

// FuncMap maps callee names to their implementations. Callers extend or
// replace it per Build invocation; nil means DefaultFuncs().
type FuncMap map[string]Func

// DefaultFuncs returns the built-in function map. Domain violations
// follow math package semantics (log(-1) is NaN); they are values, not
// errors, so a single bad row does not abort a whole matrix.
func DefaultFuncs() FuncMap {
	return FuncMap{
		"log":      unary("log", math.Log),
		"log2":     unary("log2", math.Log2),
		"log10":    unary("log10", math.Log10),
		"exp":      unary("exp", math.Exp),
		"sqrt":     unary("sqrt", math.Sqrt),
		"abs":      unary("abs", math.Abs),
		"identity": identityFunc,
	}
}

// unary adapts a math.* function to the Func contract with arity checking.
func unary(name string, f func(float64) float64) Func {
	return func(args ...float64) (float64, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s takes 1 argument, got %d: %w", name, len(args), ErrFunctionArity)
		}

		return f(args[0]), nil
	}
}

// identityFunc passes its single argument through unchanged.
func identityFunc(args ...float64) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("identity takes 1 argument, got %d: %w", len(args), ErrFunctionArity)
	}

	return args[0], nil
}
