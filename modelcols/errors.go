// Package modelcols: sentinel error set. Matched with errors.Is; wrapped
// with row/column context at detection sites.

package modelcols

import "errors"

var (
	// ErrLevelNotFound is returned when a generation-time row holds a
	// categorical value absent from the resolved level set (schema drift
	// between resolution-time and generation-time tables).
	ErrLevelNotFound = errors.New("modelcols: categorical level not found")

	// ErrFunctionArity is returned when a function term receives a
	// multi-column argument (e.g. a categorical variable) it cannot
	// consume, or a reserved wrapper gets the wrong argument count.
	ErrFunctionArity = errors.New("modelcols: function argument is not single-column")

	// ErrTypeCoercion is returned when a continuous term's source value
	// cannot be converted to float64.
	ErrTypeCoercion = errors.New("modelcols: value not coercible to numeric")

	// ErrUnknownFunction is returned when a function term's callee has no
	// entry in the function map.
	ErrUnknownFunction = errors.New("modelcols: unknown function")

	// ErrUnresolvedTerm is returned when generation meets a term that
	// schema resolution should have replaced (resolution is total or
	// fails; reaching this means Build was fed an unresolved tree).
	ErrUnresolvedTerm = errors.New("modelcols: unresolved term")

	// ErrNilInput is returned for a nil formula, term, or table.
	ErrNilInput = errors.New("modelcols: nil input")
)
