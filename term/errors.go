// Package term: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the term
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package term

import "errors"

var (
	// ErrMalformedFormula is returned by Normalize / NewFormula when a raw
	// expression misuses structural syntax: a ~ separator anywhere below the
	// top level, a 0/1 constant anywhere other than as a direct summand of
	// the right-hand side, a constant other than 0 or 1, or both 0 and 1
	// appearing as summands of the same side.
	ErrMalformedFormula = errors.New("term: malformed formula")

	// ErrNilTerm is returned when a nil Term is passed where a value is
	// required (Normalize, NewFormula right-hand side).
	ErrNilTerm = errors.New("term: nil term")
)
