// Package parse converts formula source text into the raw term tree the
// normalizer consumes.
//
// 🚀 The grammar (small by design):
//
//	formula     := sum ( '~' sum )*
//	sum         := interaction ( '+' interaction )*
//	interaction := primary ( ('&' | '*') primary )*
//	primary     := IDENT | IDENT '(' expr {',' expr} ')'
//	             | INT | '(' formula ')'
//
// Operator precedence is already encoded in the productions: ~ binds
// loosest, then +, then & and * at equal precedence, all left-associative.
// Integer literals are the intercept markers 0 and 1 (any other integer
// is legal only inside function-call arguments, where it is an arithmetic
// literal).
//
// ✨ Division of labor:
//   - parse reports lexical/syntactic problems (ErrSyntax,
//     ErrUnexpectedEOF) with byte offsets
//   - structural misuse that is grammatical but meaningless — a nested ~,
//     a constant inside an interaction — parses fine here and is rejected
//     by term.Normalize with ErrMalformedFormula, so both the parser path
//     and the programmatic construction path share one validation surface
//
// ⚙️ Usage:
//
//	raw, err := parse.Parse("y ~ 1 + a*b + log(x)")
//	f, err := term.Normalize(raw)
//
//	// or in one step:
//	f, err := parse.Formula("y ~ 1 + a*b + log(x)")
//
// Function calls keep their original source text (e.g. "log(x)") for
// column naming downstream.
package parse
