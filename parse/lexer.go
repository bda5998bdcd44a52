// Package parse: the lexer. Produces a flat token stream with byte
// offsets so the parser can slice original source text for function terms.

package parse

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokKind enumerates token types.
type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokInt
	tokPlus
	tokAnd
	tokStar
	tokTilde
	tokLParen
	tokRParen
	tokComma
)

// token is one lexeme with its half-open byte span in the source.
type token struct {
	kind tokKind
	text string
	pos  int
	end  int
}

// lex scans src into tokens, skipping whitespace.
// Complexity: O(len(src)).
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += w

		case r == '+':
			toks = append(toks, token{tokPlus, "+", i, i + 1})
			i++
		case r == '&':
			toks = append(toks, token{tokAnd, "&", i, i + 1})
			i++
		case r == '*':
			toks = append(toks, token{tokStar, "*", i, i + 1})
			i++
		case r == '~':
			toks = append(toks, token{tokTilde, "~", i, i + 1})
			i++
		case r == '(':
			toks = append(toks, token{tokLParen, "(", i, i + 1})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", i, i + 1})
			i++
		case r == ',':
			toks = append(toks, token{tokComma, ",", i, i + 1})
			i++

		case unicode.IsDigit(r):
			start := i
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			if i < len(src) && src[i] == '.' {
				return nil, fmt.Errorf("offset %d: non-integer literal: %w", start, ErrSyntax)
			}
			toks = append(toks, token{tokInt, src[start:i], start, i})

		case r == '_' || unicode.IsLetter(r):
			start := i
			i += w
			for i < len(src) {
				r2, w2 := utf8.DecodeRuneInString(src[i:])
				if r2 == '_' || r2 == '.' || unicode.IsLetter(r2) || unicode.IsDigit(r2) {
					i += w2

					continue
				}

				break
			}
			toks = append(toks, token{tokIdent, src[start:i], start, i})

		default:
			return nil, fmt.Errorf("offset %d: unexpected character %q: %w", i, r, ErrSyntax)
		}
	}
	toks = append(toks, token{tokEOF, "", len(src), len(src)})

	return toks, nil
}
