// Package parse: recursive-descent parser over the formula grammar.
// The parser builds raw term trees (Sum/And/Star/Tilde combinators) and
// leaves all structural validation to term.Normalize.

package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/formula/term"
)

// Sentinel errors for the parse package.
var (
	// ErrSyntax is returned for any lexical or grammatical violation.
	ErrSyntax = errors.New("parse: syntax error")

	// ErrUnexpectedEOF is returned when the source ends mid-production.
	ErrUnexpectedEOF = errors.New("parse: unexpected end of input")
)

// Parse converts formula source text into a raw term tree. The tree may
// still contain Sum/And/Star/Tilde combinators; feed it to term.Normalize
// (or use Formula for the combined step).
func Parse(src string) (term.Term, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	t, err := p.parseTilde()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.errorf("trailing input %q", p.peek().text)
	}

	return t, nil
}

// Formula parses and normalizes in one step.
func Formula(src string) (*term.Formula, error) {
	raw, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return term.Normalize(raw)
}

// parser is the token cursor.
type parser struct {
	src  string
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}

	return t
}

// errorf wraps ErrSyntax (or ErrUnexpectedEOF at EOF) with position info.
func (p *parser) errorf(format string, args ...any) error {
	sentinel := ErrSyntax
	if p.peek().kind == tokEOF {
		sentinel = ErrUnexpectedEOF
	}

	return fmt.Errorf("offset %d: "+format+": %w", append(append([]any{p.peek().pos}, args...), sentinel)...)
}

// parseTilde handles the lowest precedence level: sum ('~' sum)*.
// Left-associative; a second ~ yields a nested Tilde that Normalize
// rejects as malformed, matching the one-top-level-separator rule.
func (p *parser) parseTilde() (term.Term, error) {
	left, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokTilde {
		p.next()
		right, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		left = &term.Tilde{LHS: left, RHS: right}
	}

	return left, nil
}

// parseSum handles: interaction ('+' interaction)*.
func (p *parser) parseSum() (term.Term, error) {
	first, err := p.parseInteraction()
	if err != nil {
		return nil, err
	}
	parts := []term.Term{first}
	for p.peek().kind == tokPlus {
		p.next()
		next, err := p.parseInteraction()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	return &term.Sum{Parts: parts}, nil
}

// parseInteraction handles: primary (('&'|'*') primary)* with & and * at
// equal precedence, left-associative.
func (p *parser) parseInteraction() (term.Term, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokAnd:
			p.next()
			right, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			left = &term.And{Parts: []term.Term{left, right}}
		case tokStar:
			p.next()
			right, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			left = &term.Star{Parts: []term.Term{left, right}}
		default:
			return left, nil
		}
	}
}

// parsePrimary handles identifiers, calls, integer literals and
// parenthesized subformulas.
func (p *parser) parsePrimary() (term.Term, error) {
	switch tk := p.peek(); tk.kind {
	case tokIdent:
		p.next()
		if p.peek().kind == tokLParen {
			return p.parseCall(tk)
		}

		return term.Var(tk.text), nil

	case tokInt:
		p.next()
		v, err := strconv.Atoi(tk.text)
		if err != nil {
			return nil, p.errorf("integer literal %q", tk.text)
		}

		return term.Constant{Value: v}, nil

	case tokLParen:
		p.next()
		inner, err := p.parseTilde()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.errorf("expected ')', got %q", p.peek().text)
		}
		p.next()

		return inner, nil

	case tokEOF:
		return nil, p.errorf("expected a term")

	default:
		return nil, p.errorf("unexpected %q", tk.text)
	}
}

// parseCall handles callee '(' expr {',' expr} ')'. The original call
// text is preserved on the term for downstream column naming.
func (p *parser) parseCall(callee token) (term.Term, error) {
	p.next() // consume '('
	var args []term.Term
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseTilde()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if p.peek().kind != tokRParen {
		return nil, p.errorf("expected ')', got %q", p.peek().text)
	}
	closing := p.next()
	src := strings.TrimSpace(p.src[callee.pos:closing.end])

	return &term.Function{Callee: callee.text, Args: args, Source: src}, nil
}
