// Package evalx evaluates the arithmetic expressions stored as note text.
//
// The grammar matches what the sanitizer lets through: decimal numbers, the
// four binary operators with the usual precedence, parentheses and unary
// sign. Anything else, including division by zero, fails with
// common.ErrEvaluation.
package evalx

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/totallysecure/mathnotes/internal/common"
)

// Evaluator turns an expression string into a number. The note UI treats
// this as an opaque collaborator; Arithmetic is the default implementation.
type Evaluator interface {
	Evaluate(expression string) (float64, error)
}

// Arithmetic is a recursive-descent evaluator over the sanitizer's grammar.
type Arithmetic struct{}

func NewArithmetic() *Arithmetic {
	return &Arithmetic{}
}

func (*Arithmetic) Evaluate(expression string) (float64, error) {
	p := &parser{input: expression}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("%w: unexpected %q", common.ErrEvaluation, rune(p.input[p.pos]))
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// expr := term (('+'|'-') term)*
func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return v, nil
		}
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// term := unary (('*'|'/') unary)*
func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return v, nil
		}
		p.pos++
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, fmt.Errorf("%w: division by zero", common.ErrEvaluation)
			}
			v /= rhs
		}
	}
}

// unary := ('-'|'+') unary | primary
func (p *parser) unary() (float64, error) {
	c, ok := p.peek()
	if ok && (c == '-' || c == '+') {
		p.pos++
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		if c == '-' {
			return -v, nil
		}
		return v, nil
	}
	return p.primary()
}

// primary := number | '(' expr ')'
func (p *parser) primary() (float64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of expression", common.ErrEvaluation)
	}

	if c == '(' {
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		c, ok := p.peek()
		if !ok || c != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", common.ErrEvaluation)
		}
		p.pos++
		return v, nil
	}

	return p.number()
}

func (p *parser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	lit := p.input[start:p.pos]
	if lit == "" {
		return 0, fmt.Errorf("%w: expected a number at position %d", common.ErrEvaluation, start)
	}
	if strings.Count(lit, ".") > 1 || lit == "." {
		return 0, fmt.Errorf("%w: malformed number %q", common.ErrEvaluation, lit)
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed number %q", common.ErrEvaluation, lit)
	}
	return v, nil
}
