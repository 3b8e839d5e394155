package ingredient

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

const maxExprDepth = 32

// Eval evaluates a quantity expression made of decimal numbers, "+", "-",
// "/" and parentheses, with "/" binding tighter than "+" and "-".
// Arithmetic is exact; the result is rounded to the nearest float64 once.
// A result too large for a float64 is an error.
//
//	Eval("1+1/2")  // 1.5
//	Eval("3/4-.5") // 0.25
func Eval(expr string) (float64, error) {
	for i, r := range expr {
		if !isExprRune(r) {
			return 0, &ExprError{Expr: expr, Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}

	p := &exprParser{src: expr}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, p.errorf("unexpected %q", p.src[p.pos])
	}
	f, _ := v.Float64()
	if math.IsInf(f, 0) {
		return 0, &ExprError{Expr: expr, Pos: 0, Msg: "quantity out of range"}
	}
	return f, nil
}

func isExprRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case strings.ContainsRune("./+-() \t\n\r", r):
		return true
	}
	return false
}

type exprParser struct {
	src   string
	pos   int
	depth int
}

func (p *exprParser) errorf(format string, args ...any) *ExprError {
	return &ExprError{Expr: p.src, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\n\r", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

// peek returns the next non-space byte, or 0 at end of input.
func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// sum := quotient (('+' | '-') quotient)*
func (p *exprParser) sum() (*big.Rat, error) {
	acc, err := p.quotient()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return acc, nil
		}
		p.pos++
		rhs, err := p.quotient()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			acc.Add(acc, rhs)
		} else {
			acc.Sub(acc, rhs)
		}
	}
}

// quotient := unary ('/' unary)*
func (p *exprParser) quotient() (*big.Rat, error) {
	acc, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.peek() == '/' {
		p.pos++
		start := p.pos
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		if rhs.Sign() == 0 {
			return nil, &ExprError{Expr: p.src, Pos: start, Msg: "division by zero"}
		}
		acc.Quo(acc, rhs)
	}
	return acc, nil
}

// unary := ('+' | '-') unary | primary
func (p *exprParser) unary() (*big.Rat, error) {
	if p.depth >= maxExprDepth {
		return nil, p.errorf("expression nested too deeply")
	}
	p.depth++
	defer func() { p.depth-- }()

	switch p.peek() {
	case '+':
		p.pos++
		return p.unary()
	case '-':
		p.pos++
		v, err := p.unary()
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	}
	return p.primary()
}

// primary := number | '(' sum ')'
func (p *exprParser) primary() (*big.Rat, error) {
	switch c := p.peek(); {
	case c == 0:
		return nil, p.errorf("unexpected end of expression")
	case c == '(':
		p.pos++
		v, err := p.sum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		return nil, p.errorf("unexpected %q", c)
	}
}

// number := digits ['.' digits] | digits '.' | '.' digits
func (p *exprParser) number() (*big.Rat, error) {
	start := p.pos
	var whole, frac strings.Builder
	seenDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9':
			if seenDot {
				frac.WriteByte(c)
			} else {
				whole.WriteByte(c)
			}
		case c == '.':
			if seenDot {
				return nil, p.errorf("malformed number %q", p.src[start:p.pos+1])
			}
			seenDot = true
		default:
			return p.rat(start, whole.String(), frac.String())
		}
		p.pos++
	}
	return p.rat(start, whole.String(), frac.String())
}

func (p *exprParser) rat(start int, whole, frac string) (*big.Rat, error) {
	if whole == "" && frac == "" {
		return nil, &ExprError{Expr: p.src, Pos: start, Msg: "malformed number \".\""}
	}
	num, ok := new(big.Int).SetString("0"+whole+frac, 10)
	if !ok {
		return nil, &ExprError{Expr: p.src, Pos: start, Msg: "malformed number"}
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	return new(big.Rat).SetFrac(num, den), nil
}
