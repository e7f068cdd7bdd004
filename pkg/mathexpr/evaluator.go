package mathexpr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Evaluate computes a basic arithmetic expression (+, -, *, /, parentheses,
// decimals, unary minus) and returns the result. The evaluator is pure and
// never calls out; it is the backing for the local calculator capability.
func Evaluate(expr string) (float64, error) {
	expr = strings.NewReplacer("×", "*", "÷", "/", ",", "").Replace(expr)

	p := &parser{input: strings.TrimSpace(expr)}
	if p.input == "" {
		return 0, ErrEmptyExpression
	}

	val, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpaces()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidExpression, p.input[p.pos], p.pos)
	}

	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, ErrInvalidExpression
	}

	return val, nil
}

// Format renders a result the way a human would type it: integers without a
// decimal point, fractions trimmed of trailing zeros.
func Format(val float64) string {
	if val == math.Trunc(val) && math.Abs(val) < 1e15 {
		return strconv.FormatInt(int64(val), 10)
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// parser is a recursive-descent parser over a flat byte position.
type parser struct {
	input string
	pos   int
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, nil
		}

		op := p.input[p.pos]
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}

		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, nil
		}

		// Unicode operators (×, ÷) are normalized to * and / before parsing.
		op := p.input[p.pos]
		if op != '*' && op != '/' && op != 'x' {
			return left, nil
		}
		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}

		switch op {
		case '*', 'x':
			left *= right
		default:
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			left /= right
		}
	}
}

// parseFactor handles numbers, parentheses and unary minus.
func (p *parser) parseFactor() (float64, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("%w: unexpected end of input", ErrInvalidExpression)
	}

	switch p.input[p.pos] {
	case '-':
		p.pos++
		val, err := p.parseFactor()
		return -val, err
	case '(':
		p.pos++
		val, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrInvalidExpression)
		}
		p.pos++
		return val, nil
	}

	return p.parseNumber()
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if !unicode.IsDigit(c) && c != '.' {
			break
		}
		p.pos++
	}

	if start == p.pos {
		return 0, fmt.Errorf("%w: expected number at position %d", ErrInvalidExpression, start)
	}

	val, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidExpression, p.input[start:p.pos])
	}

	return val, nil
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
