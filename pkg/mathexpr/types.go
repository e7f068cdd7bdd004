package mathexpr

import "errors"

// Evaluation errors.
var (
	ErrEmptyExpression   = errors.New("expression is empty")
	ErrInvalidExpression = errors.New("invalid arithmetic expression")
	ErrDivisionByZero    = errors.New("division by zero")
)
