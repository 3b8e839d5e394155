package ingredient

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyIngredient is returned when nothing is left of a line to use
	// as the ingredient name.
	ErrEmptyIngredient = errors.New("ingredient: empty ingredient name")

	// ErrInvalidExpression is wrapped by every *ExprError.
	ErrInvalidExpression = errors.New("ingredient: invalid quantity expression")
)

// ExprError describes why a quantity expression could not be evaluated.
type ExprError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("invalid quantity expression %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

func (e *ExprError) Unwrap() error {
	return ErrInvalidExpression
}
