package filterdsl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFilters signals a malformed filter expression: the expression
	// is missing, not an object, an array, an operator payload is not an
	// object, or an in/nin value is not a sequence.
	ErrInvalidFilters = errors.New("filterdsl: invalid filters")
	// ErrInvalidFilterOperator signals an unrecognized filter operator token.
	ErrInvalidFilterOperator = errors.New("filterdsl: invalid filter operator")
	// ErrInvalidModel signals a malformed model descriptor.
	ErrInvalidModel = errors.New("filterdsl: invalid model descriptor")
	// ErrInvalidSort signals a malformed sort specification.
	ErrInvalidSort = errors.New("filterdsl: invalid sort")
	// ErrInvalidAgg signals a malformed aggregation specification.
	ErrInvalidAgg = errors.New("filterdsl: invalid aggregation")
)

// UnknownOperatorError wraps ErrInvalidFilterOperator with the offending token
// (without the marker prefix).
type UnknownOperatorError struct {
	Token string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidFilterOperator.Error(), e.Token)
}

func (e *UnknownOperatorError) Unwrap() error { return ErrInvalidFilterOperator }

// NewUnknownOperator creates an unknown operator error for the given token.
func NewUnknownOperator(token string) error {
	return &UnknownOperatorError{Token: token}
}
