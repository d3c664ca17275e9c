package input

import (
	"errors"
	"fmt"
)

var ErrInvalidNumericInput = errors.New("invalid numeric input")

// InvalidNumericInputError reports a value that does not parse as a decimal number.
type InvalidNumericInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidNumericInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q is not a valid number: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %q is not a valid number", e.Field, e.Value)
}

func (e *InvalidNumericInputError) Unwrap() error {
	return e.Err
}

func (e *InvalidNumericInputError) Is(target error) bool {
	return target == ErrInvalidNumericInput
}
