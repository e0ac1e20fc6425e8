package sinmod

import (
	"errors"
	"fmt"
)

// Domain errors for parameter handling.
var (
	// ErrUnknownParam indicates a field name that is not part of the parameter set.
	ErrUnknownParam = errors.New("sinmod: unknown parameter")

	// ErrInvalidValue indicates a value that could not be parsed as a number.
	ErrInvalidValue = errors.New("sinmod: invalid parameter value")

	// ErrParameterBounds indicates a parameter value is outside its slider range.
	ErrParameterBounds = errors.New("sinmod: parameter out of valid bounds")

	// ErrNotFinite indicates a NaN or Inf parameter value.
	ErrNotFinite = errors.New("sinmod: parameter is not finite")
)

// ParamError wraps an error with the offending field and value.
type ParamError struct {
	Field   Field
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s (%s=%g)", e.Wrapped.Error(), e.Field, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
