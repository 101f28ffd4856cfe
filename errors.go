package mobius

import "fmt"

// InvalidParameterError is returned by New when a constructor argument
// lies outside the valid domain of the parametrization. No model is
// constructed when it is returned.
type InvalidParameterError struct {
	// Param is the offending parameter name ("R", "w" or "n").
	Param string
	// Value is the rejected value, as a float even for n.
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("mobius: invalid parameter %s=%g: %s", e.Param, e.Value, e.Reason)
}

// NumericalInstabilityError is returned when a derived quantity
// encounters a non-finite intermediate value. Construction-time
// validation prevents it for models built with New.
type NumericalInstabilityError struct {
	// Op names the computation that went non-finite.
	Op string
}

func (e *NumericalInstabilityError) Error() string {
	return "mobius: " + e.Op + ": non-finite intermediate value"
}
