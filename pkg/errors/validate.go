package errors

import (
	"math"
)

// CheckSupportFraction validates a minimum-support fraction before mining.
// NaN, infinite, and negative values fail fast with a ValidationError.
// Values above 1 are permitted: no itemset can meet them, so mining simply
// yields an empty result.
func CheckSupportFraction(operation string, minSupport float64) error {
	if math.IsNaN(minSupport) || math.IsInf(minSupport, 0) {
		return Wrap(NewValidationError("min_support", "must be a finite fraction", minSupport), operation)
	}
	if minSupport < 0 {
		return Wrap(NewValidationError("min_support", "must not be negative", minSupport), operation)
	}
	return nil
}

// SafeDivide performs division with protection against division by zero.
// Returns 0 if denominator is zero or close to zero.
func SafeDivide(numerator, denominator float64) float64 {
	if math.Abs(denominator) < 1e-10 {
		return 0
	}
	return numerator / denominator
}
