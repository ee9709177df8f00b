package domain

import "fmt"

// ValidationError marks malformed structural input rejected at a boundary.
// Message content itself is never a validation concern.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidateIntensity rejects self-reported intensity outside the 0-10 scale.
// Out-of-range intensity must never be coerced into a default risk level.
func ValidateIntensity(intensity int) error {
	if intensity < 0 || intensity > 10 {
		return &ValidationError{Field: "intensity", Message: fmt.Sprintf("must be in [0,10], got %d", intensity)}
	}
	return nil
}

// ValidateRating rejects feedback ratings outside the 0-10 scale.
func ValidateRating(rating int) error {
	if rating < 0 || rating > 10 {
		return &ValidationError{Field: "rating", Message: fmt.Sprintf("must be in [0,10], got %d", rating)}
	}
	return nil
}
