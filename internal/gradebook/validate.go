package gradebook

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Bounds of the grading scale.
const (
	MinGrade = 1
	MaxGrade = 5
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateEmail checks that id looks like local-part@domain.tld.
func ValidateEmail(id string) error {
	if !emailPattern.MatchString(id) {
		return newError("validate email", ErrInvalidFormat, id)
	}
	return nil
}

// ValidateGrade checks that g is a whole number on the grading scale.
func ValidateGrade(g float64) error {
	if g != math.Trunc(g) || g < MinGrade || g > MaxGrade {
		return &Error{
			Op:   "validate grade",
			Kind: ErrInvalidFormat,
			Key:  formatNumber(g),
			Err:  fmt.Errorf("grade must be a whole number in [%d-%d]", MinGrade, MaxGrade),
		}
	}
	return nil
}

// ValidateCredits checks that c is either 0 (fail) or full (pass).
func ValidateCredits(c, full float64) error {
	if c != 0 && c != full {
		return &Error{
			Op:   "validate credits",
			Kind: ErrInvalidFormat,
			Key:  formatNumber(c),
			Err:  fmt.Errorf("credits earned must be 0 or %s", formatNumber(full)),
		}
	}
	return nil
}

// ValidateGPARange checks search bounds against the grading scale. NaN
// bounds fail every comparison and are rejected.
func ValidateGPARange(min, max float64) error {
	if !onScale(min) || !onScale(max) {
		return &Error{
			Op:   "validate gpa range",
			Kind: ErrInvalidRange,
			Key:  fmt.Sprintf("%s-%s", formatNumber(min), formatNumber(max)),
			Err:  fmt.Errorf("bounds must lie in [%d-%d]", MinGrade, MaxGrade),
		}
	}
	if min > max {
		return &Error{
			Op:   "validate gpa range",
			Kind: ErrInvalidRange,
			Key:  fmt.Sprintf("%s-%s", formatNumber(min), formatNumber(max)),
			Err:  fmt.Errorf("minimum exceeds maximum"),
		}
	}
	return nil
}

func onScale(v float64) bool {
	return v >= MinGrade && v <= MaxGrade
}

// ValidateFinite rejects NaN and infinities, which cannot be stored.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &Error{
			Op:   "validate " + field,
			Kind: ErrInvalidFormat,
			Key:  formatNumber(v),
			Err:  fmt.Errorf("%s must be a finite number", field),
		}
	}
	return nil
}

// formatNumber renders whole numbers without a fractional part.
func formatNumber(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
