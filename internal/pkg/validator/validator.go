package validator

import (
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidHoursWorked reports whether a weekly hour count is plausible.
// A week has 168 hours.
func IsValidHoursWorked(hours float64) bool {
	return hours >= 0 && hours <= 168
}

// IsValidPercentage reports whether a value is a percentage in [0, 100].
func IsValidPercentage(value float64) bool {
	return value >= 0 && value <= 100
}

// IsValidCustomerRating reports whether a rating sits on the 0–5 scale.
func IsValidCustomerRating(rating float64) bool {
	return rating >= 0 && rating <= 5
}

// IsNonNegative reports whether a count is zero or greater.
func IsNonNegative(value float64) bool {
	return value >= 0
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
