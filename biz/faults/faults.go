// Package faults defines the two user-facing error kinds the tool
// boundary distinguishes: input the caller could fix, and timezone
// resolution failures on well-formed input.
package faults

import "fmt"

// ValidationError reports input the caller could correct, e.g. a
// malformed postal code or a date that is not YYYY-MM-DD.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

func Validationf(input, format string, args ...any) *ValidationError {
	return &ValidationError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// TimezoneError reports that a well-formed postal code could not be
// mapped to a known timezone.
type TimezoneError struct {
	Reason string
}

func (e *TimezoneError) Error() string {
	return "timezone: " + e.Reason
}

func Timezonef(format string, args ...any) *TimezoneError {
	return &TimezoneError{Reason: fmt.Sprintf(format, args...)}
}
