// Package ledger implements the payment arithmetic for the school: schedule
// derivation, discount application, per-student ledger aggregation and the
// dashboard fold. Everything here is pure; persistence and transport live in
// app/database and app/routes.
package ledger

import "fmt"

// ValidationError rejects caller-supplied values outside the documented
// domain. The operation that raised it has not touched any state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func validationErr(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConfigurationMissingError signals that no active payment configuration
// covers the requested class group and academic year. No default tariff is
// ever assumed.
type ConfigurationMissingError struct {
	ClassGroup     string
	AcademicYearID string
}

func (e *ConfigurationMissingError) Error() string {
	return fmt.Sprintf("no active payment configuration for group %q in academic year %s", e.ClassGroup, e.AcademicYearID)
}
