package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("resource not found")
	ErrNoCompanyProfile       = errors.New("company profile not found")
	ErrClientInUse            = errors.New("client has invoices and cannot be deleted")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
	ErrInvalidStatus          = errors.New("invalid invoice status")
	ErrRegistryUnavailable    = errors.New("company registry unavailable")
)

// ValidationError reports bad caller input. It is always returned to the
// caller as-is and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
