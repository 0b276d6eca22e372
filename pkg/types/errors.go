package types

import (
	"errors"
	"fmt"
)

// Field names used in validation errors and on-disk element names.
const (
	FieldPostalCode = "postalCode"
	FieldStreet     = "street"
	FieldUnit       = "unit"
)

// RequiredFields lists the contact fields that must be present on disk, in
// document order.
var RequiredFields = []string{FieldPostalCode, FieldStreet, FieldUnit}

// ValidationError reports a raw value that does not satisfy a field's format
// rule.
type ValidationError struct {
	Field      string // Field name, one of the Field constants.
	Constraint string // Human-readable description of the rule.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
}

// MissingFieldError reports a required field absent from an on-disk record.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Field)
}

// AddressBook errors.
var (
	ErrIndexOutOfRange = errors.New("contact index out of range")
)
