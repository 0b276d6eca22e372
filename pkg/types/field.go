package types

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Constraint messages reported by ValidationError.
const (
	PostalCodeConstraint = "Postal codes should be in a 6-digit format"
	StreetConstraint     = "Street can be in any format but must be non-empty text without control characters other than tab and line breaks"
	UnitConstraint       = "Unit can be in any format but must be non-empty text without control characters other than tab and line breaks"
)

// Example values, handy for help text and tests.
const (
	ExamplePostalCode = "119077"
	ExampleStreet     = "Clementi Ave 3"
	ExampleUnit       = "#12-34"
)

var postalCodePattern = regexp.MustCompile(`^\d{6}$`)

// PostalCode is a six-digit postal code. The zero value is not valid; use
// NewPostalCode.
type PostalCode struct {
	value   string
	private bool
}

// NewPostalCode trims raw and validates it against the six-digit format.
// Returns a *ValidationError if the value does not match.
func NewPostalCode(raw string, private bool) (PostalCode, error) {
	v := strings.TrimSpace(raw)
	if !IsValidPostalCode(v) {
		return PostalCode{}, &ValidationError{Field: FieldPostalCode, Constraint: PostalCodeConstraint}
	}
	return PostalCode{value: v, private: private}, nil
}

// IsValidPostalCode reports whether s is exactly six ASCII digits.
func IsValidPostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

func (p PostalCode) String() string { return p.value }

// IsPrivate reports whether the value is hidden from listings.
func (p PostalCode) IsPrivate() bool { return p.private }

// Street is free-form street text.
type Street struct {
	value   string
	private bool
}

// NewStreet trims raw and rejects an empty result or text the storage file
// cannot hold.
func NewStreet(raw string, private bool) (Street, error) {
	v, ok := freeText(raw)
	if !ok {
		return Street{}, &ValidationError{Field: FieldStreet, Constraint: StreetConstraint}
	}
	return Street{value: v, private: private}, nil
}

func (s Street) String() string { return s.value }

// IsPrivate reports whether the value is hidden from listings.
func (s Street) IsPrivate() bool { return s.private }

// Unit is free-form unit text such as "#12-34".
type Unit struct {
	value   string
	private bool
}

// NewUnit trims raw and rejects an empty result or text the storage file
// cannot hold.
func NewUnit(raw string, private bool) (Unit, error) {
	v, ok := freeText(raw)
	if !ok {
		return Unit{}, &ValidationError{Field: FieldUnit, Constraint: UnitConstraint}
	}
	return Unit{value: v, private: private}, nil
}

func (u Unit) String() string { return u.value }

// IsPrivate reports whether the value is hidden from listings.
func (u Unit) IsPrivate() bool { return u.private }

func freeText(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	return v, v != "" && IsStorableText(v)
}

// IsStorableText reports whether s is valid UTF-8 made only of characters an
// XML 1.0 document can carry. Tab, newline and carriage return are the only
// control characters allowed.
func IsStorableText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
