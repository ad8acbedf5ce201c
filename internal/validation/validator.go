package validation

import "strings"

// Validator provides the primitive checks used by the entity validators
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// TrimString returns the string with surrounding whitespace removed
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// IsNonEmptyString checks that a string has content after trimming
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidID checks that an ID is a positive integer
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}
