// Package errors defines the error taxonomy shared across layers.
// Sentinel errors classify failures for the HTTP boundary; Validation
// carries per-field messages for business-rule violations.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound        = fmt.Errorf("not found")
	ErrForbidden       = fmt.Errorf("forbidden")
	ErrUnauthenticated = fmt.Errorf("authentication required")
	ErrInvalidInput    = fmt.Errorf("invalid input")
)

// Validation maps field names to one or more violation messages.
// Fields are independent: validators accumulate all offending fields
// before returning. Whole-object violations attach to the most
// specific field implicated.
type Validation struct {
	Fields map[string][]string
}

// NewValidation returns an empty Validation accumulator.
func NewValidation() *Validation {
	return &Validation{Fields: map[string][]string{}}
}

// FieldError builds a Validation with a single field message.
func FieldError(field, message string) *Validation {
	v := NewValidation()
	v.Add(field, message)
	return v
}

// Add records a violation message against a field.
func (v *Validation) Add(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// Merge folds another validation result into this one.
func (v *Validation) Merge(other *Validation) {
	if other == nil {
		return
	}
	for field, messages := range other.Fields {
		v.Fields[field] = append(v.Fields[field], messages...)
	}
}

// Empty reports whether no violations were recorded.
func (v *Validation) Empty() bool {
	return len(v.Fields) == 0
}

// ErrOrNil returns the accumulated error, or nil if validation passed.
// Returning a plain nil interface avoids the typed-nil pitfall at call
// sites.
func (v *Validation) ErrOrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

func (v *Validation) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
