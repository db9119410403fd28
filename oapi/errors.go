package oapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProperty is returned when a property name is not part of the schema.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrReadOnly is returned when a caller tries to set a read-only property.
	ErrReadOnly = errors.New("property is read-only")
	// ErrImmutable is returned when a caller tries to change an instance of an immutable schema.
	ErrImmutable = errors.New("object is immutable")
	// ErrNotArray is returned when an array operation targets a single-valued property.
	ErrNotArray = errors.New("property is not an array")
	// ErrMissingRequired is returned when a required property has no value.
	ErrMissingRequired = errors.New("missing required property")
)

// ValidationError reports a value that violates its property's declared constraints.
type ValidationError struct {
	Schema   string
	Property string
	Value    any
	Reason   string
}

// Error returns a string representation of the ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %#v for %s.%s: %s", e.Value, e.Schema, e.Property, e.Reason)
}

func invalid(s *Schema, p *PropertyDefinition, value any, format string, args ...any) *ValidationError {
	return &ValidationError{
		Schema:   s.name,
		Property: p.Name,
		Value:    value,
		Reason:   fmt.Sprintf(format, args...),
	}
}
