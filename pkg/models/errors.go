// Package models provides standardized error types for component construction.
package models

import (
	"errors"
	"fmt"
)

// Standard construction error types.
var (
	// ErrEmptySchemaField indicates a schema field with an empty name.
	ErrEmptySchemaField = errors.New("schema field name is empty")

	// ErrDuplicateSchemaField indicates two schema fields sharing a name.
	ErrDuplicateSchemaField = errors.New("duplicate schema field name")

	// ErrUnknownFieldType indicates a schema field with an unrecognized type name.
	ErrUnknownFieldType = errors.New("unknown schema field type")

	// ErrNilTrigger indicates a recipe was constructed without a trigger.
	ErrNilTrigger = errors.New("recipe trigger is required")

	// ErrNilAction indicates a nil action was appended to a recipe or action.
	ErrNilAction = errors.New("action is required")
)

// InvalidSchemaError wraps schema construction failures with the offending
// field name. Schemas are rejected at construction time, never at walk time.
type InvalidSchemaError struct {
	Field string // Offending field name, empty when the name itself is missing
	Err   error  // Underlying error
}

func (e *InvalidSchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid schema: %v", e.Err)
	}

	return fmt.Sprintf("invalid schema: field %q: %v", e.Field, e.Err)
}

func (e *InvalidSchemaError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for schema errors.
func (e *InvalidSchemaError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// ComponentError wraps component construction failures with context.
type ComponentError struct {
	Kind string // Component kind ("trigger", "action", "recipe")
	Name string // Component name if known
	Err  error  // Underlying error
}

func (e *ComponentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Name, e.Err)
	}

	return fmt.Sprintf("invalid %s: %v", e.Kind, e.Err)
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

func (e *ComponentError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsInvalidSchema checks if an error indicates a rejected schema.
func IsInvalidSchema(err error) bool {
	var target *InvalidSchemaError

	return errors.As(err, &target)
}
