package models

import (
	"github.com/go-playground/validator/v10"
)

// CategoryType represents the category of a recipe component.
type CategoryType string

const (
	CategoryTypeTrigger CategoryType = "trigger" // Recipe entry point, always the root, always childless
	CategoryTypeAction  CategoryType = "action"  // Recipe step, may hold nested actions
)

// Component is any node of a recipe tree. The two variants are Trigger and
// Action; both carry declared input and output schemas and enumerate their
// immediate structural children in insertion order.
//
// Children returns a fresh slice on every call so callers cannot mutate
// structural state from outside the designated append operations. Component
// identity is reference identity; names are unique by convention only.
type Component interface {
	ID() string
	Name() string
	Category() CategoryType
	InputSchema() Schema
	OutputSchema() Schema
	Children() []Component
}

// validate checks constructor parameters. Kept package-private; components
// are only ever built through the constructors.
var validate = validator.New()

type componentParams struct {
	Name string `validate:"required"`
	Kind string `validate:"required"`
}

func validateComponentParams(category CategoryType, name, kind string) error {
	err := validate.Struct(componentParams{Name: name, Kind: kind})
	if err != nil {
		return &ComponentError{Kind: string(category), Name: name, Err: err}
	}

	return nil
}
