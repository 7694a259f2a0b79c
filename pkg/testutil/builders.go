// Package testutil provides test data builders for recipe trees.
package testutil

import (
	"github.com/recidex/recidex/pkg/models"
)

// MustSchema builds a schema and panics on a construction error. Test use
// only.
func MustSchema(fields ...models.Field) models.Schema {
	schema, err := models.NewSchema(fields...)
	if err != nil {
		panic(err)
	}

	return schema
}

// TriggerParams are the constructor parameters of a test trigger; override
// functions mutate them before construction.
type TriggerParams struct {
	Name         string
	TriggerType  string
	InputSchema  models.Schema
	OutputSchema models.Schema
}

// CreateTestTrigger creates a trigger with default values that can be
// overridden.
func CreateTestTrigger(overrides ...func(*TriggerParams)) *models.Trigger {
	params := &TriggerParams{
		Name:        "Test Trigger",
		TriggerType: "cron",
		InputSchema: MustSchema(
			models.Field{Name: "schedule", Type: models.FieldTypeString},
		),
		OutputSchema: MustSchema(
			models.Field{Name: "timestamp", Type: models.FieldTypeString},
			models.Field{Name: "event_id", Type: models.FieldTypeString},
		),
	}

	for _, override := range overrides {
		override(params)
	}

	trigger, err := models.NewTrigger(params.Name, params.InputSchema, params.OutputSchema, params.TriggerType)
	if err != nil {
		panic(err)
	}

	return trigger
}

// WithTriggerName sets the trigger name.
func WithTriggerName(name string) func(*TriggerParams) {
	return func(p *TriggerParams) {
		p.Name = name
	}
}

// ActionParams are the constructor parameters of a test action.
type ActionParams struct {
	Name         string
	ActionType   string
	InputSchema  models.Schema
	OutputSchema models.Schema
}

// CreateTestAction creates an action with default values that can be
// overridden.
func CreateTestAction(overrides ...func(*ActionParams)) *models.Action {
	params := &ActionParams{
		Name:       "Test Action",
		ActionType: "data_processing",
		InputSchema: MustSchema(
			models.Field{Name: "data", Type: models.FieldTypeObject},
		),
		OutputSchema: MustSchema(
			models.Field{Name: "result", Type: models.FieldTypeString},
			models.Field{Name: "status", Type: models.FieldTypeBoolean},
		),
	}

	for _, override := range overrides {
		override(params)
	}

	action, err := models.NewAction(params.Name, params.InputSchema, params.OutputSchema, params.ActionType)
	if err != nil {
		panic(err)
	}

	return action
}

// WithActionName sets the action name.
func WithActionName(name string) func(*ActionParams) {
	return func(p *ActionParams) {
		p.Name = name
	}
}

// WithActionType sets the action type.
func WithActionType(actionType string) func(*ActionParams) {
	return func(p *ActionParams) {
		p.ActionType = actionType
	}
}

// CreateTestRecipe creates a recipe around a default trigger with the
// given top-level actions.
func CreateTestRecipe(name string, actions ...*models.Action) *models.Recipe {
	recipe, err := models.NewRecipe(name, CreateTestTrigger(), actions...)
	if err != nil {
		panic(err)
	}

	return recipe
}
