package models

import (
	"github.com/google/uuid"
)

// Trigger is the entry point of a recipe. A recipe holds exactly one
// trigger, fixed at recipe construction; it is always childless.
type Trigger struct {
	id           string
	name         string
	inputSchema  Schema
	outputSchema Schema
	triggerType  string
}

// NewTrigger builds a trigger. Name and trigger type are required; both
// schemas may be empty. The trigger is fully formed on return, there is no
// post-construction mutation.
func NewTrigger(name string, inputSchema, outputSchema Schema, triggerType string) (*Trigger, error) {
	if err := validateComponentParams(CategoryTypeTrigger, name, triggerType); err != nil {
		return nil, err
	}

	return &Trigger{
		id:           uuid.New().String(),
		name:         name,
		inputSchema:  inputSchema,
		outputSchema: outputSchema,
		triggerType:  triggerType,
	}, nil
}

func (t *Trigger) ID() string             { return t.id }
func (t *Trigger) Name() string           { return t.name }
func (t *Trigger) Category() CategoryType { return CategoryTypeTrigger }
func (t *Trigger) InputSchema() Schema    { return t.inputSchema }
func (t *Trigger) OutputSchema() Schema   { return t.outputSchema }

// TriggerType returns the free-form category label of the trigger, e.g. "cron".
func (t *Trigger) TriggerType() string { return t.triggerType }

// Children returns an empty list; triggers are always leaves.
func (t *Trigger) Children() []Component { return []Component{} }
