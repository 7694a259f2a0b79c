package models

import (
	"github.com/google/uuid"
)

// Action is a recipe step. Actions nest: an action's structural children
// are exactly its nested actions, in insertion order. Nesting depth is
// unbounded; the data model does not guard against cycles, the outline
// walker does.
type Action struct {
	id            string
	name          string
	inputSchema   Schema
	outputSchema  Schema
	actionType    string
	nestedActions []*Action
}

// NewAction builds an action. Name and action type are required; both
// schemas may be empty. Initial nested actions are appended in the order
// given; nil entries are rejected.
func NewAction(name string, inputSchema, outputSchema Schema, actionType string, nestedActions ...*Action) (*Action, error) {
	if err := validateComponentParams(CategoryTypeAction, name, actionType); err != nil {
		return nil, err
	}

	action := &Action{
		id:           uuid.New().String(),
		name:         name,
		inputSchema:  inputSchema,
		outputSchema: outputSchema,
		actionType:   actionType,
	}

	for _, nested := range nestedActions {
		if err := action.AddNestedAction(nested); err != nil {
			return nil, err
		}
	}

	return action, nil
}

func (a *Action) ID() string             { return a.id }
func (a *Action) Name() string           { return a.name }
func (a *Action) Category() CategoryType { return CategoryTypeAction }
func (a *Action) InputSchema() Schema    { return a.inputSchema }
func (a *Action) OutputSchema() Schema   { return a.outputSchema }

// ActionType returns the free-form category label of the action,
// e.g. "data_processing".
func (a *Action) ActionType() string { return a.actionType }

// AddNestedAction appends a nested action. Append is the only mutation;
// existing children are never reordered, so insertion order is stable and
// determines path indices in the outline.
func (a *Action) AddNestedAction(nested *Action) error {
	if nested == nil {
		return &ComponentError{Kind: string(CategoryTypeAction), Name: a.name, Err: ErrNilAction}
	}

	a.nestedActions = append(a.nestedActions, nested)

	return nil
}

// NestedActions returns a copy of the nested actions in insertion order.
func (a *Action) NestedActions() []*Action {
	nested := make([]*Action, len(a.nestedActions))
	copy(nested, a.nestedActions)

	return nested
}

// Children returns the nested actions as components, as a fresh slice.
func (a *Action) Children() []Component {
	children := make([]Component, len(a.nestedActions))
	for i, nested := range a.nestedActions {
		children[i] = nested
	}

	return children
}
