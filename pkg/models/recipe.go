package models

import (
	"github.com/google/uuid"
)

// Recipe is a complete automation definition: one trigger plus an ordered
// list of top-level actions. The recipe owns its trigger and all actions
// transitively; ownership is strictly tree-shaped, no component is shared
// between parents.
type Recipe struct {
	id      string
	name    string
	trigger *Trigger
	actions []*Action
}

// NewRecipe builds a recipe around a trigger. The trigger is required and
// cannot be replaced afterwards; building a new recipe is the only way to
// change it. Initial actions are appended in the order given.
func NewRecipe(name string, trigger *Trigger, actions ...*Action) (*Recipe, error) {
	if err := validate.Struct(componentParams{Name: name, Kind: "recipe"}); err != nil {
		return nil, &ComponentError{Kind: "recipe", Name: name, Err: err}
	}

	if trigger == nil {
		return nil, &ComponentError{Kind: "recipe", Name: name, Err: ErrNilTrigger}
	}

	recipe := &Recipe{
		id:      uuid.New().String(),
		name:    name,
		trigger: trigger,
	}

	for _, action := range actions {
		if err := recipe.AddAction(action); err != nil {
			return nil, err
		}
	}

	return recipe, nil
}

func (r *Recipe) ID() string   { return r.id }
func (r *Recipe) Name() string { return r.name }

// Trigger returns the recipe's trigger. Never nil.
func (r *Recipe) Trigger() *Trigger { return r.trigger }

// AddAction appends a top-level action. Same append-only semantics as
// Action.AddNestedAction.
func (r *Recipe) AddAction(action *Action) error {
	if action == nil {
		return &ComponentError{Kind: "recipe", Name: r.name, Err: ErrNilAction}
	}

	r.actions = append(r.actions, action)

	return nil
}

// Actions returns a copy of the top-level actions in insertion order.
func (r *Recipe) Actions() []*Action {
	actions := make([]*Action, len(r.actions))
	copy(actions, r.actions)

	return actions
}
