package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchema(t *testing.T, fields ...Field) Schema {
	t.Helper()

	schema, err := NewSchema(fields...)
	require.NoError(t, err)

	return schema
}

// Trigger tests

func TestNewTrigger_Valid(t *testing.T) {
	input := mustSchema(t, Field{Name: "schedule", Type: FieldTypeString})
	output := mustSchema(t, Field{Name: "event_id", Type: FieldTypeString})

	trigger, err := NewTrigger("Morning Sync", input, output, "cron")
	require.NoError(t, err)

	assert.NotEmpty(t, trigger.ID())
	assert.Equal(t, "Morning Sync", trigger.Name())
	assert.Equal(t, "cron", trigger.TriggerType())
	assert.Equal(t, CategoryTypeTrigger, trigger.Category())
	assert.Equal(t, "{schedule: string}", trigger.InputSchema().String())
	assert.Equal(t, "{event_id: string}", trigger.OutputSchema().String())
}

func TestNewTrigger_MissingName(t *testing.T) {
	_, err := NewTrigger("", EmptySchema(), EmptySchema(), "cron")
	require.Error(t, err)

	var componentErr *ComponentError

	require.ErrorAs(t, err, &componentErr)
	assert.Equal(t, "trigger", componentErr.Kind)
}

func TestNewTrigger_MissingType(t *testing.T) {
	_, err := NewTrigger("T", EmptySchema(), EmptySchema(), "")
	assert.Error(t, err)
}

func TestTrigger_AlwaysChildless(t *testing.T) {
	trigger, err := NewTrigger("T", EmptySchema(), EmptySchema(), "cron")
	require.NoError(t, err)

	assert.Empty(t, trigger.Children())
}

// Action tests

func TestNewAction_Valid(t *testing.T) {
	action, err := NewAction("A1", EmptySchema(), EmptySchema(), "data_processing")
	require.NoError(t, err)

	assert.NotEmpty(t, action.ID())
	assert.Equal(t, "A1", action.Name())
	assert.Equal(t, "data_processing", action.ActionType())
	assert.Equal(t, CategoryTypeAction, action.Category())
	assert.Empty(t, action.Children())
}

func TestNewAction_MissingName(t *testing.T) {
	_, err := NewAction("", EmptySchema(), EmptySchema(), "data_processing")
	assert.Error(t, err)
}

func TestNewAction_InitialNestedActions(t *testing.T) {
	first, err := NewAction("first", EmptySchema(), EmptySchema(), "calculation")
	require.NoError(t, err)

	second, err := NewAction("second", EmptySchema(), EmptySchema(), "calculation")
	require.NoError(t, err)

	parent, err := NewAction("parent", EmptySchema(), EmptySchema(), "data_processing", first, second)
	require.NoError(t, err)

	nested := parent.NestedActions()
	require.Len(t, nested, 2)
	assert.Same(t, first, nested[0])
	assert.Same(t, second, nested[1])
}

func TestNewAction_NilInitialNestedAction(t *testing.T) {
	_, err := NewAction("parent", EmptySchema(), EmptySchema(), "data_processing", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilAction)
}

func TestAction_AddNestedActionPreservesOrder(t *testing.T) {
	parent, err := NewAction("parent", EmptySchema(), EmptySchema(), "data_processing")
	require.NoError(t, err)

	names := []string{"n1", "n2", "n3"}
	for _, name := range names {
		child, err := NewAction(name, EmptySchema(), EmptySchema(), "calculation")
		require.NoError(t, err)
		require.NoError(t, parent.AddNestedAction(child))
	}

	children := parent.Children()
	require.Len(t, children, 3)

	for i, name := range names {
		assert.Equal(t, name, children[i].Name())
	}
}

func TestAction_NestedActionsReturnsCopy(t *testing.T) {
	child, err := NewAction("child", EmptySchema(), EmptySchema(), "calculation")
	require.NoError(t, err)

	parent, err := NewAction("parent", EmptySchema(), EmptySchema(), "data_processing", child)
	require.NoError(t, err)

	nested := parent.NestedActions()
	nested[0] = nil

	require.Len(t, parent.NestedActions(), 1)
	assert.Same(t, child, parent.NestedActions()[0])
}

func TestAction_ChildrenReturnsCopy(t *testing.T) {
	child, err := NewAction("child", EmptySchema(), EmptySchema(), "calculation")
	require.NoError(t, err)

	parent, err := NewAction("parent", EmptySchema(), EmptySchema(), "data_processing", child)
	require.NoError(t, err)

	children := parent.Children()
	children[0] = nil

	require.Len(t, parent.Children(), 1)
	assert.NotNil(t, parent.Children()[0])
}

// Recipe tests

func TestNewRecipe_Valid(t *testing.T) {
	trigger, err := NewTrigger("T", EmptySchema(), EmptySchema(), "cron")
	require.NoError(t, err)

	recipe, err := NewRecipe("My Recipe", trigger)
	require.NoError(t, err)

	assert.NotEmpty(t, recipe.ID())
	assert.Equal(t, "My Recipe", recipe.Name())
	assert.Same(t, trigger, recipe.Trigger())
	assert.Empty(t, recipe.Actions())
}

func TestNewRecipe_NilTrigger(t *testing.T) {
	_, err := NewRecipe("My Recipe", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilTrigger)
}

func TestNewRecipe_MissingName(t *testing.T) {
	trigger, err := NewTrigger("T", EmptySchema(), EmptySchema(), "cron")
	require.NoError(t, err)

	_, err = NewRecipe("", trigger)
	assert.Error(t, err)
}

func TestRecipe_AddActionPreservesOrder(t *testing.T) {
	trigger, err := NewTrigger("T", EmptySchema(), EmptySchema(), "cron")
	require.NoError(t, err)

	recipe, err := NewRecipe("My Recipe", trigger)
	require.NoError(t, err)

	names := []string{"A1", "A2", "A3"}
	for _, name := range names {
		action, err := NewAction(name, EmptySchema(), EmptySchema(), "data_processing")
		require.NoError(t, err)
		require.NoError(t, recipe.AddAction(action))
	}

	actions := recipe.Actions()
	require.Len(t, actions, 3)

	for i, name := range names {
		assert.Equal(t, name, actions[i].Name())
	}
}

func TestRecipe_AddNilAction(t *testing.T) {
	trigger, err := NewTrigger("T", EmptySchema(), EmptySchema(), "cron")
	require.NoError(t, err)

	recipe, err := NewRecipe("My Recipe", trigger)
	require.NoError(t, err)

	assert.ErrorIs(t, recipe.AddAction(nil), ErrNilAction)
}

func TestRecipe_ActionsReturnsCopy(t *testing.T) {
	trigger, err := NewTrigger("T", EmptySchema(), EmptySchema(), "cron")
	require.NoError(t, err)

	action, err := NewAction("A1", EmptySchema(), EmptySchema(), "data_processing")
	require.NoError(t, err)

	recipe, err := NewRecipe("My Recipe", trigger, action)
	require.NoError(t, err)

	actions := recipe.Actions()
	actions[0] = nil

	require.Len(t, recipe.Actions(), 1)
	assert.Same(t, action, recipe.Actions()[0])
}
