package main

import (
	"fmt"

	"github.com/recidex/recidex/pkg/models"
	"github.com/recidex/recidex/pkg/registry"
)

// buildExampleRecipe constructs the sample recipe: a cron trigger, a flat
// data-processing action, a processing action with two levels of nesting,
// and a final flat action.
func buildExampleRecipe(reg *registry.Registry) (*models.Recipe, error) {
	trigger, err := reg.CreateTrigger("cron", map[string]any{
		"name":     "T",
		"schedule": "0 * * * *",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create trigger: %w", err)
	}

	a1, err := reg.CreateAction("data_processing", map[string]any{"name": "A1"})
	if err != nil {
		return nil, fmt.Errorf("failed to create action A1: %w", err)
	}

	a2, err := reg.CreateAction("data_processing", map[string]any{"name": "A2"})
	if err != nil {
		return nil, fmt.Errorf("failed to create action A2: %w", err)
	}

	a21, err := reg.CreateAction("calculation", map[string]any{"name": "A2.1"})
	if err != nil {
		return nil, fmt.Errorf("failed to create action A2.1: %w", err)
	}

	a22, err := reg.CreateAction("transformation", map[string]any{"name": "A2.2"})
	if err != nil {
		return nil, fmt.Errorf("failed to create action A2.2: %w", err)
	}

	a221, err := reg.CreateAction("validation", map[string]any{"name": "A2.2.1"})
	if err != nil {
		return nil, fmt.Errorf("failed to create action A2.2.1: %w", err)
	}

	if err := a22.AddNestedAction(a221); err != nil {
		return nil, err
	}

	if err := a2.AddNestedAction(a21); err != nil {
		return nil, err
	}

	if err := a2.AddNestedAction(a22); err != nil {
		return nil, err
	}

	a3, err := reg.CreateAction("data_processing", map[string]any{"name": "A3"})
	if err != nil {
		return nil, fmt.Errorf("failed to create action A3: %w", err)
	}

	return models.NewRecipe("Example Recipe", trigger, a1, a2, a3)
}
