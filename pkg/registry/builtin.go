package registry

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/recidex/recidex/pkg/models"
)

// RegisterBuiltinKinds registers the built-in trigger and action kinds.
func (r *Registry) RegisterBuiltinKinds() {
	r.RegisterTrigger(cronTriggerKind(), newCronTrigger)
	r.RegisterTrigger(webhookTriggerKind(), newWebhookTrigger)

	r.RegisterAction(dataProcessingKind(), newDataProcessingAction)
	r.RegisterAction(calculationKind(), newCalculationAction)
	r.RegisterAction(transformationKind(), newTransformationAction)
	r.RegisterAction(validationKind(), newValidationAction)

	r.logger.Debug("Registered builtin kinds", "triggers", len(r.triggers), "actions", len(r.actions))
}

func configString(config map[string]any, key string) string {
	value, _ := config[key].(string)

	return value
}

// cron trigger

func cronTriggerKind() *models.RegisteredKind {
	return &models.RegisteredKind{
		Type:        "cron",
		Name:        "Schedule (Cron)",
		Description: "Starts the recipe on a schedule defined by a cron expression",
		Schema: &models.JSONSchema{
			Type:        "object",
			Title:       "Cron Trigger Configuration",
			Description: "Configuration for cron-based scheduling",
			Properties: map[string]*models.Property{
				"name": {
					Type:        "string",
					Description: "Display name of the trigger",
				},
				"schedule": {
					Type:        "string",
					Description: "Cron expression (e.g. '0 */5 * * *' for every 5 minutes)",
				},
			},
			Required: []string{"name", "schedule"},
		},
	}
}

func newCronTrigger(config map[string]any) (*models.Trigger, error) {
	schedule := configString(config, "schedule")
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", schedule, err)
	}

	inputSchema, err := models.NewSchema(
		models.Field{Name: "schedule", Type: models.FieldTypeString},
	)
	if err != nil {
		return nil, err
	}

	outputSchema, err := models.NewSchema(
		models.Field{Name: "timestamp", Type: models.FieldTypeDatetime},
		models.Field{Name: "event_id", Type: models.FieldTypeString},
	)
	if err != nil {
		return nil, err
	}

	return models.NewTrigger(configString(config, "name"), inputSchema, outputSchema, "cron")
}

// webhook trigger

func webhookTriggerKind() *models.RegisteredKind {
	return &models.RegisteredKind{
		Type:        "webhook",
		Name:        "Webhook",
		Description: "Starts the recipe when an external event arrives on an endpoint path",
		Schema: &models.JSONSchema{
			Type:        "object",
			Title:       "Webhook Trigger Configuration",
			Properties: map[string]*models.Property{
				"name": {
					Type:        "string",
					Description: "Display name of the trigger",
				},
				"path": {
					Type:        "string",
					Description: "Endpoint path, must start with '/'",
				},
			},
			Required: []string{"name", "path"},
		},
	}
}

func newWebhookTrigger(config map[string]any) (*models.Trigger, error) {
	path := configString(config, "path")
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("webhook path %q must start with '/'", path)
	}

	inputSchema, err := models.NewSchema(
		models.Field{Name: "path", Type: models.FieldTypeString},
	)
	if err != nil {
		return nil, err
	}

	outputSchema, err := models.NewSchema(
		models.Field{Name: "payload", Type: models.FieldTypeObject},
		models.Field{Name: "received_at", Type: models.FieldTypeDatetime},
	)
	if err != nil {
		return nil, err
	}

	return models.NewTrigger(configString(config, "name"), inputSchema, outputSchema, "webhook")
}

// actions

func namedActionKind(kindType, name, description string) *models.RegisteredKind {
	return &models.RegisteredKind{
		Type:        kindType,
		Name:        name,
		Description: description,
		Schema: &models.JSONSchema{
			Type: "object",
			Properties: map[string]*models.Property{
				"name": {
					Type:        "string",
					Description: "Display name of the action",
				},
			},
			Required: []string{"name"},
		},
	}
}

func dataProcessingKind() *models.RegisteredKind {
	return namedActionKind("data_processing", "Data Processing",
		"Processes a data object and reports a result with a status")
}

func newDataProcessingAction(config map[string]any) (*models.Action, error) {
	inputSchema, err := models.NewSchema(
		models.Field{Name: "data", Type: models.FieldTypeObject},
	)
	if err != nil {
		return nil, err
	}

	outputSchema, err := models.NewSchema(
		models.Field{Name: "result", Type: models.FieldTypeString},
		models.Field{Name: "status", Type: models.FieldTypeBoolean},
	)
	if err != nil {
		return nil, err
	}

	return models.NewAction(configString(config, "name"), inputSchema, outputSchema, "data_processing")
}

func numericAction(config map[string]any, actionType string) (*models.Action, error) {
	inputSchema, err := models.NewSchema(
		models.Field{Name: "value", Type: models.FieldTypeNumber},
	)
	if err != nil {
		return nil, err
	}

	outputSchema, err := models.NewSchema(
		models.Field{Name: "processed_value", Type: models.FieldTypeNumber},
	)
	if err != nil {
		return nil, err
	}

	return models.NewAction(configString(config, "name"), inputSchema, outputSchema, actionType)
}

func calculationKind() *models.RegisteredKind {
	return namedActionKind("calculation", "Calculation",
		"Computes a numeric value from a numeric input")
}

func newCalculationAction(config map[string]any) (*models.Action, error) {
	return numericAction(config, "calculation")
}

func transformationKind() *models.RegisteredKind {
	return namedActionKind("transformation", "Transformation",
		"Transforms a numeric value into another numeric value")
}

func newTransformationAction(config map[string]any) (*models.Action, error) {
	return numericAction(config, "transformation")
}

func validationKind() *models.RegisteredKind {
	return namedActionKind("validation", "Validation",
		"Checks a numeric value against validation rules")
}

func newValidationAction(config map[string]any) (*models.Action, error) {
	return numericAction(config, "validation")
}
