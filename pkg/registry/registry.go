// Package registry provides a catalogue of recipe component kinds: trigger
// and action types with configuration schemas and factories producing
// fully-formed model components.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/recidex/recidex/pkg/models"
)

// Standard registry error types.
var (
	// ErrKindNotRegistered indicates an unknown trigger or action type.
	ErrKindNotRegistered = errors.New("component kind not registered")

	// ErrInvalidKindConfig indicates a configuration map rejected by the
	// kind's JSON Schema.
	ErrInvalidKindConfig = errors.New("invalid kind configuration")
)

// TriggerFactory builds a trigger from a validated configuration map.
type TriggerFactory func(config map[string]any) (*models.Trigger, error)

// ActionFactory builds an action from a validated configuration map.
type ActionFactory func(config map[string]any) (*models.Action, error)

type triggerEntry struct {
	kind    *models.RegisteredKind
	factory TriggerFactory
}

type actionEntry struct {
	kind    *models.RegisteredKind
	factory ActionFactory
}

// Registry holds the registered component kinds.
type Registry struct {
	logger   *slog.Logger
	triggers map[string]*triggerEntry
	actions  map[string]*actionEntry
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:   logger,
		triggers: make(map[string]*triggerEntry),
		actions:  make(map[string]*actionEntry),
	}
}

// RegisterTrigger registers a trigger kind with its factory.
func (r *Registry) RegisterTrigger(kind *models.RegisteredKind, factory TriggerFactory) {
	kind.Category = models.CategoryTypeTrigger
	r.triggers[kind.Type] = &triggerEntry{kind: kind, factory: factory}
}

// RegisterAction registers an action kind with its factory.
func (r *Registry) RegisterAction(kind *models.RegisteredKind, factory ActionFactory) {
	kind.Category = models.CategoryTypeAction
	r.actions[kind.Type] = &actionEntry{kind: kind, factory: factory}
}

// CreateTrigger validates config against the kind's schema and builds the
// trigger through the kind's factory.
func (r *Registry) CreateTrigger(kindType string, config map[string]any) (*models.Trigger, error) {
	entry, ok := r.triggers[kindType]
	if !ok {
		return nil, fmt.Errorf("trigger kind %q: %w", kindType, ErrKindNotRegistered)
	}

	if err := validateKindConfig(entry.kind, config); err != nil {
		return nil, err
	}

	return entry.factory(config)
}

// CreateAction validates config against the kind's schema and builds the
// action through the kind's factory.
func (r *Registry) CreateAction(kindType string, config map[string]any) (*models.Action, error) {
	entry, ok := r.actions[kindType]
	if !ok {
		return nil, fmt.Errorf("action kind %q: %w", kindType, ErrKindNotRegistered)
	}

	if err := validateKindConfig(entry.kind, config); err != nil {
		return nil, err
	}

	return entry.factory(config)
}

// Kinds returns all registered kinds, triggers first, each group sorted by
// type.
func (r *Registry) Kinds() []*models.RegisteredKind {
	kinds := make([]*models.RegisteredKind, 0, len(r.triggers)+len(r.actions))

	for _, entry := range r.triggers {
		kinds = append(kinds, entry.kind)
	}

	for _, entry := range r.actions {
		kinds = append(kinds, entry.kind)
	}

	sort.Slice(kinds, func(i, j int) bool {
		if kinds[i].Category != kinds[j].Category {
			return kinds[i].Category == models.CategoryTypeTrigger
		}

		return kinds[i].Type < kinds[j].Type
	})

	return kinds
}

// validateKindConfig validates a configuration map against the kind's JSON
// Schema.
func validateKindConfig(kind *models.RegisteredKind, config map[string]any) error {
	if kind.Schema == nil {
		return nil
	}

	if config == nil {
		config = map[string]any{}
	}

	schemaLoader := gojsonschema.NewGoLoader(kind.Schema)
	configLoader := gojsonschema.NewGoLoader(config)

	result, err := gojsonschema.Validate(schemaLoader, configLoader)
	if err != nil {
		return fmt.Errorf("failed to validate %q configuration: %w", kind.Type, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, resultError := range result.Errors() {
			details = append(details, resultError.String())
		}

		return fmt.Errorf("kind %q: %w: %s", kind.Type, ErrInvalidKindConfig, strings.Join(details, "; "))
	}

	return nil
}
