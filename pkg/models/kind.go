package models

// KindProvider defines an interface for component kinds that can describe
// their configuration as JSON Schema.
type KindProvider interface {
	GetKind() *RegisteredKind
}

// JSONSchema represents a JSON Schema for kind configuration validation.
type JSONSchema struct {
	Type        string               `json:"type"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
	Title       string               `json:"title,omitempty"`
	Description string               `json:"description,omitempty"`
}

// Property represents a JSON Schema property.
type Property struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Enum        []any                `json:"enum,omitempty"`
	Default     any                  `json:"default,omitempty"`
	Format      string               `json:"format,omitempty"`
	Pattern     string               `json:"pattern,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
}

// RegisteredKind describes a component kind known to the registry: a
// trigger or action type with metadata and a configuration schema.
type RegisteredKind struct {
	Type        string       `json:"type"`
	Category    CategoryType `json:"category"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Schema      *JSONSchema  `json:"schema"`
}
