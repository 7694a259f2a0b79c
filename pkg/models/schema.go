// Package models defines the core domain models for recipe automation trees.
package models

import (
	"strings"
)

// FieldType is the symbolic type name of a schema field.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeObject   FieldType = "object"
	FieldTypeArray    FieldType = "array"
	FieldTypeDatetime FieldType = "datetime"
)

// knownFieldTypes holds the type names accepted at schema construction.
var knownFieldTypes = map[FieldType]struct{}{
	FieldTypeString:   {},
	FieldTypeNumber:   {},
	FieldTypeBoolean:  {},
	FieldTypeObject:   {},
	FieldTypeArray:    {},
	FieldTypeDatetime: {},
}

// Field is a single named, typed entry in a schema.
type Field struct {
	Name string    `json:"name" validate:"required"`
	Type FieldType `json:"type" validate:"required"`
}

// Schema describes the input or output shape of a recipe component as an
// ordered list of named fields. Field order is insertion order and is
// preserved by String; it carries no semantic meaning beyond display.
// A Schema is immutable after construction.
type Schema struct {
	fields []Field
}

// NewSchema builds a schema from fields in the given order. Empty field
// names, duplicate field names and unrecognized type names are rejected
// with an InvalidSchemaError.
func NewSchema(fields ...Field) (Schema, error) {
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		if field.Name == "" {
			return Schema{}, &InvalidSchemaError{Field: field.Name, Err: ErrEmptySchemaField}
		}

		if _, dup := seen[field.Name]; dup {
			return Schema{}, &InvalidSchemaError{Field: field.Name, Err: ErrDuplicateSchemaField}
		}

		if _, ok := knownFieldTypes[field.Type]; !ok {
			return Schema{}, &InvalidSchemaError{Field: field.Name, Err: ErrUnknownFieldType}
		}

		seen[field.Name] = struct{}{}
	}

	s := Schema{fields: make([]Field, len(fields))}
	copy(s.fields, fields)

	return s, nil
}

// EmptySchema returns a schema with no fields.
func EmptySchema() Schema {
	return Schema{}
}

// Fields returns a copy of the schema fields in insertion order.
func (s Schema) Fields() []Field {
	fields := make([]Field, len(s.fields))
	copy(fields, s.fields)

	return fields
}

// Len returns the number of fields in the schema.
func (s Schema) Len() int {
	return len(s.fields)
}

// String renders the schema as "{field: type, field: type, ...}" in
// insertion order. An empty schema renders as "{}".
func (s Schema) String() string {
	var b strings.Builder

	b.WriteString("{")

	for i, field := range s.fields {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(field.Name)
		b.WriteString(": ")
		b.WriteString(string(field.Type))
	}

	b.WriteString("}")

	return b.String()
}
