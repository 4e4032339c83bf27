package jsonschema

import j "github.com/goccy/go-json"

// Schema is a minimal JSON Schema representation used to document what a
// validator accepts. Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type    string `json:"type,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Default any    `json:"default,omitempty"`
	Enum    []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`
}

// Marshal renders the schema as JSON.
func (s *Schema) Marshal() ([]byte, error) { return j.Marshal(s) }
