// codegen/openapi.go
/* Package codegen turns the component schemas of an OpenAPI 3 document into oapi property
tables and the typed Go wrappers around them. */
package codegen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const refPrefix = "#/components/schemas/"

// Document is the subset of an OpenAPI 3 document the generator reads. JSON documents
// decode through the same path since JSON is valid YAML.
type Document struct {
	OpenAPI    string `yaml:"openapi"`
	Components struct {
		Schemas SchemaMap `yaml:"schemas"`
	} `yaml:"components"`
}

// SchemaObject is one OpenAPI schema, with the x-identifier and x-immutable extensions.
type SchemaObject struct {
	Ref         string          `yaml:"$ref"`
	AllOf       []*SchemaObject `yaml:"allOf"`
	Type        string          `yaml:"type"`
	Format      string          `yaml:"format"`
	Description string          `yaml:"description"`
	Required    []string        `yaml:"required"`
	Properties  SchemaMap       `yaml:"properties"`
	Items       *SchemaObject   `yaml:"items"`
	Enum        []string        `yaml:"enum"`
	ReadOnly    bool            `yaml:"readOnly"`
	WriteOnly   bool            `yaml:"writeOnly"`
	Nullable    bool            `yaml:"nullable"`
	MinLength   *int            `yaml:"minLength"`
	MaxLength   *int            `yaml:"maxLength"`
	Minimum     *float64        `yaml:"minimum"`
	Maximum     *float64        `yaml:"maximum"`
	Pattern     string          `yaml:"pattern"`
	MinItems    *int            `yaml:"minItems"`
	MaxItems    *int            `yaml:"maxItems"`
	UniqueItems bool            `yaml:"uniqueItems"`
	Identifier  string          `yaml:"x-identifier"`
	Immutable   bool            `yaml:"x-immutable"`
}

// NamedSchema pairs a schema with the key it was declared under.
type NamedSchema struct {
	Name   string
	Schema *SchemaObject
}

// SchemaMap keeps a YAML mapping of schemas in document order, which a Go map would lose.
type SchemaMap []NamedSchema

// UnmarshalYAML decodes a mapping node pair by pair.
func (m *SchemaMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of schemas", node.Line)
	}
	out := make(SchemaMap, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var s SchemaObject
		if err := node.Content[i+1].Decode(&s); err != nil {
			return fmt.Errorf("schema %s: %w", node.Content[i].Value, err)
		}
		out = append(out, NamedSchema{Name: node.Content[i].Value, Schema: &s})
	}
	*m = out
	return nil
}

// Lookup returns the schema declared under name.
func (m SchemaMap) Lookup(name string) (*SchemaObject, bool) {
	for _, n := range m {
		if n.Name == name {
			return n.Schema, true
		}
	}
	return nil, false
}

// RefName returns the component name a schema refers to, looking through a single-entry
// allOf wrapper, or "" when the schema is inline.
func (s *SchemaObject) RefName() string {
	if s.Ref != "" {
		return strings.TrimPrefix(s.Ref, refPrefix)
	}
	if len(s.AllOf) == 1 && s.AllOf[0].Ref != "" {
		return strings.TrimPrefix(s.AllOf[0].Ref, refPrefix)
	}
	return ""
}

// IsRequired reports whether name is listed in the schema's required properties.
func (s *SchemaObject) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// ParseDocument decodes an OpenAPI document from YAML or JSON.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}
	if len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("OpenAPI document has no component schemas")
	}
	return &doc, nil
}

// LoadDocument reads and parses the OpenAPI document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDocument(data)
}
