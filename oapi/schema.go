// oapi/schema.go
/* Package oapi maps Jamf Pro JSON API objects onto declarative property tables derived
from the server's OpenAPI definitions. A Schema describes one object type; an Object holds
the values of one instance, validates every mutation against the Schema and tracks unsaved
changes so that partial updates only send what changed. */
package oapi

import (
	"errors"
	"fmt"
	"regexp"

	mapset "github.com/deckarep/golang-set/v2"
)

// ValueType is the kind of value a property holds.
type ValueType int

const (
	TypeString   ValueType = iota // string
	TypeInteger                   // int64
	TypeNumber                    // float64
	TypeBoolean                   // bool
	TypeDateTime                  // time.Time, RFC 3339 on the wire
	TypeObject                    // *Object of the property's nested Schema
	TypeAny                       // any JSON value, stored as decoded
)

// String returns the OpenAPI style name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeDateTime:
		return "date-time"
	case TypeObject:
		return "object"
	case TypeAny:
		return "any"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Multiplicity says whether a property holds one value or an array of values.
type Multiplicity int

const (
	Single Multiplicity = iota
	Array
)

// Identifier marks the property that identifies an instance on the server.
type Identifier int

const (
	IdentifierNone Identifier = iota
	IdentifierPrimary
)

// PropertyDefinition describes one field of an API object.
type PropertyDefinition struct {
	Name         string
	Description  string
	Type         ValueType
	Schema       *Schema // nested schema, TypeObject only
	Multiplicity Multiplicity
	Required     bool
	ReadOnly     bool
	WriteOnly    bool
	Nullable     bool
	Identifier   Identifier
	Enum         []string

	MinLength   *int
	MaxLength   *int
	Minimum     *float64
	Maximum     *float64
	Pattern     string
	MinItems    *int
	MaxItems    *int
	UniqueItems bool

	enum    mapset.Set[string]
	pattern *regexp.Regexp
}

// IsArray reports whether the property holds an array.
func (p *PropertyDefinition) IsArray() bool {
	return p.Multiplicity == Array
}

// IsPrimaryIdentifier reports whether the property identifies the instance.
func (p *PropertyDefinition) IsPrimaryIdentifier() bool {
	return p.Identifier == IdentifierPrimary
}

// Schema is the property table of one API object type. It is read-only once built.
type Schema struct {
	name       string
	immutable  bool
	properties []*PropertyDefinition
	byName     map[string]*PropertyDefinition
	primary    *PropertyDefinition
}

// NewSchema builds a Schema from its property definitions. It fails when more than one property
// claims primary identifier rank, when a name repeats, when an object property has no nested
// schema, when an enum is declared on a non-string property or when a pattern does not compile.
func NewSchema(name string, immutable bool, props ...PropertyDefinition) (*Schema, error) {
	if name == "" {
		return nil, errors.New("schema name cannot be empty")
	}

	s := &Schema{
		name:      name,
		immutable: immutable,
		byName:    make(map[string]*PropertyDefinition, len(props)),
	}

	for i := range props {
		p := props[i]

		if p.Name == "" {
			return nil, fmt.Errorf("schema %s: property %d has no name", name, i)
		}
		if _, dup := s.byName[p.Name]; dup {
			return nil, fmt.Errorf("schema %s: property %s declared twice", name, p.Name)
		}
		if p.Type == TypeObject && p.Schema == nil {
			return nil, fmt.Errorf("schema %s: object property %s has no nested schema", name, p.Name)
		}
		if len(p.Enum) > 0 {
			if p.Type != TypeString {
				return nil, fmt.Errorf("schema %s: enum on %s property %s", name, p.Type, p.Name)
			}
			p.enum = mapset.NewThreadUnsafeSet(p.Enum...)
		}
		if p.Pattern != "" {
			re, err := regexp.Compile(p.Pattern)
			if err != nil {
				return nil, fmt.Errorf("schema %s: property %s pattern: %w", name, p.Name, err)
			}
			p.pattern = re
		}
		if p.IsPrimaryIdentifier() {
			if s.primary != nil {
				return nil, fmt.Errorf("schema %s: both %s and %s claim primary identifier rank", name, s.primary.Name, p.Name)
			}
		}

		def := &p
		if def.IsPrimaryIdentifier() {
			s.primary = def
		}
		s.properties = append(s.properties, def)
		s.byName[def.Name] = def
	}

	return s, nil
}

// MustSchema is NewSchema for package-level tables; it panics on an invalid definition.
func MustSchema(name string, immutable bool, props ...PropertyDefinition) *Schema {
	s, err := NewSchema(name, immutable, props...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name as published in the OpenAPI document.
func (s *Schema) Name() string {
	return s.name
}

// Immutable reports whether instances of this schema can be changed by the client.
func (s *Schema) Immutable() bool {
	return s.immutable
}

// Properties returns the property definitions in declaration order.
func (s *Schema) Properties() []*PropertyDefinition {
	return append([]*PropertyDefinition(nil), s.properties...)
}

// Property looks up a property definition by name.
func (s *Schema) Property(name string) (*PropertyDefinition, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// PrimaryIdentifier returns the property with primary identifier rank, if any.
func (s *Schema) PrimaryIdentifier() (*PropertyDefinition, bool) {
	return s.primary, s.primary != nil
}

func (s *Schema) lookup(name string) (*PropertyDefinition, error) {
	p, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no property %q", ErrUnknownProperty, s.name, name)
	}
	return p, nil
}
