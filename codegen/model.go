package codegen

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/iancoleman/strcase"
	"go.uber.org/multierr"

	"github.com/deploymenttheory/go-jamfpro-oapi/oapi"
)

// Class is one generated object type.
type Class struct {
	Name        string // schema name in the document
	GoName      string
	Description string
	Immutable   bool
	Properties  []*Property
}

// Property is one attribute of a Class.
type Property struct {
	Name        string
	GoName      string
	Description string
	Type        oapi.ValueType
	Ref         string // class name of a nested object
	Array       bool
	Required    bool
	ReadOnly    bool
	WriteOnly   bool
	Nullable    bool
	Primary     bool
	Enum        []string
	MinLength   *int
	MaxLength   *int
	Minimum     *float64
	Maximum     *float64
	Pattern     string
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
}

// objectMethods are promoted from the embedded *oapi.Object and cannot be reused by getters.
var objectMethods = mapset.NewThreadUnsafeSet(
	"OAPIObject", "Schema", "ID", "Get", "Is", "Set", "ApplyServerValue",
	"Append", "Prepend", "InsertAt", "DeleteAt", "DeleteIf",
	"StringValue", "IntValue", "FloatValue", "BoolValue", "TimeValue", "ObjectValue", "AnyValue",
	"StringList", "IntList", "FloatList", "BoolList", "TimeList", "AnyList", "ObjectList",
	"Changes", "IsDirty", "ClearChanges", "ValidateRequired",
	"ToAPI", "ChangesPayload", "MarshalJSON", "Equal", "JSONPatch",
)

// BuildModel resolves the named component schemas, and every schema they reference, into
// classes sorted by name. With no roots every component schema is generated. Inline object
// properties become classes named after their parent and property. Each class is checked
// by building its oapi.Schema; all problems are reported together.
func BuildModel(doc *Document, roots ...string) ([]*Class, error) {
	b := &modelBuilder{
		doc:      doc,
		classes:  make(map[string]*Class),
		visiting: mapset.NewThreadUnsafeSet[string](),
	}

	if len(roots) == 0 {
		for _, n := range doc.Components.Schemas {
			roots = append(roots, n.Name)
		}
	}
	for _, name := range roots {
		s, ok := doc.Components.Schemas.Lookup(name)
		if !ok {
			b.errs = multierr.Append(b.errs, fmt.Errorf("schema %s not found in document", name))
			continue
		}
		b.class(name, s)
	}
	if b.errs != nil {
		return nil, b.errs
	}

	out := make([]*Class, 0, len(b.classes))
	for _, c := range b.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	for _, c := range out {
		if _, err := c.Schema(b.classes); err != nil {
			b.errs = multierr.Append(b.errs, err)
		}
	}
	if b.errs != nil {
		return nil, b.errs
	}
	return out, nil
}

type modelBuilder struct {
	doc      *Document
	classes  map[string]*Class
	visiting mapset.Set[string]
	errs     error
}

func (b *modelBuilder) class(name string, s *SchemaObject) {
	if _, done := b.classes[name]; done {
		return
	}
	if !b.visiting.Add(name) {
		b.errs = multierr.Append(b.errs, fmt.Errorf("schema %s refers to itself", name))
		return
	}
	defer b.visiting.Remove(name)

	if len(s.Properties) == 0 {
		b.errs = multierr.Append(b.errs, fmt.Errorf("schema %s has no properties", name))
		return
	}

	c := &Class{
		Name:        name,
		GoName:      goName(name),
		Description: s.Description,
		Immutable:   s.Immutable,
	}

	explicitID := false
	for _, n := range s.Properties {
		if n.Schema.Identifier == "primary" {
			explicitID = true
		}
	}

	for _, n := range s.Properties {
		p, err := b.property(name, n, s.IsRequired(n.Name))
		if err != nil {
			b.errs = multierr.Append(b.errs, err)
			continue
		}
		if explicitID {
			p.Primary = n.Schema.Identifier == "primary"
		} else {
			p.Primary = n.Name == "id"
		}
		c.Properties = append(c.Properties, p)
	}
	b.classes[name] = c
}

func (b *modelBuilder) property(owner string, n NamedSchema, required bool) (*Property, error) {
	s := n.Schema
	p := &Property{
		Name:        n.Name,
		GoName:      goName(n.Name),
		Description: s.Description,
		Required:    required,
		ReadOnly:    s.ReadOnly,
		WriteOnly:   s.WriteOnly,
		Nullable:    s.Nullable,
	}

	item := s
	if s.Type == "array" {
		if s.Items == nil {
			return nil, fmt.Errorf("%s.%s: array without items", owner, n.Name)
		}
		p.Array = true
		p.MinItems, p.MaxItems, p.UniqueItems = s.MinItems, s.MaxItems, s.UniqueItems
		item = s.Items
	}

	switch ref := item.RefName(); {
	case ref != "":
		target, ok := b.doc.Components.Schemas.Lookup(ref)
		if !ok {
			return nil, fmt.Errorf("%s.%s: unresolved reference %s", owner, n.Name, ref)
		}
		if len(target.Properties) == 0 {
			p.Type = scalarType(target)
			copyConstraints(p, target)
			return p, nil
		}
		b.class(ref, target)
		p.Type, p.Ref = oapi.TypeObject, ref
		return p, nil

	case item.Type == "object" && len(item.Properties) > 0:
		inline := owner + strcase.ToCamel(n.Name)
		b.class(inline, item)
		p.Type, p.Ref = oapi.TypeObject, inline
		return p, nil
	}

	p.Type = scalarType(item)
	copyConstraints(p, item)
	return p, nil
}

func scalarType(s *SchemaObject) oapi.ValueType {
	switch s.Type {
	case "string":
		if s.Format == "date-time" {
			return oapi.TypeDateTime
		}
		return oapi.TypeString
	case "integer":
		return oapi.TypeInteger
	case "number":
		return oapi.TypeNumber
	case "boolean":
		return oapi.TypeBoolean
	default:
		return oapi.TypeAny
	}
}

func copyConstraints(p *Property, s *SchemaObject) {
	if p.Type == oapi.TypeString {
		p.Enum = s.Enum
	}
	p.MinLength, p.MaxLength = s.MinLength, s.MaxLength
	p.Minimum, p.Maximum = s.Minimum, s.Maximum
	p.Pattern = s.Pattern
}

// Schema builds the oapi.Schema of the class, resolving nested classes from classes.
func (c *Class) Schema(classes map[string]*Class) (*oapi.Schema, error) {
	return c.schema(classes, make(map[string]*oapi.Schema))
}

func (c *Class) schema(classes map[string]*Class, built map[string]*oapi.Schema) (*oapi.Schema, error) {
	if s, ok := built[c.Name]; ok {
		return s, nil
	}

	defs := make([]oapi.PropertyDefinition, 0, len(c.Properties))
	for _, p := range c.Properties {
		def := p.Definition()
		if p.Ref != "" {
			nested, ok := classes[p.Ref]
			if !ok {
				return nil, fmt.Errorf("%s.%s: class %s was not built", c.Name, p.Name, p.Ref)
			}
			ns, err := nested.schema(classes, built)
			if err != nil {
				return nil, err
			}
			def.Schema = ns
		}
		defs = append(defs, def)
	}

	s, err := oapi.NewSchema(c.Name, c.Immutable, defs...)
	if err != nil {
		return nil, err
	}
	built[c.Name] = s
	return s, nil
}

// Definition returns the property definition without its nested schema.
func (p *Property) Definition() oapi.PropertyDefinition {
	def := oapi.PropertyDefinition{
		Name:        p.Name,
		Description: p.Description,
		Type:        p.Type,
		Required:    p.Required,
		ReadOnly:    p.ReadOnly,
		WriteOnly:   p.WriteOnly,
		Nullable:    p.Nullable,
		Enum:        p.Enum,
		MinLength:   p.MinLength,
		MaxLength:   p.MaxLength,
		Minimum:     p.Minimum,
		Maximum:     p.Maximum,
		Pattern:     p.Pattern,
		MinItems:    p.MinItems,
		MaxItems:    p.MaxItems,
		UniqueItems: p.UniqueItems,
	}
	if p.Array {
		def.Multiplicity = oapi.Array
	}
	if p.Primary {
		def.Identifier = oapi.IdentifierPrimary
	}
	return def
}

// GetterName is the Go name of the property's getter. Boolean getters read as predicates.
func (p *Property) GetterName() string {
	name := p.GoName
	if p.Type == oapi.TypeBoolean && !p.Array && !hasIsPrefix(name) {
		name = "Is" + name
	}
	if objectMethods.Contains(name) {
		name += "Property"
	}
	return name
}

// HasGetter reports whether a getter is generated. Write-only values are never returned
// and a string primary identifier is already served by ID.
func (p *Property) HasGetter() bool {
	return !p.WriteOnly && !(p.Primary && p.Type == oapi.TypeString && !p.Array)
}

// goName converts a schema or property name to an exported identifier, spelling a
// trailing Id as ID.
func goName(name string) string {
	n := strcase.ToCamel(name)
	if strings.HasSuffix(n, "Id") {
		n = strings.TrimSuffix(n, "Id") + "ID"
	}
	return n
}

func hasIsPrefix(name string) bool {
	return len(name) > 2 && name[:2] == "Is" && name[2] >= 'A' && name[2] <= 'Z'
}
