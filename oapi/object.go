package oapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/spf13/cast"
)

// objectHolder is implemented by Object and by every generated wrapper embedding it.
type objectHolder interface {
	OAPIObject() *Object
}

// Object is one instance of a Schema. It owns the attribute values keyed by property name
// and the unsaved changes recorded since it was fetched, created or last saved.
type Object struct {
	schema  *Schema
	values  map[string]any
	changes map[string]*Change
}

func newObject(schema *Schema) *Object {
	return &Object{
		schema:  schema,
		values:  make(map[string]any),
		changes: make(map[string]*Change),
	}
}

// Parse builds an Object from data returned by the server. Values are coerced to their
// canonical types, unknown keys are ignored and the result has no pending changes.
func Parse(schema *Schema, raw map[string]any) (*Object, error) {
	o := newObject(schema)
	for _, p := range schema.properties {
		v, ok := raw[p.Name]
		if !ok || v == nil {
			continue
		}
		cv, err := schema.validateValue(p, v, true)
		if err != nil {
			return nil, err
		}
		if cv != nil {
			o.values[p.Name] = cv
		}
	}
	return o, nil
}

// ParseJSON decodes a JSON object returned by the server and parses it with Parse. Numbers
// are decoded as json.Number so integers beyond 2^53 keep their exact value.
func ParseJSON(schema *Schema, data []byte) (*Object, error) {
	raw, err := DecodeJSONObject(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", schema.name, err)
	}
	return Parse(schema, raw)
}

// DecodeJSONObject decodes a JSON object with numbers kept as json.Number.
func DecodeJSONObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return raw, nil
}

// New builds an Object from creation input. Every supplied value is validated and recorded
// as an unsaved change, so the whole input is sent when the object is first saved.
func New(schema *Schema, input map[string]any) (*Object, error) {
	if schema.immutable {
		return nil, fmt.Errorf("%w: %s cannot be created", ErrImmutable, schema.name)
	}

	names := make([]string, 0, len(input))
	for name := range input {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p, err := schema.lookup(name)
		if err != nil {
			return nil, err
		}
		if p.ReadOnly {
			return nil, fmt.Errorf("%w: %s.%s", ErrReadOnly, schema.name, name)
		}
	}

	o := newObject(schema)
	for _, p := range schema.properties {
		v, ok := input[p.Name]
		if !ok {
			continue
		}
		cv, err := schema.validateValue(p, v, false)
		if err != nil {
			return nil, err
		}
		if cv == nil {
			continue
		}
		o.assign(p.Name, cv)
	}
	return o, nil
}

// OAPIObject returns the Object itself; generated wrappers inherit it by embedding.
func (o *Object) OAPIObject() *Object {
	return o
}

// Schema returns the property table this Object was built from.
func (o *Object) Schema() *Schema {
	return o.schema
}

// ID returns the value of the primary identifier as a string, or "" when the schema has
// no primary identifier or the value is not set yet.
func (o *Object) ID() string {
	p, ok := o.schema.PrimaryIdentifier()
	if !ok {
		return ""
	}
	v, ok := o.values[p.Name]
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

// Get returns the current value of a property. Array values are returned as copies;
// nested objects are returned by reference so changes to them are tracked.
func (o *Object) Get(name string) (any, error) {
	p, err := o.schema.lookup(name)
	if err != nil {
		return nil, err
	}
	v, ok := o.values[name]
	if !ok {
		return nil, nil
	}
	if p.IsArray() {
		return copyItems(v.([]any)), nil
	}
	return v, nil
}

// Is returns the value of a boolean property.
func (o *Object) Is(name string) (bool, error) {
	p, err := o.schema.lookup(name)
	if err != nil {
		return false, err
	}
	if p.Type != TypeBoolean || p.IsArray() {
		return false, fmt.Errorf("%s.%s is not a boolean property", o.schema.name, name)
	}
	b, _ := o.values[name].(bool)
	return b, nil
}

// Set validates value and stores it. Setting a property to its current value records no change.
// Nil clears an optional property.
func (o *Object) Set(name string, value any) error {
	p, err := o.mutable(name)
	if err != nil {
		return err
	}
	cv, err := o.schema.validateValue(p, value, false)
	if err != nil {
		return err
	}
	if valuesEqual(o.values[name], cv) {
		return nil
	}
	if _, fromMap := value.(map[string]any); fromMap {
		cur, _ := o.values[name].(*Object)
		if next, ok := cv.(*Object); ok && cur != nil && cur.Equal(next) {
			return nil
		}
	}
	o.assign(name, cv)
	return nil
}

// ApplyServerValue stores a value assigned by the server, such as the identifier returned
// after a create. It bypasses read-only and immutability rules and records no change.
func (o *Object) ApplyServerValue(name string, value any) error {
	p, err := o.schema.lookup(name)
	if err != nil {
		return err
	}
	cv, err := o.schema.validateValue(p, value, true)
	if err != nil {
		return err
	}
	if cv == nil {
		delete(o.values, name)
		return nil
	}
	o.values[name] = cv
	return nil
}

// Append adds values to the end of an array property.
func (o *Object) Append(name string, values ...any) error {
	return o.editArray(name, values, func(cur, items []any) ([]any, error) {
		next := make([]any, 0, len(cur)+len(items))
		next = append(next, cur...)
		return append(next, items...), nil
	})
}

// Prepend adds values to the start of an array property.
func (o *Object) Prepend(name string, values ...any) error {
	return o.editArray(name, values, func(cur, items []any) ([]any, error) {
		next := make([]any, 0, len(cur)+len(items))
		next = append(next, items...)
		return append(next, cur...), nil
	})
}

// InsertAt inserts values into an array property before index.
func (o *Object) InsertAt(name string, index int, values ...any) error {
	return o.editArray(name, values, func(cur, items []any) ([]any, error) {
		if index < 0 || index > len(cur) {
			return nil, fmt.Errorf("%s.%s: insert index %d out of range [0,%d]", o.schema.name, name, index, len(cur))
		}
		next := make([]any, 0, len(cur)+len(items))
		next = append(next, cur[:index]...)
		next = append(next, items...)
		return append(next, cur[index:]...), nil
	})
}

// DeleteAt removes the item at index from an array property.
func (o *Object) DeleteAt(name string, index int) error {
	return o.editArray(name, nil, func(cur, _ []any) ([]any, error) {
		if index < 0 || index >= len(cur) {
			return nil, fmt.Errorf("%s.%s: delete index %d out of range [0,%d)", o.schema.name, name, index, len(cur))
		}
		next := make([]any, 0, len(cur)-1)
		next = append(next, cur[:index]...)
		return append(next, cur[index+1:]...), nil
	})
}

// DeleteIf removes every item of an array property for which match returns true.
// Nothing is recorded when no item matches.
func (o *Object) DeleteIf(name string, match func(item any) bool) error {
	if match == nil {
		return fmt.Errorf("%s.%s: delete-if needs a match function", o.schema.name, name)
	}
	return o.editArray(name, nil, func(cur, _ []any) ([]any, error) {
		next := make([]any, 0, len(cur))
		for _, item := range cur {
			if !match(item) {
				next = append(next, item)
			}
		}
		if len(next) == len(cur) {
			return nil, nil
		}
		return next, nil
	})
}

// editArray validates values, computes the next array with edit and stores it as a new slice,
// leaving the previous slice untouched for the change record. A nil result means no change.
func (o *Object) editArray(name string, values []any, edit func(cur, items []any) ([]any, error)) error {
	p, err := o.mutable(name)
	if err != nil {
		return err
	}
	if !p.IsArray() {
		return fmt.Errorf("%w: %s.%s", ErrNotArray, o.schema.name, name)
	}

	items := make([]any, 0, len(values))
	for _, v := range values {
		item, err := o.schema.validateSingle(p, v, false)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	cur, _ := o.values[name].([]any)
	next, err := edit(cur, items)
	if err != nil || next == nil {
		return err
	}
	if err := o.schema.checkItems(p, next); err != nil {
		return err
	}
	if valuesEqual(cur, next) {
		return nil
	}
	o.assign(name, next)
	return nil
}

func (o *Object) mutable(name string) (*PropertyDefinition, error) {
	if o.schema.immutable {
		return nil, fmt.Errorf("%w: %s", ErrImmutable, o.schema.name)
	}
	p, err := o.schema.lookup(name)
	if err != nil {
		return nil, err
	}
	if p.ReadOnly {
		return nil, fmt.Errorf("%w: %s.%s", ErrReadOnly, o.schema.name, name)
	}
	return p, nil
}

// assign stores an already validated value and records the change.
func (o *Object) assign(name string, value any) {
	old := o.values[name]
	if value == nil {
		delete(o.values, name)
	} else {
		o.values[name] = value
	}
	o.recordChange(name, old)
}

// StringValue returns a string property, or "" when unset.
func (o *Object) StringValue(name string) string {
	s, _ := o.values[name].(string)
	return s
}

// IntValue returns an integer property, or 0 when unset.
func (o *Object) IntValue(name string) int64 {
	n, _ := o.values[name].(int64)
	return n
}

// FloatValue returns a number property, or 0 when unset.
func (o *Object) FloatValue(name string) float64 {
	f, _ := o.values[name].(float64)
	return f
}

// BoolValue returns a boolean property, or false when unset.
func (o *Object) BoolValue(name string) bool {
	b, _ := o.values[name].(bool)
	return b
}

// TimeValue returns a date-time property, or the zero time when unset.
func (o *Object) TimeValue(name string) time.Time {
	t, _ := o.values[name].(time.Time)
	return t
}

// ObjectValue returns a nested object property, or nil when unset.
func (o *Object) ObjectValue(name string) *Object {
	n, _ := o.values[name].(*Object)
	return n
}

// AnyValue returns the stored value of a property as is; arrays are copied.
func (o *Object) AnyValue(name string) any {
	v, ok := o.values[name]
	if !ok {
		return nil
	}
	if items, isArray := v.([]any); isArray {
		return copyItems(items)
	}
	return v
}

// StringList returns a copy of a string array property.
func (o *Object) StringList(name string) []string {
	return listOf[string](o.values[name])
}

// IntList returns a copy of an integer array property.
func (o *Object) IntList(name string) []int64 {
	return listOf[int64](o.values[name])
}

// FloatList returns a copy of a number array property.
func (o *Object) FloatList(name string) []float64 {
	return listOf[float64](o.values[name])
}

// BoolList returns a copy of a boolean array property.
func (o *Object) BoolList(name string) []bool {
	return listOf[bool](o.values[name])
}

// TimeList returns a copy of a date-time array property.
func (o *Object) TimeList(name string) []time.Time {
	return listOf[time.Time](o.values[name])
}

// AnyList returns a copy of an array property of untyped values.
func (o *Object) AnyList(name string) []any {
	return listOf[any](o.values[name])
}

// ObjectList returns a copy of an object array property. The nested objects are shared.
func (o *Object) ObjectList(name string) []*Object {
	return listOf[*Object](o.values[name])
}

func listOf[T any](v any) []T {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if t, ok := item.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func copyItems(items []any) []any {
	if items == nil {
		return nil
	}
	return append(make([]any, 0, len(items)), items...)
}

// valuesEqual compares canonical values. Nested objects compare by identity.
func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return reflect.DeepEqual(a, b)
	}
}
