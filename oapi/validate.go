package oapi

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cast"
)

// Validate checks value against the named property and returns it in the canonical form
// stored by an Object: string, int64, float64, bool, time.Time, *Object, []any for arrays.
// Unknown names fail with ErrUnknownProperty; constraint violations with *ValidationError.
func (s *Schema) Validate(name string, value any) (any, error) {
	p, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return s.validateValue(p, value, false)
}

// validateValue coerces a property value. Data that came from the server is only coerced,
// its enum and range constraints are trusted.
func (s *Schema) validateValue(p *PropertyDefinition, value any, fromServer bool) (any, error) {
	if value == nil {
		if p.Required && !p.Nullable && !fromServer {
			return nil, invalid(s, p, value, "required property cannot be nil")
		}
		return nil, nil
	}

	if p.IsArray() {
		return s.validateArray(p, value, fromServer)
	}
	return s.validateSingle(p, value, fromServer)
}

func (s *Schema) validateArray(p *PropertyDefinition, value any, fromServer bool) (any, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalid(s, p, value, "expected an array, got %T", value)
	}

	items := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := s.validateSingle(p, rv.Index(i).Interface(), fromServer)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if !fromServer {
		if err := s.checkItems(p, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *Schema) checkItems(p *PropertyDefinition, items []any) error {
	if p.MinItems != nil && len(items) < *p.MinItems {
		return invalid(s, p, items, "at least %d items required, got %d", *p.MinItems, len(items))
	}
	if p.MaxItems != nil && len(items) > *p.MaxItems {
		return invalid(s, p, items, "at most %d items allowed, got %d", *p.MaxItems, len(items))
	}
	if p.UniqueItems {
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, item := range items {
			key, err := json.Marshal(serializeValue(item))
			if err != nil {
				return invalid(s, p, item, "cannot compare item: %v", err)
			}
			if !seen.Add(string(key)) {
				return invalid(s, p, item, "items must be unique")
			}
		}
	}
	return nil
}

func (s *Schema) validateSingle(p *PropertyDefinition, value any, fromServer bool) (any, error) {
	if value == nil {
		return nil, invalid(s, p, value, "array items cannot be nil")
	}

	switch p.Type {
	case TypeString:
		str, ok := value.(string)
		if !ok {
			return nil, invalid(s, p, value, "expected a string, got %T", value)
		}
		if !fromServer {
			if err := s.checkString(p, str); err != nil {
				return nil, err
			}
		}
		return str, nil

	case TypeInteger:
		n, err := s.coerceInteger(p, value)
		if err != nil {
			return nil, err
		}
		if !fromServer {
			if err := s.checkRange(p, float64(n)); err != nil {
				return nil, err
			}
		}
		return n, nil

	case TypeNumber:
		switch value.(type) {
		case bool, string:
			return nil, invalid(s, p, value, "expected a number, got %T", value)
		}
		if num, ok := value.(json.Number); ok {
			value = string(num)
		}
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, invalid(s, p, value, "expected a number: %v", err)
		}
		if !fromServer {
			if err := s.checkRange(p, f); err != nil {
				return nil, err
			}
		}
		return f, nil

	case TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, invalid(s, p, value, "expected a boolean, got %T", value)
		}
		return b, nil

	case TypeDateTime:
		switch value.(type) {
		case time.Time, string:
		default:
			return nil, invalid(s, p, value, "expected a date-time, got %T", value)
		}
		t, err := cast.ToTimeE(value)
		if err != nil {
			return nil, invalid(s, p, value, "expected a date-time: %v", err)
		}
		return t.UTC(), nil

	case TypeObject:
		return s.coerceObject(p, value, fromServer)

	case TypeAny:
		return value, nil
	}

	return nil, invalid(s, p, value, "unsupported value type %s", p.Type)
}

func (s *Schema) coerceInteger(p *PropertyDefinition, value any) (int64, error) {
	switch n := value.(type) {
	case bool, string:
		return 0, invalid(s, p, value, "expected an integer, got %T", value)
	case float64:
		return s.integralFloat(p, value, n)
	case float32:
		return s.integralFloat(p, value, float64(n))
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return i, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, invalid(s, p, value, "integer overflows int64")
		}
		f, err := n.Float64()
		if err != nil {
			return 0, invalid(s, p, value, "expected an integer: %v", err)
		}
		return s.integralFloat(p, value, f)
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, invalid(s, p, value, "integer overflows int64")
		}
	case uint64:
		if n > math.MaxInt64 {
			return 0, invalid(s, p, value, "integer overflows int64")
		}
	}

	i, err := cast.ToInt64E(value)
	if err != nil {
		return 0, invalid(s, p, value, "expected an integer: %v", err)
	}
	return i, nil
}

// integralFloat converts f when it is a whole number inside the int64 range. 2^63 itself is
// representable as a float64 but not as an int64.
func (s *Schema) integralFloat(p *PropertyDefinition, value any, f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, invalid(s, p, value, "expected an integer, got a fraction")
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, invalid(s, p, value, "integer overflows int64")
	}
	return int64(f), nil
}

func (s *Schema) coerceObject(p *PropertyDefinition, value any, fromServer bool) (*Object, error) {
	switch v := value.(type) {
	case objectHolder:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, invalid(s, p, value, "nil %s object", p.Schema.name)
		}
		obj := v.OAPIObject()
		if obj == nil {
			return nil, invalid(s, p, value, "nil %s object", p.Schema.name)
		}
		if obj.schema != p.Schema {
			return nil, invalid(s, p, value, "expected a %s object, got %s", p.Schema.name, obj.schema.name)
		}
		return obj, nil

	case map[string]any:
		if fromServer || p.Schema.immutable {
			return Parse(p.Schema, v)
		}
		return New(p.Schema, v)
	}

	return nil, invalid(s, p, value, "expected a %s object, got %T", p.Schema.name, value)
}

func (s *Schema) checkString(p *PropertyDefinition, str string) error {
	if p.enum != nil && !p.enum.Contains(str) {
		return invalid(s, p, str, "must be one of: %s", strings.Join(p.Enum, ", "))
	}
	length := utf8.RuneCountInString(str)
	if p.MinLength != nil && length < *p.MinLength {
		return invalid(s, p, str, "must be at least %d characters", *p.MinLength)
	}
	if p.MaxLength != nil && length > *p.MaxLength {
		return invalid(s, p, str, "must be at most %d characters", *p.MaxLength)
	}
	if p.pattern != nil && !p.pattern.MatchString(str) {
		return invalid(s, p, str, "must match %s", p.Pattern)
	}
	return nil
}

func (s *Schema) checkRange(p *PropertyDefinition, f float64) error {
	if p.Minimum != nil && f < *p.Minimum {
		return invalid(s, p, f, "must be >= %v", *p.Minimum)
	}
	if p.Maximum != nil && f > *p.Maximum {
		return invalid(s, p, f, "must be <= %v", *p.Maximum)
	}
	return nil
}
