package oapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wI2L/jsondiff"
)

// PatchOperation is one RFC 6902 JSON Patch operation.
type PatchOperation struct {
	Op    string          `json:"op"`
	From  string          `json:"from,omitempty"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ToAPI returns the full representation of the object, suitable for a POST or PUT body.
// Unset properties are left out, as are nested objects that serialize to nothing.
func (o *Object) ToAPI() map[string]any {
	out := make(map[string]any, len(o.values))
	for _, p := range o.schema.properties {
		v, ok := o.values[p.Name]
		if !ok {
			continue
		}
		sv := serializeValue(v)
		if isEmptyObject(sv) {
			continue
		}
		out[p.Name] = sv
	}
	return out
}

// ChangesPayload returns only the properties with unsaved changes, each with its new value,
// suitable for a PATCH body. Read-only properties are never included. A nested object that
// was modified in place contributes its own changes payload. Immutable objects return nil.
func (o *Object) ChangesPayload() map[string]any {
	if o.schema.immutable {
		return nil
	}

	changes := o.Changes()
	out := make(map[string]any, len(changes))
	for _, p := range o.schema.properties {
		c, ok := changes[p.Name]
		if !ok || p.ReadOnly {
			continue
		}

		current := o.values[p.Name]
		switch {
		case c.Assigned, p.IsArray():
			out[p.Name] = serializeValue(current)
		default:
			if nested, ok := current.(*Object); ok {
				if sub := nested.ChangesPayload(); len(sub) > 0 {
					out[p.Name] = sub
				}
			}
		}
	}
	return out
}

// MarshalJSON encodes the full representation returned by ToAPI.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.ToAPI())
}

// Equal reports whether both objects share a schema and serialize to the same JSON payload.
// Numbers compare by their JSON text, so 5, int64(5) and json.Number("5") are equal.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.schema != other.schema {
		return false
	}
	a, errA := json.Marshal(o.ToAPI())
	b, errB := json.Marshal(other.ToAPI())
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// JSONPatch returns the unsaved changes as an RFC 6902 patch that turns the last saved state
// into the current one. Operations on read-only properties are dropped.
func (o *Object) JSONPatch() ([]byte, error) {
	if o.schema.immutable {
		return []byte("[]"), nil
	}

	source, err := json.Marshal(o.originalAPI())
	if err != nil {
		return nil, fmt.Errorf("encoding saved %s: %w", o.schema.name, err)
	}
	target, err := json.Marshal(o.ToAPI())
	if err != nil {
		return nil, fmt.Errorf("encoding current %s: %w", o.schema.name, err)
	}

	patch, err := jsondiff.CompareJSON(source, target)
	if err != nil {
		return nil, fmt.Errorf("diffing %s: %w", o.schema.name, err)
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}

	var ops []PatchOperation
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, err
	}

	kept := make([]PatchOperation, 0, len(ops))
	for _, op := range ops {
		if p, ok := o.schema.byName[topLevelProperty(op.Path)]; ok && p.ReadOnly {
			continue
		}
		kept = append(kept, op)
	}
	return json.Marshal(kept)
}

// originalAPI rebuilds the full representation as it was before any unsaved change.
func (o *Object) originalAPI() map[string]any {
	out := make(map[string]any, len(o.values))
	for _, p := range o.schema.properties {
		var v any
		if c, ok := o.changes[p.Name]; ok {
			v = c.Old
		} else {
			v = o.values[p.Name]
		}
		if v == nil {
			continue
		}
		sv := originalValue(v)
		if isEmptyObject(sv) {
			continue
		}
		out[p.Name] = sv
	}
	return out
}

func originalValue(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.originalAPI()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = originalValue(item)
		}
		return out
	default:
		return serializeValue(v)
	}
}

func serializeValue(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.ToAPI()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = serializeValue(item)
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}

func isEmptyObject(v any) bool {
	m, ok := v.(map[string]any)
	return ok && len(m) == 0
}

// topLevelProperty returns the unescaped first segment of a JSON pointer.
func topLevelProperty(pointer string) string {
	segment := strings.TrimPrefix(pointer, "/")
	if i := strings.IndexByte(segment, '/'); i >= 0 {
		segment = segment[:i]
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(segment)
}
