package oapi

import "strconv"

// Change records an unsaved modification of one property.
// Assigned is set when the property itself was given a new value; Old is the value it had
// at the first change and New its current value. Nested holds the pending changes of nested
// objects, keyed by property name for a single object and by element index for arrays.
type Change struct {
	Assigned bool
	Old      any
	New      any
	Nested   map[string]Change
}

// recordChange notes that name changed from old. The first change keeps old; later changes
// only move New.
func (o *Object) recordChange(name string, old any) {
	current := o.values[name]
	if c, ok := o.changes[name]; ok {
		c.New = current
		return
	}
	o.changes[name] = &Change{Assigned: true, Old: old, New: current}
}

// Changes returns this object's unsaved changes merged with the pending changes of every
// nested object it holds.
func (o *Object) Changes() map[string]Change {
	out := make(map[string]Change, len(o.changes))
	for name, c := range o.changes {
		out[name] = Change{
			Assigned: c.Assigned,
			Old:      copyValue(c.Old),
			New:      copyValue(c.New),
		}
	}

	for _, p := range o.schema.properties {
		if p.Type != TypeObject {
			continue
		}
		nested := o.nestedChanges(p)
		if len(nested) == 0 {
			continue
		}
		c := out[p.Name]
		c.Nested = nested
		out[p.Name] = c
	}
	return out
}

func (o *Object) nestedChanges(p *PropertyDefinition) map[string]Change {
	switch v := o.values[p.Name].(type) {
	case *Object:
		return v.Changes()
	case []any:
		var out map[string]Change
		for i, item := range v {
			obj, ok := item.(*Object)
			if !ok {
				continue
			}
			if ch := obj.Changes(); len(ch) > 0 {
				if out == nil {
					out = make(map[string]Change)
				}
				out[strconv.Itoa(i)] = Change{Nested: ch}
			}
		}
		return out
	}
	return nil
}

// IsDirty reports whether the object or any nested object has unsaved changes.
func (o *Object) IsDirty() bool {
	if len(o.changes) > 0 {
		return true
	}
	for _, p := range o.schema.properties {
		if p.Type == TypeObject && len(o.nestedChanges(p)) > 0 {
			return true
		}
	}
	return false
}

// ClearChanges forgets all unsaved changes, including those of nested objects.
// It is called once the server has accepted the object.
func (o *Object) ClearChanges() {
	o.changes = make(map[string]*Change)
	for _, p := range o.schema.properties {
		if p.Type != TypeObject {
			continue
		}
		switch v := o.values[p.Name].(type) {
		case *Object:
			v.ClearChanges()
		case []any:
			for _, item := range v {
				if obj, ok := item.(*Object); ok {
					obj.ClearChanges()
				}
			}
		}
	}
}

func copyValue(v any) any {
	if items, ok := v.([]any); ok {
		return copyItems(items)
	}
	return v
}
