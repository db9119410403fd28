package oapi

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidateRequired reports every required property without a value, including those of
// nested objects. Read-only properties are assigned by the server and are not checked.
// It must pass before a creation payload is sent.
func (o *Object) ValidateRequired() error {
	return o.validateRequired(o.schema.name + ".")
}

func (o *Object) validateRequired(path string) error {
	var errs error
	for _, p := range o.schema.properties {
		v, ok := o.values[p.Name]
		if !ok {
			if p.Required && !p.ReadOnly {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s%s", ErrMissingRequired, path, p.Name))
			}
			continue
		}

		switch t := v.(type) {
		case *Object:
			errs = multierr.Append(errs, t.validateRequired(path+p.Name+"."))
		case []any:
			for i, item := range t {
				if obj, ok := item.(*Object); ok {
					errs = multierr.Append(errs, obj.validateRequired(fmt.Sprintf("%s%s[%d].", path, p.Name, i)))
				}
			}
		}
	}
	return errs
}
