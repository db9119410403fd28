package codegen

import "text/template"

var classTemplate = template.Must(template.New("class").Parse(`// Code generated by oapigen. DO NOT EDIT.

package {{.Package}}

{{if .NeedsTime -}}
import (
	"time"

	"{{.OAPIImport}}"
)
{{- else -}}
import "{{.OAPIImport}}"
{{- end}}

{{$c := .Class -}}
// {{$c.GoName}}Schema is the property table of {{$c.Name}}.
var {{$c.GoName}}Schema = oapi.MustSchema({{printf "%q" $c.Name}}, {{$c.Immutable}},
{{- range .Properties}}
	{{.Definition}},
{{- end}}
)

// {{$c.GoName}} is an instance of {{$c.Name}}.
{{- range .Doc}}
// {{.}}
{{- end}}
type {{$c.GoName}} struct {
	*oapi.Object
}
{{if not $c.Immutable}}
// New{{$c.GoName}} validates input and returns a {{$c.GoName}} ready to be created.
func New{{$c.GoName}}(input map[string]any) (*{{$c.GoName}}, error) {
	obj, err := oapi.New({{$c.GoName}}Schema, input)
	if err != nil {
		return nil, err
	}
	return &{{$c.GoName}}{obj}, nil
}
{{end}}
// Parse{{$c.GoName}} wraps data returned by the server.
func Parse{{$c.GoName}}(raw map[string]any) (*{{$c.GoName}}, error) {
	obj, err := oapi.Parse({{$c.GoName}}Schema, raw)
	if err != nil {
		return nil, err
	}
	return &{{$c.GoName}}{obj}, nil
}
{{range .Properties}}
{{- if .Getter}}
// {{.Getter}} returns the {{.Name}} property.
{{- range .Doc}}
// {{.}}
{{- end}}
{{- if eq .Kind "scalar"}}
func (o *{{$c.GoName}}) {{.Getter}}() {{.GoType}} {
	return o.{{.Reader}}({{printf "%q" .Name}})
}
{{- else if eq .Kind "scalarList"}}
func (o *{{$c.GoName}}) {{.Getter}}() []{{.GoType}} {
	return o.{{.Reader}}({{printf "%q" .Name}})
}
{{- else if eq .Kind "object"}}
func (o *{{$c.GoName}}) {{.Getter}}() *{{.GoType}} {
	if n := o.ObjectValue({{printf "%q" .Name}}); n != nil {
		return &{{.GoType}}{n}
	}
	return nil
}
{{- else}}
func (o *{{$c.GoName}}) {{.Getter}}() []*{{.GoType}} {
	items := o.ObjectList({{printf "%q" .Name}})
	out := make([]*{{.GoType}}, len(items))
	for i, n := range items {
		out[i] = &{{.GoType}}{n}
	}
	return out
}
{{- end}}
{{end}}
{{- if .Setter}}
{{- if eq .Kind "scalar"}}
// Set{{.GoName}} validates and stores the {{.Name}} property.
func (o *{{$c.GoName}}) Set{{.GoName}}(v {{.GoType}}) error {
	return o.Set({{printf "%q" .Name}}, v)
}
{{- else if eq .Kind "object"}}
// Set{{.GoName}} stores the {{.Name}} object; nil clears it.
func (o *{{$c.GoName}}) Set{{.GoName}}(v *{{.GoType}}) error {
	if v == nil {
		return o.Set({{printf "%q" .Name}}, nil)
	}
	return o.Set({{printf "%q" .Name}}, v)
}
{{- else}}
{{- $elem := .GoType}}{{if eq .Kind "objectList"}}{{$elem = printf "*%s" .GoType}}{{end}}
// Set{{.GoName}} replaces the {{.Name}} array.
func (o *{{$c.GoName}}) Set{{.GoName}}(v []{{$elem}}) error {
	return o.Set({{printf "%q" .Name}}, v)
}

// Append{{.GoName}} adds items to the end of the {{.Name}} array.
func (o *{{$c.GoName}}) Append{{.GoName}}(v ...{{$elem}}) error {
	return o.Append({{printf "%q" .Name}}, oapi.Items(v)...)
}

// Prepend{{.GoName}} adds items to the start of the {{.Name}} array.
func (o *{{$c.GoName}}) Prepend{{.GoName}}(v ...{{$elem}}) error {
	return o.Prepend({{printf "%q" .Name}}, oapi.Items(v)...)
}

// Insert{{.GoName}}At inserts items into the {{.Name}} array before index.
func (o *{{$c.GoName}}) Insert{{.GoName}}At(index int, v ...{{$elem}}) error {
	return o.InsertAt({{printf "%q" .Name}}, index, oapi.Items(v)...)
}

// Delete{{.GoName}}At removes the item at index from the {{.Name}} array.
func (o *{{$c.GoName}}) Delete{{.GoName}}At(index int) error {
	return o.DeleteAt({{printf "%q" .Name}}, index)
}

// Delete{{.GoName}}If removes every item of the {{.Name}} array that matches.
func (o *{{$c.GoName}}) Delete{{.GoName}}If(match func({{$elem}}) bool) error {
{{- if eq .Kind "objectList"}}
	return o.DeleteIf({{printf "%q" .Name}}, oapi.Match(func(n *oapi.Object) bool {
		return match(&{{.GoType}}{n})
	}))
{{- else}}
	return o.DeleteIf({{printf "%q" .Name}}, oapi.Match(match))
{{- end}}
}
{{- end}}
{{end}}
{{- end}}
`))
