package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-jamfpro-oapi/oapi"
)

// DefaultOAPIImport is the import path of the runtime package generated code builds on.
const DefaultOAPIImport = "github.com/deploymenttheory/go-jamfpro-oapi/oapi"

// Generator renders classes into Go source files.
type Generator struct {
	Package    string
	OAPIImport string
	Logger     *zap.SugaredLogger
}

// NewGenerator returns a Generator for the named package.
func NewGenerator(pkg string, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Generator{Package: pkg, OAPIImport: DefaultOAPIImport, Logger: logger}
}

// FileName returns the file a class is written to.
func FileName(c *Class) string {
	return strcase.ToSnake(c.GoName) + ".go"
}

// Generate renders every class and returns the gofmt'ed sources keyed by file name.
func (g *Generator) Generate(classes []*Class) (map[string][]byte, error) {
	byName := make(map[string]*Class, len(classes))
	for _, c := range classes {
		byName[c.Name] = c
	}

	files := make(map[string][]byte, len(classes))
	var errs error
	for _, c := range classes {
		src, err := g.render(c, byName)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("class %s: %w", c.Name, err))
			continue
		}
		files[FileName(c)] = src
	}
	if errs != nil {
		return nil, errs
	}
	return files, nil
}

// WriteFiles writes the generated sources into dir, creating it when needed.
func (g *Generator) WriteFiles(dir string, files map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		g.Logger.Infow("Generated file", "path", path, "bytes", len(files[name]))
	}
	return nil
}

func (g *Generator) render(c *Class, classes map[string]*Class) ([]byte, error) {
	view := classView{
		Package:    g.Package,
		OAPIImport: g.OAPIImport,
		Class:      c,
		Doc:        commentLines(c.Description),
	}

	for _, p := range c.Properties {
		pv, err := newPropertyView(c, p, classes)
		if err != nil {
			return nil, err
		}
		if p.Type == oapi.TypeDateTime {
			view.NeedsTime = true
		}
		view.Properties = append(view.Properties, pv)
	}

	var buf bytes.Buffer
	if err := classTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

type classView struct {
	Package    string
	OAPIImport string
	Class      *Class
	Doc        []string
	NeedsTime  bool
	Properties []propertyView
}

type propertyView struct {
	Name       string
	GoName     string
	Doc        []string
	Definition string
	Kind       string // scalar, object, scalarList, objectList
	GoType     string // element type
	Reader     string
	Getter     string
	Setter     bool
}

func newPropertyView(c *Class, p *Property, classes map[string]*Class) (propertyView, error) {
	pv := propertyView{
		Name:   p.Name,
		GoName: p.GoName,
		Doc:    commentLines(p.Description),
		Setter: !p.ReadOnly && !c.Immutable,
	}
	if p.HasGetter() {
		pv.Getter = p.GetterName()
	}

	def, err := definitionLiteral(p, classes)
	if err != nil {
		return pv, err
	}
	pv.Definition = def

	if p.Type == oapi.TypeObject {
		pv.GoType = classes[p.Ref].GoName
		pv.Kind = "object"
		if p.Array {
			pv.Kind = "objectList"
		}
		return pv, nil
	}

	pv.Kind = "scalar"
	switch p.Type {
	case oapi.TypeString:
		pv.GoType, pv.Reader = "string", "String"
	case oapi.TypeInteger:
		pv.GoType, pv.Reader = "int64", "Int"
	case oapi.TypeNumber:
		pv.GoType, pv.Reader = "float64", "Float"
	case oapi.TypeBoolean:
		pv.GoType, pv.Reader = "bool", "Bool"
	case oapi.TypeDateTime:
		pv.GoType, pv.Reader = "time.Time", "Time"
	default:
		pv.GoType, pv.Reader = "any", "Any"
	}
	if p.Array {
		pv.Kind = "scalarList"
		pv.Reader += "List"
	} else {
		pv.Reader += "Value"
	}
	return pv, nil
}

var valueTypeNames = map[oapi.ValueType]string{
	oapi.TypeString:   "oapi.TypeString",
	oapi.TypeInteger:  "oapi.TypeInteger",
	oapi.TypeNumber:   "oapi.TypeNumber",
	oapi.TypeBoolean:  "oapi.TypeBoolean",
	oapi.TypeDateTime: "oapi.TypeDateTime",
	oapi.TypeObject:   "oapi.TypeObject",
	oapi.TypeAny:      "oapi.TypeAny",
}

// definitionLiteral renders the oapi.PropertyDefinition of p as a Go composite literal.
func definitionLiteral(p *Property, classes map[string]*Class) (string, error) {
	fields := []string{
		"Name: " + strconv.Quote(p.Name),
		"Type: " + valueTypeNames[p.Type],
	}
	if p.Ref != "" {
		nested, ok := classes[p.Ref]
		if !ok {
			return "", fmt.Errorf("property %s refers to unknown class %s", p.Name, p.Ref)
		}
		fields = append(fields, "Schema: "+nested.GoName+"Schema")
	}
	if p.Array {
		fields = append(fields, "Multiplicity: oapi.Array")
	}
	if p.Required {
		fields = append(fields, "Required: true")
	}
	if p.ReadOnly {
		fields = append(fields, "ReadOnly: true")
	}
	if p.WriteOnly {
		fields = append(fields, "WriteOnly: true")
	}
	if p.Nullable {
		fields = append(fields, "Nullable: true")
	}
	if p.Primary {
		fields = append(fields, "Identifier: oapi.IdentifierPrimary")
	}
	if len(p.Enum) > 0 {
		quoted := make([]string, len(p.Enum))
		for i, e := range p.Enum {
			quoted[i] = strconv.Quote(e)
		}
		fields = append(fields, "Enum: []string{"+strings.Join(quoted, ", ")+"}")
	}
	fields = appendInt(fields, "MinLength", p.MinLength)
	fields = appendInt(fields, "MaxLength", p.MaxLength)
	fields = appendFloat(fields, "Minimum", p.Minimum)
	fields = appendFloat(fields, "Maximum", p.Maximum)
	if p.Pattern != "" {
		fields = append(fields, "Pattern: "+strconv.Quote(p.Pattern))
	}
	fields = appendInt(fields, "MinItems", p.MinItems)
	fields = appendInt(fields, "MaxItems", p.MaxItems)
	if p.UniqueItems {
		fields = append(fields, "UniqueItems: true")
	}
	return "oapi.PropertyDefinition{" + strings.Join(fields, ", ") + "}", nil
}

func appendInt(fields []string, name string, v *int) []string {
	if v == nil {
		return fields
	}
	return append(fields, fmt.Sprintf("%s: oapi.Int(%d)", name, *v))
}

func appendFloat(fields []string, name string, v *float64) []string {
	if v == nil {
		return fields
	}
	return append(fields, fmt.Sprintf("%s: oapi.Float(%s)", name, strconv.FormatFloat(*v, 'g', -1, 64)))
}

func commentLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
