package codegen

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/deploymenttheory/go-jamfpro-oapi/oapi"
)

func loadTestDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := LoadDocument(filepath.Join("testdata", "openapi.yaml"))
	require.NoError(t, err)
	return doc
}

func findClass(classes []*Class, name string) *Class {
	for _, c := range classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoadDocumentKeepsPropertyOrder(t *testing.T) {
	doc := loadTestDocument(t)

	building, ok := doc.Components.Schemas.Lookup("Building")
	require.True(t, ok)

	var names []string
	for _, p := range building.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"id", "name", "streetAddress1", "city", "country"}, names)
	assert.True(t, building.IsRequired("name"))
}

func TestParseDocumentAcceptsJSON(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"openapi":"3.0.1","components":{"schemas":{"Category":{"type":"object","properties":{"id":{"type":"string"},"name":{"type":"string"},"priority":{"type":"integer"}}}}}}`))
	require.NoError(t, err)

	classes, err := BuildModel(doc)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, oapi.TypeInteger, classes[0].Properties[2].Type)
}

func TestParseDocumentWithoutSchemas(t *testing.T) {
	_, err := ParseDocument([]byte("openapi: 3.0.1\n"))
	assert.Error(t, err)
}

func TestBuildModelFollowsReferences(t *testing.T) {
	classes, err := BuildModel(loadTestDocument(t), "ComputerDiskEncryption")
	require.NoError(t, err)

	require.Len(t, classes, 2)
	assert.Equal(t, "ComputerDiskEncryption", classes[0].Name)
	assert.Equal(t, "ComputerPartitionEncryption", classes[1].Name)

	boot := classes[0].Properties[0]
	assert.Equal(t, oapi.TypeObject, boot.Type)
	assert.Equal(t, "ComputerPartitionEncryption", boot.Ref)

	users := classes[0].Properties[4]
	assert.True(t, users.Array)
	assert.Equal(t, oapi.TypeString, users.Type)
}

func TestBuildModelIdentifiersAndInlineObjects(t *testing.T) {
	classes, err := BuildModel(loadTestDocument(t))
	require.NoError(t, err)

	building := findClass(classes, "Building")
	require.NotNil(t, building)
	assert.True(t, building.Properties[0].Primary)
	assert.True(t, building.Properties[1].Required)

	history := findClass(classes, "ComputerHistoryEntry")
	require.NotNil(t, history)
	assert.True(t, history.Immutable)
	assert.Equal(t, oapi.TypeDateTime, history.Properties[1].Type)
	assert.Equal(t, "ComputerHistoryEntryDetails", history.Properties[3].Ref)
	assert.NotNil(t, findClass(classes, "ComputerHistoryEntryDetails"))
}

func TestBuildModelRejectsTwoPrimaryIdentifiers(t *testing.T) {
	doc, err := ParseDocument([]byte(`
components:
  schemas:
    MobileDevice:
      type: object
      properties:
        id:
          type: string
          x-identifier: primary
        udid:
          type: string
          x-identifier: primary
    Script:
      type: object
      properties:
        missing:
          $ref: '#/components/schemas/Nowhere'
`))
	require.NoError(t, err)

	_, err = BuildModel(doc)
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 1, "reference errors are reported before schema checks")
	assert.Contains(t, errs[0].Error(), "unresolved reference Nowhere")

	_, err = BuildModel(doc, "MobileDevice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claim primary identifier rank")
}

func TestBuildModelRejectsCycles(t *testing.T) {
	doc, err := ParseDocument([]byte(`
components:
  schemas:
    Site:
      type: object
      properties:
        parent:
          $ref: '#/components/schemas/Site'
`))
	require.NoError(t, err)

	_, err = BuildModel(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refers to itself")
}

func TestBuildModelUnknownRoot(t *testing.T) {
	_, err := BuildModel(loadTestDocument(t), "Printer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Printer not found")
}

func TestGetterNames(t *testing.T) {
	tests := []struct {
		property Property
		want     string
	}{
		{Property{GoName: "InstitutionalRecoveryKeyPresent", Type: oapi.TypeBoolean}, "IsInstitutionalRecoveryKeyPresent"},
		{Property{GoName: "IsManaged", Type: oapi.TypeBoolean}, "IsManaged"},
		{Property{GoName: "Schema", Type: oapi.TypeString}, "SchemaProperty"},
		{Property{GoName: "ID", Type: oapi.TypeInteger}, "IDProperty"},
		{Property{GoName: "SiteID", Type: oapi.TypeString}, "SiteID"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.property.GetterName())
		})
	}
	assert.Equal(t, "SiteID", goName("siteId"))
	assert.Equal(t, "FileVault2EnabledUserNames", goName("fileVault2EnabledUserNames"))
}

func TestGenerate(t *testing.T) {
	classes, err := BuildModel(loadTestDocument(t))
	require.NoError(t, err)

	files, err := NewGenerator("schemas", nil).Generate(classes)
	require.NoError(t, err)
	require.Len(t, files, len(classes))

	fset := token.NewFileSet()
	for name, src := range files {
		_, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		assert.NoError(t, err, name)
	}

	building := string(files["building.go"])
	assert.Contains(t, building, "// Code generated by oapigen. DO NOT EDIT.")
	assert.Contains(t, building, `var BuildingSchema = oapi.MustSchema("Building", false,`)
	assert.Contains(t, building, `oapi.PropertyDefinition{Name: "id", Type: oapi.TypeString, ReadOnly: true, Identifier: oapi.IdentifierPrimary},`)
	assert.Contains(t, building, "func NewBuilding(input map[string]any) (*Building, error)")
	assert.Contains(t, building, "func (o *Building) SetName(v string) error")
	assert.NotContains(t, building, "func (o *Building) ID()")
	assert.NotContains(t, building, "SetID")

	disk := string(files["computer_disk_encryption.go"])
	assert.Contains(t, disk, "Schema: ComputerPartitionEncryptionSchema")
	assert.Contains(t, disk, "func (o *ComputerDiskEncryption) IsInstitutionalRecoveryKeyPresent() bool")
	assert.Contains(t, disk, "func (o *ComputerDiskEncryption) BootPartitionEncryptionDetails() *ComputerPartitionEncryption")
	assert.Contains(t, disk, "func (o *ComputerDiskEncryption) AppendFileVault2EnabledUserNames(v ...string) error")
	assert.Contains(t, disk, "func (o *ComputerDiskEncryption) DeleteFileVault2EnabledUserNamesIf(match func(string) bool) error")

	partition := string(files["computer_partition_encryption.go"])
	assert.Contains(t, partition, "Minimum: oapi.Float(0), Maximum: oapi.Float(100)")

	history := string(files["computer_history_entry.go"])
	assert.Contains(t, history, `"time"`)
	assert.Contains(t, history, "func (o *ComputerHistoryEntry) Date() time.Time")
	assert.Contains(t, history, "func (o *ComputerHistoryEntry) IDProperty() int64")
	assert.NotContains(t, history, "func NewComputerHistoryEntry")
	assert.NotContains(t, history, "func (o *ComputerHistoryEntry) Set")
}

func TestWriteFiles(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	g := NewGenerator("schemas", zap.New(core).Sugar())

	dir := filepath.Join(t.TempDir(), "schemas")
	require.NoError(t, g.WriteFiles(dir, map[string][]byte{"building.go": []byte("package schemas\n")}))

	data, err := os.ReadFile(filepath.Join(dir, "building.go"))
	require.NoError(t, err)
	assert.Equal(t, "package schemas\n", string(data))
	assert.Equal(t, 1, logs.FilterMessage("Generated file").Len())
}

func TestGenerateUnknownReference(t *testing.T) {
	c := &Class{Name: "Building", GoName: "Building", Properties: []*Property{
		{Name: "site", GoName: "Site", Type: oapi.TypeObject, Ref: "Site"},
	}}
	_, err := NewGenerator("schemas", nil).Generate([]*Class{c})
	require.Error(t, err)
	assert.False(t, errors.Is(err, oapi.ErrUnknownProperty))
	assert.Contains(t, err.Error(), "unknown class Site")
}
