package schema

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/issue"
	_ "github.com/gofhir/model/pkg/model"
	"github.com/gofhir/model/pkg/registry"
)

const periodSD = `{
  "resourceType": "StructureDefinition",
  "url": "http://hl7.org/fhir/StructureDefinition/Period",
  "name": "Period",
  "kind": "complex-type",
  "type": "Period",
  "snapshot": {
    "element": [
      {"id": "Period", "path": "Period", "min": 0, "max": "*"},
      {"id": "Period.id", "path": "Period.id", "min": 0, "max": "1",
       "type": [{"code": "http://hl7.org/fhirpath/System.String"}]},
      {"id": "Period.extension", "path": "Period.extension", "min": 0, "max": "*",
       "type": [{"code": "Extension"}]},
      {"id": "Period.start", "path": "Period.start", "min": 0, "max": "1",
       "type": [{"code": "dateTime"}]},
      {"id": "Period.end", "path": "Period.end", "min": 0, "max": "1",
       "type": [{"code": "dateTime"}]}
    ]
  }
}`

const linkSD = `{
  "resourceType": "StructureDefinition",
  "url": "http://hl7.org/fhir/StructureDefinition/Bundle",
  "name": "Bundle",
  "kind": "resource",
  "type": "Bundle",
  "snapshot": {
    "element": [
      {"id": "Bundle", "path": "Bundle", "min": 0, "max": "*"},
      {"id": "Bundle.link", "path": "Bundle.link", "min": 0, "max": "*",
       "type": [{"code": "BackboneElement"}]},
      {"id": "Bundle.link.id", "path": "Bundle.link.id", "min": 0, "max": "1",
       "type": [{"code": "http://hl7.org/fhirpath/System.String"}]},
      {"id": "Bundle.link.extension", "path": "Bundle.link.extension", "min": 0, "max": "*",
       "type": [{"code": "Extension"}]},
      {"id": "Bundle.link.modifierExtension", "path": "Bundle.link.modifierExtension", "min": 0, "max": "*",
       "type": [{"code": "Extension"}]},
      {"id": "Bundle.link.relation", "path": "Bundle.link.relation", "min": 1, "max": "1",
       "type": [{"code": "string"}]},
      {"id": "Bundle.link.url", "path": "Bundle.link.url", "min": 1, "max": "1",
       "type": [{"code": "uri"}]},
      {"id": "Bundle.signature", "path": "Bundle.signature", "min": 0, "max": "1",
       "type": [{"code": "Signature"}]}
    ]
  }
}`

func mustDecode(t *testing.T, data string) *Definition {
	t.Helper()
	sd, err := Decode([]byte(data))
	require.NoError(t, err)
	defs, err := Convert(sd)
	require.NoError(t, err)
	return defs[*sd.Type]
}

func messageIDs(r *issue.Result) []string {
	ids := make([]string, len(r.Issues))
	for i, iss := range r.Issues {
		ids[i] = iss.MessageID
	}
	return ids
}

func TestDecode(t *testing.T) {
	sd, err := Decode([]byte(periodSD))
	require.NoError(t, err)
	assert.Equal(t, "Period", *sd.Type)

	_, err = Decode([]byte(`{"resourceType": "ValueSet"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"resourceType": "StructureDefinition"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	sd, err := Decode([]byte(linkSD))
	require.NoError(t, err)
	defs, err := Convert(sd)
	require.NoError(t, err)

	require.Contains(t, defs, "Bundle")
	require.Contains(t, defs, "Bundle.link")
	assert.Equal(t, "resource", defs["Bundle"].Kind)
	assert.Equal(t, "backbone", defs["Bundle.link"].Kind)

	link, ok := defs["Bundle.link"].Element("relation")
	require.True(t, ok)
	assert.Equal(t, 1, link.Min)
	assert.Equal(t, "1", link.Max)
	assert.Equal(t, []string{"string"}, link.Types)

	id, _ := defs["Bundle.link"].Element("id")
	assert.Equal(t, []string{"System.String"}, id.Types)

	_, ok = defs["Bundle"].Element("relation")
	assert.False(t, ok)
}

func TestConvertNoSnapshot(t *testing.T) {
	sd, err := Decode([]byte(`{"resourceType": "StructureDefinition", "type": "Period"}`))
	require.NoError(t, err)
	_, err = Convert(sd)
	assert.Error(t, err)
}

func TestCompareMatches(t *testing.T) {
	info, ok := registry.Lookup("Period")
	require.True(t, ok)

	result := Compare(info, mustDecode(t, periodSD))
	assert.Empty(t, result.Issues)
}

func TestCompareBackbone(t *testing.T) {
	sd, err := Decode([]byte(linkSD))
	require.NoError(t, err)
	pkg := NewPackage(sd)

	def, err := pkg.Definition("Bundle.link")
	require.NoError(t, err)
	info, ok := registry.Lookup("Bundle.link")
	require.True(t, ok)
	assert.Empty(t, Compare(info, def).Issues)

	_, err = pkg.Definition("Bundle.nothing")
	assert.Error(t, err)
	_, err = pkg.Definition("Patient")
	assert.Error(t, err)
}

func TestCompareReportsDifferences(t *testing.T) {
	def := mustDecode(t, periodSD)
	for i := range def.Elements {
		e := &def.Elements[i]
		switch e.Name {
		case "start":
			e.Min = 1
		case "extension":
			e.Max = "1"
			e.Types = []string{"Reference"}
		case "end":
			e.Name = "finish"
			e.Path = "Period.finish"
			e.Types = []string{"instant"}
		}
	}

	info, _ := registry.Lookup("Period")
	result := Compare(info, def)

	assert.ElementsMatch(t, []string{
		string(issue.DiagSchemaMaxMismatch),
		string(issue.DiagSchemaTypeMismatch),
		string(issue.DiagSchemaMinMismatch),
		string(issue.DiagSchemaMissingElement),
		string(issue.DiagSchemaUnknownElement),
	}, messageIDs(result))
	assert.True(t, result.HasErrors())

	for _, iss := range result.Issues {
		if iss.MessageID == string(issue.DiagSchemaUnknownElement) {
			assert.Equal(t, []string{"Period.end"}, iss.Expression)
		}
		if iss.MessageID == string(issue.DiagSchemaMissingElement) {
			assert.Equal(t, []string{"Period.finish"}, iss.Expression)
		}
	}
}

func TestCompareTargetsAndBindings(t *testing.T) {
	info, ok := registry.Lookup("ChargeItem")
	require.True(t, ok)

	def := &Definition{Path: "ChargeItem", Elements: []ElementSpec{
		{Name: "subject", Path: "ChargeItem.subject", Min: 1, Max: "1", Types: []string{"Reference"}, Targets: []string{"Patient"}},
		{Name: "status", Path: "ChargeItem.status", Min: 1, Max: "1", Types: []string{"code"}, Binding: &Binding{
			Strength: "required",
			ValueSet: "http://hl7.org/fhir/ValueSet/chargeitem-status|4.0.0",
		}},
	}}
	result := Compare(info, def)

	var rest []string
	for _, iss := range result.Issues {
		switch iss.MessageID {
		case string(issue.DiagSchemaTargetMismatch), string(issue.DiagSchemaBindingMismatch):
			assert.Equal(t, issue.SeverityWarning, iss.Severity, iss.MessageID)
		default:
			rest = append(rest, iss.MessageID)
		}
	}
	assert.Contains(t, messageIDs(result), string(issue.DiagSchemaTargetMismatch))
	assert.Contains(t, messageIDs(result), string(issue.DiagSchemaBindingMismatch))
	for _, id := range rest {
		assert.Equal(t, string(issue.DiagSchemaUnknownElement), id)
	}
}

func TestLoadPackage(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "package")
	require.NoError(t, os.Mkdir(content, 0o755))

	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(content, name), []byte(data), 0o600))
	}
	write("package.json", `{"name": "hl7.fhir.r4.core", "version": "4.0.1"}`)
	write("StructureDefinition-Period.json", periodSD)
	write("StructureDefinition-SimpleQuantity.json", `{
  "resourceType": "StructureDefinition",
  "url": "http://hl7.org/fhir/StructureDefinition/SimpleQuantity",
  "type": "Quantity"
}`)
	write("StructureDefinition-broken.json", `{`)
	write("ValueSet-bundle-type.json", `{"resourceType": "ValueSet"}`)

	pkg, err := LoadPackage(dir)
	require.NoError(t, err)
	assert.Equal(t, content, pkg.Dir)
	assert.Equal(t, LoadStats{Files: 3, Loaded: 1, Skipped: 1, Errors: 1}, pkg.Stats)
	assert.Equal(t, []string{"Period"}, pkg.TypeNames())

	_, ok := pkg.StructureDefinition("Quantity")
	assert.False(t, ok)

	_, err = LoadPackage(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestCompareAll(t *testing.T) {
	sd, err := Decode([]byte(periodSD))
	require.NoError(t, err)

	reg := registry.New()
	info, ok := registry.Lookup("Period")
	require.True(t, ok)
	_, err = reg.Register(info.Kind, "Period", reflectSample(info))
	require.NoError(t, err)
	coding, _ := registry.Lookup("Coding")
	_, err = reg.Register(coding.Kind, "Coding", reflectSample(coding))
	require.NoError(t, err)

	result := CompareAll(reg, NewPackage(sd))
	require.Len(t, result.Issues, 1)
	assert.Equal(t, string(issue.DiagSchemaNotFound), result.Issues[0].MessageID)
	assert.Equal(t, []string{"Coding"}, result.Issues[0].Expression)
	assert.False(t, result.HasErrors())
}

func reflectSample(info *registry.TypeInfo) any {
	return reflect.Zero(info.GoType).Interface()
}

func TestDefaultPackageDir(t *testing.T) {
	dir := DefaultPackageDir()
	if dir == "" {
		t.Skip("no home directory")
	}
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".fhir", "packages", CorePackage, "package")))
}
