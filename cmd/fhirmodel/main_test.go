package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/validation"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fhirmodel v")
	assert.Contains(t, out, "FHIR 4.0.1 (hl7.fhir.r4.core#4.0.1)")
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types", "--kind", "resource")
	require.NoError(t, err)
	for _, name := range []string{"Bundle", "ChargeItem", "CoverageEligibilityRequest", "OperationOutcome", "SubstanceSpecification"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "Period")

	_, err = run(t, "types", "--kind", "logical")
	assert.Error(t, err)
}

func TestTypesJSON(t *testing.T) {
	out, err := run(t, "types", "--output", "json", "--kind", "backbone")
	require.NoError(t, err)

	var types []TypeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &types))
	require.NotEmpty(t, types)
	for _, tt := range types {
		assert.Equal(t, "backbone", tt.Kind, tt.Name)
	}
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "ChargeItem")
	require.NoError(t, err)
	assert.Contains(t, out, "ChargeItem (resource, base DomainResource)")
	assert.Contains(t, out, "Reference(Patient | Group)")
	assert.Contains(t, out, "http://hl7.org/fhir/ValueSet/chargeitem-status|4.0.1 (required)")
	assert.Contains(t, out, "dom-2")
	assert.NotContains(t, out, "implicitRules")

	out, err = run(t, "describe", "--inherited", "ChargeItem")
	require.NoError(t, err)
	assert.Contains(t, out, "implicitRules")

	_, err = run(t, "describe", "Patient")
	assert.Error(t, err)

	_, err = run(t, "describe")
	assert.Error(t, err)
}

func TestDescribeJSON(t *testing.T) {
	out, err := run(t, "describe", "--output", "json", "Bundle.entry.request")
	require.NoError(t, err)

	var described struct {
		TypeOutput
		Constraints []ConstraintOutput `json:"constraints"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &described))
	assert.Equal(t, "Bundle.entry.request", described.Name)
	require.NotEmpty(t, described.Elements)
	assert.Equal(t, "method", described.Elements[0].Name)
	assert.Equal(t, 1, described.Elements[0].Min)
	assert.Equal(t, "required", described.Elements[0].Strength)
	assert.Empty(t, described.Constraints)
}

func TestConstraints(t *testing.T) {
	out, err := run(t, "constraints", "Bundle")
	require.NoError(t, err)
	assert.Contains(t, out, "bdl-1")
	assert.NotContains(t, out, "dom-2")

	out, err = run(t, "constraints")
	require.NoError(t, err)
	assert.Contains(t, out, "dom-2")
	assert.Contains(t, out, "per-1")

	_, err = run(t, "constraints", "Nothing")
	assert.Error(t, err)
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.json")
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"resourceType":"Bundle","type":"collection"}`), 0o600))
	require.NoError(t, os.WriteFile(invalid, []byte(`{"resourceType":"Bundle","type":"collection","total":3}`), 0o600))

	out, err := run(t, "check", "--output", "json", valid, invalid)
	assert.ErrorIs(t, err, errCheckFailed)

	var results []ResultOutput
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "constraints", results[0].Source)

	assert.Equal(t, valid, results[1].Source)
	assert.True(t, results[1].Valid)
	assert.Zero(t, results[1].Errors)

	assert.Equal(t, invalid, results[2].Source)
	assert.False(t, results[2].Valid)
	assert.Equal(t, 1, results[2].Errors)
}

func TestCheckBadInput(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))

	out, err := run(t, "check", broken)
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "== "+broken+" ==")
	assert.Contains(t, out, "Status: INVALID")

	_, err = run(t, "check", filepath.Join(dir, "none-*.json"))
	assert.Error(t, err)
}

func TestFailedCheckRestoresOptions(t *testing.T) {
	t.Setenv("FHIRMODEL_MAX_STRING_LENGTH", "8")
	t.Setenv("FHIRMODEL_REFERENCE_TYPE_CHECKS", "false")
	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))

	_, err := run(t, "check", broken)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Equal(t, validation.DefaultConfig(), validation.CurrentConfig())

	_, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, validation.DefaultConfig(), validation.CurrentConfig())
}

func TestCheckSchemaNeedsPackage(t *testing.T) {
	_, err := run(t, "check", "--schema", "--package", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errCheckFailed)
}

func TestInvalidOutput(t *testing.T) {
	_, err := run(t, "version", "--output", "xml")
	assert.Error(t, err)
}
