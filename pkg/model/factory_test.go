package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/constraint"
	"github.com/gofhir/model/pkg/issue"
	"github.com/gofhir/model/pkg/registry"
	"github.com/gofhir/model/pkg/validation"
)

func TestNewOperationOutcome(t *testing.T) {
	_, err := NewChargeItemBuilder().Build()
	result := validation.ToResult(err)
	result.AddWarning(issue.CodeProcessing, "checked without terminology server")

	oo, err := NewOperationOutcome(result)
	require.NoError(t, err)
	require.Len(t, oo.Issue(), 2)

	first := oo.Issue()[0]
	assert.Equal(t, IssueSeverityError, first.Severity().Value())
	assert.Equal(t, IssueTypeRequired, first.Code().Value())
	require.Len(t, first.Expression(), 1)
	assert.Equal(t, "ChargeItem.status", first.Expression()[0].Value())
	assert.NotEmpty(t, first.Diagnostics().Value())

	second := oo.Issue()[1]
	assert.Equal(t, IssueSeverityWarning, second.Severity().Value())
	assert.Equal(t, IssueTypeProcessing, second.Code().Value())
}

func TestNewOperationOutcomeEmpty(t *testing.T) {
	oo, err := NewOperationOutcome(issue.NewResult())
	require.NoError(t, err)
	require.Len(t, oo.Issue(), 1)
	assert.Equal(t, IssueSeverityInformation, oo.Issue()[0].Severity().Value())
	assert.Equal(t, IssueTypeInformational, oo.Issue()[0].Code().Value())

	oo, err = NewOperationOutcome(nil)
	require.NoError(t, err)
	assert.Len(t, oo.Issue(), 1)
}

func TestNewNarrative(t *testing.T) {
	n, err := NewNarrative(NarrativeStatusGenerated, `<div xmlns="http://www.w3.org/1999/xhtml">Charge</div>`)
	require.NoError(t, err)
	assert.Equal(t, NarrativeStatusGenerated, n.Status().Value())

	_, err = NewNarrative(NarrativeStatus("draft"), `<div xmlns="http://www.w3.org/1999/xhtml">Charge</div>`)
	assert.Error(t, err)
}

func TestConstraints(t *testing.T) {
	ids := func(cs []constraint.Constraint) []string {
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = c.ID
		}
		return out
	}

	assert.Equal(t, []string{"bdl-5", "bdl-8"}, ids(ConstraintsOf("Bundle.entry")))
	assert.Equal(t, ids(ConstraintsOf("Bundle")), ids(Constraints(newBundle(t))))
	assert.Equal(t, []string{"dom-2", "dom-3", "dom-4", "dom-5", "dom-6"}, ids(Constraints(newChargeItem(t))))
	assert.Empty(t, ConstraintsOf("Coding"))

	for _, c := range AllConstraints() {
		assert.True(t, strings.HasPrefix(c.Source, "http://hl7.org/fhir/StructureDefinition/"), c.ID)
		assert.NotEmpty(t, c.Expression, c.ID)
	}

	dom6 := ConstraintsOf("ChargeItem")[4]
	assert.False(t, dom6.IsRule())
	assert.Equal(t, "ChargeItem", dom6.Location)
}

func TestConstraintsAreCopies(t *testing.T) {
	cs := ConstraintsOf("Period")
	require.Len(t, cs, 1)
	cs[0].Expression = "false"
	assert.NotEqual(t, "false", ConstraintsOf("Period")[0].Expression)
}

func TestRegistered(t *testing.T) {
	assert.Len(t, registry.Default.ByKind(registry.KindPrimitive), 20)
	assert.Len(t, registry.Default.ByKind(registry.KindComplex), 18)
	assert.Len(t, registry.Default.ByKind(registry.KindBackbone), 22)
	assert.Len(t, registry.Default.ByKind(registry.KindResource), 5)

	info, ok := registry.Lookup("ChargeItem")
	require.True(t, ok)
	assert.Equal(t, "DomainResource", info.Base)

	status, ok := info.Element("status")
	require.True(t, ok)
	assert.Equal(t, 1, status.Min)
	assert.True(t, status.Modifier)
	assert.Equal(t, []string{"code"}, status.Types)
	require.NotNil(t, status.Binding)
	assert.Equal(t, "http://hl7.org/fhir/ValueSet/chargeitem-status|4.0.1", status.Binding.ValueSet)

	occurrence, ok := info.Element("occurrence[x]")
	require.True(t, ok)
	assert.Equal(t, []string{"dateTime", "Period", "Timing"}, occurrence.Types)

	subject, _ := info.Element("subject")
	assert.Equal(t, []string{"Reference"}, subject.Types)
	assert.Equal(t, []string{"Patient", "Group"}, subject.Targets)

	text, ok := info.Element("text")
	require.True(t, ok)
	assert.True(t, text.Inherited)

	entry, ok := registry.Lookup("Bundle.entry")
	require.True(t, ok)
	assert.Equal(t, "BackboneElement", entry.Base)
	resource, _ := entry.Element("resource")
	assert.Equal(t, []string{"Resource"}, resource.Types)
	link, _ := entry.Element("link")
	assert.Equal(t, "*", link.Max)

	value, ok := registry.Lookup("decimal")
	require.True(t, ok)
	assert.Equal(t, registry.KindPrimitive, value.Kind)

	byValue, ok := registry.Default.LookupValue(newBundle(t))
	require.True(t, ok)
	assert.Equal(t, "Bundle", byValue.Name)
}
