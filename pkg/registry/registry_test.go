package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testElement struct {
	id        string        `fhir:"id,type=string"`
	extension []*testCoding `fhir:"extension"`
}

type testCoding struct {
	testElement
	system *testURI `fhir:"system,summary"`
	code   *string  `fhir:"code,summary"`
}

func (*testCoding) FHIRType() string { return "Coding" }

type testURI struct{}

func (*testURI) FHIRType() string { return "uri" }

type testResource struct {
	testElement
	status   *testCoding   `fhir:"status,required,modifier,binding=Status,strength=required,valueSet=http://example.org/vs|1.0"`
	subject  *testCoding   `fhir:"subject,required,targets=Patient|Group"`
	value    any           `fhir:"value[x],choice=string|Quantity"`
	purpose  []*testCoding `fhir:"purpose,min=1"`
	data     []byte        `fhir:"data"`
	untagged string
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag("status,required,summary,binding=X,strength=required,valueSet=http://a/vs|4.0.1")
	require.NoError(t, err)
	assert.Equal(t, "status", tag.Name)
	assert.Equal(t, 1, tag.Min)
	assert.True(t, tag.Summary)
	require.NotNil(t, tag.Binding)
	assert.Equal(t, Binding{Name: "X", Strength: "required", ValueSet: "http://a/vs|4.0.1"}, *tag.Binding)

	tag, err = ParseTag("occurrence,choice=dateTime|Period|Timing,targets=Patient")
	require.NoError(t, err)
	assert.Equal(t, []string{"dateTime", "Period", "Timing"}, tag.Choice)
	assert.Equal(t, []string{"Patient"}, tag.Targets)

	_, err = ParseTag(",required")
	assert.Error(t, err)
	_, err = ParseTag("x,bogus")
	assert.Error(t, err)
	_, err = ParseTag("x,min=abc")
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	r := New()
	info, err := r.Register(KindResource, "Test", (*testResource)(nil))
	require.NoError(t, err)

	assert.Equal(t, "TestElement", info.Base)
	names := make([]string, len(info.Elements))
	for i, e := range info.Elements {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"id", "extension", "status", "subject", "value[x]", "purpose", "data"}, names)
	assert.Len(t, info.OwnElements(), 5)

	id, _ := info.Element("id")
	assert.True(t, id.Inherited)
	assert.Equal(t, []string{"string"}, id.Types)

	ext, _ := info.Element("extension")
	assert.Equal(t, "*", ext.Max)
	assert.True(t, ext.IsList())
	assert.Equal(t, []string{"Coding"}, ext.Types)

	status, _ := info.Element("status")
	assert.Equal(t, 1, status.Min)
	assert.Equal(t, "1", status.Max)
	assert.True(t, status.Modifier)
	assert.Equal(t, "Test.status", status.Path)
	assert.Equal(t, "required", status.Binding.Strength)

	subject, _ := info.Element("subject")
	assert.Equal(t, []string{"Patient", "Group"}, subject.Targets)

	value, _ := info.Element("value[x]")
	assert.True(t, value.Choice)
	assert.Equal(t, []string{"string", "Quantity"}, value.Types)

	purpose, _ := info.Element("purpose")
	assert.Equal(t, 1, purpose.Min)
	assert.Equal(t, "*", purpose.Max)

	data, _ := info.Element("data")
	assert.Equal(t, "1", data.Max, "byte slices are single values")

	_, ok := info.Element("untagged")
	assert.False(t, ok)
}

func TestRegisterErrors(t *testing.T) {
	r := New()
	_, err := r.Register(KindComplex, "Bad", testCoding{})
	assert.Error(t, err)

	r.MustRegister(KindComplex, "Coding", (*testCoding)(nil))
	_, err = r.Register(KindComplex, "Coding", (*testCoding)(nil))
	assert.Error(t, err)

	assert.Panics(t, func() { r.MustRegister(KindComplex, "Nil", nil) })
}

func TestLookup(t *testing.T) {
	r := New()
	r.MustRegister(KindComplex, "Coding", (*testCoding)(nil))
	r.MustRegister(KindResource, "Test", (*testResource)(nil))

	info, ok := r.Lookup("Coding")
	require.True(t, ok)
	assert.Equal(t, KindComplex, info.Kind)

	info, ok = r.LookupValue(&testResource{})
	require.True(t, ok)
	assert.Equal(t, "Test", info.Name)

	_, ok = r.Lookup("Patient")
	assert.False(t, ok)

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, "Coding", r.Types()[0].Name)
	assert.Len(t, r.ByKind(KindResource), 1)
	assert.Empty(t, r.ByKind(KindPrimitive))
}
