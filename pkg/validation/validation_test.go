package validation

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/issue"
)

type fakeType string

func (f fakeType) FHIRType() string { return string(f) }

type simpleQuantity struct{}

func (simpleQuantity) FHIRType() string    { return "SimpleQuantity" }
func (simpleQuantity) Specializes() string { return "Quantity" }

type fakeCode struct {
	value string
	valid bool
}

const fakeValueSet = "http://hl7.org/fhir/ValueSet/chargeitem-status|4.0.1"

func (c *fakeCode) CodeValue() (string, bool) { return c.value, c.value != "" }
func (c *fakeCode) InValueSet() bool          { return c.valid }
func (c *fakeCode) ValueSetURL() string       { return fakeValueSet }

func withConfig(t *testing.T, cfg Config) {
	t.Helper()
	prev := SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })
}

func TestRequire(t *testing.T) {
	var typedNil *fakeCode

	assert.NoError(t, Require("ChargeItem", "status", &fakeCode{}))

	for _, v := range []any{nil, typedNil} {
		err := Require("ChargeItem", "status", v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRequired))

		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, "ChargeItem.status", e.Path)
		assert.Equal(t, "status", e.Element)
		assert.Equal(t, "Missing required element 'ChargeItem.status'", err.Error())
	}
}

func TestRequireNonEmpty(t *testing.T) {
	err := RequireNonEmpty[*fakeCode]("OperationOutcome", "issue", nil)
	assert.True(t, errors.Is(err, ErrEmptyList))

	err = RequireNonEmpty("OperationOutcome", "issue", []*fakeCode{{}, nil})
	assert.True(t, errors.Is(err, ErrNilListItem))
	e, _ := AsError(err)
	assert.Equal(t, "1", e.Detail)

	assert.NoError(t, RequireNonEmpty("OperationOutcome", "issue", []*fakeCode{{}}))
	assert.NoError(t, CheckList[*fakeCode]("Bundle", "entry", nil))
}

func TestChoice(t *testing.T) {
	allowed := []string{"dateTime", "Period", "Timing"}

	assert.NoError(t, Choice("ChargeItem", "occurrence", nil, allowed...))
	assert.NoError(t, Choice("ChargeItem", "occurrence", fakeType("Period"), allowed...))

	err := Choice("ChargeItem", "occurrence", fakeType("string"), allowed...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidChoice))
	assert.Equal(t, "Invalid choice type 'string' for ChargeItem.occurrence. Allowed: Period, Timing, dateTime", err.Error())

	assert.NoError(t, Choice("Extension", "value", simpleQuantity{}, "Quantity"))

	err = RequireChoice("CoverageEligibilityRequest.item.diagnosis", "diagnosis", nil, "CodeableConcept")
	assert.True(t, errors.Is(err, ErrRequired))
}

func TestCheckCode(t *testing.T) {
	var typedNil *fakeCode

	assert.NoError(t, CheckCode("ChargeItem", "status", typedNil))
	assert.NoError(t, CheckCode("ChargeItem", "status", &fakeCode{}))
	assert.NoError(t, CheckCode("ChargeItem", "status", &fakeCode{value: "billed", valid: true}))

	err := CheckCode("ChargeItem", "status", &fakeCode{value: "paid"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBinding))
	assert.Contains(t, err.Error(), "'paid'")
	assert.Contains(t, err.Error(), "chargeitem-status")

	err = CheckCodes("CoverageEligibilityRequest", "purpose", []*fakeCode{{value: "benefits", valid: true}, {value: "x"}})
	assert.True(t, errors.Is(err, ErrBinding))
}

func TestCheckReferenceType(t *testing.T) {
	withConfig(t, DefaultConfig())
	targets := []string{"Patient", "Group"}

	tests := []struct {
		name          string
		reference     string
		referenceType string
		targets       []string
		wantErr       bool
	}{
		{name: "empty", targets: targets},
		{name: "relative", reference: "Patient/123", targets: targets},
		{name: "relative history", reference: "Group/1/_history/2", targets: targets},
		{name: "absolute", reference: "http://example.org/fhir/Patient/123", targets: targets},
		{name: "fragment", reference: "#p1", targets: targets},
		{name: "urn", reference: "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", targets: targets},
		{name: "unknown resource type is not parsed", reference: "Foo/1", targets: targets},
		{name: "type only", referenceType: "Patient", targets: targets},
		{name: "resource accepts anything", reference: "Encounter/1", targets: []string{"Resource"}},
		{name: "wrong relative", reference: "Encounter/1", targets: targets, wantErr: true},
		{name: "wrong absolute", reference: "https://x.org/fhir/Encounter/1", targets: targets, wantErr: true},
		{name: "wrong type", referenceType: "Encounter", targets: targets, wantErr: true},
		{name: "type disagrees with reference", reference: "Group/1", referenceType: "Patient", targets: targets, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckReferenceType("ChargeItem", "subject", tt.reference, tt.referenceType, tt.targets...)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrReferenceType))
		})
	}
}

func TestCheckReferenceTypeDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckReferenceTypes = false
	withConfig(t, cfg)

	assert.NoError(t, CheckReferenceType("ChargeItem", "subject", "Encounter/1", "", "Patient"))
}

func TestCheckPrimitive(t *testing.T) {
	withConfig(t, DefaultConfig())

	assert.NoError(t, CheckPrimitive("date", "value", "date", "2024-01-31"))

	err := CheckPrimitive("date", "value", "date", "2024-01-32")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	e, _ := AsError(err)
	assert.Equal(t, "date.value", e.Path)
	assert.Equal(t, "2024-01-32", e.Detail)

	err = CheckPrimitive("string", "value", "string", "bell\a")
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.NoError(t, CheckPrimitive("string", "value", "string", "tab\tand\r\nnewline"))
}

func TestCheckPrimitiveLimits(t *testing.T) {
	withConfig(t, Config{MaxStringLength: 4})

	err := CheckPrimitive("string", "value", "string", "12345")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Equal(t, issue.CodeTooLong, ToResult(err).Issues[0].Code)

	// control characters are tolerated when the check is disabled
	assert.NoError(t, CheckPrimitive("string", "value", "string", "a\ab"))
	assert.NoError(t, CheckPrimitive("uri", "value", "uri", strings.Repeat("x", 10)))
}

func TestRequireValueOrChildren(t *testing.T) {
	assert.NoError(t, RequireValueOrChildren("Coding", true))

	err := RequireValueOrChildren("Coding", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoValueOrChildren))
	e, _ := AsError(err)
	assert.Equal(t, "Coding", e.Path)
	assert.Empty(t, e.Element)
}

func TestFirst(t *testing.T) {
	a := errors.New("a")
	assert.NoError(t, First())
	assert.NoError(t, First(nil, nil))
	assert.Equal(t, a, First(nil, a, errors.New("b")))
}

func TestErrorIssue(t *testing.T) {
	err := Require("Bundle", "type", nil)
	e, ok := AsError(err)
	require.True(t, ok)

	iss := e.Issue()
	assert.Equal(t, issue.SeverityError, iss.Severity)
	assert.Equal(t, issue.CodeRequired, iss.Code)
	assert.Equal(t, []string{"Bundle.type"}, iss.Expression)
	assert.Equal(t, string(issue.DiagElementRequired), iss.MessageID)

	result := ToResult(errors.Wrap(err, "building bundle"))
	require.Len(t, result.Issues, 1)
	assert.Equal(t, issue.CodeRequired, result.Issues[0].Code)

	result = ToResult(errors.New("boom"))
	assert.Equal(t, issue.CodeProcessing, result.Issues[0].Code)
	assert.Empty(t, ToResult(nil).Issues)
}

func TestReferenceTargetType(t *testing.T) {
	assert.Equal(t, "Patient", ReferenceTargetType("Patient/1"))
	assert.Equal(t, "Patient", ReferenceTargetType("http://a.org/fhir/Patient/1/_history/3"))
	assert.Empty(t, ReferenceTargetType("#x"))
	assert.Empty(t, ReferenceTargetType("Patient"))
	assert.True(t, IsResourceType("SubstanceSpecification"))
	assert.False(t, IsResourceType("Resource"))
	assert.Len(t, ResourceTypes(), len(resourceTypes))
}
