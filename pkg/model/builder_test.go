package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/validation"
)

func mustRef(t *testing.T, reference string) *Reference {
	t.Helper()
	r, err := NewReference(reference)
	require.NoError(t, err)
	return r
}

func mustConcept(t *testing.T, system, code string) *CodeableConcept {
	t.Helper()
	coding, err := NewCoding(system, code, "")
	require.NoError(t, err)
	cc, err := NewCodeableConcept("", coding)
	require.NoError(t, err)
	return cc
}

func requireFailure(t *testing.T, err error, kind error, path string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, kind), "got %v", err)
	verr, ok := validation.AsError(err)
	require.True(t, ok, "not a validation error: %v", err)
	assert.Equal(t, path, verr.Path)
}

func newChargeItem(t *testing.T) *ChargeItem {
	t.Helper()
	note, err := NewAnnotationBuilder().
		Author(MustString("Dr. Watson")).
		Text(MustMarkdown("Billed at the *standard* rate")).
		Build()
	require.NoError(t, err)
	price, err := NewMoneyBuilder().
		Value(MustDecimal("42.50")).
		Currency(MustCode("EUR")).
		Build()
	require.NoError(t, err)
	identifier, err := NewIdentifierBuilder().
		Use(IdentifierUseOfficial.Code()).
		System(MustUri("http://example.org/charge-items")).
		Value(MustString("CI-0001")).
		Build()
	require.NoError(t, err)

	ci, err := NewChargeItemBuilder().
		ID(MustId("ci-1")).
		Identifier(identifier).
		Status(ChargeItemStatusBillable.Code()).
		Code(mustConcept(t, "http://example.org/billing", "C1")).
		Subject(mustRef(t, "Patient/123")).
		Occurrence(MustDateTime("2020-01-01")).
		PriceOverride(price).
		Note(note).
		Build()
	require.NoError(t, err)
	return ci
}

func TestBuildWithRequiredElements(t *testing.T) {
	ci := newChargeItem(t)

	assert.Equal(t, "ChargeItem", ci.FHIRType())
	assert.Equal(t, "ci-1", ci.ID().Value())
	assert.Equal(t, ChargeItemStatusBillable, ci.Status().Value())
	assert.Equal(t, "Patient/123", ci.Subject().Reference().Value())
	assert.Equal(t, "2020-01-01", ci.Occurrence().(*DateTime).Value())
	require.Len(t, ci.Note(), 1)
	assert.Equal(t, "Dr. Watson", ci.Note()[0].Author().(*String).Value())
	assert.Nil(t, ci.Context())
	assert.Empty(t, ci.Performer())
}

func TestBuildMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		kind  error
		path  string
	}{
		{
			name: "ChargeItem.status",
			build: func() error {
				_, err := NewChargeItemBuilder().
					Code(mustConcept(t, "http://example.org/billing", "C1")).
					Subject(mustRef(t, "Patient/1")).
					Build()
				return err
			},
			kind: validation.ErrRequired,
			path: "ChargeItem.status",
		},
		{
			name: "ChargeItem.subject",
			build: func() error {
				_, err := NewChargeItemBuilder().
					Status(ChargeItemStatusPlanned.Code()).
					Code(mustConcept(t, "http://example.org/billing", "C1")).
					Build()
				return err
			},
			kind: validation.ErrRequired,
			path: "ChargeItem.subject",
		},
		{
			name: "Bundle.type",
			build: func() error {
				_, err := NewBundleBuilder().ID(MustId("b1")).Build()
				return err
			},
			kind: validation.ErrRequired,
			path: "Bundle.type",
		},
		{
			name: "Bundle.entry.request.method",
			build: func() error {
				_, err := NewBundleEntryRequestBuilder().URL(MustUri("Patient")).Build()
				return err
			},
			kind: validation.ErrRequired,
			path: "Bundle.entry.request.method",
		},
		{
			name: "OperationOutcome.issue",
			build: func() error {
				_, err := NewOperationOutcomeBuilder().Build()
				return err
			},
			kind: validation.ErrEmptyList,
			path: "OperationOutcome.issue",
		},
		{
			name: "CoverageEligibilityRequest.purpose",
			build: func() error {
				_, err := NewCoverageEligibilityRequestBuilder().
					Status(FinancialResourceStatusCodesActive.Code()).
					Patient(mustRef(t, "Patient/1")).
					Build()
				return err
			},
			kind: validation.ErrEmptyList,
			path: "CoverageEligibilityRequest.purpose",
		},
		{
			name: "Signature.type",
			build: func() error {
				_, err := NewSignatureBuilder().
					When(MustInstant("2020-01-01T00:00:00Z")).
					Who(mustRef(t, "Practitioner/1")).
					Build()
				return err
			},
			kind: validation.ErrEmptyList,
			path: "Signature.type",
		},
		{
			name: "Extension.url",
			build: func() error {
				_, err := NewExtensionBuilder().Value(NewBoolean(true)).Build()
				return err
			},
			kind: validation.ErrRequired,
			path: "Extension.url",
		},
		{
			name: "SubstanceSpecification.name.name",
			build: func() error {
				_, err := NewSubstanceSpecificationNameBuilder().Preferred(NewBoolean(true)).Build()
				return err
			},
			kind: validation.ErrRequired,
			path: "SubstanceSpecification.name.name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireFailure(t, tt.build(), tt.kind, tt.path)
		})
	}
}

func TestNilListItem(t *testing.T) {
	_, err := newChargeItem(t).ToBuilder().Note((*Annotation)(nil)).Build()
	requireFailure(t, err, validation.ErrNilListItem, "ChargeItem.note")

	_, err = NewCodeableConceptBuilder().SetCoding([]*Coding{nil}).Build()
	requireFailure(t, err, validation.ErrNilListItem, "CodeableConcept.coding")
}

func TestElementNeedsValueOrChildren(t *testing.T) {
	_, err := NewPeriodBuilder().Build()
	requireFailure(t, err, validation.ErrNoValueOrChildren, "Period")

	_, err = NewCodeableConceptBuilder().ID("only-id").Build()
	requireFailure(t, err, validation.ErrNoValueOrChildren, "CodeableConcept")

	_, err = NewBundleEntryBuilder().Build()
	requireFailure(t, err, validation.ErrNoValueOrChildren, "Bundle.entry")

	ext, err := NewExtension("http://example.org/flag", NewBoolean(true))
	require.NoError(t, err)
	_, err = NewBundleEntryBuilder().ModifierExtension(ext).Build()
	assert.NoError(t, err)
}

func TestChoiceTypes(t *testing.T) {
	base := newChargeItem(t)

	_, err := base.ToBuilder().Occurrence(mustConcept(t, "http://example.org", "x")).Build()
	requireFailure(t, err, validation.ErrInvalidChoice, "ChargeItem.occurrence")

	period, err := NewPeriodBuilder().Start(MustDateTime("2020-01-01")).Build()
	require.NoError(t, err)
	ci, err := base.ToBuilder().Occurrence(period).Build()
	require.NoError(t, err)
	assert.Same(t, period, ci.Occurrence())

	qty, err := NewQuantityBuilder().Value(MustDecimal("3")).Build()
	require.NoError(t, err)
	_, err = NewTimingRepeatBuilder().Bounds(qty).Build()
	requireFailure(t, err, validation.ErrInvalidChoice, "Timing.repeat.bounds")

	duration, err := NewDurationBuilder().
		Value(MustDecimal("3")).
		System(MustUri("http://unitsofmeasure.org")).
		Code(MustCode("d")).
		Build()
	require.NoError(t, err)
	_, err = NewTimingRepeatBuilder().Bounds(duration).Build()
	assert.NoError(t, err)
}

func TestChoiceAcceptsSpecializedType(t *testing.T) {
	sq, err := NewSimpleQuantityBuilder().Value(MustDecimal("1.5")).Unit(MustString("mg")).Build()
	require.NoError(t, err)

	moiety, err := NewSubstanceSpecificationMoietyBuilder().Amount(sq).Build()
	require.NoError(t, err)
	assert.Equal(t, "SimpleQuantity", moiety.Amount().FHIRType())

	_, err = NewSubstanceSpecificationMoietyBuilder().Amount(NewBoolean(true)).Build()
	requireFailure(t, err, validation.ErrInvalidChoice, "SubstanceSpecification.moiety.amount")
}

func TestReferenceTargets(t *testing.T) {
	base := newChargeItem(t)
	typed := func(reference, typ string) *Reference {
		b := NewReferenceBuilder().Type(MustUri(typ))
		if reference != "" {
			b.Reference(MustString(reference))
		}
		r, err := b.Build()
		require.NoError(t, err)
		return r
	}

	tests := []struct {
		name    string
		subject *Reference
		wantErr bool
	}{
		{"relative", mustRef(t, "Group/7"), false},
		{"absolute", mustRef(t, "http://example.org/fhir/Patient/9"), false},
		{"versioned", mustRef(t, "Patient/9/_history/2"), false},
		{"fragment", mustRef(t, "#p1"), false},
		{"urn", mustRef(t, "urn:uuid:c757873d-ec9a-4326-a141-556f43239520"), false},
		{"type only", typed("", "Patient"), false},
		{"wrong target", mustRef(t, "Practitioner/1"), true},
		{"wrong absolute target", mustRef(t, "http://example.org/fhir/Device/1"), true},
		{"wrong type", typed("", "Practitioner"), true},
		{"type disagrees with literal", typed("Patient/1", "Group"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := base.ToBuilder().Subject(tt.subject).Build()
			if tt.wantErr {
				requireFailure(t, err, validation.ErrReferenceType, "ChargeItem.subject")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChoiceReferenceTargets(t *testing.T) {
	base := newChargeItem(t)

	_, err := base.ToBuilder().Product(mustRef(t, "Device/1")).Build()
	assert.NoError(t, err)

	_, err = base.ToBuilder().Product(mustRef(t, "Patient/1")).Build()
	requireFailure(t, err, validation.ErrReferenceType, "ChargeItem.product")

	_, err = base.ToBuilder().SupportingInformation(mustRef(t, "Observation/1"), mustRef(t, "Patient/1")).Build()
	assert.NoError(t, err, "Reference(Any) accepts every target")
}

func TestReferenceChecksCanBeDisabled(t *testing.T) {
	cfg := validation.CurrentConfig()
	cfg.CheckReferenceTypes = false
	prev := validation.SetConfig(cfg)
	defer validation.SetConfig(prev)

	_, err := newChargeItem(t).ToBuilder().Subject(mustRef(t, "Practitioner/1")).Build()
	assert.NoError(t, err)
}

func TestRequiredBindings(t *testing.T) {
	_, err := newChargeItem(t).ToBuilder().Status(ChargeItemStatus("bogus").Code()).Build()
	requireFailure(t, err, validation.ErrBinding, "ChargeItem.status")

	_, err = NewTimingRepeatBuilder().DayOfWeek(DayOfWeekMon.Code(), DayOfWeek("funday").Code()).Build()
	requireFailure(t, err, validation.ErrBinding, "Timing.repeat.dayOfWeek")

	_, err = NewMoneyBuilder().Value(MustDecimal("1")).Currency(MustCode("euro")).Build()
	requireFailure(t, err, validation.ErrBinding, "Money.currency")

	_, err = NewMoneyBuilder().Value(MustDecimal("1")).Currency(MustCode("XYZ")).Build()
	requireFailure(t, err, validation.ErrBinding, "Money.currency")
}

func TestToBuilderRoundTrip(t *testing.T) {
	ci := newChargeItem(t)
	rebuilt, err := ci.ToBuilder().Build()
	require.NoError(t, err)
	assert.NotSame(t, ci, rebuilt)
	assert.True(t, ci.Equal(rebuilt))

	bundle := newBundle(t)
	rebuiltBundle, err := bundle.ToBuilder().Build()
	require.NoError(t, err)
	assert.True(t, bundle.Equal(rebuiltBundle))

	repeat, err := NewTimingRepeatBuilder().
		Frequency(MustPositiveInt(2)).
		Period(MustDecimal("1")).
		PeriodUnit(UnitsOfTimeDay.Code()).
		When(EventTimingMORN.Code(), EventTimingEVE.Code()).
		Build()
	require.NoError(t, err)
	timing, err := NewTimingBuilder().Repeat(repeat).Build()
	require.NoError(t, err)
	rebuiltTiming, err := timing.ToBuilder().Build()
	require.NoError(t, err)
	assert.True(t, timing.Equal(rebuiltTiming))
}

func TestBuilderDoesNotAliasBuiltValues(t *testing.T) {
	first, err := NewCoding("http://example.org", "a", "")
	require.NoError(t, err)
	second, err := NewCoding("http://example.org", "b", "")
	require.NoError(t, err)

	b := NewCodeableConceptBuilder().Coding(first)
	cc, err := b.Build()
	require.NoError(t, err)
	b.Coding(second)

	assert.Len(t, cc.Coding(), 1)

	changed, err := cc.ToBuilder().Text(MustString("changed")).Build()
	require.NoError(t, err)
	assert.False(t, cc.Equal(changed))
	assert.Nil(t, cc.Text())
}

func TestEqual(t *testing.T) {
	var nilCoding *Coding
	a, err := NewCoding("http://loinc.org", "1234-5", "Glucose")
	require.NoError(t, err)
	b, err := NewCoding("http://loinc.org", "1234-5", "Glucose")
	require.NoError(t, err)
	c, err := NewCoding("http://loinc.org", "1234-5", "")
	require.NoError(t, err)

	assert.True(t, nilCoding.Equal(nil))
	assert.False(t, a.Equal(nil))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	s, err := NewExtension("http://example.org/ext", MustString("x"))
	require.NoError(t, err)
	code, err := NewExtension("http://example.org/ext", MustCode("x"))
	require.NoError(t, err)
	assert.False(t, s.Equal(code), "values of different types differ")

	first, err := NewCodeableConcept("", a, c)
	require.NoError(t, err)
	swapped, err := NewCodeableConcept("", c, a)
	require.NoError(t, err)
	assert.False(t, first.Equal(swapped), "lists compare in order")
}

func TestSpecializes(t *testing.T) {
	assert.Equal(t, "Quantity", (&SimpleQuantity{}).Specializes())
	assert.Equal(t, "Quantity", (&Duration{}).Specializes())
	assert.Equal(t, "BackboneElement", (&BundleEntry{}).FHIRType())
	assert.Equal(t, "Element", (&TimingRepeat{}).FHIRType())
	assert.Equal(t, "Timing", (&Timing{}).FHIRType())
}
