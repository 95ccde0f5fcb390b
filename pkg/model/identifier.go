package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Identifier is a business identifier assigned to an entity.
type Identifier struct {
	element
	use      *CodeOf[IdentifierUse] `fhir:"use,summary,modifier,binding=IdentifierUse,strength=required,valueSet=http://hl7.org/fhir/ValueSet/identifier-use|4.0.1"`
	typ      *CodeableConcept       `fhir:"type,summary,binding=IdentifierType,strength=extensible,valueSet=http://hl7.org/fhir/ValueSet/identifier-type"`
	system   *Uri                   `fhir:"system,summary"`
	value    *String                `fhir:"value,summary"`
	period   *Period                `fhir:"period,summary"`
	assigner *Reference             `fhir:"assigner,summary,targets=Organization"`
}

// Use returns Identifier.use.
func (i *Identifier) Use() *CodeOf[IdentifierUse] { return i.use }

// Type returns Identifier.type.
func (i *Identifier) Type() *CodeableConcept { return i.typ }

// System returns Identifier.system.
func (i *Identifier) System() *Uri { return i.system }

// Value returns Identifier.value.
func (i *Identifier) Value() *String { return i.value }

// Period returns Identifier.period.
func (i *Identifier) Period() *Period { return i.period }

// Assigner returns Identifier.assigner.
func (i *Identifier) Assigner() *Reference { return i.assigner }

// FHIRType returns "Identifier".
func (*Identifier) FHIRType() string { return "Identifier" }

// Accept implements visitor.Visitable.
func (i *Identifier) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if i == nil || !v.PreVisit(i) {
		return
	}
	v.VisitStart(elementName, elementIndex, i)
	if v.Visit(elementName, elementIndex, i) {
		i.acceptElement(v)
		accept(v, "use", i.use)
		accept(v, "type", i.typ)
		accept(v, "system", i.system)
		accept(v, "value", i.value)
		accept(v, "period", i.period)
		accept(v, "assigner", i.assigner)
	}
	v.VisitEnd(elementName, elementIndex, i)
	v.PostVisit(i)
}

// Equal reports whether i and other are structurally equal.
func (i *Identifier) Equal(other *Identifier) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.equalElement(&other.element) &&
		i.use.Equal(other.use) &&
		i.typ.Equal(other.typ) &&
		i.system.Equal(other.system) &&
		i.value.Equal(other.value) &&
		i.period.Equal(other.period) &&
		i.assigner.Equal(other.assigner)
}

func (i *Identifier) equalBase(other Base) bool {
	o, ok := other.(*Identifier)
	return ok && i.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of i.
func (i *Identifier) ToBuilder() *IdentifierBuilder {
	return NewIdentifierBuilder().From(i)
}

// IdentifierBuilder builds Identifier values.
type IdentifierBuilder struct {
	elementBuilder[*IdentifierBuilder]
	use      *CodeOf[IdentifierUse]
	typ      *CodeableConcept
	system   *Uri
	value    *String
	period   *Period
	assigner *Reference
}

// NewIdentifierBuilder creates an empty IdentifierBuilder.
func NewIdentifierBuilder() *IdentifierBuilder {
	b := &IdentifierBuilder{}
	b.self = b
	return b
}

// Use sets Identifier.use.
func (b *IdentifierBuilder) Use(use *CodeOf[IdentifierUse]) *IdentifierBuilder {
	b.use = use
	return b
}

// Type sets Identifier.type.
func (b *IdentifierBuilder) Type(typ *CodeableConcept) *IdentifierBuilder {
	b.typ = typ
	return b
}

// System sets Identifier.system.
func (b *IdentifierBuilder) System(system *Uri) *IdentifierBuilder {
	b.system = system
	return b
}

// Value sets Identifier.value.
func (b *IdentifierBuilder) Value(value *String) *IdentifierBuilder {
	b.value = value
	return b
}

// Period sets Identifier.period.
func (b *IdentifierBuilder) Period(period *Period) *IdentifierBuilder {
	b.period = period
	return b
}

// Assigner sets Identifier.assigner.
func (b *IdentifierBuilder) Assigner(assigner *Reference) *IdentifierBuilder {
	b.assigner = assigner
	return b
}

// From copies every element of src into the builder.
func (b *IdentifierBuilder) From(src *Identifier) *IdentifierBuilder {
	b.fromElement(&src.element)
	b.use = src.use
	b.typ = src.typ
	b.system = src.system
	b.value = src.value
	b.period = src.period
	b.assigner = src.assigner
	return b
}

// Build validates the builder state and returns a new Identifier.
func (b *IdentifierBuilder) Build() (*Identifier, error) {
	const typ = "Identifier"
	if err := validation.First(
		b.checkElement(typ),
		validation.CheckCode(typ, "use", b.use),
		checkReference(typ, "assigner", b.assigner, "Organization"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Identifier{
		element:  b.element(),
		use:      b.use,
		typ:      b.typ,
		system:   b.system,
		value:    b.value,
		period:   b.period,
		assigner: b.assigner,
	}, nil
}

func (b *IdentifierBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.use != nil ||
		b.typ != nil ||
		b.system != nil ||
		b.value != nil ||
		b.period != nil ||
		b.assigner != nil
}
