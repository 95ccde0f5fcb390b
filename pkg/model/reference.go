package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Reference is a reference from one resource to another.
type Reference struct {
	element
	reference  *String     `fhir:"reference,summary"`
	typ        *Uri        `fhir:"type,summary,binding=FHIRResourceTypeExt,strength=extensible,valueSet=http://hl7.org/fhir/ValueSet/resource-types"`
	identifier *Identifier `fhir:"identifier,summary"`
	display    *String     `fhir:"display,summary"`
}

// Reference returns Reference.reference.
func (r *Reference) Reference() *String { return r.reference }

// Type returns Reference.type.
func (r *Reference) Type() *Uri { return r.typ }

// Identifier returns Reference.identifier.
func (r *Reference) Identifier() *Identifier { return r.identifier }

// Display returns Reference.display.
func (r *Reference) Display() *String { return r.display }

// FHIRType returns "Reference".
func (*Reference) FHIRType() string { return "Reference" }

// Accept implements visitor.Visitable.
func (r *Reference) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if r == nil || !v.PreVisit(r) {
		return
	}
	v.VisitStart(elementName, elementIndex, r)
	if v.Visit(elementName, elementIndex, r) {
		r.acceptElement(v)
		accept(v, "reference", r.reference)
		accept(v, "type", r.typ)
		accept(v, "identifier", r.identifier)
		accept(v, "display", r.display)
	}
	v.VisitEnd(elementName, elementIndex, r)
	v.PostVisit(r)
}

// Equal reports whether r and other are structurally equal.
func (r *Reference) Equal(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.equalElement(&other.element) &&
		r.reference.Equal(other.reference) &&
		r.typ.Equal(other.typ) &&
		r.identifier.Equal(other.identifier) &&
		r.display.Equal(other.display)
}

func (r *Reference) equalBase(other Base) bool {
	o, ok := other.(*Reference)
	return ok && r.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Reference) ToBuilder() *ReferenceBuilder {
	return NewReferenceBuilder().From(r)
}

// ReferenceBuilder builds Reference values.
type ReferenceBuilder struct {
	elementBuilder[*ReferenceBuilder]
	reference  *String
	typ        *Uri
	identifier *Identifier
	display    *String
}

// NewReferenceBuilder creates an empty ReferenceBuilder.
func NewReferenceBuilder() *ReferenceBuilder {
	b := &ReferenceBuilder{}
	b.self = b
	return b
}

// Reference sets Reference.reference.
func (b *ReferenceBuilder) Reference(reference *String) *ReferenceBuilder {
	b.reference = reference
	return b
}

// Type sets Reference.type.
func (b *ReferenceBuilder) Type(typ *Uri) *ReferenceBuilder {
	b.typ = typ
	return b
}

// Identifier sets Reference.identifier.
func (b *ReferenceBuilder) Identifier(identifier *Identifier) *ReferenceBuilder {
	b.identifier = identifier
	return b
}

// Display sets Reference.display.
func (b *ReferenceBuilder) Display(display *String) *ReferenceBuilder {
	b.display = display
	return b
}

// From copies every element of src into the builder.
func (b *ReferenceBuilder) From(src *Reference) *ReferenceBuilder {
	b.fromElement(&src.element)
	b.reference = src.reference
	b.typ = src.typ
	b.identifier = src.identifier
	b.display = src.display
	return b
}

// Build validates the builder state and returns a new Reference.
func (b *ReferenceBuilder) Build() (*Reference, error) {
	const typ = "Reference"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Reference{
		element:    b.element(),
		reference:  b.reference,
		typ:        b.typ,
		identifier: b.identifier,
		display:    b.display,
	}, nil
}

func (b *ReferenceBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.reference != nil ||
		b.typ != nil ||
		b.identifier != nil ||
		b.display != nil
}
