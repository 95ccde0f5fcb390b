package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// CodeableConcept is a concept defined by one or more codings and/or text.
type CodeableConcept struct {
	element
	coding []*Coding `fhir:"coding,summary"`
	text   *String   `fhir:"text,summary"`
}

// Coding returns CodeableConcept.coding.
func (c *CodeableConcept) Coding() []*Coding { return c.coding }

// Text returns CodeableConcept.text.
func (c *CodeableConcept) Text() *String { return c.text }

// FHIRType returns "CodeableConcept".
func (*CodeableConcept) FHIRType() string { return "CodeableConcept" }

// Accept implements visitor.Visitable.
func (c *CodeableConcept) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptElement(v)
		acceptList(v, "coding", c.coding)
		accept(v, "text", c.text)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *CodeableConcept) Equal(other *CodeableConcept) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalElement(&other.element) &&
		equalList(c.coding, other.coding) &&
		c.text.Equal(other.text)
}

func (c *CodeableConcept) equalBase(other Base) bool {
	o, ok := other.(*CodeableConcept)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *CodeableConcept) ToBuilder() *CodeableConceptBuilder {
	return NewCodeableConceptBuilder().From(c)
}

// CodeableConceptBuilder builds CodeableConcept values.
type CodeableConceptBuilder struct {
	elementBuilder[*CodeableConceptBuilder]
	coding []*Coding
	text   *String
}

// NewCodeableConceptBuilder creates an empty CodeableConceptBuilder.
func NewCodeableConceptBuilder() *CodeableConceptBuilder {
	b := &CodeableConceptBuilder{}
	b.self = b
	return b
}

// Coding appends to CodeableConcept.coding.
func (b *CodeableConceptBuilder) Coding(coding ...*Coding) *CodeableConceptBuilder {
	b.coding = append(b.coding, coding...)
	return b
}

// SetCoding replaces CodeableConcept.coding.
func (b *CodeableConceptBuilder) SetCoding(coding []*Coding) *CodeableConceptBuilder {
	b.coding = slices.Clone(coding)
	return b
}

// Text sets CodeableConcept.text.
func (b *CodeableConceptBuilder) Text(text *String) *CodeableConceptBuilder {
	b.text = text
	return b
}

// From copies every element of src into the builder.
func (b *CodeableConceptBuilder) From(src *CodeableConcept) *CodeableConceptBuilder {
	b.fromElement(&src.element)
	b.coding = slices.Clone(src.coding)
	b.text = src.text
	return b
}

// Build validates the builder state and returns a new CodeableConcept.
func (b *CodeableConceptBuilder) Build() (*CodeableConcept, error) {
	const typ = "CodeableConcept"
	if err := validation.First(
		b.checkElement(typ),
		validation.CheckList(typ, "coding", b.coding),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &CodeableConcept{
		element: b.element(),
		coding:  slices.Clone(b.coding),
		text:    b.text,
	}, nil
}

func (b *CodeableConceptBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		len(b.coding) > 0 ||
		b.text != nil
}
