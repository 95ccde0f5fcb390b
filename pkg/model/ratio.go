package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Ratio is a relationship of two quantity values expressed as a numerator and a denominator.
type Ratio struct {
	element
	numerator   *Quantity `fhir:"numerator,summary"`
	denominator *Quantity `fhir:"denominator,summary"`
}

// Numerator returns Ratio.numerator.
func (r *Ratio) Numerator() *Quantity { return r.numerator }

// Denominator returns Ratio.denominator.
func (r *Ratio) Denominator() *Quantity { return r.denominator }

// FHIRType returns "Ratio".
func (*Ratio) FHIRType() string { return "Ratio" }

// Accept implements visitor.Visitable.
func (r *Ratio) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if r == nil || !v.PreVisit(r) {
		return
	}
	v.VisitStart(elementName, elementIndex, r)
	if v.Visit(elementName, elementIndex, r) {
		r.acceptElement(v)
		accept(v, "numerator", r.numerator)
		accept(v, "denominator", r.denominator)
	}
	v.VisitEnd(elementName, elementIndex, r)
	v.PostVisit(r)
}

// Equal reports whether r and other are structurally equal.
func (r *Ratio) Equal(other *Ratio) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.equalElement(&other.element) &&
		r.numerator.Equal(other.numerator) &&
		r.denominator.Equal(other.denominator)
}

func (r *Ratio) equalBase(other Base) bool {
	o, ok := other.(*Ratio)
	return ok && r.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Ratio) ToBuilder() *RatioBuilder {
	return NewRatioBuilder().From(r)
}

// RatioBuilder builds Ratio values.
type RatioBuilder struct {
	elementBuilder[*RatioBuilder]
	numerator   *Quantity
	denominator *Quantity
}

// NewRatioBuilder creates an empty RatioBuilder.
func NewRatioBuilder() *RatioBuilder {
	b := &RatioBuilder{}
	b.self = b
	return b
}

// Numerator sets Ratio.numerator.
func (b *RatioBuilder) Numerator(numerator *Quantity) *RatioBuilder {
	b.numerator = numerator
	return b
}

// Denominator sets Ratio.denominator.
func (b *RatioBuilder) Denominator(denominator *Quantity) *RatioBuilder {
	b.denominator = denominator
	return b
}

// From copies every element of src into the builder.
func (b *RatioBuilder) From(src *Ratio) *RatioBuilder {
	b.fromElement(&src.element)
	b.numerator = src.numerator
	b.denominator = src.denominator
	return b
}

// Build validates the builder state and returns a new Ratio.
func (b *RatioBuilder) Build() (*Ratio, error) {
	const typ = "Ratio"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Ratio{
		element:     b.element(),
		numerator:   b.numerator,
		denominator: b.denominator,
	}, nil
}

func (b *RatioBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.numerator != nil ||
		b.denominator != nil
}
