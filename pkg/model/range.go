package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Range is a set of ordered quantities defined by a low and high limit.
type Range struct {
	element
	low  *SimpleQuantity `fhir:"low,summary"`
	high *SimpleQuantity `fhir:"high,summary"`
}

// Low returns Range.low.
func (r *Range) Low() *SimpleQuantity { return r.low }

// High returns Range.high.
func (r *Range) High() *SimpleQuantity { return r.high }

// FHIRType returns "Range".
func (*Range) FHIRType() string { return "Range" }

// Accept implements visitor.Visitable.
func (r *Range) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if r == nil || !v.PreVisit(r) {
		return
	}
	v.VisitStart(elementName, elementIndex, r)
	if v.Visit(elementName, elementIndex, r) {
		r.acceptElement(v)
		accept(v, "low", r.low)
		accept(v, "high", r.high)
	}
	v.VisitEnd(elementName, elementIndex, r)
	v.PostVisit(r)
}

// Equal reports whether r and other are structurally equal.
func (r *Range) Equal(other *Range) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.equalElement(&other.element) &&
		r.low.Equal(other.low) &&
		r.high.Equal(other.high)
}

func (r *Range) equalBase(other Base) bool {
	o, ok := other.(*Range)
	return ok && r.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Range) ToBuilder() *RangeBuilder {
	return NewRangeBuilder().From(r)
}

// RangeBuilder builds Range values.
type RangeBuilder struct {
	elementBuilder[*RangeBuilder]
	low  *SimpleQuantity
	high *SimpleQuantity
}

// NewRangeBuilder creates an empty RangeBuilder.
func NewRangeBuilder() *RangeBuilder {
	b := &RangeBuilder{}
	b.self = b
	return b
}

// Low sets Range.low.
func (b *RangeBuilder) Low(low *SimpleQuantity) *RangeBuilder {
	b.low = low
	return b
}

// High sets Range.high.
func (b *RangeBuilder) High(high *SimpleQuantity) *RangeBuilder {
	b.high = high
	return b
}

// From copies every element of src into the builder.
func (b *RangeBuilder) From(src *Range) *RangeBuilder {
	b.fromElement(&src.element)
	b.low = src.low
	b.high = src.high
	return b
}

// Build validates the builder state and returns a new Range.
func (b *RangeBuilder) Build() (*Range, error) {
	const typ = "Range"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Range{
		element: b.element(),
		low:     b.low,
		high:    b.high,
	}, nil
}

func (b *RangeBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.low != nil ||
		b.high != nil
}
