package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// PositiveInt is the FHIR positiveInt primitive: an integer greater than zero.
type PositiveInt struct {
	element
	value *int32 `fhir:"value,type=System.Integer"`
}

// NewPositiveInt creates a PositiveInt holding v.
func NewPositiveInt(v int32) (*PositiveInt, error) {
	return NewPositiveIntBuilder().Value(v).Build()
}

// MustPositiveInt is like NewPositiveInt but panics if v is not a valid positiveInt.
func MustPositiveInt(v int32) *PositiveInt {
	return must(NewPositiveInt(v))
}

// FHIRType returns "positiveInt".
func (*PositiveInt) FHIRType() string { return "positiveInt" }

// Value returns the primitive value, or the zero value when there is none.
func (p *PositiveInt) Value() int32 {
	if p == nil || p.value == nil {
		return 0
	}
	return *p.value
}

// HasValue reports whether a value is present.
func (p *PositiveInt) HasValue() bool { return p != nil && p.value != nil }

// Accept implements visitor.Visitable.
func (p *PositiveInt) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if p == nil || !v.PreVisit(p) {
		return
	}
	v.VisitStart(elementName, elementIndex, p)
	if v.Visit(elementName, elementIndex, p) {
		p.acceptElement(v)
		if p.value != nil {
			v.VisitValue("value", -1, *p.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, p)
	v.PostVisit(p)
}

// Equal reports whether p and other are structurally equal.
func (p *PositiveInt) Equal(other *PositiveInt) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.equalElement(&other.element) && equalPtr(p.value, other.value)
}

func (p *PositiveInt) equalBase(other Base) bool {
	o, ok := other.(*PositiveInt)
	return ok && p.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of p.
func (p *PositiveInt) ToBuilder() *PositiveIntBuilder {
	return NewPositiveIntBuilder().From(p)
}

// PositiveIntBuilder builds PositiveInt values.
type PositiveIntBuilder struct {
	elementBuilder[*PositiveIntBuilder]
	value *int32
}

// NewPositiveIntBuilder creates an empty PositiveIntBuilder.
func NewPositiveIntBuilder() *PositiveIntBuilder {
	b := &PositiveIntBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *PositiveIntBuilder) Value(v int32) *PositiveIntBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *PositiveIntBuilder) From(src *PositiveInt) *PositiveIntBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new PositiveInt.
func (b *PositiveIntBuilder) Build() (*PositiveInt, error) {
	const typ = "positiveInt"
	if err := validation.First(
		b.checkElement(typ),
		checkInt(typ, "positiveInt", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &PositiveInt{element: b.element(), value: b.value}, nil
}
