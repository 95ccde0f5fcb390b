package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Boolean is the FHIR boolean primitive: a value of true or false.
type Boolean struct {
	element
	value *bool `fhir:"value,type=System.Boolean"`
}

// NewBoolean creates a Boolean holding v.
func NewBoolean(v bool) *Boolean {
	return &Boolean{value: &v}
}

// FHIRType returns "boolean".
func (*Boolean) FHIRType() string { return "boolean" }

// Value returns the primitive value, or the zero value when there is none.
func (b *Boolean) Value() bool {
	if b == nil || b.value == nil {
		return false
	}
	return *b.value
}

// HasValue reports whether a value is present.
func (b *Boolean) HasValue() bool { return b != nil && b.value != nil }

// Accept implements visitor.Visitable.
func (b *Boolean) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptElement(v)
		if b.value != nil {
			v.VisitValue("value", -1, *b.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *Boolean) Equal(other *Boolean) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalElement(&other.element) && equalPtr(b.value, other.value)
}

func (b *Boolean) equalBase(other Base) bool {
	o, ok := other.(*Boolean)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *Boolean) ToBuilder() *BooleanBuilder {
	return NewBooleanBuilder().From(b)
}

// BooleanBuilder builds Boolean values.
type BooleanBuilder struct {
	elementBuilder[*BooleanBuilder]
	value *bool
}

// NewBooleanBuilder creates an empty BooleanBuilder.
func NewBooleanBuilder() *BooleanBuilder {
	b := &BooleanBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *BooleanBuilder) Value(v bool) *BooleanBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *BooleanBuilder) From(src *Boolean) *BooleanBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Boolean.
func (b *BooleanBuilder) Build() (*Boolean, error) {
	const typ = "boolean"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Boolean{element: b.element(), value: b.value}, nil
}
