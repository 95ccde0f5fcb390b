package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Integer is the FHIR integer primitive: a signed 32-bit whole number.
type Integer struct {
	element
	value *int32 `fhir:"value,type=System.Integer"`
}

// NewInteger creates a Integer holding v.
func NewInteger(v int32) *Integer {
	return &Integer{value: &v}
}

// FHIRType returns "integer".
func (*Integer) FHIRType() string { return "integer" }

// Value returns the primitive value, or the zero value when there is none.
func (i *Integer) Value() int32 {
	if i == nil || i.value == nil {
		return 0
	}
	return *i.value
}

// HasValue reports whether a value is present.
func (i *Integer) HasValue() bool { return i != nil && i.value != nil }

// Accept implements visitor.Visitable.
func (i *Integer) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if i == nil || !v.PreVisit(i) {
		return
	}
	v.VisitStart(elementName, elementIndex, i)
	if v.Visit(elementName, elementIndex, i) {
		i.acceptElement(v)
		if i.value != nil {
			v.VisitValue("value", -1, *i.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, i)
	v.PostVisit(i)
}

// Equal reports whether i and other are structurally equal.
func (i *Integer) Equal(other *Integer) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.equalElement(&other.element) && equalPtr(i.value, other.value)
}

func (i *Integer) equalBase(other Base) bool {
	o, ok := other.(*Integer)
	return ok && i.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of i.
func (i *Integer) ToBuilder() *IntegerBuilder {
	return NewIntegerBuilder().From(i)
}

// IntegerBuilder builds Integer values.
type IntegerBuilder struct {
	elementBuilder[*IntegerBuilder]
	value *int32
}

// NewIntegerBuilder creates an empty IntegerBuilder.
func NewIntegerBuilder() *IntegerBuilder {
	b := &IntegerBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *IntegerBuilder) Value(v int32) *IntegerBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *IntegerBuilder) From(src *Integer) *IntegerBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Integer.
func (b *IntegerBuilder) Build() (*Integer, error) {
	const typ = "integer"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Integer{element: b.element(), value: b.value}, nil
}
