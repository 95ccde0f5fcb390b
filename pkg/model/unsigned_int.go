package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// UnsignedInt is the FHIR unsignedInt primitive: an integer greater than or equal to zero.
type UnsignedInt struct {
	element
	value *int32 `fhir:"value,type=System.Integer"`
}

// NewUnsignedInt creates a UnsignedInt holding v.
func NewUnsignedInt(v int32) (*UnsignedInt, error) {
	return NewUnsignedIntBuilder().Value(v).Build()
}

// MustUnsignedInt is like NewUnsignedInt but panics if v is not a valid unsignedInt.
func MustUnsignedInt(v int32) *UnsignedInt {
	return must(NewUnsignedInt(v))
}

// FHIRType returns "unsignedInt".
func (*UnsignedInt) FHIRType() string { return "unsignedInt" }

// Value returns the primitive value, or the zero value when there is none.
func (u *UnsignedInt) Value() int32 {
	if u == nil || u.value == nil {
		return 0
	}
	return *u.value
}

// HasValue reports whether a value is present.
func (u *UnsignedInt) HasValue() bool { return u != nil && u.value != nil }

// Accept implements visitor.Visitable.
func (u *UnsignedInt) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if u == nil || !v.PreVisit(u) {
		return
	}
	v.VisitStart(elementName, elementIndex, u)
	if v.Visit(elementName, elementIndex, u) {
		u.acceptElement(v)
		if u.value != nil {
			v.VisitValue("value", -1, *u.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, u)
	v.PostVisit(u)
}

// Equal reports whether u and other are structurally equal.
func (u *UnsignedInt) Equal(other *UnsignedInt) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.equalElement(&other.element) && equalPtr(u.value, other.value)
}

func (u *UnsignedInt) equalBase(other Base) bool {
	o, ok := other.(*UnsignedInt)
	return ok && u.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of u.
func (u *UnsignedInt) ToBuilder() *UnsignedIntBuilder {
	return NewUnsignedIntBuilder().From(u)
}

// UnsignedIntBuilder builds UnsignedInt values.
type UnsignedIntBuilder struct {
	elementBuilder[*UnsignedIntBuilder]
	value *int32
}

// NewUnsignedIntBuilder creates an empty UnsignedIntBuilder.
func NewUnsignedIntBuilder() *UnsignedIntBuilder {
	b := &UnsignedIntBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *UnsignedIntBuilder) Value(v int32) *UnsignedIntBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *UnsignedIntBuilder) From(src *UnsignedInt) *UnsignedIntBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new UnsignedInt.
func (b *UnsignedIntBuilder) Build() (*UnsignedInt, error) {
	const typ = "unsignedInt"
	if err := validation.First(
		b.checkElement(typ),
		checkInt(typ, "unsignedInt", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &UnsignedInt{element: b.element(), value: b.value}, nil
}
