package model

import (
	"bytes"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Base64Binary is the FHIR base64Binary primitive: a stream of bytes, base64 encoded.
type Base64Binary struct {
	element
	value []byte `fhir:"value,type=System.String"`
}

// NewBase64Binary creates a Base64Binary holding v.
func NewBase64Binary(v []byte) *Base64Binary {
	return &Base64Binary{value: bytes.Clone(v)}
}

// FHIRType returns "base64Binary".
func (*Base64Binary) FHIRType() string { return "base64Binary" }

// Value returns the primitive value, or the zero value when there is none.
func (b *Base64Binary) Value() []byte {
	if b == nil {
		return nil
	}
	return b.value
}

// HasValue reports whether a value is present.
func (b *Base64Binary) HasValue() bool { return b != nil && b.value != nil }

// Accept implements visitor.Visitable.
func (b *Base64Binary) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptElement(v)
		if b.value != nil {
			v.VisitValue("value", -1, b.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *Base64Binary) Equal(other *Base64Binary) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalElement(&other.element) &&
		(b.value == nil) == (other.value == nil) &&
		bytes.Equal(b.value, other.value)
}

func (b *Base64Binary) equalBase(other Base) bool {
	o, ok := other.(*Base64Binary)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *Base64Binary) ToBuilder() *Base64BinaryBuilder {
	return NewBase64BinaryBuilder().From(b)
}

// Base64BinaryBuilder builds Base64Binary values.
type Base64BinaryBuilder struct {
	elementBuilder[*Base64BinaryBuilder]
	value []byte
}

// NewBase64BinaryBuilder creates an empty Base64BinaryBuilder.
func NewBase64BinaryBuilder() *Base64BinaryBuilder {
	b := &Base64BinaryBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *Base64BinaryBuilder) Value(v []byte) *Base64BinaryBuilder {
	b.value = bytes.Clone(v)
	return b
}

// From copies every element of src into the builder.
func (b *Base64BinaryBuilder) From(src *Base64Binary) *Base64BinaryBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Base64Binary.
func (b *Base64BinaryBuilder) Build() (*Base64Binary, error) {
	const typ = "base64Binary"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Base64Binary{element: b.element(), value: b.value}, nil
}
