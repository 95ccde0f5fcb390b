package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Instant is the FHIR instant primitive: an instant in time, known at least to the second.
type Instant struct {
	element
	value *string `fhir:"value,type=System.DateTime"`
}

// NewInstant creates a Instant holding v.
func NewInstant(v string) (*Instant, error) {
	return NewInstantBuilder().Value(v).Build()
}

// MustInstant is like NewInstant but panics if v is not a valid instant.
func MustInstant(v string) *Instant {
	return must(NewInstant(v))
}

// FHIRType returns "instant".
func (*Instant) FHIRType() string { return "instant" }

// Value returns the primitive value, or the zero value when there is none.
func (i *Instant) Value() string {
	if i == nil || i.value == nil {
		return ""
	}
	return *i.value
}

// HasValue reports whether a value is present.
func (i *Instant) HasValue() bool { return i != nil && i.value != nil }

// Accept implements visitor.Visitable.
func (i *Instant) Accept(elementName string, elementIndex int, v visitor.Visitor) {
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
func (i *Instant) Equal(other *Instant) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.equalElement(&other.element) && equalPtr(i.value, other.value)
}

func (i *Instant) equalBase(other Base) bool {
	o, ok := other.(*Instant)
	return ok && i.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of i.
func (i *Instant) ToBuilder() *InstantBuilder {
	return NewInstantBuilder().From(i)
}

// InstantBuilder builds Instant values.
type InstantBuilder struct {
	elementBuilder[*InstantBuilder]
	value *string
}

// NewInstantBuilder creates an empty InstantBuilder.
func NewInstantBuilder() *InstantBuilder {
	b := &InstantBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *InstantBuilder) Value(v string) *InstantBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *InstantBuilder) From(src *Instant) *InstantBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Instant.
func (b *InstantBuilder) Build() (*Instant, error) {
	const typ = "instant"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "instant", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Instant{element: b.element(), value: b.value}, nil
}
