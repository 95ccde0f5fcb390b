package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Uuid is the FHIR uuid primitive: a UUID represented as a URI (urn:uuid:...).
type Uuid struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewUuid creates a Uuid holding v.
func NewUuid(v string) (*Uuid, error) {
	return NewUuidBuilder().Value(v).Build()
}

// MustUuid is like NewUuid but panics if v is not a valid uuid.
func MustUuid(v string) *Uuid {
	return must(NewUuid(v))
}

// FHIRType returns "uuid".
func (*Uuid) FHIRType() string { return "uuid" }

// Value returns the primitive value, or the zero value when there is none.
func (u *Uuid) Value() string {
	if u == nil || u.value == nil {
		return ""
	}
	return *u.value
}

// HasValue reports whether a value is present.
func (u *Uuid) HasValue() bool { return u != nil && u.value != nil }

// Accept implements visitor.Visitable.
func (u *Uuid) Accept(elementName string, elementIndex int, v visitor.Visitor) {
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
func (u *Uuid) Equal(other *Uuid) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.equalElement(&other.element) && equalPtr(u.value, other.value)
}

func (u *Uuid) equalBase(other Base) bool {
	o, ok := other.(*Uuid)
	return ok && u.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of u.
func (u *Uuid) ToBuilder() *UuidBuilder {
	return NewUuidBuilder().From(u)
}

// UuidBuilder builds Uuid values.
type UuidBuilder struct {
	elementBuilder[*UuidBuilder]
	value *string
}

// NewUuidBuilder creates an empty UuidBuilder.
func NewUuidBuilder() *UuidBuilder {
	b := &UuidBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *UuidBuilder) Value(v string) *UuidBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *UuidBuilder) From(src *Uuid) *UuidBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Uuid.
func (b *UuidBuilder) Build() (*Uuid, error) {
	const typ = "uuid"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "uuid", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Uuid{element: b.element(), value: b.value}, nil
}
