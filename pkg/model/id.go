package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Id is the FHIR id primitive: any combination of letters, numerals, "-" and "." up to 64 characters.
type Id struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewId creates a Id holding v.
func NewId(v string) (*Id, error) {
	return NewIdBuilder().Value(v).Build()
}

// MustId is like NewId but panics if v is not a valid id.
func MustId(v string) *Id {
	return must(NewId(v))
}

// FHIRType returns "id".
func (*Id) FHIRType() string { return "id" }

// Value returns the primitive value, or the zero value when there is none.
func (i *Id) Value() string {
	if i == nil || i.value == nil {
		return ""
	}
	return *i.value
}

// HasValue reports whether a value is present.
func (i *Id) HasValue() bool { return i != nil && i.value != nil }

// Accept implements visitor.Visitable.
func (i *Id) Accept(elementName string, elementIndex int, v visitor.Visitor) {
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
func (i *Id) Equal(other *Id) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.equalElement(&other.element) && equalPtr(i.value, other.value)
}

func (i *Id) equalBase(other Base) bool {
	o, ok := other.(*Id)
	return ok && i.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of i.
func (i *Id) ToBuilder() *IdBuilder {
	return NewIdBuilder().From(i)
}

// IdBuilder builds Id values.
type IdBuilder struct {
	elementBuilder[*IdBuilder]
	value *string
}

// NewIdBuilder creates an empty IdBuilder.
func NewIdBuilder() *IdBuilder {
	b := &IdBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *IdBuilder) Value(v string) *IdBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *IdBuilder) From(src *Id) *IdBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Id.
func (b *IdBuilder) Build() (*Id, error) {
	const typ = "id"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "id", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Id{element: b.element(), value: b.value}, nil
}
