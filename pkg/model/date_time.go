package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// DateTime is the FHIR dateTime primitive: a date, date-time or partial date.
type DateTime struct {
	element
	value *string `fhir:"value,type=System.DateTime"`
}

// NewDateTime creates a DateTime holding v.
func NewDateTime(v string) (*DateTime, error) {
	return NewDateTimeBuilder().Value(v).Build()
}

// MustDateTime is like NewDateTime but panics if v is not a valid dateTime.
func MustDateTime(v string) *DateTime {
	return must(NewDateTime(v))
}

// FHIRType returns "dateTime".
func (*DateTime) FHIRType() string { return "dateTime" }

// Value returns the primitive value, or the zero value when there is none.
func (d *DateTime) Value() string {
	if d == nil || d.value == nil {
		return ""
	}
	return *d.value
}

// HasValue reports whether a value is present.
func (d *DateTime) HasValue() bool { return d != nil && d.value != nil }

// Accept implements visitor.Visitable.
func (d *DateTime) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if d == nil || !v.PreVisit(d) {
		return
	}
	v.VisitStart(elementName, elementIndex, d)
	if v.Visit(elementName, elementIndex, d) {
		d.acceptElement(v)
		if d.value != nil {
			v.VisitValue("value", -1, *d.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, d)
	v.PostVisit(d)
}

// Equal reports whether d and other are structurally equal.
func (d *DateTime) Equal(other *DateTime) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.equalElement(&other.element) && equalPtr(d.value, other.value)
}

func (d *DateTime) equalBase(other Base) bool {
	o, ok := other.(*DateTime)
	return ok && d.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of d.
func (d *DateTime) ToBuilder() *DateTimeBuilder {
	return NewDateTimeBuilder().From(d)
}

// DateTimeBuilder builds DateTime values.
type DateTimeBuilder struct {
	elementBuilder[*DateTimeBuilder]
	value *string
}

// NewDateTimeBuilder creates an empty DateTimeBuilder.
func NewDateTimeBuilder() *DateTimeBuilder {
	b := &DateTimeBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *DateTimeBuilder) Value(v string) *DateTimeBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *DateTimeBuilder) From(src *DateTime) *DateTimeBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new DateTime.
func (b *DateTimeBuilder) Build() (*DateTime, error) {
	const typ = "dateTime"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "dateTime", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &DateTime{element: b.element(), value: b.value}, nil
}
