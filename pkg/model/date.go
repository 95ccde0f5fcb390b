package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Date is the FHIR date primitive: a date or partial date (year or year and month).
type Date struct {
	element
	value *string `fhir:"value,type=System.Date"`
}

// NewDate creates a Date holding v.
func NewDate(v string) (*Date, error) {
	return NewDateBuilder().Value(v).Build()
}

// MustDate is like NewDate but panics if v is not a valid date.
func MustDate(v string) *Date {
	return must(NewDate(v))
}

// FHIRType returns "date".
func (*Date) FHIRType() string { return "date" }

// Value returns the primitive value, or the zero value when there is none.
func (d *Date) Value() string {
	if d == nil || d.value == nil {
		return ""
	}
	return *d.value
}

// HasValue reports whether a value is present.
func (d *Date) HasValue() bool { return d != nil && d.value != nil }

// Accept implements visitor.Visitable.
func (d *Date) Accept(elementName string, elementIndex int, v visitor.Visitor) {
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
func (d *Date) Equal(other *Date) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.equalElement(&other.element) && equalPtr(d.value, other.value)
}

func (d *Date) equalBase(other Base) bool {
	o, ok := other.(*Date)
	return ok && d.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of d.
func (d *Date) ToBuilder() *DateBuilder {
	return NewDateBuilder().From(d)
}

// DateBuilder builds Date values.
type DateBuilder struct {
	elementBuilder[*DateBuilder]
	value *string
}

// NewDateBuilder creates an empty DateBuilder.
func NewDateBuilder() *DateBuilder {
	b := &DateBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *DateBuilder) Value(v string) *DateBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *DateBuilder) From(src *Date) *DateBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Date.
func (b *DateBuilder) Build() (*Date, error) {
	const typ = "date"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "date", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Date{element: b.element(), value: b.value}, nil
}
