package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Time is the FHIR time primitive: a time during the day, with no date specified.
type Time struct {
	element
	value *string `fhir:"value,type=System.Time"`
}

// NewTime creates a Time holding v.
func NewTime(v string) (*Time, error) {
	return NewTimeBuilder().Value(v).Build()
}

// MustTime is like NewTime but panics if v is not a valid time.
func MustTime(v string) *Time {
	return must(NewTime(v))
}

// FHIRType returns "time".
func (*Time) FHIRType() string { return "time" }

// Value returns the primitive value, or the zero value when there is none.
func (t *Time) Value() string {
	if t == nil || t.value == nil {
		return ""
	}
	return *t.value
}

// HasValue reports whether a value is present.
func (t *Time) HasValue() bool { return t != nil && t.value != nil }

// Accept implements visitor.Visitable.
func (t *Time) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if t == nil || !v.PreVisit(t) {
		return
	}
	v.VisitStart(elementName, elementIndex, t)
	if v.Visit(elementName, elementIndex, t) {
		t.acceptElement(v)
		if t.value != nil {
			v.VisitValue("value", -1, *t.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, t)
	v.PostVisit(t)
}

// Equal reports whether t and other are structurally equal.
func (t *Time) Equal(other *Time) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.equalElement(&other.element) && equalPtr(t.value, other.value)
}

func (t *Time) equalBase(other Base) bool {
	o, ok := other.(*Time)
	return ok && t.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of t.
func (t *Time) ToBuilder() *TimeBuilder {
	return NewTimeBuilder().From(t)
}

// TimeBuilder builds Time values.
type TimeBuilder struct {
	elementBuilder[*TimeBuilder]
	value *string
}

// NewTimeBuilder creates an empty TimeBuilder.
func NewTimeBuilder() *TimeBuilder {
	b := &TimeBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *TimeBuilder) Value(v string) *TimeBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *TimeBuilder) From(src *Time) *TimeBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Time.
func (b *TimeBuilder) Build() (*Time, error) {
	const typ = "time"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "time", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Time{element: b.element(), value: b.value}, nil
}
