package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// String is the FHIR string primitive: a sequence of Unicode characters.
type String struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewString creates a String holding v.
func NewString(v string) (*String, error) {
	return NewStringBuilder().Value(v).Build()
}

// MustString is like NewString but panics if v is not a valid string.
func MustString(v string) *String {
	return must(NewString(v))
}

// FHIRType returns "string".
func (*String) FHIRType() string { return "string" }

// Value returns the primitive value, or the zero value when there is none.
func (s *String) Value() string {
	if s == nil || s.value == nil {
		return ""
	}
	return *s.value
}

// HasValue reports whether a value is present.
func (s *String) HasValue() bool { return s != nil && s.value != nil }

// Accept implements visitor.Visitable.
func (s *String) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptElement(v)
		if s.value != nil {
			v.VisitValue("value", -1, *s.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *String) Equal(other *String) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalElement(&other.element) && equalPtr(s.value, other.value)
}

func (s *String) equalBase(other Base) bool {
	o, ok := other.(*String)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *String) ToBuilder() *StringBuilder {
	return NewStringBuilder().From(s)
}

// StringBuilder builds String values.
type StringBuilder struct {
	elementBuilder[*StringBuilder]
	value *string
}

// NewStringBuilder creates an empty StringBuilder.
func NewStringBuilder() *StringBuilder {
	b := &StringBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *StringBuilder) Value(v string) *StringBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *StringBuilder) From(src *String) *StringBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new String.
func (b *StringBuilder) Build() (*String, error) {
	const typ = "string"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "string", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &String{element: b.element(), value: b.value}, nil
}
