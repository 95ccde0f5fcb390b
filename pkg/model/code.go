package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Code is the FHIR code primitive: a string with at least one character and no leading, trailing or repeated whitespace.
type Code struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewCode creates a Code holding v.
func NewCode(v string) (*Code, error) {
	return NewCodeBuilder().Value(v).Build()
}

// MustCode is like NewCode but panics if v is not a valid code.
func MustCode(v string) *Code {
	return must(NewCode(v))
}

// FHIRType returns "code".
func (*Code) FHIRType() string { return "code" }

// Value returns the primitive value, or the zero value when there is none.
func (c *Code) Value() string {
	if c == nil || c.value == nil {
		return ""
	}
	return *c.value
}

// HasValue reports whether a value is present.
func (c *Code) HasValue() bool { return c != nil && c.value != nil }

// Accept implements visitor.Visitable.
func (c *Code) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptElement(v)
		if c.value != nil {
			v.VisitValue("value", -1, *c.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *Code) Equal(other *Code) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalElement(&other.element) && equalPtr(c.value, other.value)
}

func (c *Code) equalBase(other Base) bool {
	o, ok := other.(*Code)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *Code) ToBuilder() *CodeBuilder {
	return NewCodeBuilder().From(c)
}

// CodeBuilder builds Code values.
type CodeBuilder struct {
	elementBuilder[*CodeBuilder]
	value *string
}

// NewCodeBuilder creates an empty CodeBuilder.
func NewCodeBuilder() *CodeBuilder {
	b := &CodeBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *CodeBuilder) Value(v string) *CodeBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *CodeBuilder) From(src *Code) *CodeBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Code.
func (b *CodeBuilder) Build() (*Code, error) {
	const typ = "code"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "code", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Code{element: b.element(), value: b.value}, nil
}
