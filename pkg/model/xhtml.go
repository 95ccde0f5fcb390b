package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Xhtml is the FHIR xhtml primitive: limited XHTML content used for narrative.
type Xhtml struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewXhtml creates a Xhtml holding v.
func NewXhtml(v string) (*Xhtml, error) {
	return NewXhtmlBuilder().Value(v).Build()
}

// MustXhtml is like NewXhtml but panics if v is not a valid xhtml.
func MustXhtml(v string) *Xhtml {
	return must(NewXhtml(v))
}

// FHIRType returns "xhtml".
func (*Xhtml) FHIRType() string { return "xhtml" }

// Value returns the primitive value, or the zero value when there is none.
func (x *Xhtml) Value() string {
	if x == nil || x.value == nil {
		return ""
	}
	return *x.value
}

// HasValue reports whether a value is present.
func (x *Xhtml) HasValue() bool { return x != nil && x.value != nil }

// Accept implements visitor.Visitable.
func (x *Xhtml) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if x == nil || !v.PreVisit(x) {
		return
	}
	v.VisitStart(elementName, elementIndex, x)
	if v.Visit(elementName, elementIndex, x) {
		x.acceptElement(v)
		if x.value != nil {
			v.VisitValue("value", -1, *x.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, x)
	v.PostVisit(x)
}

// Equal reports whether x and other are structurally equal.
func (x *Xhtml) Equal(other *Xhtml) bool {
	if x == nil || other == nil {
		return x == other
	}
	return x.equalElement(&other.element) && equalPtr(x.value, other.value)
}

func (x *Xhtml) equalBase(other Base) bool {
	o, ok := other.(*Xhtml)
	return ok && x.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of x.
func (x *Xhtml) ToBuilder() *XhtmlBuilder {
	return NewXhtmlBuilder().From(x)
}

// XhtmlBuilder builds Xhtml values.
type XhtmlBuilder struct {
	elementBuilder[*XhtmlBuilder]
	value *string
}

// NewXhtmlBuilder creates an empty XhtmlBuilder.
func NewXhtmlBuilder() *XhtmlBuilder {
	b := &XhtmlBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *XhtmlBuilder) Value(v string) *XhtmlBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *XhtmlBuilder) From(src *Xhtml) *XhtmlBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Xhtml.
func (b *XhtmlBuilder) Build() (*Xhtml, error) {
	const typ = "xhtml"
	if err := validation.First(
		b.checkElement(typ),
		validation.Require(typ, "value", b.value),
		checkString(typ, "xhtml", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Xhtml{element: b.element(), value: b.value}, nil
}
