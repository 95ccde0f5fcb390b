package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Canonical is the FHIR canonical primitive: a URI that refers to a resource by its canonical URL.
type Canonical struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewCanonical creates a Canonical holding v.
func NewCanonical(v string) (*Canonical, error) {
	return NewCanonicalBuilder().Value(v).Build()
}

// MustCanonical is like NewCanonical but panics if v is not a valid canonical.
func MustCanonical(v string) *Canonical {
	return must(NewCanonical(v))
}

// FHIRType returns "canonical".
func (*Canonical) FHIRType() string { return "canonical" }

// Value returns the primitive value, or the zero value when there is none.
func (c *Canonical) Value() string {
	if c == nil || c.value == nil {
		return ""
	}
	return *c.value
}

// HasValue reports whether a value is present.
func (c *Canonical) HasValue() bool { return c != nil && c.value != nil }

// Accept implements visitor.Visitable.
func (c *Canonical) Accept(elementName string, elementIndex int, v visitor.Visitor) {
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
func (c *Canonical) Equal(other *Canonical) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalElement(&other.element) && equalPtr(c.value, other.value)
}

func (c *Canonical) equalBase(other Base) bool {
	o, ok := other.(*Canonical)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *Canonical) ToBuilder() *CanonicalBuilder {
	return NewCanonicalBuilder().From(c)
}

// CanonicalBuilder builds Canonical values.
type CanonicalBuilder struct {
	elementBuilder[*CanonicalBuilder]
	value *string
}

// NewCanonicalBuilder creates an empty CanonicalBuilder.
func NewCanonicalBuilder() *CanonicalBuilder {
	b := &CanonicalBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *CanonicalBuilder) Value(v string) *CanonicalBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *CanonicalBuilder) From(src *Canonical) *CanonicalBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Canonical.
func (b *CanonicalBuilder) Build() (*Canonical, error) {
	const typ = "canonical"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "canonical", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Canonical{element: b.element(), value: b.value}, nil
}
