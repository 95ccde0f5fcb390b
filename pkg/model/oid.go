package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Oid is the FHIR oid primitive: an OID represented as a URI.
type Oid struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewOid creates a Oid holding v.
func NewOid(v string) (*Oid, error) {
	return NewOidBuilder().Value(v).Build()
}

// MustOid is like NewOid but panics if v is not a valid oid.
func MustOid(v string) *Oid {
	return must(NewOid(v))
}

// FHIRType returns "oid".
func (*Oid) FHIRType() string { return "oid" }

// Value returns the primitive value, or the zero value when there is none.
func (o *Oid) Value() string {
	if o == nil || o.value == nil {
		return ""
	}
	return *o.value
}

// HasValue reports whether a value is present.
func (o *Oid) HasValue() bool { return o != nil && o.value != nil }

// Accept implements visitor.Visitable.
func (o *Oid) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if o == nil || !v.PreVisit(o) {
		return
	}
	v.VisitStart(elementName, elementIndex, o)
	if v.Visit(elementName, elementIndex, o) {
		o.acceptElement(v)
		if o.value != nil {
			v.VisitValue("value", -1, *o.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, o)
	v.PostVisit(o)
}

// Equal reports whether o and other are structurally equal.
func (o *Oid) Equal(other *Oid) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.equalElement(&other.element) && equalPtr(o.value, other.value)
}

func (o *Oid) equalBase(other Base) bool {
	o, ok := other.(*Oid)
	return ok && o.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of o.
func (o *Oid) ToBuilder() *OidBuilder {
	return NewOidBuilder().From(o)
}

// OidBuilder builds Oid values.
type OidBuilder struct {
	elementBuilder[*OidBuilder]
	value *string
}

// NewOidBuilder creates an empty OidBuilder.
func NewOidBuilder() *OidBuilder {
	b := &OidBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *OidBuilder) Value(v string) *OidBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *OidBuilder) From(src *Oid) *OidBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Oid.
func (b *OidBuilder) Build() (*Oid, error) {
	const typ = "oid"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "oid", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Oid{element: b.element(), value: b.value}, nil
}
