package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Uri is the FHIR uri primitive: a string of characters identifying a name or a resource.
type Uri struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewUri creates a Uri holding v.
func NewUri(v string) (*Uri, error) {
	return NewUriBuilder().Value(v).Build()
}

// MustUri is like NewUri but panics if v is not a valid uri.
func MustUri(v string) *Uri {
	return must(NewUri(v))
}

// FHIRType returns "uri".
func (*Uri) FHIRType() string { return "uri" }

// Value returns the primitive value, or the zero value when there is none.
func (u *Uri) Value() string {
	if u == nil || u.value == nil {
		return ""
	}
	return *u.value
}

// HasValue reports whether a value is present.
func (u *Uri) HasValue() bool { return u != nil && u.value != nil }

// Accept implements visitor.Visitable.
func (u *Uri) Accept(elementName string, elementIndex int, v visitor.Visitor) {
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
func (u *Uri) Equal(other *Uri) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.equalElement(&other.element) && equalPtr(u.value, other.value)
}

func (u *Uri) equalBase(other Base) bool {
	o, ok := other.(*Uri)
	return ok && u.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of u.
func (u *Uri) ToBuilder() *UriBuilder {
	return NewUriBuilder().From(u)
}

// UriBuilder builds Uri values.
type UriBuilder struct {
	elementBuilder[*UriBuilder]
	value *string
}

// NewUriBuilder creates an empty UriBuilder.
func NewUriBuilder() *UriBuilder {
	b := &UriBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *UriBuilder) Value(v string) *UriBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *UriBuilder) From(src *Uri) *UriBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Uri.
func (b *UriBuilder) Build() (*Uri, error) {
	const typ = "uri"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "uri", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Uri{element: b.element(), value: b.value}, nil
}
