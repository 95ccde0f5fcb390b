package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Url is the FHIR url primitive: a URI that is a literal reference.
type Url struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewUrl creates a Url holding v.
func NewUrl(v string) (*Url, error) {
	return NewUrlBuilder().Value(v).Build()
}

// MustUrl is like NewUrl but panics if v is not a valid url.
func MustUrl(v string) *Url {
	return must(NewUrl(v))
}

// FHIRType returns "url".
func (*Url) FHIRType() string { return "url" }

// Value returns the primitive value, or the zero value when there is none.
func (u *Url) Value() string {
	if u == nil || u.value == nil {
		return ""
	}
	return *u.value
}

// HasValue reports whether a value is present.
func (u *Url) HasValue() bool { return u != nil && u.value != nil }

// Accept implements visitor.Visitable.
func (u *Url) Accept(elementName string, elementIndex int, v visitor.Visitor) {
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
func (u *Url) Equal(other *Url) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.equalElement(&other.element) && equalPtr(u.value, other.value)
}

func (u *Url) equalBase(other Base) bool {
	o, ok := other.(*Url)
	return ok && u.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of u.
func (u *Url) ToBuilder() *UrlBuilder {
	return NewUrlBuilder().From(u)
}

// UrlBuilder builds Url values.
type UrlBuilder struct {
	elementBuilder[*UrlBuilder]
	value *string
}

// NewUrlBuilder creates an empty UrlBuilder.
func NewUrlBuilder() *UrlBuilder {
	b := &UrlBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *UrlBuilder) Value(v string) *UrlBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *UrlBuilder) From(src *Url) *UrlBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Url.
func (b *UrlBuilder) Build() (*Url, error) {
	const typ = "url"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "url", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Url{element: b.element(), value: b.value}, nil
}
