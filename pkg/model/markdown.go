package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Markdown is the FHIR markdown primitive: a string that may contain GitHub Flavored Markdown.
type Markdown struct {
	element
	value *string `fhir:"value,type=System.String"`
}

// NewMarkdown creates a Markdown holding v.
func NewMarkdown(v string) (*Markdown, error) {
	return NewMarkdownBuilder().Value(v).Build()
}

// MustMarkdown is like NewMarkdown but panics if v is not a valid markdown.
func MustMarkdown(v string) *Markdown {
	return must(NewMarkdown(v))
}

// FHIRType returns "markdown".
func (*Markdown) FHIRType() string { return "markdown" }

// Value returns the primitive value, or the zero value when there is none.
func (m *Markdown) Value() string {
	if m == nil || m.value == nil {
		return ""
	}
	return *m.value
}

// HasValue reports whether a value is present.
func (m *Markdown) HasValue() bool { return m != nil && m.value != nil }

// Accept implements visitor.Visitable.
func (m *Markdown) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if m == nil || !v.PreVisit(m) {
		return
	}
	v.VisitStart(elementName, elementIndex, m)
	if v.Visit(elementName, elementIndex, m) {
		m.acceptElement(v)
		if m.value != nil {
			v.VisitValue("value", -1, *m.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, m)
	v.PostVisit(m)
}

// Equal reports whether m and other are structurally equal.
func (m *Markdown) Equal(other *Markdown) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.equalElement(&other.element) && equalPtr(m.value, other.value)
}

func (m *Markdown) equalBase(other Base) bool {
	o, ok := other.(*Markdown)
	return ok && m.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of m.
func (m *Markdown) ToBuilder() *MarkdownBuilder {
	return NewMarkdownBuilder().From(m)
}

// MarkdownBuilder builds Markdown values.
type MarkdownBuilder struct {
	elementBuilder[*MarkdownBuilder]
	value *string
}

// NewMarkdownBuilder creates an empty MarkdownBuilder.
func NewMarkdownBuilder() *MarkdownBuilder {
	b := &MarkdownBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *MarkdownBuilder) Value(v string) *MarkdownBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *MarkdownBuilder) From(src *Markdown) *MarkdownBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Markdown.
func (b *MarkdownBuilder) Build() (*Markdown, error) {
	const typ = "markdown"
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "markdown", b.value),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Markdown{element: b.element(), value: b.value}, nil
}
