package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Narrative is a human-readable summary of the resource.
type Narrative struct {
	element
	status *CodeOf[NarrativeStatus] `fhir:"status,required,binding=NarrativeStatus,strength=required,valueSet=http://hl7.org/fhir/ValueSet/narrative-status|4.0.1"`
	div    *Xhtml                   `fhir:"div,required"`
}

// Status returns Narrative.status.
func (n *Narrative) Status() *CodeOf[NarrativeStatus] { return n.status }

// Div returns Narrative.div.
func (n *Narrative) Div() *Xhtml { return n.div }

// FHIRType returns "Narrative".
func (*Narrative) FHIRType() string { return "Narrative" }

// Accept implements visitor.Visitable.
func (n *Narrative) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if n == nil || !v.PreVisit(n) {
		return
	}
	v.VisitStart(elementName, elementIndex, n)
	if v.Visit(elementName, elementIndex, n) {
		n.acceptElement(v)
		accept(v, "status", n.status)
		accept(v, "div", n.div)
	}
	v.VisitEnd(elementName, elementIndex, n)
	v.PostVisit(n)
}

// Equal reports whether n and other are structurally equal.
func (n *Narrative) Equal(other *Narrative) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.equalElement(&other.element) &&
		n.status.Equal(other.status) &&
		n.div.Equal(other.div)
}

func (n *Narrative) equalBase(other Base) bool {
	o, ok := other.(*Narrative)
	return ok && n.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of n.
func (n *Narrative) ToBuilder() *NarrativeBuilder {
	return NewNarrativeBuilder().From(n)
}

// NarrativeBuilder builds Narrative values.
type NarrativeBuilder struct {
	elementBuilder[*NarrativeBuilder]
	status *CodeOf[NarrativeStatus]
	div    *Xhtml
}

// NewNarrativeBuilder creates an empty NarrativeBuilder.
func NewNarrativeBuilder() *NarrativeBuilder {
	b := &NarrativeBuilder{}
	b.self = b
	return b
}

// Status sets Narrative.status.
func (b *NarrativeBuilder) Status(status *CodeOf[NarrativeStatus]) *NarrativeBuilder {
	b.status = status
	return b
}

// Div sets Narrative.div.
func (b *NarrativeBuilder) Div(div *Xhtml) *NarrativeBuilder {
	b.div = div
	return b
}

// From copies every element of src into the builder.
func (b *NarrativeBuilder) From(src *Narrative) *NarrativeBuilder {
	b.fromElement(&src.element)
	b.status = src.status
	b.div = src.div
	return b
}

// Build validates the builder state and returns a new Narrative.
func (b *NarrativeBuilder) Build() (*Narrative, error) {
	const typ = "Narrative"
	if err := validation.First(
		b.checkElement(typ),
		validation.Require(typ, "status", b.status),
		validation.CheckCode(typ, "status", b.status),
		validation.Require(typ, "div", b.div),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Narrative{
		element: b.element(),
		status:  b.status,
		div:     b.div,
	}, nil
}

func (b *NarrativeBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.status != nil ||
		b.div != nil
}
