package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Period is a time period defined by a start and end date and optionally time.
type Period struct {
	element
	start *DateTime `fhir:"start,summary"`
	end   *DateTime `fhir:"end,summary"`
}

// Start returns Period.start.
func (p *Period) Start() *DateTime { return p.start }

// End returns Period.end.
func (p *Period) End() *DateTime { return p.end }

// FHIRType returns "Period".
func (*Period) FHIRType() string { return "Period" }

// Accept implements visitor.Visitable.
func (p *Period) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if p == nil || !v.PreVisit(p) {
		return
	}
	v.VisitStart(elementName, elementIndex, p)
	if v.Visit(elementName, elementIndex, p) {
		p.acceptElement(v)
		accept(v, "start", p.start)
		accept(v, "end", p.end)
	}
	v.VisitEnd(elementName, elementIndex, p)
	v.PostVisit(p)
}

// Equal reports whether p and other are structurally equal.
func (p *Period) Equal(other *Period) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.equalElement(&other.element) &&
		p.start.Equal(other.start) &&
		p.end.Equal(other.end)
}

func (p *Period) equalBase(other Base) bool {
	o, ok := other.(*Period)
	return ok && p.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of p.
func (p *Period) ToBuilder() *PeriodBuilder {
	return NewPeriodBuilder().From(p)
}

// PeriodBuilder builds Period values.
type PeriodBuilder struct {
	elementBuilder[*PeriodBuilder]
	start *DateTime
	end   *DateTime
}

// NewPeriodBuilder creates an empty PeriodBuilder.
func NewPeriodBuilder() *PeriodBuilder {
	b := &PeriodBuilder{}
	b.self = b
	return b
}

// Start sets Period.start.
func (b *PeriodBuilder) Start(start *DateTime) *PeriodBuilder {
	b.start = start
	return b
}

// End sets Period.end.
func (b *PeriodBuilder) End(end *DateTime) *PeriodBuilder {
	b.end = end
	return b
}

// From copies every element of src into the builder.
func (b *PeriodBuilder) From(src *Period) *PeriodBuilder {
	b.fromElement(&src.element)
	b.start = src.start
	b.end = src.end
	return b
}

// Build validates the builder state and returns a new Period.
func (b *PeriodBuilder) Build() (*Period, error) {
	const typ = "Period"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Period{
		element: b.element(),
		start:   b.start,
		end:     b.end,
	}, nil
}

func (b *PeriodBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.start != nil ||
		b.end != nil
}
