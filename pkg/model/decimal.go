package model

import (
	"github.com/shopspring/decimal"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Decimal is the FHIR decimal primitive: a rational number with implicit precision.
type Decimal struct {
	element
	value *decimal.Decimal `fhir:"value,type=System.Decimal"`
}

// NewDecimal creates a Decimal holding v.
func NewDecimal(v decimal.Decimal) *Decimal {
	return &Decimal{value: &v}
}

// FHIRType returns "decimal".
func (*Decimal) FHIRType() string { return "decimal" }

// Value returns the primitive value, or the zero value when there is none.
func (d *Decimal) Value() decimal.Decimal {
	if d == nil || d.value == nil {
		return decimal.Decimal{}
	}
	return *d.value
}

// HasValue reports whether a value is present.
func (d *Decimal) HasValue() bool { return d != nil && d.value != nil }

// Accept implements visitor.Visitable.
func (d *Decimal) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if d == nil || !v.PreVisit(d) {
		return
	}
	v.VisitStart(elementName, elementIndex, d)
	if v.Visit(elementName, elementIndex, d) {
		d.acceptElement(v)
		if d.value != nil {
			v.VisitValue("value", -1, *d.value)
		}
	}
	v.VisitEnd(elementName, elementIndex, d)
	v.PostVisit(d)
}

// Equal reports whether d and other are structurally equal.
func (d *Decimal) Equal(other *Decimal) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.equalElement(&other.element) && equalDecimal(d.value, other.value)
}

func (d *Decimal) equalBase(other Base) bool {
	o, ok := other.(*Decimal)
	return ok && d.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of d.
func (d *Decimal) ToBuilder() *DecimalBuilder {
	return NewDecimalBuilder().From(d)
}

// DecimalBuilder builds Decimal values.
type DecimalBuilder struct {
	elementBuilder[*DecimalBuilder]
	value *decimal.Decimal
}

// NewDecimalBuilder creates an empty DecimalBuilder.
func NewDecimalBuilder() *DecimalBuilder {
	b := &DecimalBuilder{}
	b.self = b
	return b
}

// Value sets the primitive value.
func (b *DecimalBuilder) Value(v decimal.Decimal) *DecimalBuilder {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *DecimalBuilder) From(src *Decimal) *DecimalBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Decimal.
func (b *DecimalBuilder) Build() (*Decimal, error) {
	const typ = "decimal"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return &Decimal{element: b.element(), value: b.value}, nil
}
