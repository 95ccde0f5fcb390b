package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Money is an amount of economic utility in some recognized currency.
type Money struct {
	element
	value    *Decimal `fhir:"value,summary"`
	currency *Code    `fhir:"currency,summary,binding=CurrencyCode,strength=required,valueSet=http://hl7.org/fhir/ValueSet/currencies|4.0.1"`
}

// Value returns Money.value.
func (m *Money) Value() *Decimal { return m.value }

// Currency returns Money.currency.
func (m *Money) Currency() *Code { return m.currency }

// FHIRType returns "Money".
func (*Money) FHIRType() string { return "Money" }

// Accept implements visitor.Visitable.
func (m *Money) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if m == nil || !v.PreVisit(m) {
		return
	}
	v.VisitStart(elementName, elementIndex, m)
	if v.Visit(elementName, elementIndex, m) {
		m.acceptElement(v)
		accept(v, "value", m.value)
		accept(v, "currency", m.currency)
	}
	v.VisitEnd(elementName, elementIndex, m)
	v.PostVisit(m)
}

// Equal reports whether m and other are structurally equal.
func (m *Money) Equal(other *Money) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.equalElement(&other.element) &&
		m.value.Equal(other.value) &&
		m.currency.Equal(other.currency)
}

func (m *Money) equalBase(other Base) bool {
	o, ok := other.(*Money)
	return ok && m.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of m.
func (m *Money) ToBuilder() *MoneyBuilder {
	return NewMoneyBuilder().From(m)
}

// MoneyBuilder builds Money values.
type MoneyBuilder struct {
	elementBuilder[*MoneyBuilder]
	value    *Decimal
	currency *Code
}

// NewMoneyBuilder creates an empty MoneyBuilder.
func NewMoneyBuilder() *MoneyBuilder {
	b := &MoneyBuilder{}
	b.self = b
	return b
}

// Value sets Money.value.
func (b *MoneyBuilder) Value(value *Decimal) *MoneyBuilder {
	b.value = value
	return b
}

// Currency sets Money.currency.
func (b *MoneyBuilder) Currency(currency *Code) *MoneyBuilder {
	b.currency = currency
	return b
}

// From copies every element of src into the builder.
func (b *MoneyBuilder) From(src *Money) *MoneyBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	b.currency = src.currency
	return b
}

// Build validates the builder state and returns a new Money.
func (b *MoneyBuilder) Build() (*Money, error) {
	const typ = "Money"
	if err := validation.First(
		b.checkElement(typ),
		checkCurrency(typ, "currency", b.currency),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Money{
		element:  b.element(),
		value:    b.value,
		currency: b.currency,
	}, nil
}

func (b *MoneyBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.value != nil ||
		b.currency != nil
}
