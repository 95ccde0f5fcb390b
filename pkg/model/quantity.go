package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Quantity is a measured amount, or an amount that can potentially be measured.
type Quantity struct {
	element
	value      *Decimal                    `fhir:"value,summary"`
	comparator *CodeOf[QuantityComparator] `fhir:"comparator,summary,modifier,binding=QuantityComparator,strength=required,valueSet=http://hl7.org/fhir/ValueSet/quantity-comparator|4.0.1"`
	unit       *String                     `fhir:"unit,summary"`
	system     *Uri                        `fhir:"system,summary"`
	code       *Code                       `fhir:"code,summary"`
}

// Value returns Quantity.value.
func (q *Quantity) Value() *Decimal { return q.value }

// Comparator returns Quantity.comparator.
func (q *Quantity) Comparator() *CodeOf[QuantityComparator] { return q.comparator }

// Unit returns Quantity.unit.
func (q *Quantity) Unit() *String { return q.unit }

// System returns Quantity.system.
func (q *Quantity) System() *Uri { return q.system }

// Code returns Quantity.code.
func (q *Quantity) Code() *Code { return q.code }

// FHIRType returns "Quantity".
func (*Quantity) FHIRType() string { return "Quantity" }

// Accept implements visitor.Visitable.
func (q *Quantity) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if q == nil || !v.PreVisit(q) {
		return
	}
	v.VisitStart(elementName, elementIndex, q)
	if v.Visit(elementName, elementIndex, q) {
		q.acceptElement(v)
		accept(v, "value", q.value)
		accept(v, "comparator", q.comparator)
		accept(v, "unit", q.unit)
		accept(v, "system", q.system)
		accept(v, "code", q.code)
	}
	v.VisitEnd(elementName, elementIndex, q)
	v.PostVisit(q)
}

// Equal reports whether q and other are structurally equal.
func (q *Quantity) Equal(other *Quantity) bool {
	if q == nil || other == nil {
		return q == other
	}
	return q.equalElement(&other.element) &&
		q.value.Equal(other.value) &&
		q.comparator.Equal(other.comparator) &&
		q.unit.Equal(other.unit) &&
		q.system.Equal(other.system) &&
		q.code.Equal(other.code)
}

func (q *Quantity) equalBase(other Base) bool {
	o, ok := other.(*Quantity)
	return ok && q.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of q.
func (q *Quantity) ToBuilder() *QuantityBuilder {
	return NewQuantityBuilder().From(q)
}

// QuantityBuilder builds Quantity values.
type QuantityBuilder struct {
	elementBuilder[*QuantityBuilder]
	value      *Decimal
	comparator *CodeOf[QuantityComparator]
	unit       *String
	system     *Uri
	code       *Code
}

// NewQuantityBuilder creates an empty QuantityBuilder.
func NewQuantityBuilder() *QuantityBuilder {
	b := &QuantityBuilder{}
	b.self = b
	return b
}

// Value sets Quantity.value.
func (b *QuantityBuilder) Value(value *Decimal) *QuantityBuilder {
	b.value = value
	return b
}

// Comparator sets Quantity.comparator.
func (b *QuantityBuilder) Comparator(comparator *CodeOf[QuantityComparator]) *QuantityBuilder {
	b.comparator = comparator
	return b
}

// Unit sets Quantity.unit.
func (b *QuantityBuilder) Unit(unit *String) *QuantityBuilder {
	b.unit = unit
	return b
}

// System sets Quantity.system.
func (b *QuantityBuilder) System(system *Uri) *QuantityBuilder {
	b.system = system
	return b
}

// Code sets Quantity.code.
func (b *QuantityBuilder) Code(code *Code) *QuantityBuilder {
	b.code = code
	return b
}

// From copies every element of src into the builder.
func (b *QuantityBuilder) From(src *Quantity) *QuantityBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	b.comparator = src.comparator
	b.unit = src.unit
	b.system = src.system
	b.code = src.code
	return b
}

// Build validates the builder state and returns a new Quantity.
func (b *QuantityBuilder) Build() (*Quantity, error) {
	const typ = "Quantity"
	if err := validation.First(
		b.checkElement(typ),
		validation.CheckCode(typ, "comparator", b.comparator),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Quantity{
		element:    b.element(),
		value:      b.value,
		comparator: b.comparator,
		unit:       b.unit,
		system:     b.system,
		code:       b.code,
	}, nil
}

func (b *QuantityBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.value != nil ||
		b.comparator != nil ||
		b.unit != nil ||
		b.system != nil ||
		b.code != nil
}
