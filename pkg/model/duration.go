package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Duration is a length of time.
type Duration struct {
	element
	value      *Decimal                    `fhir:"value,summary"`
	comparator *CodeOf[QuantityComparator] `fhir:"comparator,summary,modifier,binding=QuantityComparator,strength=required,valueSet=http://hl7.org/fhir/ValueSet/quantity-comparator|4.0.1"`
	unit       *String                     `fhir:"unit,summary"`
	system     *Uri                        `fhir:"system,summary"`
	code       *Code                       `fhir:"code,summary"`
}

// Value returns Duration.value.
func (d *Duration) Value() *Decimal { return d.value }

// Comparator returns Duration.comparator.
func (d *Duration) Comparator() *CodeOf[QuantityComparator] { return d.comparator }

// Unit returns Duration.unit.
func (d *Duration) Unit() *String { return d.unit }

// System returns Duration.system.
func (d *Duration) System() *Uri { return d.system }

// Code returns Duration.code.
func (d *Duration) Code() *Code { return d.code }

// Specializes returns "Quantity": a Duration may be used wherever a Quantity is allowed.
func (*Duration) Specializes() string { return "Quantity" }

// FHIRType returns "Duration".
func (*Duration) FHIRType() string { return "Duration" }

// Accept implements visitor.Visitable.
func (d *Duration) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if d == nil || !v.PreVisit(d) {
		return
	}
	v.VisitStart(elementName, elementIndex, d)
	if v.Visit(elementName, elementIndex, d) {
		d.acceptElement(v)
		accept(v, "value", d.value)
		accept(v, "comparator", d.comparator)
		accept(v, "unit", d.unit)
		accept(v, "system", d.system)
		accept(v, "code", d.code)
	}
	v.VisitEnd(elementName, elementIndex, d)
	v.PostVisit(d)
}

// Equal reports whether d and other are structurally equal.
func (d *Duration) Equal(other *Duration) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.equalElement(&other.element) &&
		d.value.Equal(other.value) &&
		d.comparator.Equal(other.comparator) &&
		d.unit.Equal(other.unit) &&
		d.system.Equal(other.system) &&
		d.code.Equal(other.code)
}

func (d *Duration) equalBase(other Base) bool {
	o, ok := other.(*Duration)
	return ok && d.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of d.
func (d *Duration) ToBuilder() *DurationBuilder {
	return NewDurationBuilder().From(d)
}

// DurationBuilder builds Duration values.
type DurationBuilder struct {
	elementBuilder[*DurationBuilder]
	value      *Decimal
	comparator *CodeOf[QuantityComparator]
	unit       *String
	system     *Uri
	code       *Code
}

// NewDurationBuilder creates an empty DurationBuilder.
func NewDurationBuilder() *DurationBuilder {
	b := &DurationBuilder{}
	b.self = b
	return b
}

// Value sets Duration.value.
func (b *DurationBuilder) Value(value *Decimal) *DurationBuilder {
	b.value = value
	return b
}

// Comparator sets Duration.comparator.
func (b *DurationBuilder) Comparator(comparator *CodeOf[QuantityComparator]) *DurationBuilder {
	b.comparator = comparator
	return b
}

// Unit sets Duration.unit.
func (b *DurationBuilder) Unit(unit *String) *DurationBuilder {
	b.unit = unit
	return b
}

// System sets Duration.system.
func (b *DurationBuilder) System(system *Uri) *DurationBuilder {
	b.system = system
	return b
}

// Code sets Duration.code.
func (b *DurationBuilder) Code(code *Code) *DurationBuilder {
	b.code = code
	return b
}

// From copies every element of src into the builder.
func (b *DurationBuilder) From(src *Duration) *DurationBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	b.comparator = src.comparator
	b.unit = src.unit
	b.system = src.system
	b.code = src.code
	return b
}

// Build validates the builder state and returns a new Duration.
func (b *DurationBuilder) Build() (*Duration, error) {
	const typ = "Duration"
	if err := validation.First(
		b.checkElement(typ),
		validation.CheckCode(typ, "comparator", b.comparator),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Duration{
		element:    b.element(),
		value:      b.value,
		comparator: b.comparator,
		unit:       b.unit,
		system:     b.system,
		code:       b.code,
	}, nil
}

func (b *DurationBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.value != nil ||
		b.comparator != nil ||
		b.unit != nil ||
		b.system != nil ||
		b.code != nil
}
