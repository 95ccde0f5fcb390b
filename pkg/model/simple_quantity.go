package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// SimpleQuantity is a Quantity without a comparator.
type SimpleQuantity struct {
	element
	value  *Decimal `fhir:"value,summary"`
	unit   *String  `fhir:"unit,summary"`
	system *Uri     `fhir:"system,summary"`
	code   *Code    `fhir:"code,summary"`
}

// Value returns SimpleQuantity.value.
func (s *SimpleQuantity) Value() *Decimal { return s.value }

// Unit returns SimpleQuantity.unit.
func (s *SimpleQuantity) Unit() *String { return s.unit }

// System returns SimpleQuantity.system.
func (s *SimpleQuantity) System() *Uri { return s.system }

// Code returns SimpleQuantity.code.
func (s *SimpleQuantity) Code() *Code { return s.code }

// Specializes returns "Quantity": a SimpleQuantity may be used wherever a Quantity is allowed.
func (*SimpleQuantity) Specializes() string { return "Quantity" }

// FHIRType returns "SimpleQuantity".
func (*SimpleQuantity) FHIRType() string { return "SimpleQuantity" }

// Accept implements visitor.Visitable.
func (s *SimpleQuantity) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptElement(v)
		accept(v, "value", s.value)
		accept(v, "unit", s.unit)
		accept(v, "system", s.system)
		accept(v, "code", s.code)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *SimpleQuantity) Equal(other *SimpleQuantity) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalElement(&other.element) &&
		s.value.Equal(other.value) &&
		s.unit.Equal(other.unit) &&
		s.system.Equal(other.system) &&
		s.code.Equal(other.code)
}

func (s *SimpleQuantity) equalBase(other Base) bool {
	o, ok := other.(*SimpleQuantity)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *SimpleQuantity) ToBuilder() *SimpleQuantityBuilder {
	return NewSimpleQuantityBuilder().From(s)
}

// SimpleQuantityBuilder builds SimpleQuantity values.
type SimpleQuantityBuilder struct {
	elementBuilder[*SimpleQuantityBuilder]
	value  *Decimal
	unit   *String
	system *Uri
	code   *Code
}

// NewSimpleQuantityBuilder creates an empty SimpleQuantityBuilder.
func NewSimpleQuantityBuilder() *SimpleQuantityBuilder {
	b := &SimpleQuantityBuilder{}
	b.self = b
	return b
}

// Value sets SimpleQuantity.value.
func (b *SimpleQuantityBuilder) Value(value *Decimal) *SimpleQuantityBuilder {
	b.value = value
	return b
}

// Unit sets SimpleQuantity.unit.
func (b *SimpleQuantityBuilder) Unit(unit *String) *SimpleQuantityBuilder {
	b.unit = unit
	return b
}

// System sets SimpleQuantity.system.
func (b *SimpleQuantityBuilder) System(system *Uri) *SimpleQuantityBuilder {
	b.system = system
	return b
}

// Code sets SimpleQuantity.code.
func (b *SimpleQuantityBuilder) Code(code *Code) *SimpleQuantityBuilder {
	b.code = code
	return b
}

// From copies every element of src into the builder.
func (b *SimpleQuantityBuilder) From(src *SimpleQuantity) *SimpleQuantityBuilder {
	b.fromElement(&src.element)
	b.value = src.value
	b.unit = src.unit
	b.system = src.system
	b.code = src.code
	return b
}

// Build validates the builder state and returns a new SimpleQuantity.
func (b *SimpleQuantityBuilder) Build() (*SimpleQuantity, error) {
	const typ = "SimpleQuantity"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &SimpleQuantity{
		element: b.element(),
		value:   b.value,
		unit:    b.unit,
		system:  b.system,
		code:    b.code,
	}, nil
}

func (b *SimpleQuantityBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.value != nil ||
		b.unit != nil ||
		b.system != nil ||
		b.code != nil
}
