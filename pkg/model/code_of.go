package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// CodeValue is implemented by the generated value set types such as
// BundleType and ChargeItemStatus.
type CodeValue interface {
	~string
	IsValid() bool
	ValueSet() string
}

// CodeOf is a code element bound to the required value set of T.
type CodeOf[T CodeValue] struct {
	element
	value *T `fhir:"value,type=System.String"`
}

var _ validation.Coded = (*CodeOf[BundleType])(nil)

// NewCodeOf creates a CodeOf holding v.
func NewCodeOf[T CodeValue](v T) (*CodeOf[T], error) {
	return NewCodeOfBuilder[T]().Value(v).Build()
}

// FHIRType returns "code".
func (*CodeOf[T]) FHIRType() string { return "code" }

// Value returns the code, or "" when there is none.
func (c *CodeOf[T]) Value() T {
	if c == nil || c.value == nil {
		var zero T
		return zero
	}
	return *c.value
}

// HasValue reports whether a code is present.
func (c *CodeOf[T]) HasValue() bool { return c != nil && c.value != nil }

// CodeValue implements validation.Coded.
func (c *CodeOf[T]) CodeValue() (string, bool) {
	if !c.HasValue() {
		return "", false
	}
	return string(*c.value), true
}

// InValueSet implements validation.Coded.
func (c *CodeOf[T]) InValueSet() bool {
	return !c.HasValue() || (*c.value).IsValid()
}

// ValueSetURL implements validation.Coded.
func (c *CodeOf[T]) ValueSetURL() string {
	var zero T
	return zero.ValueSet()
}

// Code returns the value as a plain code element with the same id and
// extensions.
func (c *CodeOf[T]) Code() *Code {
	if c == nil {
		return nil
	}
	code := &Code{element: c.element}
	if c.value != nil {
		s := string(*c.value)
		code.value = &s
	}
	return code
}

// Accept implements visitor.Visitable.
func (c *CodeOf[T]) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptElement(v)
		if c.value != nil {
			v.VisitValue("value", -1, string(*c.value))
		}
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *CodeOf[T]) Equal(other *CodeOf[T]) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalElement(&other.element) && equalPtr(c.value, other.value)
}

func (c *CodeOf[T]) equalBase(other Base) bool {
	o, ok := other.(*CodeOf[T])
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *CodeOf[T]) ToBuilder() *CodeOfBuilder[T] {
	return NewCodeOfBuilder[T]().From(c)
}

// CodeOfBuilder builds CodeOf values.
type CodeOfBuilder[T CodeValue] struct {
	elementBuilder[*CodeOfBuilder[T]]
	value *T
}

// NewCodeOfBuilder creates an empty CodeOfBuilder.
func NewCodeOfBuilder[T CodeValue]() *CodeOfBuilder[T] {
	b := &CodeOfBuilder[T]{}
	b.self = b
	return b
}

// Value sets the code.
func (b *CodeOfBuilder[T]) Value(v T) *CodeOfBuilder[T] {
	b.value = &v
	return b
}

// From copies every element of src into the builder.
func (b *CodeOfBuilder[T]) From(src *CodeOf[T]) *CodeOfBuilder[T] {
	b.fromElement(&src.element)
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new CodeOf.
func (b *CodeOfBuilder[T]) Build() (*CodeOf[T], error) {
	const typ = "code"
	c := &CodeOf[T]{element: b.element(), value: b.value}
	var raw *string
	if b.value != nil {
		s := string(*b.value)
		raw = &s
	}
	if err := validation.First(
		b.checkElement(typ),
		checkString(typ, "code", raw),
		validation.CheckCode(typ, "value", c),
		validation.RequireValueOrChildren(typ, b.value != nil || len(b.extension) > 0),
	); err != nil {
		return nil, err
	}
	return c, nil
}

func codeOf[T CodeValue](v T) *CodeOf[T] {
	return &CodeOf[T]{value: &v}
}
