package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	element
	system       *Uri     `fhir:"system,summary"`
	version      *String  `fhir:"version,summary"`
	code         *Code    `fhir:"code,summary"`
	display      *String  `fhir:"display,summary"`
	userSelected *Boolean `fhir:"userSelected,summary"`
}

// System returns Coding.system.
func (c *Coding) System() *Uri { return c.system }

// Version returns Coding.version.
func (c *Coding) Version() *String { return c.version }

// Code returns Coding.code.
func (c *Coding) Code() *Code { return c.code }

// Display returns Coding.display.
func (c *Coding) Display() *String { return c.display }

// UserSelected returns Coding.userSelected.
func (c *Coding) UserSelected() *Boolean { return c.userSelected }

// FHIRType returns "Coding".
func (*Coding) FHIRType() string { return "Coding" }

// Accept implements visitor.Visitable.
func (c *Coding) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if c == nil || !v.PreVisit(c) {
		return
	}
	v.VisitStart(elementName, elementIndex, c)
	if v.Visit(elementName, elementIndex, c) {
		c.acceptElement(v)
		accept(v, "system", c.system)
		accept(v, "version", c.version)
		accept(v, "code", c.code)
		accept(v, "display", c.display)
		accept(v, "userSelected", c.userSelected)
	}
	v.VisitEnd(elementName, elementIndex, c)
	v.PostVisit(c)
}

// Equal reports whether c and other are structurally equal.
func (c *Coding) Equal(other *Coding) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.equalElement(&other.element) &&
		c.system.Equal(other.system) &&
		c.version.Equal(other.version) &&
		c.code.Equal(other.code) &&
		c.display.Equal(other.display) &&
		c.userSelected.Equal(other.userSelected)
}

func (c *Coding) equalBase(other Base) bool {
	o, ok := other.(*Coding)
	return ok && c.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of c.
func (c *Coding) ToBuilder() *CodingBuilder {
	return NewCodingBuilder().From(c)
}

// CodingBuilder builds Coding values.
type CodingBuilder struct {
	elementBuilder[*CodingBuilder]
	system       *Uri
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

// NewCodingBuilder creates an empty CodingBuilder.
func NewCodingBuilder() *CodingBuilder {
	b := &CodingBuilder{}
	b.self = b
	return b
}

// System sets Coding.system.
func (b *CodingBuilder) System(system *Uri) *CodingBuilder {
	b.system = system
	return b
}

// Version sets Coding.version.
func (b *CodingBuilder) Version(version *String) *CodingBuilder {
	b.version = version
	return b
}

// Code sets Coding.code.
func (b *CodingBuilder) Code(code *Code) *CodingBuilder {
	b.code = code
	return b
}

// Display sets Coding.display.
func (b *CodingBuilder) Display(display *String) *CodingBuilder {
	b.display = display
	return b
}

// UserSelected sets Coding.userSelected.
func (b *CodingBuilder) UserSelected(userSelected *Boolean) *CodingBuilder {
	b.userSelected = userSelected
	return b
}

// From copies every element of src into the builder.
func (b *CodingBuilder) From(src *Coding) *CodingBuilder {
	b.fromElement(&src.element)
	b.system = src.system
	b.version = src.version
	b.code = src.code
	b.display = src.display
	b.userSelected = src.userSelected
	return b
}

// Build validates the builder state and returns a new Coding.
func (b *CodingBuilder) Build() (*Coding, error) {
	const typ = "Coding"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Coding{
		element:      b.element(),
		system:       b.system,
		version:      b.version,
		code:         b.code,
		display:      b.display,
		userSelected: b.userSelected,
	}, nil
}

func (b *CodingBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.system != nil ||
		b.version != nil ||
		b.code != nil ||
		b.display != nil ||
		b.userSelected != nil
}
