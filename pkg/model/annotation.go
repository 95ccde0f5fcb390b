package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Annotation is a text note which also contains information about who made the statement and when.
type Annotation struct {
	element
	author Element   `fhir:"author[x],summary,choice=Reference|string,targets=Practitioner|Patient|RelatedPerson|Organization"`
	time   *DateTime `fhir:"time,summary"`
	text   *Markdown `fhir:"text,required,summary"`
}

// Author returns Annotation.author[x]: *Reference or *String.
func (a *Annotation) Author() Element { return a.author }

// Time returns Annotation.time.
func (a *Annotation) Time() *DateTime { return a.time }

// Text returns Annotation.text.
func (a *Annotation) Text() *Markdown { return a.text }

// FHIRType returns "Annotation".
func (*Annotation) FHIRType() string { return "Annotation" }

// Accept implements visitor.Visitable.
func (a *Annotation) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if a == nil || !v.PreVisit(a) {
		return
	}
	v.VisitStart(elementName, elementIndex, a)
	if v.Visit(elementName, elementIndex, a) {
		a.acceptElement(v)
		accept(v, "author", a.author)
		accept(v, "time", a.time)
		accept(v, "text", a.text)
	}
	v.VisitEnd(elementName, elementIndex, a)
	v.PostVisit(a)
}

// Equal reports whether a and other are structurally equal.
func (a *Annotation) Equal(other *Annotation) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.equalElement(&other.element) &&
		equalBase(a.author, other.author) &&
		a.time.Equal(other.time) &&
		a.text.Equal(other.text)
}

func (a *Annotation) equalBase(other Base) bool {
	o, ok := other.(*Annotation)
	return ok && a.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of a.
func (a *Annotation) ToBuilder() *AnnotationBuilder {
	return NewAnnotationBuilder().From(a)
}

// AnnotationBuilder builds Annotation values.
type AnnotationBuilder struct {
	elementBuilder[*AnnotationBuilder]
	author Element
	time   *DateTime
	text   *Markdown
}

// NewAnnotationBuilder creates an empty AnnotationBuilder.
func NewAnnotationBuilder() *AnnotationBuilder {
	b := &AnnotationBuilder{}
	b.self = b
	return b
}

// Author sets Annotation.author[x].
func (b *AnnotationBuilder) Author(author Element) *AnnotationBuilder {
	b.author = author
	return b
}

// Time sets Annotation.time.
func (b *AnnotationBuilder) Time(time *DateTime) *AnnotationBuilder {
	b.time = time
	return b
}

// Text sets Annotation.text.
func (b *AnnotationBuilder) Text(text *Markdown) *AnnotationBuilder {
	b.text = text
	return b
}

// From copies every element of src into the builder.
func (b *AnnotationBuilder) From(src *Annotation) *AnnotationBuilder {
	b.fromElement(&src.element)
	b.author = src.author
	b.time = src.time
	b.text = src.text
	return b
}

// Build validates the builder state and returns a new Annotation.
func (b *AnnotationBuilder) Build() (*Annotation, error) {
	const typ = "Annotation"
	if err := validation.First(
		b.checkElement(typ),
		validation.Choice(typ, "author", b.author, "Reference", "string"),
		checkChoiceReference(typ, "author", b.author, "Practitioner", "Patient", "RelatedPerson", "Organization"),
		validation.Require(typ, "text", b.text),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Annotation{
		element: b.element(),
		author:  b.author,
		time:    b.time,
		text:    b.text,
	}, nil
}

func (b *AnnotationBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.author != nil ||
		b.time != nil ||
		b.text != nil
}
