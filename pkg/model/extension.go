package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Extension is an optional element that carries additional information.
type Extension struct {
	element
	url   string  `fhir:"url,required,type=uri"`
	value Element `fhir:"value[x],choice=base64Binary|boolean|canonical|code|date|dateTime|decimal|id|instant|integer|markdown|oid|positiveInt|string|time|unsignedInt|uri|url|uuid|Address|Age|Annotation|Attachment|CodeableConcept|Coding|ContactPoint|Count|Distance|Duration|HumanName|Identifier|Money|Period|Quantity|Range|Ratio|Reference|SampledData|Signature|Timing|ContactDetail|Contributor|DataRequirement|Expression|ParameterDefinition|RelatedArtifact|TriggerDefinition|UsageContext|Dosage|Meta"`
}

// URL returns Extension.url.
func (e *Extension) URL() string { return e.url }

// Value returns Extension.value[x].
func (e *Extension) Value() Element { return e.value }

// FHIRType returns "Extension".
func (*Extension) FHIRType() string { return "Extension" }

// Accept implements visitor.Visitable.
func (e *Extension) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if e == nil || !v.PreVisit(e) {
		return
	}
	v.VisitStart(elementName, elementIndex, e)
	if v.Visit(elementName, elementIndex, e) {
		e.acceptElement(v)
		if e.url != "" {
			v.VisitValue("url", -1, e.url)
		}
		accept(v, "value", e.value)
	}
	v.VisitEnd(elementName, elementIndex, e)
	v.PostVisit(e)
}

// Equal reports whether e and other are structurally equal.
func (e *Extension) Equal(other *Extension) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.equalElement(&other.element) &&
		e.url == other.url &&
		equalBase(e.value, other.value)
}

func (e *Extension) equalBase(other Base) bool {
	o, ok := other.(*Extension)
	return ok && e.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of e.
func (e *Extension) ToBuilder() *ExtensionBuilder {
	return NewExtensionBuilder().From(e)
}

// ExtensionBuilder builds Extension values.
type ExtensionBuilder struct {
	elementBuilder[*ExtensionBuilder]
	url   string
	value Element
}

// NewExtensionBuilder creates an empty ExtensionBuilder.
func NewExtensionBuilder() *ExtensionBuilder {
	b := &ExtensionBuilder{}
	b.self = b
	return b
}

// URL sets Extension.url.
func (b *ExtensionBuilder) URL(url string) *ExtensionBuilder {
	b.url = url
	return b
}

// Value sets Extension.value[x].
func (b *ExtensionBuilder) Value(value Element) *ExtensionBuilder {
	b.value = value
	return b
}

// From copies every element of src into the builder.
func (b *ExtensionBuilder) From(src *Extension) *ExtensionBuilder {
	b.fromElement(&src.element)
	b.url = src.url
	b.value = src.value
	return b
}

// Build validates the builder state and returns a new Extension.
func (b *ExtensionBuilder) Build() (*Extension, error) {
	const typ = "Extension"
	if err := validation.First(
		b.checkElement(typ),
		requireString(typ, "url", "uri", b.url),
		validation.Choice(typ, "value", b.value, openTypes...),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Extension{
		element: b.element(),
		url:     b.url,
		value:   b.value,
	}, nil
}

func (b *ExtensionBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.url != "" ||
		b.value != nil
}
