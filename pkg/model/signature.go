package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Signature is a digital signature along with supporting context.
type Signature struct {
	element
	typ          []*Coding     `fhir:"type,min=1,summary,binding=SignatureType,strength=preferred,valueSet=http://hl7.org/fhir/ValueSet/signature-type"`
	when         *Instant      `fhir:"when,required,summary"`
	who          *Reference    `fhir:"who,required,summary,targets=Practitioner|PractitionerRole|RelatedPerson|Patient|Device|Organization"`
	onBehalfOf   *Reference    `fhir:"onBehalfOf,summary,targets=Practitioner|PractitionerRole|RelatedPerson|Patient|Device|Organization"`
	targetFormat *Code         `fhir:"targetFormat,binding=MimeType,strength=required,valueSet=http://hl7.org/fhir/ValueSet/mimetypes|4.0.1"`
	sigFormat    *Code         `fhir:"sigFormat,binding=MimeType,strength=required,valueSet=http://hl7.org/fhir/ValueSet/mimetypes|4.0.1"`
	data         *Base64Binary `fhir:"data"`
}

// Type returns Signature.type.
func (s *Signature) Type() []*Coding { return s.typ }

// When returns Signature.when.
func (s *Signature) When() *Instant { return s.when }

// Who returns Signature.who.
func (s *Signature) Who() *Reference { return s.who }

// OnBehalfOf returns Signature.onBehalfOf.
func (s *Signature) OnBehalfOf() *Reference { return s.onBehalfOf }

// TargetFormat returns Signature.targetFormat.
func (s *Signature) TargetFormat() *Code { return s.targetFormat }

// SigFormat returns Signature.sigFormat.
func (s *Signature) SigFormat() *Code { return s.sigFormat }

// Data returns Signature.data.
func (s *Signature) Data() *Base64Binary { return s.data }

// FHIRType returns "Signature".
func (*Signature) FHIRType() string { return "Signature" }

// Accept implements visitor.Visitable.
func (s *Signature) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if s == nil || !v.PreVisit(s) {
		return
	}
	v.VisitStart(elementName, elementIndex, s)
	if v.Visit(elementName, elementIndex, s) {
		s.acceptElement(v)
		acceptList(v, "type", s.typ)
		accept(v, "when", s.when)
		accept(v, "who", s.who)
		accept(v, "onBehalfOf", s.onBehalfOf)
		accept(v, "targetFormat", s.targetFormat)
		accept(v, "sigFormat", s.sigFormat)
		accept(v, "data", s.data)
	}
	v.VisitEnd(elementName, elementIndex, s)
	v.PostVisit(s)
}

// Equal reports whether s and other are structurally equal.
func (s *Signature) Equal(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.equalElement(&other.element) &&
		equalList(s.typ, other.typ) &&
		s.when.Equal(other.when) &&
		s.who.Equal(other.who) &&
		s.onBehalfOf.Equal(other.onBehalfOf) &&
		s.targetFormat.Equal(other.targetFormat) &&
		s.sigFormat.Equal(other.sigFormat) &&
		s.data.Equal(other.data)
}

func (s *Signature) equalBase(other Base) bool {
	o, ok := other.(*Signature)
	return ok && s.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of s.
func (s *Signature) ToBuilder() *SignatureBuilder {
	return NewSignatureBuilder().From(s)
}

// SignatureBuilder builds Signature values.
type SignatureBuilder struct {
	elementBuilder[*SignatureBuilder]
	typ          []*Coding
	when         *Instant
	who          *Reference
	onBehalfOf   *Reference
	targetFormat *Code
	sigFormat    *Code
	data         *Base64Binary
}

// NewSignatureBuilder creates an empty SignatureBuilder.
func NewSignatureBuilder() *SignatureBuilder {
	b := &SignatureBuilder{}
	b.self = b
	return b
}

// Type appends to Signature.type.
func (b *SignatureBuilder) Type(typ ...*Coding) *SignatureBuilder {
	b.typ = append(b.typ, typ...)
	return b
}

// SetType replaces Signature.type.
func (b *SignatureBuilder) SetType(typ []*Coding) *SignatureBuilder {
	b.typ = slices.Clone(typ)
	return b
}

// When sets Signature.when.
func (b *SignatureBuilder) When(when *Instant) *SignatureBuilder {
	b.when = when
	return b
}

// Who sets Signature.who.
func (b *SignatureBuilder) Who(who *Reference) *SignatureBuilder {
	b.who = who
	return b
}

// OnBehalfOf sets Signature.onBehalfOf.
func (b *SignatureBuilder) OnBehalfOf(onBehalfOf *Reference) *SignatureBuilder {
	b.onBehalfOf = onBehalfOf
	return b
}

// TargetFormat sets Signature.targetFormat.
func (b *SignatureBuilder) TargetFormat(targetFormat *Code) *SignatureBuilder {
	b.targetFormat = targetFormat
	return b
}

// SigFormat sets Signature.sigFormat.
func (b *SignatureBuilder) SigFormat(sigFormat *Code) *SignatureBuilder {
	b.sigFormat = sigFormat
	return b
}

// Data sets Signature.data.
func (b *SignatureBuilder) Data(data *Base64Binary) *SignatureBuilder {
	b.data = data
	return b
}

// From copies every element of src into the builder.
func (b *SignatureBuilder) From(src *Signature) *SignatureBuilder {
	b.fromElement(&src.element)
	b.typ = slices.Clone(src.typ)
	b.when = src.when
	b.who = src.who
	b.onBehalfOf = src.onBehalfOf
	b.targetFormat = src.targetFormat
	b.sigFormat = src.sigFormat
	b.data = src.data
	return b
}

// Build validates the builder state and returns a new Signature.
func (b *SignatureBuilder) Build() (*Signature, error) {
	const typ = "Signature"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireNonEmpty(typ, "type", b.typ),
		validation.Require(typ, "when", b.when),
		validation.Require(typ, "who", b.who),
		checkReference(typ, "who", b.who, "Practitioner", "PractitionerRole", "RelatedPerson", "Patient", "Device", "Organization"),
		checkReference(typ, "onBehalfOf", b.onBehalfOf, "Practitioner", "PractitionerRole", "RelatedPerson", "Patient", "Device", "Organization"),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Signature{
		element:      b.element(),
		typ:          slices.Clone(b.typ),
		when:         b.when,
		who:          b.who,
		onBehalfOf:   b.onBehalfOf,
		targetFormat: b.targetFormat,
		sigFormat:    b.sigFormat,
		data:         b.data,
	}, nil
}

func (b *SignatureBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		len(b.typ) > 0 ||
		b.when != nil ||
		b.who != nil ||
		b.onBehalfOf != nil ||
		b.targetFormat != nil ||
		b.sigFormat != nil ||
		b.data != nil
}
