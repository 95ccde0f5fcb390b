package model

import (
	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Attachment holds content defined in other formats.
type Attachment struct {
	element
	contentType *Code         `fhir:"contentType,summary,binding=MimeType,strength=required,valueSet=http://hl7.org/fhir/ValueSet/mimetypes|4.0.1"`
	language    *Code         `fhir:"language,summary,binding=Language,strength=preferred,valueSet=http://hl7.org/fhir/ValueSet/languages"`
	data        *Base64Binary `fhir:"data"`
	url         *Url          `fhir:"url,summary"`
	size        *UnsignedInt  `fhir:"size,summary"`
	hash        *Base64Binary `fhir:"hash,summary"`
	title       *String       `fhir:"title,summary"`
	creation    *DateTime     `fhir:"creation,summary"`
}

// ContentType returns Attachment.contentType.
func (a *Attachment) ContentType() *Code { return a.contentType }

// Language returns Attachment.language.
func (a *Attachment) Language() *Code { return a.language }

// Data returns Attachment.data.
func (a *Attachment) Data() *Base64Binary { return a.data }

// URL returns Attachment.url.
func (a *Attachment) URL() *Url { return a.url }

// Size returns Attachment.size.
func (a *Attachment) Size() *UnsignedInt { return a.size }

// Hash returns Attachment.hash.
func (a *Attachment) Hash() *Base64Binary { return a.hash }

// Title returns Attachment.title.
func (a *Attachment) Title() *String { return a.title }

// Creation returns Attachment.creation.
func (a *Attachment) Creation() *DateTime { return a.creation }

// FHIRType returns "Attachment".
func (*Attachment) FHIRType() string { return "Attachment" }

// Accept implements visitor.Visitable.
func (a *Attachment) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if a == nil || !v.PreVisit(a) {
		return
	}
	v.VisitStart(elementName, elementIndex, a)
	if v.Visit(elementName, elementIndex, a) {
		a.acceptElement(v)
		accept(v, "contentType", a.contentType)
		accept(v, "language", a.language)
		accept(v, "data", a.data)
		accept(v, "url", a.url)
		accept(v, "size", a.size)
		accept(v, "hash", a.hash)
		accept(v, "title", a.title)
		accept(v, "creation", a.creation)
	}
	v.VisitEnd(elementName, elementIndex, a)
	v.PostVisit(a)
}

// Equal reports whether a and other are structurally equal.
func (a *Attachment) Equal(other *Attachment) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.equalElement(&other.element) &&
		a.contentType.Equal(other.contentType) &&
		a.language.Equal(other.language) &&
		a.data.Equal(other.data) &&
		a.url.Equal(other.url) &&
		a.size.Equal(other.size) &&
		a.hash.Equal(other.hash) &&
		a.title.Equal(other.title) &&
		a.creation.Equal(other.creation)
}

func (a *Attachment) equalBase(other Base) bool {
	o, ok := other.(*Attachment)
	return ok && a.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of a.
func (a *Attachment) ToBuilder() *AttachmentBuilder {
	return NewAttachmentBuilder().From(a)
}

// AttachmentBuilder builds Attachment values.
type AttachmentBuilder struct {
	elementBuilder[*AttachmentBuilder]
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *Url
	size        *UnsignedInt
	hash        *Base64Binary
	title       *String
	creation    *DateTime
}

// NewAttachmentBuilder creates an empty AttachmentBuilder.
func NewAttachmentBuilder() *AttachmentBuilder {
	b := &AttachmentBuilder{}
	b.self = b
	return b
}

// ContentType sets Attachment.contentType.
func (b *AttachmentBuilder) ContentType(contentType *Code) *AttachmentBuilder {
	b.contentType = contentType
	return b
}

// Language sets Attachment.language.
func (b *AttachmentBuilder) Language(language *Code) *AttachmentBuilder {
	b.language = language
	return b
}

// Data sets Attachment.data.
func (b *AttachmentBuilder) Data(data *Base64Binary) *AttachmentBuilder {
	b.data = data
	return b
}

// URL sets Attachment.url.
func (b *AttachmentBuilder) URL(url *Url) *AttachmentBuilder {
	b.url = url
	return b
}

// Size sets Attachment.size.
func (b *AttachmentBuilder) Size(size *UnsignedInt) *AttachmentBuilder {
	b.size = size
	return b
}

// Hash sets Attachment.hash.
func (b *AttachmentBuilder) Hash(hash *Base64Binary) *AttachmentBuilder {
	b.hash = hash
	return b
}

// Title sets Attachment.title.
func (b *AttachmentBuilder) Title(title *String) *AttachmentBuilder {
	b.title = title
	return b
}

// Creation sets Attachment.creation.
func (b *AttachmentBuilder) Creation(creation *DateTime) *AttachmentBuilder {
	b.creation = creation
	return b
}

// From copies every element of src into the builder.
func (b *AttachmentBuilder) From(src *Attachment) *AttachmentBuilder {
	b.fromElement(&src.element)
	b.contentType = src.contentType
	b.language = src.language
	b.data = src.data
	b.url = src.url
	b.size = src.size
	b.hash = src.hash
	b.title = src.title
	b.creation = src.creation
	return b
}

// Build validates the builder state and returns a new Attachment.
func (b *AttachmentBuilder) Build() (*Attachment, error) {
	const typ = "Attachment"
	if err := validation.First(
		b.checkElement(typ),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Attachment{
		element:     b.element(),
		contentType: b.contentType,
		language:    b.language,
		data:        b.data,
		url:         b.url,
		size:        b.size,
		hash:        b.hash,
		title:       b.title,
		creation:    b.creation,
	}, nil
}

func (b *AttachmentBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.contentType != nil ||
		b.language != nil ||
		b.data != nil ||
		b.url != nil ||
		b.size != nil ||
		b.hash != nil ||
		b.title != nil ||
		b.creation != nil
}
