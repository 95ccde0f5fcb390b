package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Base is implemented by every model value.
type Base interface {
	visitor.Visitable
	// FHIRType returns the FHIR type name, e.g. "Coding" or "dateTime".
	FHIRType() string
	equalBase(other Base) bool
}

// Element is implemented by every data type and backbone element.
type Element interface {
	Base
	ID() string
	Extension() []*Extension
}

// BackboneElement is implemented by elements nested inside a resource.
type BackboneElement interface {
	Element
	ModifierExtension() []*Extension
}

// Resource is implemented by every resource.
type Resource interface {
	Base
	ID() *Id
	Meta() *Meta
	ImplicitRules() *Uri
	Language() *Code
}

// DomainResource is implemented by resources that carry narrative,
// contained resources and extensions.
type DomainResource interface {
	Resource
	Text() *Narrative
	Contained() []Resource
	Extension() []*Extension
	ModifierExtension() []*Extension
}

// element holds the children shared by all elements.
type element struct {
	id        string       `fhir:"id,type=string"`
	extension []*Extension `fhir:"extension"`
}

// ID returns the element id.
func (e *element) ID() string { return e.id }

// Extension returns the element extensions.
func (e *element) Extension() []*Extension { return e.extension }

func (e *element) acceptElement(v visitor.Visitor) {
	if e.id != "" {
		v.VisitValue("id", -1, e.id)
	}
	acceptList(v, "extension", e.extension)
}

func (e *element) equalElement(o *element) bool {
	return e.id == o.id && equalList(e.extension, o.extension)
}

type elementBuilder[B any] struct {
	self      B
	id        string
	extension []*Extension
}

// ID sets the element id.
func (b *elementBuilder[B]) ID(id string) B {
	b.id = id
	return b.self
}

// Extension appends extensions.
func (b *elementBuilder[B]) Extension(extension ...*Extension) B {
	b.extension = append(b.extension, extension...)
	return b.self
}

// SetExtension replaces the extensions.
func (b *elementBuilder[B]) SetExtension(extension []*Extension) B {
	b.extension = slices.Clone(extension)
	return b.self
}

func (b *elementBuilder[B]) fromElement(e *element) {
	b.id = e.id
	b.extension = slices.Clone(e.extension)
}

func (b *elementBuilder[B]) checkElement(typ string) error {
	return validation.CheckList(typ, "extension", b.extension)
}

func (b *elementBuilder[B]) element() element {
	return element{id: b.id, extension: slices.Clone(b.extension)}
}

// backboneElement adds modifier extensions to element.
type backboneElement struct {
	element
	modifierExtension []*Extension `fhir:"modifierExtension,modifier,summary"`
}

// ModifierExtension returns the modifier extensions.
func (e *backboneElement) ModifierExtension() []*Extension { return e.modifierExtension }

func (e *backboneElement) acceptBackbone(v visitor.Visitor) {
	e.acceptElement(v)
	acceptList(v, "modifierExtension", e.modifierExtension)
}

func (e *backboneElement) equalBackbone(o *backboneElement) bool {
	return e.equalElement(&o.element) && equalList(e.modifierExtension, o.modifierExtension)
}

type backboneElementBuilder[B any] struct {
	elementBuilder[B]
	modifierExtension []*Extension
}

// ModifierExtension appends modifier extensions.
func (b *backboneElementBuilder[B]) ModifierExtension(extension ...*Extension) B {
	b.modifierExtension = append(b.modifierExtension, extension...)
	return b.self
}

// SetModifierExtension replaces the modifier extensions.
func (b *backboneElementBuilder[B]) SetModifierExtension(extension []*Extension) B {
	b.modifierExtension = slices.Clone(extension)
	return b.self
}

func (b *backboneElementBuilder[B]) fromBackbone(e *backboneElement) {
	b.fromElement(&e.element)
	b.modifierExtension = slices.Clone(e.modifierExtension)
}

func (b *backboneElementBuilder[B]) checkBackbone(typ string) error {
	return validation.First(
		b.checkElement(typ),
		validation.CheckList(typ, "modifierExtension", b.modifierExtension),
	)
}

func (b *backboneElementBuilder[B]) hasExtensions() bool {
	return len(b.extension) > 0 || len(b.modifierExtension) > 0
}

func (b *backboneElementBuilder[B]) backbone() backboneElement {
	return backboneElement{element: b.element(), modifierExtension: slices.Clone(b.modifierExtension)}
}

// resource holds the children shared by all resources.
type resource struct {
	id            *Id   `fhir:"id,summary"`
	meta          *Meta `fhir:"meta,summary"`
	implicitRules *Uri  `fhir:"implicitRules,modifier,summary"`
	language      *Code `fhir:"language,binding=Language,strength=preferred,valueSet=http://hl7.org/fhir/ValueSet/languages"`
}

// ID returns the logical id of the resource.
func (r *resource) ID() *Id { return r.id }

// Meta returns the resource metadata.
func (r *resource) Meta() *Meta { return r.meta }

// ImplicitRules returns the rules the resource was constructed under.
func (r *resource) ImplicitRules() *Uri { return r.implicitRules }

// Language returns the base language of the resource.
func (r *resource) Language() *Code { return r.language }

func (r *resource) acceptResource(v visitor.Visitor) {
	accept(v, "id", r.id)
	accept(v, "meta", r.meta)
	accept(v, "implicitRules", r.implicitRules)
	accept(v, "language", r.language)
}

func (r *resource) equalResource(o *resource) bool {
	return r.id.Equal(o.id) &&
		r.meta.Equal(o.meta) &&
		r.implicitRules.Equal(o.implicitRules) &&
		r.language.Equal(o.language)
}

type resourceBuilder[B any] struct {
	self          B
	id            *Id
	meta          *Meta
	implicitRules *Uri
	language      *Code
}

// ID sets the logical id.
func (b *resourceBuilder[B]) ID(id *Id) B {
	b.id = id
	return b.self
}

// Meta sets the resource metadata.
func (b *resourceBuilder[B]) Meta(meta *Meta) B {
	b.meta = meta
	return b.self
}

// ImplicitRules sets the rules the resource was constructed under.
func (b *resourceBuilder[B]) ImplicitRules(implicitRules *Uri) B {
	b.implicitRules = implicitRules
	return b.self
}

// Language sets the base language.
func (b *resourceBuilder[B]) Language(language *Code) B {
	b.language = language
	return b.self
}

func (b *resourceBuilder[B]) fromResource(r *resource) {
	b.id = r.id
	b.meta = r.meta
	b.implicitRules = r.implicitRules
	b.language = r.language
}

func (b *resourceBuilder[B]) checkResource(string) error {
	return nil
}

func (b *resourceBuilder[B]) resource() resource {
	return resource{id: b.id, meta: b.meta, implicitRules: b.implicitRules, language: b.language}
}

// domainResource adds narrative, contained resources and extensions.
type domainResource struct {
	resource
	text              *Narrative   `fhir:"text"`
	contained         []Resource   `fhir:"contained,type=Resource"`
	extension         []*Extension `fhir:"extension"`
	modifierExtension []*Extension `fhir:"modifierExtension,modifier,summary"`
}

// Text returns the human readable narrative.
func (r *domainResource) Text() *Narrative { return r.text }

// Contained returns the contained resources.
func (r *domainResource) Contained() []Resource { return r.contained }

// Extension returns the resource extensions.
func (r *domainResource) Extension() []*Extension { return r.extension }

// ModifierExtension returns the modifier extensions.
func (r *domainResource) ModifierExtension() []*Extension { return r.modifierExtension }

func (r *domainResource) acceptDomainResource(v visitor.Visitor) {
	r.acceptResource(v)
	accept(v, "text", r.text)
	acceptList(v, "contained", r.contained)
	acceptList(v, "extension", r.extension)
	acceptList(v, "modifierExtension", r.modifierExtension)
}

func (r *domainResource) equalDomainResource(o *domainResource) bool {
	return r.equalResource(&o.resource) &&
		r.text.Equal(o.text) &&
		equalBaseList(r.contained, o.contained) &&
		equalList(r.extension, o.extension) &&
		equalList(r.modifierExtension, o.modifierExtension)
}

type domainResourceBuilder[B any] struct {
	resourceBuilder[B]
	text              *Narrative
	contained         []Resource
	extension         []*Extension
	modifierExtension []*Extension
}

// Text sets the narrative.
func (b *domainResourceBuilder[B]) Text(text *Narrative) B {
	b.text = text
	return b.self
}

// Contained appends contained resources.
func (b *domainResourceBuilder[B]) Contained(contained ...Resource) B {
	b.contained = append(b.contained, contained...)
	return b.self
}

// SetContained replaces the contained resources.
func (b *domainResourceBuilder[B]) SetContained(contained []Resource) B {
	b.contained = slices.Clone(contained)
	return b.self
}

// Extension appends extensions.
func (b *domainResourceBuilder[B]) Extension(extension ...*Extension) B {
	b.extension = append(b.extension, extension...)
	return b.self
}

// SetExtension replaces the extensions.
func (b *domainResourceBuilder[B]) SetExtension(extension []*Extension) B {
	b.extension = slices.Clone(extension)
	return b.self
}

// ModifierExtension appends modifier extensions.
func (b *domainResourceBuilder[B]) ModifierExtension(extension ...*Extension) B {
	b.modifierExtension = append(b.modifierExtension, extension...)
	return b.self
}

// SetModifierExtension replaces the modifier extensions.
func (b *domainResourceBuilder[B]) SetModifierExtension(extension []*Extension) B {
	b.modifierExtension = slices.Clone(extension)
	return b.self
}

func (b *domainResourceBuilder[B]) fromDomainResource(r *domainResource) {
	b.fromResource(&r.resource)
	b.text = r.text
	b.contained = slices.Clone(r.contained)
	b.extension = slices.Clone(r.extension)
	b.modifierExtension = slices.Clone(r.modifierExtension)
}

func (b *domainResourceBuilder[B]) checkDomainResource(typ string) error {
	return validation.First(
		b.checkResource(typ),
		validation.CheckList(typ, "contained", b.contained),
		validation.CheckList(typ, "extension", b.extension),
		validation.CheckList(typ, "modifierExtension", b.modifierExtension),
	)
}

func (b *domainResourceBuilder[B]) domainResource() domainResource {
	return domainResource{
		resource:          b.resource(),
		text:              b.text,
		contained:         slices.Clone(b.contained),
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
	}
}
