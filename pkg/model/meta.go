package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Meta is the metadata about a resource.
type Meta struct {
	element
	versionId   *Id          `fhir:"versionId,summary"`
	lastUpdated *Instant     `fhir:"lastUpdated,summary"`
	source      *Uri         `fhir:"source,summary"`
	profile     []*Canonical `fhir:"profile,summary"`
	security    []*Coding    `fhir:"security,summary,binding=SecurityLabels,strength=extensible,valueSet=http://hl7.org/fhir/ValueSet/security-labels"`
	tag         []*Coding    `fhir:"tag,summary,binding=Tags,strength=example,valueSet=http://hl7.org/fhir/ValueSet/common-tags"`
}

// VersionID returns Meta.versionId.
func (m *Meta) VersionID() *Id { return m.versionId }

// LastUpdated returns Meta.lastUpdated.
func (m *Meta) LastUpdated() *Instant { return m.lastUpdated }

// Source returns Meta.source.
func (m *Meta) Source() *Uri { return m.source }

// Profile returns Meta.profile.
func (m *Meta) Profile() []*Canonical { return m.profile }

// Security returns Meta.security.
func (m *Meta) Security() []*Coding { return m.security }

// Tag returns Meta.tag.
func (m *Meta) Tag() []*Coding { return m.tag }

// FHIRType returns "Meta".
func (*Meta) FHIRType() string { return "Meta" }

// Accept implements visitor.Visitable.
func (m *Meta) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if m == nil || !v.PreVisit(m) {
		return
	}
	v.VisitStart(elementName, elementIndex, m)
	if v.Visit(elementName, elementIndex, m) {
		m.acceptElement(v)
		accept(v, "versionId", m.versionId)
		accept(v, "lastUpdated", m.lastUpdated)
		accept(v, "source", m.source)
		acceptList(v, "profile", m.profile)
		acceptList(v, "security", m.security)
		acceptList(v, "tag", m.tag)
	}
	v.VisitEnd(elementName, elementIndex, m)
	v.PostVisit(m)
}

// Equal reports whether m and other are structurally equal.
func (m *Meta) Equal(other *Meta) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.equalElement(&other.element) &&
		m.versionId.Equal(other.versionId) &&
		m.lastUpdated.Equal(other.lastUpdated) &&
		m.source.Equal(other.source) &&
		equalList(m.profile, other.profile) &&
		equalList(m.security, other.security) &&
		equalList(m.tag, other.tag)
}

func (m *Meta) equalBase(other Base) bool {
	o, ok := other.(*Meta)
	return ok && m.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of m.
func (m *Meta) ToBuilder() *MetaBuilder {
	return NewMetaBuilder().From(m)
}

// MetaBuilder builds Meta values.
type MetaBuilder struct {
	elementBuilder[*MetaBuilder]
	versionId   *Id
	lastUpdated *Instant
	source      *Uri
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

// NewMetaBuilder creates an empty MetaBuilder.
func NewMetaBuilder() *MetaBuilder {
	b := &MetaBuilder{}
	b.self = b
	return b
}

// VersionID sets Meta.versionId.
func (b *MetaBuilder) VersionID(versionId *Id) *MetaBuilder {
	b.versionId = versionId
	return b
}

// LastUpdated sets Meta.lastUpdated.
func (b *MetaBuilder) LastUpdated(lastUpdated *Instant) *MetaBuilder {
	b.lastUpdated = lastUpdated
	return b
}

// Source sets Meta.source.
func (b *MetaBuilder) Source(source *Uri) *MetaBuilder {
	b.source = source
	return b
}

// Profile appends to Meta.profile.
func (b *MetaBuilder) Profile(profile ...*Canonical) *MetaBuilder {
	b.profile = append(b.profile, profile...)
	return b
}

// SetProfile replaces Meta.profile.
func (b *MetaBuilder) SetProfile(profile []*Canonical) *MetaBuilder {
	b.profile = slices.Clone(profile)
	return b
}

// Security appends to Meta.security.
func (b *MetaBuilder) Security(security ...*Coding) *MetaBuilder {
	b.security = append(b.security, security...)
	return b
}

// SetSecurity replaces Meta.security.
func (b *MetaBuilder) SetSecurity(security []*Coding) *MetaBuilder {
	b.security = slices.Clone(security)
	return b
}

// Tag appends to Meta.tag.
func (b *MetaBuilder) Tag(tag ...*Coding) *MetaBuilder {
	b.tag = append(b.tag, tag...)
	return b
}

// SetTag replaces Meta.tag.
func (b *MetaBuilder) SetTag(tag []*Coding) *MetaBuilder {
	b.tag = slices.Clone(tag)
	return b
}

// From copies every element of src into the builder.
func (b *MetaBuilder) From(src *Meta) *MetaBuilder {
	b.fromElement(&src.element)
	b.versionId = src.versionId
	b.lastUpdated = src.lastUpdated
	b.source = src.source
	b.profile = slices.Clone(src.profile)
	b.security = slices.Clone(src.security)
	b.tag = slices.Clone(src.tag)
	return b
}

// Build validates the builder state and returns a new Meta.
func (b *MetaBuilder) Build() (*Meta, error) {
	const typ = "Meta"
	if err := validation.First(
		b.checkElement(typ),
		validation.CheckList(typ, "profile", b.profile),
		validation.CheckList(typ, "security", b.security),
		validation.CheckList(typ, "tag", b.tag),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &Meta{
		element:     b.element(),
		versionId:   b.versionId,
		lastUpdated: b.lastUpdated,
		source:      b.source,
		profile:     slices.Clone(b.profile),
		security:    slices.Clone(b.security),
		tag:         slices.Clone(b.tag),
	}, nil
}

func (b *MetaBuilder) hasChildren() bool {
	return len(b.extension) > 0 ||
		b.versionId != nil ||
		b.lastUpdated != nil ||
		b.source != nil ||
		len(b.profile) > 0 ||
		len(b.security) > 0 ||
		len(b.tag) > 0
}
