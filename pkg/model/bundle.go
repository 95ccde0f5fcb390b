package model

import (
	"slices"

	"github.com/gofhir/model/pkg/validation"
	"github.com/gofhir/model/pkg/visitor"
)

// Bundle is a container for a collection of resources.
type Bundle struct {
	resource
	identifier *Identifier         `fhir:"identifier,summary"`
	typ        *CodeOf[BundleType] `fhir:"type,required,summary,binding=BundleType,strength=required,valueSet=http://hl7.org/fhir/ValueSet/bundle-type|4.0.1"`
	timestamp  *Instant            `fhir:"timestamp,summary"`
	total      *UnsignedInt        `fhir:"total,summary"`
	link       []*BundleLink       `fhir:"link,summary"`
	entry      []*BundleEntry      `fhir:"entry,summary"`
	signature  *Signature          `fhir:"signature,summary"`
}

// Identifier returns Bundle.identifier.
func (b *Bundle) Identifier() *Identifier { return b.identifier }

// Type returns Bundle.type.
func (b *Bundle) Type() *CodeOf[BundleType] { return b.typ }

// Timestamp returns Bundle.timestamp.
func (b *Bundle) Timestamp() *Instant { return b.timestamp }

// Total returns Bundle.total.
func (b *Bundle) Total() *UnsignedInt { return b.total }

// Link returns Bundle.link.
func (b *Bundle) Link() []*BundleLink { return b.link }

// Entry returns Bundle.entry.
func (b *Bundle) Entry() []*BundleEntry { return b.entry }

// Signature returns Bundle.signature.
func (b *Bundle) Signature() *Signature { return b.signature }

// FHIRType returns "Bundle".
func (*Bundle) FHIRType() string { return "Bundle" }

// Accept implements visitor.Visitable.
func (b *Bundle) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptResource(v)
		accept(v, "identifier", b.identifier)
		accept(v, "type", b.typ)
		accept(v, "timestamp", b.timestamp)
		accept(v, "total", b.total)
		acceptList(v, "link", b.link)
		acceptList(v, "entry", b.entry)
		accept(v, "signature", b.signature)
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *Bundle) Equal(other *Bundle) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalResource(&other.resource) &&
		b.identifier.Equal(other.identifier) &&
		b.typ.Equal(other.typ) &&
		b.timestamp.Equal(other.timestamp) &&
		b.total.Equal(other.total) &&
		equalList(b.link, other.link) &&
		equalList(b.entry, other.entry) &&
		b.signature.Equal(other.signature)
}

func (b *Bundle) equalBase(other Base) bool {
	o, ok := other.(*Bundle)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *Bundle) ToBuilder() *BundleBuilder {
	return NewBundleBuilder().From(b)
}

// BundleBuilder builds Bundle values.
type BundleBuilder struct {
	resourceBuilder[*BundleBuilder]
	identifier *Identifier
	typ        *CodeOf[BundleType]
	timestamp  *Instant
	total      *UnsignedInt
	link       []*BundleLink
	entry      []*BundleEntry
	signature  *Signature
}

// NewBundleBuilder creates an empty BundleBuilder.
func NewBundleBuilder() *BundleBuilder {
	b := &BundleBuilder{}
	b.self = b
	return b
}

// Identifier sets Bundle.identifier.
func (b *BundleBuilder) Identifier(identifier *Identifier) *BundleBuilder {
	b.identifier = identifier
	return b
}

// Type sets Bundle.type.
func (b *BundleBuilder) Type(typ *CodeOf[BundleType]) *BundleBuilder {
	b.typ = typ
	return b
}

// Timestamp sets Bundle.timestamp.
func (b *BundleBuilder) Timestamp(timestamp *Instant) *BundleBuilder {
	b.timestamp = timestamp
	return b
}

// Total sets Bundle.total.
func (b *BundleBuilder) Total(total *UnsignedInt) *BundleBuilder {
	b.total = total
	return b
}

// Link appends to Bundle.link.
func (b *BundleBuilder) Link(link ...*BundleLink) *BundleBuilder {
	b.link = append(b.link, link...)
	return b
}

// SetLink replaces Bundle.link.
func (b *BundleBuilder) SetLink(link []*BundleLink) *BundleBuilder {
	b.link = slices.Clone(link)
	return b
}

// Entry appends to Bundle.entry.
func (b *BundleBuilder) Entry(entry ...*BundleEntry) *BundleBuilder {
	b.entry = append(b.entry, entry...)
	return b
}

// SetEntry replaces Bundle.entry.
func (b *BundleBuilder) SetEntry(entry []*BundleEntry) *BundleBuilder {
	b.entry = slices.Clone(entry)
	return b
}

// Signature sets Bundle.signature.
func (b *BundleBuilder) Signature(signature *Signature) *BundleBuilder {
	b.signature = signature
	return b
}

// From copies every element of src into the builder.
func (b *BundleBuilder) From(src *Bundle) *BundleBuilder {
	b.fromResource(&src.resource)
	b.identifier = src.identifier
	b.typ = src.typ
	b.timestamp = src.timestamp
	b.total = src.total
	b.link = slices.Clone(src.link)
	b.entry = slices.Clone(src.entry)
	b.signature = src.signature
	return b
}

// Build validates the builder state and returns a new Bundle.
func (b *BundleBuilder) Build() (*Bundle, error) {
	const typ = "Bundle"
	if err := validation.First(
		b.checkResource(typ),
		validation.Require(typ, "type", b.typ),
		validation.CheckCode(typ, "type", b.typ),
		validation.CheckList(typ, "link", b.link),
		validation.CheckList(typ, "entry", b.entry),
	); err != nil {
		return nil, err
	}
	return &Bundle{
		resource:   b.resource(),
		identifier: b.identifier,
		typ:        b.typ,
		timestamp:  b.timestamp,
		total:      b.total,
		link:       slices.Clone(b.link),
		entry:      slices.Clone(b.entry),
		signature:  b.signature,
	}, nil
}

// BundleLink is a series of links that provide context to this bundle.
// It is the Bundle.link element.
type BundleLink struct {
	backboneElement
	relation *String `fhir:"relation,required,summary"`
	url      *Uri    `fhir:"url,required,summary"`
}

// Relation returns Bundle.link.relation.
func (b *BundleLink) Relation() *String { return b.relation }

// URL returns Bundle.link.url.
func (b *BundleLink) URL() *Uri { return b.url }

// FHIRType returns "BackboneElement".
func (*BundleLink) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (b *BundleLink) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptBackbone(v)
		accept(v, "relation", b.relation)
		accept(v, "url", b.url)
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *BundleLink) Equal(other *BundleLink) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalBackbone(&other.backboneElement) &&
		b.relation.Equal(other.relation) &&
		b.url.Equal(other.url)
}

func (b *BundleLink) equalBase(other Base) bool {
	o, ok := other.(*BundleLink)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *BundleLink) ToBuilder() *BundleLinkBuilder {
	return NewBundleLinkBuilder().From(b)
}

// BundleLinkBuilder builds BundleLink values.
type BundleLinkBuilder struct {
	backboneElementBuilder[*BundleLinkBuilder]
	relation *String
	url      *Uri
}

// NewBundleLinkBuilder creates an empty BundleLinkBuilder.
func NewBundleLinkBuilder() *BundleLinkBuilder {
	b := &BundleLinkBuilder{}
	b.self = b
	return b
}

// Relation sets Bundle.link.relation.
func (b *BundleLinkBuilder) Relation(relation *String) *BundleLinkBuilder {
	b.relation = relation
	return b
}

// URL sets Bundle.link.url.
func (b *BundleLinkBuilder) URL(url *Uri) *BundleLinkBuilder {
	b.url = url
	return b
}

// From copies every element of src into the builder.
func (b *BundleLinkBuilder) From(src *BundleLink) *BundleLinkBuilder {
	b.fromBackbone(&src.backboneElement)
	b.relation = src.relation
	b.url = src.url
	return b
}

// Build validates the builder state and returns a new BundleLink.
func (b *BundleLinkBuilder) Build() (*BundleLink, error) {
	const typ = "Bundle.link"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "relation", b.relation),
		validation.Require(typ, "url", b.url),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &BundleLink{
		backboneElement: b.backbone(),
		relation:        b.relation,
		url:             b.url,
	}, nil
}

func (b *BundleLinkBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.relation != nil ||
		b.url != nil
}

// BundleEntry is an entry in a bundle resource.
// It is the Bundle.entry element.
type BundleEntry struct {
	backboneElement
	link     []*BundleLink        `fhir:"link,summary"`
	fullUrl  *Uri                 `fhir:"fullUrl,summary"`
	resource Resource             `fhir:"resource,summary,type=Resource"`
	search   *BundleEntrySearch   `fhir:"search,summary"`
	request  *BundleEntryRequest  `fhir:"request,summary"`
	response *BundleEntryResponse `fhir:"response,summary"`
}

// Link returns Bundle.entry.link.
func (b *BundleEntry) Link() []*BundleLink { return b.link }

// FullURL returns Bundle.entry.fullUrl.
func (b *BundleEntry) FullURL() *Uri { return b.fullUrl }

// Resource returns Bundle.entry.resource.
func (b *BundleEntry) Resource() Resource { return b.resource }

// Search returns Bundle.entry.search.
func (b *BundleEntry) Search() *BundleEntrySearch { return b.search }

// Request returns Bundle.entry.request.
func (b *BundleEntry) Request() *BundleEntryRequest { return b.request }

// Response returns Bundle.entry.response.
func (b *BundleEntry) Response() *BundleEntryResponse { return b.response }

// FHIRType returns "BackboneElement".
func (*BundleEntry) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (b *BundleEntry) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptBackbone(v)
		acceptList(v, "link", b.link)
		accept(v, "fullUrl", b.fullUrl)
		accept(v, "resource", b.resource)
		accept(v, "search", b.search)
		accept(v, "request", b.request)
		accept(v, "response", b.response)
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *BundleEntry) Equal(other *BundleEntry) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalBackbone(&other.backboneElement) &&
		equalList(b.link, other.link) &&
		b.fullUrl.Equal(other.fullUrl) &&
		equalBase(b.resource, other.resource) &&
		b.search.Equal(other.search) &&
		b.request.Equal(other.request) &&
		b.response.Equal(other.response)
}

func (b *BundleEntry) equalBase(other Base) bool {
	o, ok := other.(*BundleEntry)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *BundleEntry) ToBuilder() *BundleEntryBuilder {
	return NewBundleEntryBuilder().From(b)
}

// BundleEntryBuilder builds BundleEntry values.
type BundleEntryBuilder struct {
	backboneElementBuilder[*BundleEntryBuilder]
	link     []*BundleLink
	fullUrl  *Uri
	resource Resource
	search   *BundleEntrySearch
	request  *BundleEntryRequest
	response *BundleEntryResponse
}

// NewBundleEntryBuilder creates an empty BundleEntryBuilder.
func NewBundleEntryBuilder() *BundleEntryBuilder {
	b := &BundleEntryBuilder{}
	b.self = b
	return b
}

// Link appends to Bundle.entry.link.
func (b *BundleEntryBuilder) Link(link ...*BundleLink) *BundleEntryBuilder {
	b.link = append(b.link, link...)
	return b
}

// SetLink replaces Bundle.entry.link.
func (b *BundleEntryBuilder) SetLink(link []*BundleLink) *BundleEntryBuilder {
	b.link = slices.Clone(link)
	return b
}

// FullURL sets Bundle.entry.fullUrl.
func (b *BundleEntryBuilder) FullURL(fullUrl *Uri) *BundleEntryBuilder {
	b.fullUrl = fullUrl
	return b
}

// Resource sets Bundle.entry.resource.
func (b *BundleEntryBuilder) Resource(resource Resource) *BundleEntryBuilder {
	b.resource = resource
	return b
}

// Search sets Bundle.entry.search.
func (b *BundleEntryBuilder) Search(search *BundleEntrySearch) *BundleEntryBuilder {
	b.search = search
	return b
}

// Request sets Bundle.entry.request.
func (b *BundleEntryBuilder) Request(request *BundleEntryRequest) *BundleEntryBuilder {
	b.request = request
	return b
}

// Response sets Bundle.entry.response.
func (b *BundleEntryBuilder) Response(response *BundleEntryResponse) *BundleEntryBuilder {
	b.response = response
	return b
}

// From copies every element of src into the builder.
func (b *BundleEntryBuilder) From(src *BundleEntry) *BundleEntryBuilder {
	b.fromBackbone(&src.backboneElement)
	b.link = slices.Clone(src.link)
	b.fullUrl = src.fullUrl
	b.resource = src.resource
	b.search = src.search
	b.request = src.request
	b.response = src.response
	return b
}

// Build validates the builder state and returns a new BundleEntry.
func (b *BundleEntryBuilder) Build() (*BundleEntry, error) {
	const typ = "Bundle.entry"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.CheckList(typ, "link", b.link),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &BundleEntry{
		backboneElement: b.backbone(),
		link:            slices.Clone(b.link),
		fullUrl:         b.fullUrl,
		resource:        b.resource,
		search:          b.search,
		request:         b.request,
		response:        b.response,
	}, nil
}

func (b *BundleEntryBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		len(b.link) > 0 ||
		b.fullUrl != nil ||
		b.resource != nil ||
		b.search != nil ||
		b.request != nil ||
		b.response != nil
}

// BundleEntrySearch holds information about the search process that lead to the creation of an entry.
// It is the Bundle.entry.search element.
type BundleEntrySearch struct {
	backboneElement
	mode  *CodeOf[SearchEntryMode] `fhir:"mode,summary,binding=SearchEntryMode,strength=required,valueSet=http://hl7.org/fhir/ValueSet/search-entry-mode|4.0.1"`
	score *Decimal                 `fhir:"score,summary"`
}

// Mode returns Bundle.entry.search.mode.
func (b *BundleEntrySearch) Mode() *CodeOf[SearchEntryMode] { return b.mode }

// Score returns Bundle.entry.search.score.
func (b *BundleEntrySearch) Score() *Decimal { return b.score }

// FHIRType returns "BackboneElement".
func (*BundleEntrySearch) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (b *BundleEntrySearch) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptBackbone(v)
		accept(v, "mode", b.mode)
		accept(v, "score", b.score)
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *BundleEntrySearch) Equal(other *BundleEntrySearch) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalBackbone(&other.backboneElement) &&
		b.mode.Equal(other.mode) &&
		b.score.Equal(other.score)
}

func (b *BundleEntrySearch) equalBase(other Base) bool {
	o, ok := other.(*BundleEntrySearch)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *BundleEntrySearch) ToBuilder() *BundleEntrySearchBuilder {
	return NewBundleEntrySearchBuilder().From(b)
}

// BundleEntrySearchBuilder builds BundleEntrySearch values.
type BundleEntrySearchBuilder struct {
	backboneElementBuilder[*BundleEntrySearchBuilder]
	mode  *CodeOf[SearchEntryMode]
	score *Decimal
}

// NewBundleEntrySearchBuilder creates an empty BundleEntrySearchBuilder.
func NewBundleEntrySearchBuilder() *BundleEntrySearchBuilder {
	b := &BundleEntrySearchBuilder{}
	b.self = b
	return b
}

// Mode sets Bundle.entry.search.mode.
func (b *BundleEntrySearchBuilder) Mode(mode *CodeOf[SearchEntryMode]) *BundleEntrySearchBuilder {
	b.mode = mode
	return b
}

// Score sets Bundle.entry.search.score.
func (b *BundleEntrySearchBuilder) Score(score *Decimal) *BundleEntrySearchBuilder {
	b.score = score
	return b
}

// From copies every element of src into the builder.
func (b *BundleEntrySearchBuilder) From(src *BundleEntrySearch) *BundleEntrySearchBuilder {
	b.fromBackbone(&src.backboneElement)
	b.mode = src.mode
	b.score = src.score
	return b
}

// Build validates the builder state and returns a new BundleEntrySearch.
func (b *BundleEntrySearchBuilder) Build() (*BundleEntrySearch, error) {
	const typ = "Bundle.entry.search"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.CheckCode(typ, "mode", b.mode),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &BundleEntrySearch{
		backboneElement: b.backbone(),
		mode:            b.mode,
		score:           b.score,
	}, nil
}

func (b *BundleEntrySearchBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.mode != nil ||
		b.score != nil
}

// BundleEntryRequest describes how an entry is processed in a batch or transaction.
// It is the Bundle.entry.request element.
type BundleEntryRequest struct {
	backboneElement
	method          *CodeOf[HTTPVerb] `fhir:"method,required,summary,binding=HTTPVerb,strength=required,valueSet=http://hl7.org/fhir/ValueSet/http-verb|4.0.1"`
	url             *Uri              `fhir:"url,required,summary"`
	ifNoneMatch     *String           `fhir:"ifNoneMatch,summary"`
	ifModifiedSince *Instant          `fhir:"ifModifiedSince,summary"`
	ifMatch         *String           `fhir:"ifMatch,summary"`
	ifNoneExist     *String           `fhir:"ifNoneExist,summary"`
}

// Method returns Bundle.entry.request.method.
func (b *BundleEntryRequest) Method() *CodeOf[HTTPVerb] { return b.method }

// URL returns Bundle.entry.request.url.
func (b *BundleEntryRequest) URL() *Uri { return b.url }

// IfNoneMatch returns Bundle.entry.request.ifNoneMatch.
func (b *BundleEntryRequest) IfNoneMatch() *String { return b.ifNoneMatch }

// IfModifiedSince returns Bundle.entry.request.ifModifiedSince.
func (b *BundleEntryRequest) IfModifiedSince() *Instant { return b.ifModifiedSince }

// IfMatch returns Bundle.entry.request.ifMatch.
func (b *BundleEntryRequest) IfMatch() *String { return b.ifMatch }

// IfNoneExist returns Bundle.entry.request.ifNoneExist.
func (b *BundleEntryRequest) IfNoneExist() *String { return b.ifNoneExist }

// FHIRType returns "BackboneElement".
func (*BundleEntryRequest) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (b *BundleEntryRequest) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptBackbone(v)
		accept(v, "method", b.method)
		accept(v, "url", b.url)
		accept(v, "ifNoneMatch", b.ifNoneMatch)
		accept(v, "ifModifiedSince", b.ifModifiedSince)
		accept(v, "ifMatch", b.ifMatch)
		accept(v, "ifNoneExist", b.ifNoneExist)
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *BundleEntryRequest) Equal(other *BundleEntryRequest) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalBackbone(&other.backboneElement) &&
		b.method.Equal(other.method) &&
		b.url.Equal(other.url) &&
		b.ifNoneMatch.Equal(other.ifNoneMatch) &&
		b.ifModifiedSince.Equal(other.ifModifiedSince) &&
		b.ifMatch.Equal(other.ifMatch) &&
		b.ifNoneExist.Equal(other.ifNoneExist)
}

func (b *BundleEntryRequest) equalBase(other Base) bool {
	o, ok := other.(*BundleEntryRequest)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *BundleEntryRequest) ToBuilder() *BundleEntryRequestBuilder {
	return NewBundleEntryRequestBuilder().From(b)
}

// BundleEntryRequestBuilder builds BundleEntryRequest values.
type BundleEntryRequestBuilder struct {
	backboneElementBuilder[*BundleEntryRequestBuilder]
	method          *CodeOf[HTTPVerb]
	url             *Uri
	ifNoneMatch     *String
	ifModifiedSince *Instant
	ifMatch         *String
	ifNoneExist     *String
}

// NewBundleEntryRequestBuilder creates an empty BundleEntryRequestBuilder.
func NewBundleEntryRequestBuilder() *BundleEntryRequestBuilder {
	b := &BundleEntryRequestBuilder{}
	b.self = b
	return b
}

// Method sets Bundle.entry.request.method.
func (b *BundleEntryRequestBuilder) Method(method *CodeOf[HTTPVerb]) *BundleEntryRequestBuilder {
	b.method = method
	return b
}

// URL sets Bundle.entry.request.url.
func (b *BundleEntryRequestBuilder) URL(url *Uri) *BundleEntryRequestBuilder {
	b.url = url
	return b
}

// IfNoneMatch sets Bundle.entry.request.ifNoneMatch.
func (b *BundleEntryRequestBuilder) IfNoneMatch(ifNoneMatch *String) *BundleEntryRequestBuilder {
	b.ifNoneMatch = ifNoneMatch
	return b
}

// IfModifiedSince sets Bundle.entry.request.ifModifiedSince.
func (b *BundleEntryRequestBuilder) IfModifiedSince(ifModifiedSince *Instant) *BundleEntryRequestBuilder {
	b.ifModifiedSince = ifModifiedSince
	return b
}

// IfMatch sets Bundle.entry.request.ifMatch.
func (b *BundleEntryRequestBuilder) IfMatch(ifMatch *String) *BundleEntryRequestBuilder {
	b.ifMatch = ifMatch
	return b
}

// IfNoneExist sets Bundle.entry.request.ifNoneExist.
func (b *BundleEntryRequestBuilder) IfNoneExist(ifNoneExist *String) *BundleEntryRequestBuilder {
	b.ifNoneExist = ifNoneExist
	return b
}

// From copies every element of src into the builder.
func (b *BundleEntryRequestBuilder) From(src *BundleEntryRequest) *BundleEntryRequestBuilder {
	b.fromBackbone(&src.backboneElement)
	b.method = src.method
	b.url = src.url
	b.ifNoneMatch = src.ifNoneMatch
	b.ifModifiedSince = src.ifModifiedSince
	b.ifMatch = src.ifMatch
	b.ifNoneExist = src.ifNoneExist
	return b
}

// Build validates the builder state and returns a new BundleEntryRequest.
func (b *BundleEntryRequestBuilder) Build() (*BundleEntryRequest, error) {
	const typ = "Bundle.entry.request"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "method", b.method),
		validation.CheckCode(typ, "method", b.method),
		validation.Require(typ, "url", b.url),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &BundleEntryRequest{
		backboneElement: b.backbone(),
		method:          b.method,
		url:             b.url,
		ifNoneMatch:     b.ifNoneMatch,
		ifModifiedSince: b.ifModifiedSince,
		ifMatch:         b.ifMatch,
		ifNoneExist:     b.ifNoneExist,
	}, nil
}

func (b *BundleEntryRequestBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.method != nil ||
		b.url != nil ||
		b.ifNoneMatch != nil ||
		b.ifModifiedSince != nil ||
		b.ifMatch != nil ||
		b.ifNoneExist != nil
}

// BundleEntryResponse indicates the results of processing an entry in a batch or transaction.
// It is the Bundle.entry.response element.
type BundleEntryResponse struct {
	backboneElement
	status       *String  `fhir:"status,required,summary"`
	location     *Uri     `fhir:"location,summary"`
	etag         *String  `fhir:"etag,summary"`
	lastModified *Instant `fhir:"lastModified,summary"`
	outcome      Resource `fhir:"outcome,summary,type=Resource"`
}

// Status returns Bundle.entry.response.status.
func (b *BundleEntryResponse) Status() *String { return b.status }

// Location returns Bundle.entry.response.location.
func (b *BundleEntryResponse) Location() *Uri { return b.location }

// Etag returns Bundle.entry.response.etag.
func (b *BundleEntryResponse) Etag() *String { return b.etag }

// LastModified returns Bundle.entry.response.lastModified.
func (b *BundleEntryResponse) LastModified() *Instant { return b.lastModified }

// Outcome returns Bundle.entry.response.outcome.
func (b *BundleEntryResponse) Outcome() Resource { return b.outcome }

// FHIRType returns "BackboneElement".
func (*BundleEntryResponse) FHIRType() string { return "BackboneElement" }

// Accept implements visitor.Visitable.
func (b *BundleEntryResponse) Accept(elementName string, elementIndex int, v visitor.Visitor) {
	if b == nil || !v.PreVisit(b) {
		return
	}
	v.VisitStart(elementName, elementIndex, b)
	if v.Visit(elementName, elementIndex, b) {
		b.acceptBackbone(v)
		accept(v, "status", b.status)
		accept(v, "location", b.location)
		accept(v, "etag", b.etag)
		accept(v, "lastModified", b.lastModified)
		accept(v, "outcome", b.outcome)
	}
	v.VisitEnd(elementName, elementIndex, b)
	v.PostVisit(b)
}

// Equal reports whether b and other are structurally equal.
func (b *BundleEntryResponse) Equal(other *BundleEntryResponse) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.equalBackbone(&other.backboneElement) &&
		b.status.Equal(other.status) &&
		b.location.Equal(other.location) &&
		b.etag.Equal(other.etag) &&
		b.lastModified.Equal(other.lastModified) &&
		equalBase(b.outcome, other.outcome)
}

func (b *BundleEntryResponse) equalBase(other Base) bool {
	o, ok := other.(*BundleEntryResponse)
	return ok && b.Equal(o)
}

// ToBuilder returns a builder initialized with the contents of b.
func (b *BundleEntryResponse) ToBuilder() *BundleEntryResponseBuilder {
	return NewBundleEntryResponseBuilder().From(b)
}

// BundleEntryResponseBuilder builds BundleEntryResponse values.
type BundleEntryResponseBuilder struct {
	backboneElementBuilder[*BundleEntryResponseBuilder]
	status       *String
	location     *Uri
	etag         *String
	lastModified *Instant
	outcome      Resource
}

// NewBundleEntryResponseBuilder creates an empty BundleEntryResponseBuilder.
func NewBundleEntryResponseBuilder() *BundleEntryResponseBuilder {
	b := &BundleEntryResponseBuilder{}
	b.self = b
	return b
}

// Status sets Bundle.entry.response.status.
func (b *BundleEntryResponseBuilder) Status(status *String) *BundleEntryResponseBuilder {
	b.status = status
	return b
}

// Location sets Bundle.entry.response.location.
func (b *BundleEntryResponseBuilder) Location(location *Uri) *BundleEntryResponseBuilder {
	b.location = location
	return b
}

// Etag sets Bundle.entry.response.etag.
func (b *BundleEntryResponseBuilder) Etag(etag *String) *BundleEntryResponseBuilder {
	b.etag = etag
	return b
}

// LastModified sets Bundle.entry.response.lastModified.
func (b *BundleEntryResponseBuilder) LastModified(lastModified *Instant) *BundleEntryResponseBuilder {
	b.lastModified = lastModified
	return b
}

// Outcome sets Bundle.entry.response.outcome.
func (b *BundleEntryResponseBuilder) Outcome(outcome Resource) *BundleEntryResponseBuilder {
	b.outcome = outcome
	return b
}

// From copies every element of src into the builder.
func (b *BundleEntryResponseBuilder) From(src *BundleEntryResponse) *BundleEntryResponseBuilder {
	b.fromBackbone(&src.backboneElement)
	b.status = src.status
	b.location = src.location
	b.etag = src.etag
	b.lastModified = src.lastModified
	b.outcome = src.outcome
	return b
}

// Build validates the builder state and returns a new BundleEntryResponse.
func (b *BundleEntryResponseBuilder) Build() (*BundleEntryResponse, error) {
	const typ = "Bundle.entry.response"
	if err := validation.First(
		b.checkBackbone(typ),
		validation.Require(typ, "status", b.status),
		validation.RequireValueOrChildren(typ, b.hasChildren()),
	); err != nil {
		return nil, err
	}
	return &BundleEntryResponse{
		backboneElement: b.backbone(),
		status:          b.status,
		location:        b.location,
		etag:            b.etag,
		lastModified:    b.lastModified,
		outcome:         b.outcome,
	}, nil
}

func (b *BundleEntryResponseBuilder) hasChildren() bool {
	return b.hasExtensions() ||
		b.status != nil ||
		b.location != nil ||
		b.etag != nil ||
		b.lastModified != nil ||
		b.outcome != nil
}
